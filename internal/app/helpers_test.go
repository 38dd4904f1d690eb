package app

import (
	"strings"
	"testing"

	"go-shadow-defend/internal/config"
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/pkg/levelmap"
)

// shortMap is a 100 pixel straight route. A slicer walks it in 50 ticks and
// leaks on the 51st.
func shortMap(name string) *levelmap.Map {
	return levelmap.New(name, 400, 300, []levelmap.Point{{X: 0, Y: 100}, {X: 100, Y: 100}})
}

func testConfig() *config.Config {
	cfg := config.Defaults()
	cfg.Simulation.Seed = 42
	return cfg
}

func newTestGame(t *testing.T, cfg *config.Config, waves string, maps ...*levelmap.Map) *Game {
	t.Helper()
	lib, err := defs.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary failed: %v", err)
	}
	instructions, err := defs.ParseWaves(strings.NewReader(waves))
	if err != nil {
		t.Fatalf("ParseWaves failed: %v", err)
	}
	if len(maps) == 0 {
		maps = []*levelmap.Map{shortMap("first")}
	}
	g, err := NewGameFromAssets(cfg, lib, maps, instructions, nil)
	if err != nil {
		t.Fatalf("NewGameFromAssets failed: %v", err)
	}
	return g
}

// runUntil ticks the game until cond holds or limit ticks pass.
func runUntil(g *Game, limit int, cond func() bool) int {
	for i := 1; i <= limit; i++ {
		g.Update()
		if cond() {
			return i
		}
	}
	return -1
}
