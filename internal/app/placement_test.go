package app

import (
	"errors"
	"testing"

	"go-shadow-defend/internal/defs"
	"go-shadow-defend/pkg/levelmap"
)

func blockedMap() *levelmap.Map {
	m := levelmap.New("blocked", 400, 300, []levelmap.Point{{X: 0, Y: 100}, {X: 300, Y: 100}})
	m.PathWidth = 40
	m.Blocked = []levelmap.Rect{{X: 300, Y: 200, W: 50, H: 50}}
	return m
}

func TestPlaceDefenceRejections(t *testing.T) {
	tests := []struct {
		name string
		kind defs.DefenceKind
		x, y float64
		want error
	}{
		{"unknown kind", "catapult", 200, 200, ErrUnknownDefence},
		{"too expensive", defs.DefenceSuperTank, 200, 200, ErrInsufficientFunds},
		{"outside map", defs.DefenceTank, -5, 200, ErrOutOfBounds},
		{"on the path", defs.DefenceTank, 150, 110, ErrBlocked},
		{"blocked area", defs.DefenceTank, 320, 220, ErrBlocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, testConfig(), "1,delay,10\n", blockedMap())
			id, err := g.PlaceDefence(tt.kind, tt.x, tt.y)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if id != 0 || len(g.Level.ECS.Towers) != 0 {
				t.Errorf("rejected placement created a defence")
			}
			if g.Account.Money() != 500 {
				t.Errorf("rejected placement charged money: %d", g.Account.Money())
			}
		})
	}
}

func TestPlaceDefenceOccupied(t *testing.T) {
	g := newTestGame(t, testConfig(), "1,delay,10\n", blockedMap())

	if _, err := g.PlaceDefence(defs.DefenceTank, 200, 200); err != nil {
		t.Fatalf("first placement failed: %v", err)
	}
	if g.Account.Money() != 250 {
		t.Errorf("expected cost 250 deducted, money %d", g.Account.Money())
	}
	if _, err := g.PlaceDefence(defs.DefenceTank, 220, 220); !errors.Is(err, ErrOccupied) {
		t.Errorf("expected ErrOccupied, got %v", err)
	}
	if g.Account.Money() != 250 || g.Stats.Placed != 1 {
		t.Errorf("second placement must not be charged, money %d placed %d", g.Account.Money(), g.Stats.Placed)
	}
}

func TestAirSupportAlternatesEntry(t *testing.T) {
	cfg := testConfig()
	cfg.Simulation.StartingMoney = 2000
	g := newTestGame(t, cfg, "1,delay,10\n", blockedMap())

	type entry struct{ x, y, dx, dy float64 }
	want := []entry{
		{-100, 110, 1, 0},
		{150, -100, 0, 1},
		{-100, 110, 1, 0},
	}
	for i, w := range want {
		// on the path: bombers ignore the blocked predicate
		id, err := g.PlaceDefence(defs.DefenceAirSupport, 150, 110)
		if err != nil {
			t.Fatalf("placement %d failed: %v", i, err)
		}
		pos := g.Level.ECS.Positions[id]
		mob := g.Level.ECS.Mobilities[id]
		if pos.X != w.x || pos.Y != w.y || mob.DX != w.dx || mob.DY != w.dy {
			t.Errorf("placement %d: at (%g, %g) dir (%g, %g), want %+v", i, pos.X, pos.Y, mob.DX, mob.DY, w)
		}
		drop := g.Level.ECS.AirDrops[id].DropTime
		if drop < 60 || drop >= 120 {
			t.Errorf("placement %d: drop time %g outside [60, 120)", i, drop)
		}
	}
	if g.Account.Money() != 500 {
		t.Errorf("expected 3 x 500 deducted, money %d", g.Account.Money())
	}

	if err := g.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	id, _ := g.PlaceDefence(defs.DefenceAirSupport, 150, 110)
	if g.Level.ECS.Mobilities[id].DX != 1 {
		t.Errorf("orientation should reset to horizontal on a new level")
	}
}

func TestBomberFliesAcrossAndLeaves(t *testing.T) {
	cfg := testConfig()
	g := newTestGame(t, cfg, "1,delay,10\n", blockedMap())
	id, err := g.PlaceDefence(defs.DefenceAirSupport, 150, 110)
	if err != nil {
		t.Fatalf("placement failed: %v", err)
	}

	// (400 + 100) / 3 ticks to cross the map while idle
	runUntil(g, 200, func() bool { return !g.Level.ECS.Alive(id) })
	if g.Level.ECS.Alive(id) {
		t.Errorf("bomber should be removed after leaving the map")
	}
	if g.Status() != AwaitingStart {
		t.Errorf("idle ticks must not start the wave")
	}
}
