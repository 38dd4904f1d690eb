package system

import (
	"testing"

	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/types"
	"go-shadow-defend/pkg/levelmap"
)

var tick1 = TickContext{Timescale: 1}

type fakeAccount struct {
	money, lives int
}

func (a *fakeAccount) Deduct(amount int)      { a.money -= amount }
func (a *fakeAccount) Credit(amount int)      { a.money += amount }
func (a *fakeAccount) Money() int             { return a.money }
func (a *fakeAccount) DeductLives(amount int) { a.lives -= amount }
func (a *fakeAccount) Lives() int             { return a.lives }

func testLibrary(t *testing.T) *defs.Library {
	t.Helper()
	lib, err := defs.DefaultLibrary()
	if err != nil {
		t.Fatalf("DefaultLibrary failed: %v", err)
	}
	return lib
}

func testMap() *levelmap.Map {
	return levelmap.New("test", 1024, 768, []levelmap.Point{{X: 0, Y: 100}, {X: 500, Y: 100}, {X: 500, Y: 600}})
}

func spawnKind(t *testing.T, ecs *entity.ECS, lib *defs.Library, kind defs.EnemyKind, m *levelmap.Map, x, y float64) types.EntityID {
	t.Helper()
	def, ok := lib.Enemy(kind)
	if !ok {
		t.Fatalf("no definition for %s", kind)
	}
	return SpawnEnemy(ecs, def, m.Path, 0, x, y)
}

func spawnTank(t *testing.T, ecs *entity.ECS, lib *defs.Library, x, y float64) types.EntityID {
	t.Helper()
	def, ok := lib.Tower(defs.DefenceTank)
	if !ok {
		t.Fatalf("no tank definition")
	}
	return SpawnTurret(ecs, def, x, y)
}
