package system

import (
	"math"
	"testing"

	"go-shadow-defend/internal/component"
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/event"
	"go-shadow-defend/internal/types"

	"go.uber.org/zap"
)

type eventCounter struct {
	counts map[event.EventType]int
}

func (c *eventCounter) OnEvent(e event.Event) {
	c.counts[e.Type]++
}

func newLifecycle(t *testing.T, ecs *entity.ECS) (*LifecycleSystem, *eventCounter) {
	t.Helper()
	dispatcher := event.NewDispatcher()
	counter := &eventCounter{counts: make(map[event.EventType]int)}
	dispatcher.Subscribe(event.EnemyKilled, counter)
	dispatcher.Subscribe(event.EnemyLeaked, counter)
	return NewLifecycleSystem(ecs, testLibrary(t), testMap(), dispatcher, zap.NewNop()), counter
}

func TestKilledChildren(t *testing.T) {
	tests := []struct {
		kind      defs.EnemyKind
		childKind defs.EnemyKind
		offsets   [][2]float64
		reward    int
	}{
		{defs.EnemySlicer, "", nil, 2},
		{defs.EnemySuperSlicer, defs.EnemySlicer, [][2]float64{{-20, 0}, {20, 0}}, 15},
		{defs.EnemyMegaSlicer, defs.EnemySuperSlicer, [][2]float64{{-20, 0}, {20, 0}}, 10},
		{defs.EnemyApexSlicer, defs.EnemyMegaSlicer, [][2]float64{{-20, 0}, {20, 0}, {0, -20}, {0, 20}}, 150},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			ecs := entity.NewECS()
			lib := testLibrary(t)
			parent := spawnKind(t, ecs, lib, tt.kind, testMap(), 300, 100)
			ecs.Paths[parent].CurrentIndex = 1
			ecs.Healths[parent].Value = 0

			ls, counter := newLifecycle(t, ecs)
			acc := &fakeAccount{money: 0, lives: 25}
			ls.Update(acc)

			if ecs.Alive(parent) {
				t.Errorf("killed parent should be removed")
			}
			if acc.money != tt.reward {
				t.Errorf("expected reward %d, got %d", tt.reward, acc.money)
			}
			if counter.counts[event.EnemyKilled] != 1 {
				t.Errorf("expected one kill event")
			}

			ids := ecs.EnemyIDs()
			if len(ids) != len(tt.offsets) {
				t.Fatalf("expected %d children, got %d", len(tt.offsets), len(ids))
			}
			for i, id := range ids {
				if ecs.Enemies[id].Kind != tt.childKind {
					t.Errorf("child %d kind %s, want %s", i, ecs.Enemies[id].Kind, tt.childKind)
				}
				pos := ecs.Positions[id]
				if pos.X != 300+tt.offsets[i][0] || pos.Y != 100+tt.offsets[i][1] {
					t.Errorf("child %d at (%g, %g)", i, pos.X, pos.Y)
				}
				if ecs.Paths[id].CurrentIndex != 1 {
					t.Errorf("child %d should resume at waypoint index 1, got %d", i, ecs.Paths[id].CurrentIndex)
				}
			}
		})
	}
}

func TestLeakDeductsLives(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	id := spawnKind(t, ecs, lib, defs.EnemyMegaSlicer, testMap(), 500, 600)
	ecs.Enemies[id].ReachedEnd = true

	ls, counter := newLifecycle(t, ecs)
	acc := &fakeAccount{money: 100, lives: 25}
	ls.Update(acc)

	if acc.lives != 21 || acc.money != 100 {
		t.Errorf("expected lives 21 money 100, got %d %d", acc.lives, acc.money)
	}
	if ecs.Alive(id) || len(ecs.Enemies) != 0 {
		t.Errorf("leaked enemy should be removed without children")
	}
	if counter.counts[event.EnemyLeaked] != 1 {
		t.Errorf("expected one leak event")
	}
}

func TestLeakedAndKilledSameTick(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	id := spawnKind(t, ecs, lib, defs.EnemySuperSlicer, testMap(), 500, 600)
	ecs.Enemies[id].ReachedEnd = true
	ecs.Healths[id].Value = 0

	ls, _ := newLifecycle(t, ecs)
	acc := &fakeAccount{lives: 25}
	ls.Update(acc)

	if acc.lives != 23 || acc.money != 15 {
		t.Errorf("both penalty and reward apply, got lives %d money %d", acc.lives, acc.money)
	}
	if len(ecs.Enemies) != 2 {
		t.Errorf("expected 2 children, got %d", len(ecs.Enemies))
	}
}

func TestLifecyclePurgesResolvedAndExited(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	def, _ := lib.Tower(defs.DefenceAirSupport)

	entering := SpawnAirDrop(ecs, def, -100, 300, 1, 0, 60)
	exitedRight := SpawnAirDrop(ecs, def, 1025, 300, 1, 0, 60)
	exitedDown := SpawnAirDrop(ecs, def, 400, 769, 0, 1, 60)
	tank := spawnTank(t, ecs, lib, 100, 100)

	live := ecs.NewEntity()
	ecs.Positions[live] = &component.Position{}
	ecs.Projectiles[live] = &component.Projectile{}
	done := ecs.NewEntity()
	ecs.Positions[done] = &component.Position{}
	ecs.Projectiles[done] = &component.Projectile{Resolved: true}
	boom := ecs.NewEntity()
	ecs.Positions[boom] = &component.Position{}
	ecs.Explosives[boom] = &component.Explosive{Resolved: true}

	ls, _ := newLifecycle(t, ecs)
	ls.Update(&fakeAccount{lives: 25})

	wantAlive := map[types.EntityID]bool{
		entering:    true,
		exitedRight: false,
		exitedDown:  false,
		tank:        true,
		live:        true,
		done:        false,
		boom:        false,
	}
	for id, want := range wantAlive {
		if got := ecs.Alive(id); got != want {
			t.Errorf("entity %d alive=%v, want %v", id, got, want)
		}
	}
}

func TestChildrenGetFreshHandles(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	parent := spawnKind(t, ecs, lib, defs.EnemyApexSlicer, testMap(), 300, 100)
	ecs.Healths[parent].Value = 0

	ls, _ := newLifecycle(t, ecs)
	ls.Update(&fakeAccount{lives: 25})

	for _, id := range ecs.EnemyIDs() {
		if id <= parent {
			t.Errorf("child handle %d reuses or precedes parent %d", id, parent)
		}
		if math.IsNaN(ecs.Positions[id].X) {
			t.Errorf("child %d has NaN position", id)
		}
	}
}
