package system

import (
	"math"
	"testing"

	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/types"
	"go-shadow-defend/internal/utils"
)

func newCombat(ecs *entity.ECS, lib *defs.Library) *CombatSystem {
	return NewCombatSystem(ecs, testMap(), utils.NewPRNGService(7), lib.Projectile)
}

// holders counts the turrets holding each hostile.
func holders(ecs *entity.ECS) map[types.EntityID]int {
	out := make(map[types.EntityID]int)
	for _, c := range ecs.Combats {
		if c.TargetID != types.NoEntity {
			out[c.TargetID]++
		}
	}
	return out
}

func TestTargetingExclusive(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	m := testMap()
	first := spawnTank(t, ecs, lib, 200, 150)
	second := spawnTank(t, ecs, lib, 210, 150)
	enemy := spawnKind(t, ecs, lib, defs.EnemySlicer, m, 200, 100)

	cs := newCombat(ecs, lib)
	cs.Update(tick1)

	if ecs.Combats[first].TargetID != enemy {
		t.Errorf("first turret in creation order should acquire the enemy")
	}
	if ecs.Combats[second].TargetID != types.NoEntity {
		t.Errorf("second turret must not share the target")
	}
	if !ecs.Enemies[enemy].Targeted {
		t.Errorf("enemy should be flagged as targeted")
	}

	other := spawnKind(t, ecs, lib, defs.EnemySlicer, m, 220, 100)
	for i := 0; i < 5; i++ {
		cs.Update(tick1)
		for id, n := range holders(ecs) {
			if n > 1 {
				t.Fatalf("enemy %d held by %d turrets", id, n)
			}
		}
	}
	if ecs.Combats[second].TargetID != other {
		t.Errorf("second turret should pick the remaining enemy")
	}
}

func TestTargetReleasedOutOfRange(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	tank := spawnTank(t, ecs, lib, 200, 200)
	enemy := spawnKind(t, ecs, lib, defs.EnemySlicer, testMap(), 250, 200)

	cs := newCombat(ecs, lib)
	cs.Update(tick1)
	if ecs.Combats[tank].TargetID != enemy {
		t.Fatalf("expected target acquired")
	}

	ecs.Positions[enemy].X = 400
	cs.Update(tick1)
	if ecs.Combats[tank].TargetID != types.NoEntity || ecs.Enemies[enemy].Targeted {
		t.Errorf("target out of range should be released")
	}

	ecs.Positions[enemy].X = 260
	cs.Update(tick1)
	if ecs.Combats[tank].TargetID != enemy {
		t.Errorf("released enemy should be acquirable again")
	}
}

func TestTurretFiresOnCooldown(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	spawnTank(t, ecs, lib, 200, 200)
	spawnKind(t, ecs, lib, defs.EnemyApexSlicer, testMap(), 250, 200)

	cs := newCombat(ecs, lib)
	cs.Update(tick1)
	if len(ecs.Projectiles) != 1 {
		t.Fatalf("expected an immediate first shot, got %d projectiles", len(ecs.Projectiles))
	}
	for _, id := range ecs.ProjectileIDs() {
		p := ecs.Projectiles[id]
		if p.Damage != 1 || p.Speed != 10 {
			t.Errorf("unexpected projectile %+v", p)
		}
		if pos := ecs.Positions[id]; pos.X != 200 || pos.Y != 200 {
			t.Errorf("projectile should start at the turret, got (%g, %g)", pos.X, pos.Y)
		}
	}

	// cooldown 60: the counter must exceed it
	for i := 0; i < 60; i++ {
		cs.Update(tick1)
	}
	if len(ecs.Projectiles) != 1 {
		t.Errorf("fired before cooldown elapsed: %d projectiles", len(ecs.Projectiles))
	}
	cs.Update(tick1)
	if len(ecs.Projectiles) != 2 {
		t.Errorf("expected a second shot, got %d projectiles", len(ecs.Projectiles))
	}
}

func TestTurretIgnoresTerminalEnemies(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	tank := spawnTank(t, ecs, lib, 200, 200)
	dead := spawnKind(t, ecs, lib, defs.EnemySlicer, testMap(), 210, 200)
	leaked := spawnKind(t, ecs, lib, defs.EnemySlicer, testMap(), 220, 200)
	ecs.Healths[dead].Value = 0
	ecs.Enemies[leaked].ReachedEnd = true

	newCombat(ecs, lib).Update(tick1)
	if ecs.Combats[tank].TargetID != types.NoEntity || len(ecs.Projectiles) != 0 {
		t.Errorf("terminal enemies must not be targeted")
	}
}

func TestAirDropWaitsForFirstInterval(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	def, _ := lib.Tower(defs.DefenceAirSupport)
	id := SpawnAirDrop(ecs, def, 100, 300, 1, 0, 60)

	cs := newCombat(ecs, lib)
	for i := 0; i < 60; i++ {
		cs.Update(tick1)
	}
	if len(ecs.Explosives) != 0 {
		t.Fatalf("bomber dropped before its first interval")
	}
	cs.Update(tick1)
	if len(ecs.Explosives) != 1 {
		t.Fatalf("expected a drop after 60 ticks, got %d", len(ecs.Explosives))
	}
	for _, eid := range ecs.ExplosiveIDs() {
		exp := ecs.Explosives[eid]
		if exp.Damage != 500 || exp.Radius != 200 || exp.Delay != 120 {
			t.Errorf("unexpected explosive %+v", exp)
		}
		if pos := ecs.Positions[eid]; pos.X != 100 || pos.Y != 300 {
			t.Errorf("explosive at (%g, %g), want bomber position", pos.X, pos.Y)
		}
	}
	drop := ecs.AirDrops[id].DropTime
	if drop < 60 || drop >= 120 {
		t.Errorf("next drop time %g outside [60, 120)", drop)
	}
	if ecs.Combats[id].TargetID != types.NoEntity {
		t.Errorf("bombers never target")
	}

	for i := 0; i < int(drop)-1; i++ {
		cs.Update(tick1)
	}
	if len(ecs.Explosives) != 1 {
		t.Errorf("dropped before the rolled interval")
	}
	cs.Update(tick1)
	if len(ecs.Explosives) != 2 {
		t.Errorf("expected a second drop after %g ticks, got %d", drop, len(ecs.Explosives))
	}
}

func TestAirDropOnlyOverMap(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	def, _ := lib.Tower(defs.DefenceAirSupport)
	id := SpawnAirDrop(ecs, def, -100, 300, 1, 0, 10)

	cs := newCombat(ecs, lib)
	for i := 0; i < 20; i++ {
		cs.Update(tick1)
	}
	if len(ecs.Explosives) != 0 {
		t.Fatalf("bomber off the map must not drop")
	}

	ecs.Positions[id].X = 100
	cs.Update(tick1)
	if len(ecs.Explosives) != 1 {
		t.Errorf("overdue bomber should drop as soon as it is over the map, got %d", len(ecs.Explosives))
	}
}

func TestAirDropFirstBombAfterEntry(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	def, _ := lib.Tower(defs.DefenceAirSupport)
	id := SpawnAirDrop(ecs, def, -100, 300, 1, 0, 100)

	ms := NewMovementSystem(ecs, false)
	cs := newCombat(ecs, lib)
	for tick := 1; tick <= 200; tick++ {
		ms.UpdateDefences(tick1)
		cs.Update(tick1)
		if len(ecs.Explosives) == 0 {
			continue
		}
		if tick != 101 {
			t.Fatalf("first drop at tick %d, want 101", tick)
		}
		eid := ecs.ExplosiveIDs()[0]
		want := -100 + def.AirDrop.Speed*101
		if x := ecs.Positions[eid].X; x != want {
			t.Errorf("first drop at x=%g, want %g", x, want)
		}
		if ecs.Positions[id].X != want {
			t.Errorf("bomber at x=%g, want %g", ecs.Positions[id].X, want)
		}
		return
	}
	t.Fatalf("bomber never dropped")
}

func TestTurretFacingStaysNormalised(t *testing.T) {
	ecs := entity.NewECS()
	lib := testLibrary(t)
	tank := spawnTank(t, ecs, lib, 200, 150)
	spawnKind(t, ecs, lib, defs.EnemySlicer, testMap(), 150, 150)

	cs := newCombat(ecs, lib)
	cs.Update(tick1)
	cs.Update(tick1)
	// цель слева: atan2 = pi, плюс четверть оборота
	if got := ecs.Facings[tank].Angle; math.Abs(got+math.Pi/2) > 1e-9 {
		t.Errorf("facing %g, want -pi/2", got)
	}
}
