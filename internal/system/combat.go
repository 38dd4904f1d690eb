package system

import (
	"go-shadow-defend/internal/component"
	"go-shadow-defend/internal/config"
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/types"
	"go-shadow-defend/internal/utils"
	"go-shadow-defend/pkg/levelmap"
)

// CombatSystem управляет атакой башен: захват цели, выстрелы и сброс бомб.
type CombatSystem struct {
	ecs        *entity.ECS
	bounds     *levelmap.Map
	rng        *utils.PRNGService
	projectile defs.ProjectileDefinition
}

func NewCombatSystem(ecs *entity.ECS, bounds *levelmap.Map, rng *utils.PRNGService, projectile defs.ProjectileDefinition) *CombatSystem {
	return &CombatSystem{
		ecs:        ecs,
		bounds:     bounds,
		rng:        rng,
		projectile: projectile,
	}
}

func (s *CombatSystem) Update(tc TickContext) {
	for _, id := range s.ecs.TowerIDs() {
		tower := s.ecs.Towers[id]
		switch tower.Behavior {
		case defs.BehaviorTurret:
			s.updateTurret(id)
		case defs.BehaviorAirDrop:
			s.updateAirDrop(id)
		}
		if combat, ok := s.ecs.Combats[id]; ok {
			combat.SinceLastAttack += tc.Timescale
		}
	}
}

func (s *CombatSystem) updateTurret(id types.EntityID) {
	combat, ok := s.ecs.Combats[id]
	if !ok {
		return
	}
	pos := s.ecs.Positions[id]

	if IsTerminal(s.ecs, combat.TargetID) {
		s.release(combat)
		combat.TargetID = s.acquire(pos, combat.Radius)
		if combat.TargetID == types.NoEntity {
			return
		}
	} else {
		target := s.ecs.Positions[combat.TargetID]
		if facing, ok := s.ecs.Facings[id]; ok {
			facing.Angle = spriteAngle(target.X-pos.X, target.Y-pos.Y)
		}
		if utils.Distance(pos.X, pos.Y, target.X, target.Y) > combat.Radius {
			s.release(combat)
			return
		}
	}

	if combat.SinceLastAttack <= combat.Cooldown {
		return
	}
	target := s.ecs.Positions[combat.TargetID]
	if utils.Distance(pos.X, pos.Y, target.X, target.Y) > combat.Radius {
		return
	}
	s.fire(pos, combat)
	combat.SinceLastAttack = 0
}

// acquire берёт первого по порядку создания свободного живого врага в радиусе
// и помечает его как цель.
func (s *CombatSystem) acquire(pos *component.Position, radius float64) types.EntityID {
	for _, eid := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[eid]
		if enemy.Targeted || IsTerminal(s.ecs, eid) {
			continue
		}
		epos := s.ecs.Positions[eid]
		if utils.Distance(pos.X, pos.Y, epos.X, epos.Y) <= radius {
			enemy.Targeted = true
			return eid
		}
	}
	return types.NoEntity
}

// release отпускает цель, её снова можно захватить.
func (s *CombatSystem) release(combat *component.Combat) {
	if enemy, ok := s.ecs.Enemies[combat.TargetID]; ok {
		enemy.Targeted = false
	}
	combat.TargetID = types.NoEntity
}

func (s *CombatSystem) fire(from *component.Position, combat *component.Combat) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: from.X, Y: from.Y}
	s.ecs.Bounds[id] = &component.Bounds{Width: s.projectile.Size.Width, Height: s.projectile.Size.Height}
	s.ecs.Projectiles[id] = &component.Projectile{
		TargetID: combat.TargetID,
		Speed:    combat.ProjectileSpeed,
		Damage:   combat.Damage,
	}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  s.projectile.Visuals.RGBA(),
		Radius: s.projectile.Visuals.Radius,
	}
	return id
}

// updateAirDrop сбрасывает взрывчатку, когда время сброса прошло и
// бомбардировщик над картой. Цель не нужна.
func (s *CombatSystem) updateAirDrop(id types.EntityID) {
	drop, ok := s.ecs.AirDrops[id]
	combat, hasCombat := s.ecs.Combats[id]
	if !ok || !hasCombat {
		return
	}
	pos := s.ecs.Positions[id]
	if combat.SinceLastAttack < drop.DropTime || !s.bounds.InBounds(pos.X, pos.Y) {
		return
	}

	eid := s.ecs.NewEntity()
	s.ecs.Positions[eid] = &component.Position{X: pos.X, Y: pos.Y}
	s.ecs.Explosives[eid] = &component.Explosive{
		Damage: drop.Damage,
		Radius: drop.Radius,
		Delay:  drop.DetonationDelay,
	}
	s.ecs.Renderables[eid] = &component.Renderable{Color: config.ExplosiveColor, Radius: 6}

	drop.DropTime = float64(s.rng.Interval(drop.MinDropTime, drop.DropWindow))
	combat.SinceLastAttack = 0
}
