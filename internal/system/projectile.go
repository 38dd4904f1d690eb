// internal/system/projectile.go
package system

import (
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

// Update ведёт снаряды к целям. Если цель уже мертва или ушла, снаряд
// исчезает без урона.
func (s *ProjectileSystem) Update(tc TickContext) {
	for _, id := range s.ecs.ProjectileIDs() {
		proj := s.ecs.Projectiles[id]
		if proj.Resolved {
			continue
		}
		if IsTerminal(s.ecs, proj.TargetID) {
			proj.Resolved = true
			continue
		}

		pos := s.ecs.Positions[id]
		target := s.ecs.Positions[proj.TargetID]
		step := tc.Scaled(proj.Speed)
		ux, uy, dist := utils.Direction(target.X-pos.X, target.Y-pos.Y)

		bounds, hasBounds := s.ecs.Bounds[id]
		if dist <= step || (hasBounds && bounds.Contains(pos.X, pos.Y, target.X, target.Y)) {
			ApplyDamage(s.ecs, proj.TargetID, proj.Damage)
			proj.Resolved = true
			continue
		}
		pos.X += ux * step
		pos.Y += uy * step
	}
}
