// internal/system/movement.go
package system

import (
	"math"

	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/utils"
	"go-shadow-defend/pkg/levelmap"
)

// Step: результат одного тика движения по пути.
type Step struct {
	X, Y     float64
	Index    int
	Angle    float64
	Finished bool // no waypoint left, the entity completed the path
}

// AdvanceAlongPath сдвигает точку (x, y) к waypoints[index+1] на distance.
// В точном режиме прибытие проверяется по евклидову расстоянию и точка
// встаёт на waypoint. В legacy режиме сравниваются усечённые до целых разницы
// по осям, а шаг всегда делается целиком.
func AdvanceAlongPath(x, y float64, waypoints []levelmap.Point, index int, distance float64, legacy bool) Step {
	step := Step{X: x, Y: y, Index: index}
	next := index + 1
	if next >= len(waypoints) {
		step.Finished = true
		return step
	}
	if distance <= 0 {
		return step
	}

	target := waypoints[next]
	dx, dy := target.X-x, target.Y-y
	ux, uy, length := utils.Direction(dx, dy)
	step.Angle = math.Atan2(dy, dx)

	if legacy {
		if math.Abs(math.Trunc(dx))/distance <= 1 && math.Abs(math.Trunc(dy))/distance <= 1 {
			step.Index = next
		}
		step.X += ux * distance
		step.Y += uy * distance
		return step
	}

	if length <= distance {
		step.X, step.Y = target.X, target.Y
		step.Index = next
		return step
	}
	step.X += ux * distance
	step.Y += uy * distance
	return step
}

// MovementSystem обновляет позиции сущностей
type MovementSystem struct {
	ecs           *entity.ECS
	legacyArrival bool
}

func NewMovementSystem(ecs *entity.ECS, legacyArrival bool) *MovementSystem {
	return &MovementSystem{ecs: ecs, legacyArrival: legacyArrival}
}

// Update двигает всех врагов по маршруту.
func (s *MovementSystem) Update(tc TickContext) {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		pos, hasPos := s.ecs.Positions[id]
		path, hasPath := s.ecs.Paths[id]
		vel, hasVel := s.ecs.Velocities[id]
		if enemy.ReachedEnd || !hasPos || !hasPath || !hasVel {
			continue
		}

		distance := tc.Scaled(vel.Speed)
		step := AdvanceAlongPath(pos.X, pos.Y, path.Waypoints, path.CurrentIndex, distance, s.legacyArrival)
		if step.Finished {
			enemy.ReachedEnd = true
			continue
		}
		if distance <= 0 {
			continue
		}
		pos.X, pos.Y = step.X, step.Y
		path.CurrentIndex = step.Index
		if facing, ok := s.ecs.Facings[id]; ok {
			facing.Angle = step.Angle
		}
	}
}

// UpdateDefences двигает подвижные башни по прямой.
func (s *MovementSystem) UpdateDefences(tc TickContext) {
	for _, id := range s.ecs.TowerIDs() {
		mob, ok := s.ecs.Mobilities[id]
		if !ok {
			continue
		}
		pos := s.ecs.Positions[id]
		distance := tc.Scaled(mob.Speed)
		pos.X += mob.DX * distance
		pos.Y += mob.DY * distance
		if facing, ok := s.ecs.Facings[id]; ok {
			facing.Angle = spriteAngle(mob.DX, mob.DY)
		}
	}
}
