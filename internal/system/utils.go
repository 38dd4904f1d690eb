// internal/system/utils.go
package system

import (
	"math"

	"go-shadow-defend/internal/component"
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/types"
	"go-shadow-defend/internal/utils"
	"go-shadow-defend/pkg/levelmap"
)

// spriteAngle переводит направление (dx, dy) в угол спрайта, который смотрит вверх.
func spriteAngle(dx, dy float64) float64 {
	return utils.NormalizeAngle(math.Atan2(dy, dx) + math.Pi/2)
}

// ApplyDamage наносит урон сущности. Здоровье не опускается ниже нуля.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) {
	health, ok := ecs.Healths[entityID]
	if !ok || damage <= 0 {
		return
	}
	health.Value -= damage
	if health.Value < 0 {
		health.Value = 0
	}
}

// IsTerminal: враг убит, дошёл до конца пути или уже удалён.
func IsTerminal(ecs *entity.ECS, id types.EntityID) bool {
	enemy, ok := ecs.Enemies[id]
	if !ok || !ecs.Alive(id) {
		return true
	}
	if enemy.ReachedEnd {
		return true
	}
	health, ok := ecs.Healths[id]
	return ok && health.Value <= 0
}

// SpawnEnemy создаёт врага в (x, y), идущего к waypoints[index+1].
func SpawnEnemy(ecs *entity.ECS, def defs.EnemyDefinition, waypoints []levelmap.Point, index int, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	ecs.Paths[id] = &component.Path{Waypoints: waypoints, CurrentIndex: index}
	ecs.Facings[id] = &component.Facing{}
	ecs.Bounds[id] = &component.Bounds{Width: def.Size.Width, Height: def.Size.Height}
	ecs.Healths[id] = &component.Health{Value: def.Health}
	ecs.Enemies[id] = &component.Enemy{
		Kind:    def.Kind,
		Penalty: def.Penalty,
		Reward:  def.Reward,
	}
	ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.RGBA(),
		Radius: def.Visuals.Radius,
	}
	return id
}

// SpawnTurret ставит неподвижную турель. Стрелять она может с первого тика.
func SpawnTurret(ecs *entity.ECS, def defs.TowerDefinition, x, y float64) types.EntityID {
	id := spawnDefence(ecs, def, x, y)
	stats := def.Combat
	ecs.Combats[id] = &component.Combat{
		Cooldown:        float64(stats.Cooldown),
		Damage:          stats.Damage,
		Radius:          stats.Radius,
		ProjectileSpeed: stats.ProjectileSpeed,
		SinceLastAttack: math.Inf(1),
	}
	return id
}

// SpawnAirDrop создаёт бомбардировщик в (x, y), летящий по (dx, dy). Первый
// сброс через firstDrop тиков, или позже, если он ещё за краем карты.
func SpawnAirDrop(ecs *entity.ECS, def defs.TowerDefinition, x, y, dx, dy, firstDrop float64) types.EntityID {
	id := spawnDefence(ecs, def, x, y)
	stats := def.AirDrop
	ecs.Mobilities[id] = &component.Mobility{DX: dx, DY: dy, Speed: stats.Speed}
	ecs.Facings[id].Angle = spriteAngle(dx, dy)
	ecs.Combats[id] = &component.Combat{Damage: stats.Damage, Radius: stats.Radius}
	ecs.AirDrops[id] = &component.AirDrop{
		DropTime:        firstDrop,
		MinDropTime:     stats.MinDropTime,
		DropWindow:      stats.DropWindow,
		Damage:          stats.Damage,
		Radius:          stats.Radius,
		DetonationDelay: stats.DetonationDelay,
	}
	return id
}

func spawnDefence(ecs *entity.ECS, def defs.TowerDefinition, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Facings[id] = &component.Facing{}
	ecs.Bounds[id] = &component.Bounds{Width: def.Size.Width, Height: def.Size.Height}
	ecs.Towers[id] = &component.Tower{Kind: def.Kind, Behavior: def.Behavior, Cost: def.Cost}
	ecs.Renderables[id] = &component.Renderable{
		Color:  def.Visuals.RGBA(),
		Radius: def.Visuals.Radius,
	}
	return id
}
