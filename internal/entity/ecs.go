// internal/entity/ecs.go
package entity

import (
	"go-shadow-defend/internal/component"
	"go-shadow-defend/internal/types"
	"slices"
)

type ECS struct {
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Velocities  map[types.EntityID]*component.Velocity
	Paths       map[types.EntityID]*component.Path
	Facings     map[types.EntityID]*component.Facing
	Bounds      map[types.EntityID]*component.Bounds
	Healths     map[types.EntityID]*component.Health
	Enemies     map[types.EntityID]*component.Enemy
	Towers      map[types.EntityID]*component.Tower
	Combats     map[types.EntityID]*component.Combat
	Mobilities  map[types.EntityID]*component.Mobility
	AirDrops    map[types.EntityID]*component.AirDrop
	Projectiles map[types.EntityID]*component.Projectile
	Explosives  map[types.EntityID]*component.Explosive
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Paths:       make(map[types.EntityID]*component.Path),
		Facings:     make(map[types.EntityID]*component.Facing),
		Bounds:      make(map[types.EntityID]*component.Bounds),
		Healths:     make(map[types.EntityID]*component.Health),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Towers:      make(map[types.EntityID]*component.Tower),
		Combats:     make(map[types.EntityID]*component.Combat),
		Mobilities:  make(map[types.EntityID]*component.Mobility),
		AirDrops:    make(map[types.EntityID]*component.AirDrop),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Explosives:  make(map[types.EntityID]*component.Explosive),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Alive: сущность ещё существует.
func (ecs *ECS) Alive(id types.EntityID) bool {
	if id == types.NoEntity {
		return false
	}
	_, ok := ecs.Positions[id]
	return ok
}

// RemoveEntity удаляет все компоненты сущности.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Paths, id)
	delete(ecs.Facings, id)
	delete(ecs.Bounds, id)
	delete(ecs.Healths, id)
	delete(ecs.Enemies, id)
	delete(ecs.Towers, id)
	delete(ecs.Combats, id)
	delete(ecs.Mobilities, id)
	delete(ecs.AirDrops, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Explosives, id)
	delete(ecs.Renderables, id)
}

// EnemyIDs возвращает врагов в порядке создания. Системы обходят их так, а не
// по map, чтобы выбор цели был детерминированным.
func (ecs *ECS) EnemyIDs() []types.EntityID {
	return sortedIDs(ecs.Enemies)
}

// TowerIDs возвращает башни в порядке создания.
func (ecs *ECS) TowerIDs() []types.EntityID {
	return sortedIDs(ecs.Towers)
}

// ProjectileIDs возвращает снаряды в порядке создания.
func (ecs *ECS) ProjectileIDs() []types.EntityID {
	return sortedIDs(ecs.Projectiles)
}

// ExplosiveIDs возвращает взрывчатку в порядке создания.
func (ecs *ECS) ExplosiveIDs() []types.EntityID {
	return sortedIDs(ecs.Explosives)
}

// ClearProjectiles удаляет все снаряды и взрывчатку.
func (ecs *ECS) ClearProjectiles() {
	for id := range ecs.Projectiles {
		ecs.RemoveEntity(id)
	}
	for id := range ecs.Explosives {
		ecs.RemoveEntity(id)
	}
}

func sortedIDs[T any](m map[types.EntityID]*T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
