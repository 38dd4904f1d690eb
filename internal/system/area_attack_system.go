// internal/system/area_attack_system.go
package system

import (
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/event"
	"go-shadow-defend/internal/utils"
)

// AreaAttackSystem детонирует бомбы и наносит урон по области.
type AreaAttackSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewAreaAttackSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *AreaAttackSystem {
	return &AreaAttackSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *AreaAttackSystem) Update(tc TickContext) {
	for _, id := range s.ecs.ExplosiveIDs() {
		exp := s.ecs.Explosives[id]
		if exp.Resolved {
			continue
		}
		exp.Timer += tc.Timescale
		if exp.Timer < exp.Delay {
			continue
		}

		pos := s.ecs.Positions[id]
		hits := 0
		for _, eid := range s.ecs.EnemyIDs() {
			if IsTerminal(s.ecs, eid) {
				continue
			}
			epos := s.ecs.Positions[eid]
			if utils.Distance(pos.X, pos.Y, epos.X, epos.Y) <= exp.Radius {
				ApplyDamage(s.ecs, eid, exp.Damage)
				hits++
			}
		}
		exp.Resolved = true

		if s.eventDispatcher != nil {
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.ExplosiveDetonated,
				Data: event.ExplosiveDetonatedData{ID: id, Hits: hits},
			})
		}
	}
}
