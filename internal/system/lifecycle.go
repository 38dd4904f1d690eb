package system

import (
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/event"
	"go-shadow-defend/internal/interfaces"
	"go-shadow-defend/internal/types"
	"go-shadow-defend/pkg/levelmap"

	"go.uber.org/zap"
)

type childSpawn struct {
	def       defs.EnemyDefinition
	waypoints []levelmap.Point
	index     int
	x, y      float64
}

// LifecycleSystem работает последней в тике: списывает жизни за прорвавшихся,
// платит за убитых, создаёт их детей и удаляет всё завершённое.
type LifecycleSystem struct {
	ecs             *entity.ECS
	lib             *defs.Library
	bounds          *levelmap.Map
	eventDispatcher *event.Dispatcher
	logger          *zap.Logger
}

func NewLifecycleSystem(ecs *entity.ECS, lib *defs.Library, bounds *levelmap.Map, eventDispatcher *event.Dispatcher, logger *zap.Logger) *LifecycleSystem {
	return &LifecycleSystem{
		ecs:             ecs,
		lib:             lib,
		bounds:          bounds,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

func (s *LifecycleSystem) Update(account interfaces.Account) {
	var toRemove []types.EntityID
	var toSpawn []childSpawn

	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		leaked := enemy.ReachedEnd
		killed := false
		if health, ok := s.ecs.Healths[id]; ok && health.Value <= 0 {
			killed = true
		}

		if leaked {
			account.DeductLives(enemy.Penalty)
			s.logger.Debug("enemy leaked", zap.Uint64("id", uint64(id)), zap.String("kind", string(enemy.Kind)), zap.Int("penalty", enemy.Penalty))
			s.dispatch(event.EnemyLeaked, event.EnemyLeakedData{ID: id, Kind: enemy.Kind, Penalty: enemy.Penalty})
		}
		if killed {
			account.Credit(enemy.Reward)
			children := s.children(id)
			toSpawn = append(toSpawn, children...)
			s.logger.Debug("enemy killed", zap.Uint64("id", uint64(id)), zap.String("kind", string(enemy.Kind)), zap.Int("children", len(children)))
			s.dispatch(event.EnemyKilled, event.EnemyKilledData{ID: id, Kind: enemy.Kind, Reward: enemy.Reward, Children: len(children)})
		}
		if leaked || killed {
			toRemove = append(toRemove, id)
		}
	}

	for _, id := range s.ecs.ProjectileIDs() {
		if s.ecs.Projectiles[id].Resolved {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range s.ecs.ExplosiveIDs() {
		if s.ecs.Explosives[id].Resolved {
			toRemove = append(toRemove, id)
		}
	}
	for _, id := range s.ecs.TowerIDs() {
		if s.exited(id) {
			toRemove = append(toRemove, id)
		}
	}

	for _, id := range toRemove {
		s.ecs.RemoveEntity(id)
	}
	for _, c := range toSpawn {
		SpawnEnemy(s.ecs, c.def, c.waypoints, c.index, c.x, c.y)
	}
}

// children создаёт детей в точке смерти родителя. Дети продолжают путь с его
// индекса точки маршрута.
func (s *LifecycleSystem) children(id types.EntityID) []childSpawn {
	enemy := s.ecs.Enemies[id]
	def, ok := s.lib.Enemy(enemy.Kind)
	if !ok || def.Children == nil {
		return nil
	}
	childDef, ok := s.lib.Enemy(def.Children.Kind)
	if !ok {
		s.logger.Warn("unknown child kind", zap.String("parent", string(enemy.Kind)), zap.String("kind", string(def.Children.Kind)))
		return nil
	}
	pos := s.ecs.Positions[id]
	path := s.ecs.Paths[id]
	out := make([]childSpawn, 0, len(def.Children.Offsets))
	for _, off := range def.Children.Offsets {
		out = append(out, childSpawn{
			def:       childDef,
			waypoints: path.Waypoints,
			index:     path.CurrentIndex,
			x:         pos.X + off.X,
			y:         pos.Y + off.Y,
		})
	}
	return out
}

// exited: подвижная башня вылетела за край, к которому летит. Ещё не влетевшие
// остаются.
func (s *LifecycleSystem) exited(id types.EntityID) bool {
	mob, ok := s.ecs.Mobilities[id]
	if !ok {
		return false
	}
	pos := s.ecs.Positions[id]
	return (mob.DX > 0 && pos.X > s.bounds.Width) ||
		(mob.DX < 0 && pos.X < 0) ||
		(mob.DY > 0 && pos.Y > s.bounds.Height) ||
		(mob.DY < 0 && pos.Y < 0)
}

func (s *LifecycleSystem) dispatch(t event.EventType, data any) {
	if s.eventDispatcher != nil {
		s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
	}
}
