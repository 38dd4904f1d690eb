// internal/app/placement.go
package app

import (
	"errors"
	"fmt"

	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/event"
	"go-shadow-defend/internal/system"
	"go-shadow-defend/internal/types"

	"go.uber.org/zap"
)

var (
	ErrGameOver          = errors.New("game is over")
	ErrUnknownDefence    = errors.New("unknown defence")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrOutOfBounds       = errors.New("outside the map")
	ErrBlocked           = errors.New("tile is blocked")
	ErrOccupied          = errors.New("another defence is already there")
)

// PlaceDefence покупает башню и ставит её на текущую карту. Если установка
// отклонена, деньги не списываются.
func (g *Game) PlaceDefence(kind defs.DefenceKind, x, y float64) (types.EntityID, error) {
	if g.status == Won || g.status == Lost {
		return types.NoEntity, ErrGameOver
	}
	def, ok := g.lib.Tower(kind)
	if !ok {
		return types.NoEntity, fmt.Errorf("%w: %q", ErrUnknownDefence, kind)
	}
	if g.Account.Money() < def.Cost {
		g.logger.Debug("placement rejected", zap.String("kind", string(kind)), zap.Error(ErrInsufficientFunds))
		return types.NoEntity, ErrInsufficientFunds
	}
	if err := g.Level.CanPlace(def, x, y); err != nil {
		g.logger.Debug("placement rejected", zap.String("kind", string(kind)), zap.Float64("x", x), zap.Float64("y", y), zap.Error(err))
		return types.NoEntity, err
	}

	id := g.Level.Place(def, x, y)
	g.Account.Deduct(def.Cost)
	pos := g.Level.ECS.Positions[id]
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.DefencePlaced,
		Data: event.DefencePlacedData{ID: id, Kind: kind, X: pos.X, Y: pos.Y},
	})
	return id, nil
}

// CanPlace проверяет правила карты для башни в (x, y). Бомбардировщик можно
// вызвать и над дорогой, турели нужна свободная незаблокированная клетка.
func (l *Level) CanPlace(def defs.TowerDefinition, x, y float64) error {
	if !l.Map.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if def.Behavior != defs.BehaviorTurret {
		return nil
	}
	if l.Map.IsBlocked(x, y) {
		return ErrBlocked
	}
	for _, id := range l.ECS.TowerIDs() {
		if _, mobile := l.ECS.Mobilities[id]; mobile {
			continue
		}
		pos := l.ECS.Positions[id]
		if b, ok := l.ECS.Bounds[id]; ok && b.Contains(pos.X, pos.Y, x, y) {
			return ErrOccupied
		}
	}
	return nil
}

// Place создаёт башню без проверок. Бомбардировщики залетают из-за края карты,
// по очереди горизонтально на высоте y и вертикально по столбцу x.
func (l *Level) Place(def defs.TowerDefinition, x, y float64) types.EntityID {
	if def.Behavior != defs.BehaviorAirDrop {
		return system.SpawnTurret(l.ECS, def, x, y)
	}

	stats := def.AirDrop
	firstDrop := float64(l.rng.Interval(stats.MinDropTime, stats.DropWindow))
	var id types.EntityID
	if l.nextIsHorizontal {
		id = system.SpawnAirDrop(l.ECS, def, -stats.EntryOffset, y, 1, 0, firstDrop)
	} else {
		id = system.SpawnAirDrop(l.ECS, def, x, -stats.EntryOffset, 0, 1, firstDrop)
	}
	l.nextIsHorizontal = !l.nextIsHorizontal
	return id
}
