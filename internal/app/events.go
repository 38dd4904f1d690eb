package app

import (
	"go-shadow-defend/internal/event"

	"go.uber.org/zap"
)

// Stats: счётчики событий за сессию.
type Stats struct {
	Kills       int
	Leaks       int
	Detonations int
	Placed      int
	WavesEnded  int
}

func (s *Stats) Reset() { *s = Stats{} }

// GameEventListener обрабатывает события, важные для основного игрового цикла.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	stats := l.game.Stats
	switch e.Type {
	case event.EnemyKilled:
		stats.Kills++
	case event.EnemyLeaked:
		stats.Leaks++
	case event.ExplosiveDetonated:
		stats.Detonations++
	case event.DefencePlaced:
		stats.Placed++
		if data, ok := e.Data.(event.DefencePlacedData); ok {
			l.game.Level.Logger().Debug("defence placed", zap.String("kind", string(data.Kind)), zap.Float64("x", data.X), zap.Float64("y", data.Y))
		}
	case event.WaveEnded:
		stats.WavesEnded++
		if data, ok := e.Data.(event.WaveEndedData); ok {
			l.game.Level.Logger().Info("wave ended",
				zap.Int("wave", data.Wave),
				zap.Int("bonus", data.Bonus),
				zap.Int("money", l.game.Account.Money()),
				zap.Int("lives", l.game.Account.Lives()),
			)
		}
	case event.LevelCompleted:
		if data, ok := e.Data.(event.LevelCompletedData); ok {
			l.game.Level.Logger().Info("level completed", zap.Int("index", data.Index), zap.String("name", data.Name))
		}
	}
}
