// internal/app/game.go
package app

import (
	"fmt"

	"go-shadow-defend/internal/config"
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/event"
	"go-shadow-defend/internal/system"
	"go-shadow-defend/internal/utils"
	"go-shadow-defend/pkg/levelmap"

	"go.uber.org/zap"
)

// Status: фаза игровой сессии.
type Status int

const (
	AwaitingStart Status = iota
	WaveInProgress
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case WaveInProgress:
		return "Wave In Progress"
	case Won:
		return "Winner!"
	case Lost:
		return "Game Over"
	default:
		return "Awaiting Start"
	}
}

// Game хранит основное состояние игры: текущий уровень, счёт игрока и
// скорость.
type Game struct {
	Level           *Level
	Account         *Account
	EventDispatcher *event.Dispatcher
	Stats           *Stats
	Rng             *utils.PRNGService

	cfg    *config.Config
	lib    *defs.Library
	maps   []*levelmap.Map
	waves  []defs.WaveInstruction
	logger *zap.Logger

	status    Status
	timescale float64
	ticks     uint64
	err       error
}

// NewGame загружает юниты, карты и файл волн из конфига и запускает первую карту.
func NewGame(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	lib, err := defs.LoadLibrary(cfg.Levels.Units)
	if err != nil {
		return nil, err
	}
	maps := make([]*levelmap.Map, 0, len(cfg.Levels.Maps))
	for _, path := range cfg.Levels.Maps {
		m, err := levelmap.Load(path)
		if err != nil {
			return nil, err
		}
		maps = append(maps, m)
	}
	waves, err := defs.LoadWaves(cfg.Levels.Waves)
	if err != nil {
		return nil, err
	}
	return NewGameFromAssets(cfg, lib, maps, waves, logger)
}

// NewGameFromAssets собирает игру из уже загруженных данных. На всех картах
// одни и те же волны.
func NewGameFromAssets(cfg *config.Config, lib *defs.Library, maps []*levelmap.Map, waves []defs.WaveInstruction, logger *zap.Logger) (*Game, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("no level maps")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Account:         NewAccount(cfg.Simulation.StartingMoney, cfg.Simulation.StartingLives),
		EventDispatcher: eventDispatcher,
		Stats:           &Stats{},
		Rng:             utils.NewPRNGService(cfg.Simulation.Seed),
		cfg:             cfg,
		lib:             lib,
		maps:            maps,
		waves:           waves,
		logger:          logger,
	}

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.EnemyKilled,
		event.EnemyLeaked,
		event.WaveEnded,
		event.DefencePlaced,
		event.ExplosiveDetonated,
		event.LevelCompleted,
	} {
		eventDispatcher.Subscribe(t, listener)
	}

	if err := g.loadLevel(0); err != nil {
		return nil, err
	}
	return g, nil
}

// Update продвигает сессию на один тик. Скорость читается здесь один раз и
// передаётся всем системам.
func (g *Game) Update() {
	if g.status == Won || g.status == Lost {
		return
	}
	g.ticks++
	tc := system.TickContext{Timescale: g.timescale}

	if g.status == AwaitingStart && g.cfg.Simulation.AutoStart {
		g.StartWave()
	}
	if g.status != WaveInProgress {
		g.Level.IdleTick(tc, g.Account)
		return
	}

	g.Level.Tick(tc, g.Account)

	if g.Account.Lives() <= 0 {
		g.status = Lost
		g.logger.Info("game over", zap.Int("wave", g.Level.WaveSystem.WaveNumber()), zap.Uint64("ticks", g.ticks))
		return
	}
	if g.Level.WaveEnded() {
		g.endWave()
	}
}

// StartWave запускает загруженную волну. Работает только в AwaitingStart.
func (g *Game) StartWave() bool {
	if g.status != AwaitingStart {
		return false
	}
	g.status = WaveInProgress
	g.Level.Logger().Info("wave started", zap.Int("wave", g.Level.WaveSystem.WaveNumber()))
	return true
}

func (g *Game) endWave() {
	completed := g.Level.WaveSystem.WaveNumber()
	g.Level.NextWave()
	bonus := g.cfg.Economy.WaveBonusBase + g.cfg.Economy.WaveBonusPerWave*completed
	g.Account.Credit(bonus)
	g.Level.ClearProjectiles()
	g.status = AwaitingStart
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.WaveEnded,
		Data: event.WaveEndedData{Wave: completed, Bonus: bonus},
	})

	if g.Level.AllWavesFinished() {
		g.advanceLevel()
	}
}

func (g *Game) advanceLevel() {
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.LevelCompleted,
		Data: event.LevelCompletedData{Index: g.Level.Index, Name: g.Level.Map.Name},
	})
	next := g.Level.Index + 1
	if next >= len(g.maps) {
		g.status = Won
		g.logger.Info("all levels cleared", zap.Uint64("ticks", g.ticks))
		return
	}
	if err := g.loadLevel(next); err != nil {
		// дальше играть нельзя, но это не победа
		g.err = fmt.Errorf("load level %d: %w", next, err)
		g.logger.Error("failed to load next level", zap.Error(g.err))
		g.status = Lost
	}
}

// loadLevel сбрасывает все сущности и запускает карту index с новым счётом,
// скоростью 1 и башнями из конфига.
func (g *Game) loadLevel(index int) error {
	level, err := NewLevel(index, g.maps[index], g.waves, g.lib, LevelOptions{
		LegacyArrival:   g.cfg.Simulation.LegacyArrival,
		Rng:             g.Rng,
		EventDispatcher: g.EventDispatcher,
		Logger:          g.logger,
	})
	if err != nil {
		return err
	}
	g.Level = level
	g.Account.Reset(g.cfg.Simulation.StartingMoney, g.cfg.Simulation.StartingLives)
	g.timescale = config.DefaultTimescale
	g.status = AwaitingStart

	for _, p := range g.cfg.Placements {
		if _, err := g.PlaceDefence(defs.DefenceKind(p.Kind), p.X, p.Y); err != nil {
			g.logger.Warn("configured placement skipped", zap.String("kind", p.Kind), zap.Float64("x", p.X), zap.Float64("y", p.Y), zap.Error(err))
		}
	}
	return nil
}

// Restart возвращает на первую карту между тиками.
func (g *Game) Restart() error {
	g.Stats.Reset()
	if err := g.loadLevel(0); err != nil {
		return err
	}
	g.err = nil
	return nil
}

func (g *Game) SpeedUp() {
	if g.timescale < g.cfg.Simulation.MaxTimescale {
		g.timescale++
	}
}

func (g *Game) SlowDown() {
	if g.timescale > config.DefaultTimescale {
		g.timescale--
	}
}

func (g *Game) Status() Status         { return g.status }
func (g *Game) Timescale() float64     { return g.timescale }
func (g *Game) Ticks() uint64          { return g.ticks }
func (g *Game) Library() *defs.Library { return g.lib }

// Err: причина остановки, если следующая карта не загрузилась.
func (g *Game) Err() error { return g.err }
