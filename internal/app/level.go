// internal/app/level.go
package app

import (
	"errors"
	"fmt"

	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/internal/event"
	"go-shadow-defend/internal/interfaces"
	"go-shadow-defend/internal/system"
	"go-shadow-defend/internal/utils"
	"go-shadow-defend/pkg/levelmap"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LevelOptions: общие для всех уровней сессии зависимости.
type LevelOptions struct {
	LegacyArrival   bool
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Logger          *zap.Logger
}

// Level: одна карта: сущности, расписание волн и системы, которые их двигают.
type Level struct {
	ID    uuid.UUID
	Index int
	Map   *levelmap.Map
	ECS   *entity.ECS
	lib   *defs.Library

	WaveSystem       *system.WaveSystem
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	AreaAttackSystem *system.AreaAttackSystem
	LifecycleSystem  *system.LifecycleSystem

	rng              *utils.PRNGService
	logger           *zap.Logger
	nextIsHorizontal bool // ориентация следующего бомбардировщика
}

// NewLevel проверяет карту и волны и собирает уровень с загруженной первой
// группой волны.
func NewLevel(index int, m *levelmap.Map, waves []defs.WaveInstruction, lib *defs.Library, opts LevelOptions) (*Level, error) {
	if m == nil {
		return nil, errors.New("level map is missing")
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("level %q: %w", m.Name, err)
	}
	if len(waves) == 0 {
		return nil, fmt.Errorf("level %q: %w: no instructions", m.Name, defs.ErrMalformedWave)
	}
	if err := lib.CheckWaves(waves); err != nil {
		return nil, fmt.Errorf("level %q: %w", m.Name, err)
	}

	rng := opts.Rng
	if rng == nil {
		rng = utils.NewPRNGService(0)
	}
	id := uuid.New()
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("run", id.String()), zap.String("level", m.Name))

	ecs := entity.NewECS()
	l := &Level{
		ID:               id,
		Index:            index,
		Map:              m,
		ECS:              ecs,
		lib:              lib,
		WaveSystem:       system.NewWaveSystem(ecs, lib, m.Path, waves, logger),
		MovementSystem:   system.NewMovementSystem(ecs, opts.LegacyArrival),
		CombatSystem:     system.NewCombatSystem(ecs, m, rng, lib.Projectile),
		ProjectileSystem: system.NewProjectileSystem(ecs),
		AreaAttackSystem: system.NewAreaAttackSystem(ecs, opts.EventDispatcher),
		LifecycleSystem:  system.NewLifecycleSystem(ecs, lib, m, opts.EventDispatcher, logger),
		rng:              rng,
		logger:           logger,
		nextIsHorizontal: true,
	}
	logger.Info("level loaded",
		zap.Int("index", index),
		zap.Int("waypoints", len(m.Path)),
		zap.Int("wave_lines", len(waves)),
	)
	return l, nil
}

// Tick делает один шаг идущей волны в фиксированном порядке: волны, движение,
// снаряды и взрывчатка, наведение, жизненный цикл.
func (l *Level) Tick(tc system.TickContext, account interfaces.Account) {
	l.WaveSystem.Update(tc)
	l.MovementSystem.Update(tc)
	l.MovementSystem.UpdateDefences(tc)
	l.ProjectileSystem.Update(tc)
	l.AreaAttackSystem.Update(tc)
	l.CombatSystem.Update(tc)
	l.LifecycleSystem.Update(account)
}

// IdleTick работает между волнами: бомбардировщики долетают и улетают,
// остальное стоит.
func (l *Level) IdleTick(tc system.TickContext, account interfaces.Account) {
	l.MovementSystem.UpdateDefences(tc)
	l.LifecycleSystem.Update(account)
}

// WaveEnded: текущая группа завершена и врагов на карте не осталось.
func (l *Level) WaveEnded() bool {
	return l.WaveSystem.GroupFinished() && len(l.ECS.Enemies) == 0
}

// NextWave загружает следующую группу волны.
func (l *Level) NextWave() {
	l.WaveSystem.ParseWave()
}

func (l *Level) AllWavesFinished() bool {
	return l.WaveSystem.AllWavesFinished()
}

// ClearProjectiles убирает все снаряды и взрывчатку.
func (l *Level) ClearProjectiles() {
	l.ECS.ClearProjectiles()
}

func (l *Level) Logger() *zap.Logger { return l.logger }
