// internal/system/wave.go
package system

import (
	"math"

	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/entity"
	"go-shadow-defend/pkg/levelmap"

	"go.uber.org/zap"
)

// WaveState: видимая снаружи фаза волны.
type WaveState int

const (
	WaveIdle      WaveState = iota // current group finished, waiting for the next one
	WaveSpawning                   // spawn instruction active
	WaveDelaying                   // delay instruction active
	WaveExhausted                  // nothing left to run
)

func (s WaveState) String() string {
	switch s {
	case WaveSpawning:
		return "spawning"
	case WaveDelaying:
		return "delaying"
	case WaveExhausted:
		return "exhausted"
	default:
		return "idle"
	}
}

// WaveSystem выполняет инструкции волн. Инструкции с одним номером образуют
// группу и идут друг за другом.
type WaveSystem struct {
	ecs    *entity.ECS
	lib    *defs.Library
	path   []levelmap.Point
	logger *zap.Logger

	pending    []defs.WaveInstruction
	inProgress []defs.WaveInstruction

	waveNumber    int
	action        defs.WaveAction
	numberToSpawn int // -1 while delaying, 0 once the group finished
	actionDelay   int
	enemyKind     defs.EnemyKind
	groupFinished bool

	spawned      int
	spawnCounter float64 // ticks since the last spawn
	phaseCounter float64 // ticks since the current instruction started

	advancedThisTick bool
}

// NewWaveSystem копирует инструкции и загружает первую группу.
func NewWaveSystem(ecs *entity.ECS, lib *defs.Library, path []levelmap.Point, waves []defs.WaveInstruction, logger *zap.Logger) *WaveSystem {
	s := &WaveSystem{
		ecs:     ecs,
		lib:     lib,
		path:    path,
		logger:  logger,
		pending: append([]defs.WaveInstruction(nil), waves...),
	}
	s.ParseWave()
	return s
}

// ParseWave переносит следующие инструкции с одним номером в текущую группу
// и запускает первую.
func (s *WaveSystem) ParseWave() {
	if len(s.pending) > 0 {
		number := s.pending[0].WaveNumber
		n := 1
		for n < len(s.pending) && s.pending[n].WaveNumber == number {
			n++
		}
		s.inProgress = append(s.inProgress, s.pending[:n]...)
		s.pending = s.pending[n:]
	}
	s.processWave()
	s.resetCounters()
}

// processWave запускает голову группы или помечает группу завершённой.
func (s *WaveSystem) processWave() {
	if len(s.inProgress) == 0 {
		s.numberToSpawn = 0
		s.groupFinished = true
		s.action = ""
		return
	}
	head := s.inProgress[0]
	s.inProgress = s.inProgress[1:]
	s.groupFinished = false
	s.waveNumber = head.WaveNumber
	s.action = head.Action
	s.actionDelay = head.Delay
	switch head.Action {
	case defs.ActionDelay:
		s.numberToSpawn = -1
	case defs.ActionSpawn:
		s.numberToSpawn = head.Count
		s.enemyKind = head.EnemyKind
	}
}

func (s *WaveSystem) resetCounters() {
	s.spawnCounter = math.Inf(1)
	s.phaseCounter = 0
	s.spawned = 0
}

// Update создаёт не больше одного врага, проверяет завершение группы и
// увеличивает счётчики на скорость тика.
func (s *WaveSystem) Update(tc TickContext) {
	s.advancedThisTick = false

	if s.action == defs.ActionSpawn && s.spawnCounter >= float64(s.actionDelay) && s.spawned < s.numberToSpawn {
		s.spawn()
		s.spawned++
		s.spawnCounter = 0
	}

	s.CheckGroupComplete()

	s.spawnCounter += tc.Timescale
	s.phaseCounter += tc.Timescale
}

// CheckGroupComplete переходит к следующей инструкции, когда текущая
// выполнена. Не больше одного перехода за тик.
func (s *WaveSystem) CheckGroupComplete() bool {
	if s.groupFinished || s.advancedThisTick {
		return false
	}
	done := false
	switch s.action {
	case defs.ActionSpawn:
		done = s.spawned == s.numberToSpawn && s.spawnCounter >= float64(s.actionDelay)
	case defs.ActionDelay:
		done = s.phaseCounter >= float64(s.actionDelay)
	}
	if !done {
		return false
	}
	s.processWave()
	s.resetCounters()
	s.advancedThisTick = true
	return true
}

func (s *WaveSystem) spawn() {
	def, ok := s.lib.Enemy(s.enemyKind)
	if !ok {
		s.logger.Warn("unknown enemy kind in wave", zap.String("kind", string(s.enemyKind)), zap.Int("wave", s.waveNumber))
		return
	}
	start := s.path[0]
	id := SpawnEnemy(s.ecs, def, s.path, 0, start.X, start.Y)
	s.logger.Debug("enemy spawned", zap.Uint64("id", uint64(id)), zap.String("kind", string(def.Kind)), zap.Int("wave", s.waveNumber))
}

// AllWavesFinished: инструкций не осталось и последняя группа завершена.
func (s *WaveSystem) AllWavesFinished() bool {
	return len(s.pending) == 0 && len(s.inProgress) == 0 && s.groupFinished
}

// GroupFinished: все инструкции текущей группы выполнены.
func (s *WaveSystem) GroupFinished() bool {
	return s.groupFinished && len(s.inProgress) == 0
}

func (s *WaveSystem) State() WaveState {
	switch {
	case s.AllWavesFinished():
		return WaveExhausted
	case s.groupFinished:
		return WaveIdle
	case s.action == defs.ActionSpawn:
		return WaveSpawning
	default:
		return WaveDelaying
	}
}

func (s *WaveSystem) WaveNumber() int { return s.waveNumber }

// NextWaveNumber: номер следующей группы, 0 если ничего не осталось.
func (s *WaveSystem) NextWaveNumber() int {
	if len(s.pending) == 0 {
		return 0
	}
	return s.pending[0].WaveNumber
}

func (s *WaveSystem) Pending() int { return len(s.pending) }
