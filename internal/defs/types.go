// internal/defs/types.go
package defs

// WaveAction: действие инструкции волны.
type WaveAction string

const (
	ActionSpawn WaveAction = "spawn"
	ActionDelay WaveAction = "delay"
)

// WaveInstruction: одна строка файла волн.
type WaveInstruction struct {
	WaveNumber int
	Action     WaveAction
	Count      int       // spawn only
	EnemyKind  EnemyKind // spawn only
	Delay      int       // ticks between spawns, or the delay length
}
