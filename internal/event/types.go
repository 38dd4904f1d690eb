package event

import (
	"go-shadow-defend/internal/defs"
	"go-shadow-defend/internal/types"
)

const (
	EnemyKilled        EventType = "EnemyKilled"        // Враг уничтожен
	EnemyLeaked        EventType = "EnemyLeaked"        // Враг дошёл до конца пути
	WaveEnded          EventType = "WaveEnded"          // Волна закончилась
	DefencePlaced      EventType = "DefencePlaced"      // Башня построена
	ExplosiveDetonated EventType = "ExplosiveDetonated" // Бомба взорвалась
	LevelCompleted     EventType = "LevelCompleted"     // Все волны уровня пройдены
)

type EnemyKilledData struct {
	ID       types.EntityID
	Kind     defs.EnemyKind
	Reward   int
	Children int
}

type EnemyLeakedData struct {
	ID      types.EntityID
	Kind    defs.EnemyKind
	Penalty int
}

type WaveEndedData struct {
	Wave  int
	Bonus int
}

type DefencePlacedData struct {
	ID   types.EntityID
	Kind defs.DefenceKind
	X, Y float64
}

type ExplosiveDetonatedData struct {
	ID   types.EntityID
	Hits int
}

type LevelCompletedData struct {
	Index int
	Name  string
}
