// internal/defs/enemies.go
package defs

// EnemyKind: тип врага.
type EnemyKind string

const (
	EnemySlicer      EnemyKind = "slicer"
	EnemySuperSlicer EnemyKind = "superslicer"
	EnemyMegaSlicer  EnemyKind = "megaslicer"
	EnemyApexSlicer  EnemyKind = "apexslicer"
)

// EnemyTiers: все типы врагов от слабого к сильному.
var EnemyTiers = []EnemyKind{EnemySlicer, EnemySuperSlicer, EnemyMegaSlicer, EnemyApexSlicer}

// Offset: смещение от точки смерти родителя.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ChildRule описывает, кто появляется после смерти врага.
type ChildRule struct {
	Kind    EnemyKind `yaml:"kind"`
	Offsets []Offset  `yaml:"offsets"`
}

// EnemyDefinition содержит все статические данные для определенного типа врага
type EnemyDefinition struct {
	Kind     EnemyKind  `yaml:"kind"`
	Name     string     `yaml:"name"`
	Speed    float64    `yaml:"speed"`
	Health   int        `yaml:"health"`
	Penalty  int        `yaml:"penalty"`
	Reward   int        `yaml:"reward"`
	Size     Size       `yaml:"size"`
	Children *ChildRule `yaml:"children,omitempty"`
	Visuals  Visuals    `yaml:"visuals"`
}

// ChildCount возвращает число детей при смерти.
func (d EnemyDefinition) ChildCount() int {
	if d.Children == nil {
		return 0
	}
	return len(d.Children.Offsets)
}
