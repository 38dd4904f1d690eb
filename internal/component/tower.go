// component/tower.go
package component

import "go-shadow-defend/internal/defs"

type Tower struct {
	Kind     defs.DefenceKind
	Behavior defs.Behavior
	Cost     int
}

// AirDrop: состояние бомбардировщика, сбрасывающего взрывчатку через случайные интервалы.
type AirDrop struct {
	DropTime        float64 // ticks until the next drop may happen
	MinDropTime     int
	DropWindow      int
	Damage          int
	Radius          float64
	DetonationDelay float64
}
