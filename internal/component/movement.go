// component/movement.go
package component

import "go-shadow-defend/pkg/levelmap"

// Position: центр сущности в пикселях карты
type Position struct {
	X, Y float64
}

// Velocity: путь за тик при скорости 1
type Velocity struct {
	Speed float64
}

// Path: маршрут, общий для всех врагов уровня. Waypoints только для чтения.
type Path struct {
	Waypoints    []levelmap.Point
	CurrentIndex int
}

// Facing: направление в радианах, только для отрисовки.
type Facing struct {
	Angle float64
}

// Mobility двигает башню по прямой каждый тик. Без него башня стоит на месте.
type Mobility struct {
	DX, DY float64 // unit direction
	Speed  float64
}

// Bounds: прямоугольник с центром в позиции сущности.
type Bounds struct {
	Width, Height float64
}

// Contains проверяет, лежит ли (x, y) в прямоугольнике с центром (cx, cy).
func (b Bounds) Contains(cx, cy, x, y float64) bool {
	return x >= cx-b.Width/2 && x <= cx+b.Width/2 &&
		y >= cy-b.Height/2 && y <= cy+b.Height/2
}
