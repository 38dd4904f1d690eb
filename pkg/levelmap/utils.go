// pkg/levelmap/utils.go
package levelmap

import "math"

// distanceToSegment: расстояние от точки до отрезка ab
func distanceToSegment(x, y float64, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return math.Hypot(x-a.X, y-a.Y)
	}
	t := ((x-a.X)*dx + (y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	px := a.X + t*dx
	py := a.Y + t*dy
	return math.Hypot(x-px, y-py)
}
