// internal/utils/math.go
package utils

import "math"

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Distance возвращает расстояние между двумя точками.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// Direction возвращает единичный вектор (dx, dy) и его длину. Для нулевого
// вектора (0, 0, 0), без NaN.
func Direction(dx, dy float64) (ux, uy, length float64) {
	length = math.Hypot(dx, dy)
	if length == 0 {
		return 0, 0, 0
	}
	return dx / length, dy / length, length
}
