// internal/component/projectile.go
package component

import "go-shadow-defend/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	TargetID types.EntityID
	Speed    float64
	Damage   int
	Resolved bool
}

// Explosive: неподвижный заряд: взрывается после задержки и бьёт всех врагов
// в радиусе.
type Explosive struct {
	Damage   int
	Radius   float64
	Delay    float64
	Timer    float64
	Resolved bool
}
