// component/combat.go
package component

import "go-shadow-defend/internal/types"

// Health: компонент здоровья
type Health struct {
	Value int
}

// Combat: цикл атаки башни.
type Combat struct {
	Cooldown        float64 // ticks that must pass between shots
	Damage          int
	Radius          float64
	ProjectileSpeed float64
	SinceLastAttack float64        // ticks since the last shot or drop
	TargetID        types.EntityID // weak reference, check liveness before use
}
