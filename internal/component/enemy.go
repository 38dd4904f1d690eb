// component/enemy.go
package component

import "go-shadow-defend/internal/defs"

// Enemy представляет вражескую сущность.
type Enemy struct {
	Kind       defs.EnemyKind
	Penalty    int  // lives lost when the path is completed
	Reward     int  // money gained on kill
	Targeted   bool // held by exactly one turret
	ReachedEnd bool // walked past the last waypoint
}
