// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
)

// DefenceKind: тип покупаемой башни.
type DefenceKind string

const (
	DefenceTank       DefenceKind = "tank"
	DefenceSuperTank  DefenceKind = "supertank"
	DefenceAirSupport DefenceKind = "airsupport"
)

// Behavior определяет способ атаки башни.
type Behavior string

const (
	// BehaviorTurret держит одну цель и стреляет самонаводящимися снарядами.
	BehaviorTurret Behavior = "turret"
	// BehaviorAirDrop пролетает над картой и сбрасывает взрывчатку без цели.
	BehaviorAirDrop Behavior = "air_drop"
)

// TowerDefinition содержит все статические данные для определенного типа башни
type TowerDefinition struct {
	Kind     DefenceKind   `yaml:"kind"`
	Name     string        `yaml:"name"`
	Behavior Behavior      `yaml:"behavior"`
	Cost     int           `yaml:"cost"`
	Size     Size          `yaml:"size"`
	Combat   *CombatStats  `yaml:"combat,omitempty"`
	AirDrop  *AirDropStats `yaml:"air_drop,omitempty"`
	Visuals  Visuals       `yaml:"visuals"`
}

// CombatStats содержит параметры атаки турели
type CombatStats struct {
	Cooldown        int     `yaml:"cooldown"` // ticks between shots
	Damage          int     `yaml:"damage"`
	Radius          float64 `yaml:"radius"`
	ProjectileSpeed float64 `yaml:"projectile_speed"`
}

// AirDropStats: параметры бомбардировщика и его взрывчатки.
type AirDropStats struct {
	Speed           float64 `yaml:"speed"`
	Damage          int     `yaml:"damage"`
	Radius          float64 `yaml:"radius"`
	DetonationDelay float64 `yaml:"detonation_delay"`
	MinDropTime     int     `yaml:"min_drop_time"`
	DropWindow      int     `yaml:"drop_window"`
	EntryOffset     float64 `yaml:"entry_offset"`
}

// ProjectileDefinition описывает снаряд турели.
type ProjectileDefinition struct {
	Size    Size    `yaml:"size"`
	Visuals Visuals `yaml:"visuals"`
}

// Size: хитбокс в пикселях.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Visuals содержит параметры отрисовки
type Visuals struct {
	Color  string  `yaml:"color"` // #rrggbb
	Radius float32 `yaml:"radius"`
}

// RGBA разбирает hex-цвет, при ошибке возвращает белый.
func (v Visuals) RGBA() color.RGBA {
	var r, g, b uint8
	if _, err := fmt.Sscanf(v.Color, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return color.RGBA{r, g, b, 255}
}
