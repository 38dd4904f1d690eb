// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth      = 1024
	ScreenHeight     = 768
	DefaultTimescale = 1.0

	StatusPanelHeight = 25
	BuyPanelHeight    = 100
	TextOffsetX       = 8
	TextOffsetY       = 6
	PathStrokeWidth   = 2.0
	RangeStrokeWidth  = 1.0
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	PathColor       = color.RGBA{255, 255, 0, 128}
	BlockedColor    = color.RGBA{150, 70, 70, 120}
	RangeColor      = color.RGBA{240, 240, 240, 60}
	ExplosiveColor  = color.RGBA{220, 60, 60, 255}
	PanelColor      = color.RGBA{0, 0, 0, 180}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
)

// Config: вся конфигурация игры из TOML.
type Config struct {
	Simulation SimulationConfig  `toml:"simulation"`
	Economy    EconomyConfig     `toml:"economy"`
	Levels     LevelsConfig      `toml:"levels"`
	Logging    LoggingConfig     `toml:"logging"`
	Placements []PlacementConfig `toml:"placements"`
}

type SimulationConfig struct {
	StartingMoney int     `toml:"starting_money"`
	StartingLives int     `toml:"starting_lives"`
	MaxTimescale  float64 `toml:"max_timescale"`
	LegacyArrival bool    `toml:"legacy_arrival"` // truncated per-axis waypoint test
	Seed          int64   `toml:"seed"`           // 0 = time based
	AutoStart     bool    `toml:"auto_start"`     // start every wave without waiting
}

type EconomyConfig struct {
	WaveBonusBase    int `toml:"wave_bonus_base"`
	WaveBonusPerWave int `toml:"wave_bonus_per_wave"`
}

type LevelsConfig struct {
	Maps  []string `toml:"maps"`
	Waves string   `toml:"waves"`
	Units string   `toml:"units"` // empty = built-in definitions
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// PlacementConfig: башня, которая покупается автоматически при загрузке карты.
type PlacementConfig struct {
	Kind string  `toml:"kind"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

// Load читает TOML поверх значений по умолчанию. Пустой путь или отсутствующий
// файл дают значения по умолчанию.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate отклоняет значения, с которыми симуляция не запустится.
func (c *Config) Validate() error {
	if c.Simulation.MaxTimescale < DefaultTimescale {
		return fmt.Errorf("max_timescale %g is below %g", c.Simulation.MaxTimescale, DefaultTimescale)
	}
	if c.Simulation.StartingLives <= 0 {
		return fmt.Errorf("starting_lives must be positive, got %d", c.Simulation.StartingLives)
	}
	if len(c.Levels.Maps) == 0 {
		return errors.New("no level maps configured")
	}
	if c.Levels.Waves == "" {
		return errors.New("no wave file configured")
	}
	return nil
}

func Defaults() *Config {
	return &Config{
		Simulation: SimulationConfig{
			StartingMoney: 500,
			StartingLives: 25,
			MaxTimescale:  5,
		},
		Economy: EconomyConfig{
			WaveBonusBase:    150,
			WaveBonusPerWave: 100,
		},
		Levels: LevelsConfig{
			Maps:  []string{"levels/1.yaml", "levels/2.yaml"},
			Waves: "levels/waves.txt",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
