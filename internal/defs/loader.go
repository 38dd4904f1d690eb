// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/units.yaml
var defaultUnits []byte

// Library holds every unit definition of a game, keyed by kind.
type Library struct {
	EnemyLibrary map[EnemyKind]EnemyDefinition
	TowerLibrary map[DefenceKind]TowerDefinition
	Projectile   ProjectileDefinition
}

type unitsFile struct {
	Enemies    []EnemyDefinition    `yaml:"enemies"`
	Towers     []TowerDefinition    `yaml:"towers"`
	Projectile ProjectileDefinition `yaml:"projectile"`
}

// DefaultLibrary returns the built-in unit definitions.
func DefaultLibrary() (*Library, error) {
	lib, err := ParseLibrary(defaultUnits)
	if err != nil {
		return nil, fmt.Errorf("embedded units: %w", err)
	}
	return lib, nil
}

// LoadLibrary reads unit definitions from a YAML file. An empty path selects
// the built-in definitions.
func LoadLibrary(path string) (*Library, error) {
	if path == "" {
		return DefaultLibrary()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read unit definitions file: %w", err)
	}
	lib, err := ParseLibrary(raw)
	if err != nil {
		return nil, fmt.Errorf("unit definitions %s: %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes and validates unit definitions.
func ParseLibrary(raw []byte) (*Library, error) {
	var f unitsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal unit definitions: %w", err)
	}

	lib := &Library{
		EnemyLibrary: make(map[EnemyKind]EnemyDefinition, len(f.Enemies)),
		TowerLibrary: make(map[DefenceKind]TowerDefinition, len(f.Towers)),
		Projectile:   f.Projectile,
	}
	for _, def := range f.Enemies {
		if _, dup := lib.EnemyLibrary[def.Kind]; dup {
			return nil, fmt.Errorf("duplicate enemy kind %q", def.Kind)
		}
		lib.EnemyLibrary[def.Kind] = def
	}
	for _, def := range f.Towers {
		if _, dup := lib.TowerLibrary[def.Kind]; dup {
			return nil, fmt.Errorf("duplicate tower kind %q", def.Kind)
		}
		lib.TowerLibrary[def.Kind] = def
	}
	if err := lib.Validate(); err != nil {
		return nil, err
	}
	return lib, nil
}

// Validate checks that every tier is defined and that child rules and attack
// parameters are consistent.
func (l *Library) Validate() error {
	for _, kind := range EnemyTiers {
		if _, ok := l.EnemyLibrary[kind]; !ok {
			return fmt.Errorf("missing definition for enemy %q", kind)
		}
	}
	for kind, def := range l.EnemyLibrary {
		if def.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be positive", kind)
		}
		if def.Speed < 0 {
			return fmt.Errorf("enemy %q: negative speed", kind)
		}
		if def.Children == nil {
			continue
		}
		if def.Children.Kind == kind {
			return fmt.Errorf("enemy %q: cannot spawn itself", kind)
		}
		if _, ok := l.EnemyLibrary[def.Children.Kind]; !ok {
			return fmt.Errorf("enemy %q: unknown child kind %q", kind, def.Children.Kind)
		}
	}
	for kind, def := range l.TowerLibrary {
		switch def.Behavior {
		case BehaviorTurret:
			if def.Combat == nil {
				return fmt.Errorf("tower %q: turret without combat stats", kind)
			}
		case BehaviorAirDrop:
			if def.AirDrop == nil {
				return fmt.Errorf("tower %q: air drop without air_drop stats", kind)
			}
		default:
			return fmt.Errorf("tower %q: unknown behavior %q", kind, def.Behavior)
		}
	}
	return nil
}

// Enemy returns the definition of a hostile kind.
func (l *Library) Enemy(kind EnemyKind) (EnemyDefinition, bool) {
	def, ok := l.EnemyLibrary[kind]
	return def, ok
}

// Tower returns the definition of a defence kind.
func (l *Library) Tower(kind DefenceKind) (TowerDefinition, bool) {
	def, ok := l.TowerLibrary[kind]
	return def, ok
}

// CheckWaves reports the first spawn instruction naming an undefined hostile.
func (l *Library) CheckWaves(waves []WaveInstruction) error {
	for i, w := range waves {
		if w.Action != ActionSpawn {
			continue
		}
		if _, ok := l.EnemyLibrary[w.EnemyKind]; !ok {
			return fmt.Errorf("%w: instruction %d spawns unknown unit %q", ErrMalformedWave, i+1, w.EnemyKind)
		}
	}
	return nil
}
