// pkg/levelmap/map.go
package levelmap

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrEmptyPath is returned when a level has no waypoints to walk.
var ErrEmptyPath = errors.New("level path has no waypoints")

// Point is a waypoint in map pixels.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Rect is an axis-aligned area in map pixels.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Contains reports whether the point lies inside the rectangle (edges included).
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Map is the static geometry of one level: the hostile route, the playable
// rectangle and the areas where nothing may be built.
type Map struct {
	Name      string  `yaml:"name"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Path      []Point `yaml:"path"`
	PathWidth float64 `yaml:"path_width"`
	Blocked   []Rect  `yaml:"blocked"`
}

// New builds a map in memory. Used by tests and tools that generate levels.
func New(name string, width, height float64, path []Point) *Map {
	return &Map{
		Name:   name,
		Width:  width,
		Height: height,
		Path:   path,
	}
}

// Load reads a level description from a YAML file.
func Load(path string) (*Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	m, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates a YAML level description.
func Parse(raw []byte) (*Map, error) {
	var m Map
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that the map can host a simulation.
func (m *Map) Validate() error {
	if len(m.Path) == 0 {
		return ErrEmptyPath
	}
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("invalid level size %gx%g", m.Width, m.Height)
	}
	if m.PathWidth < 0 {
		return fmt.Errorf("negative path width %g", m.PathWidth)
	}
	return nil
}

// Start returns the first waypoint.
func (m *Map) Start() Point {
	return m.Path[0]
}

// InBounds reports whether the point lies inside the playable rectangle.
func (m *Map) InBounds(x, y float64) bool {
	return x >= 0 && x <= m.Width && y >= 0 && y <= m.Height
}

// IsBlocked reports whether placement is disallowed at the point: inside a
// blocked area or on the walking route.
func (m *Map) IsBlocked(x, y float64) bool {
	for _, r := range m.Blocked {
		if r.Contains(x, y) {
			return true
		}
	}
	if m.PathWidth <= 0 {
		return false
	}
	half := m.PathWidth / 2
	for i := 1; i < len(m.Path); i++ {
		if distanceToSegment(x, y, m.Path[i-1], m.Path[i]) <= half {
			return true
		}
	}
	return false
}
