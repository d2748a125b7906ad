package patgen

import (
	"encoding/json"
	"fmt"
	"math"
)

// OpacityPattern selects how opacity falls off across the canvas.
type OpacityPattern int

// Opacity patterns.
const (
	Uniform OpacityPattern = iota
	Linear
	Radial
	Angular
	Wave
)

var opacityNames = []string{"uniform", "linear", "radial", "angular", "wave"}

func (p OpacityPattern) String() string {
	if p < 0 || int(p) >= len(opacityNames) {
		return fmt.Sprintf("OpacityPattern(%d)", int(p))
	}
	return opacityNames[p]
}

// ParseOpacityPattern parses a pattern name as used by flags and config files.
func ParseOpacityPattern(name string) (OpacityPattern, error) {
	for i, n := range opacityNames {
		if n == name {
			return OpacityPattern(i), nil
		}
	}
	return Uniform, fmt.Errorf("unknown opacity pattern %q", name)
}

// MarshalJSON writes the pattern by name, keeping config files hand-editable.
func (p OpacityPattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON reads a pattern name.
func (p *OpacityPattern) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	v, err := ParseOpacityPattern(name)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ShapeType selects the primitive drawn at each grid cell.
type ShapeType int

// Shape types.
const (
	Dots ShapeType = iota
	Squares
	Triangles
	Lines
	Plus
)

var shapeNames = []string{"dots", "squares", "triangles", "lines", "plus"}

func (t ShapeType) String() string {
	if t < 0 || int(t) >= len(shapeNames) {
		return fmt.Sprintf("ShapeType(%d)", int(t))
	}
	return shapeNames[t]
}

// ParseShapeType parses a shape name as used by flags and config files.
func ParseShapeType(name string) (ShapeType, error) {
	for i, n := range shapeNames {
		if n == name {
			return ShapeType(i), nil
		}
	}
	return Dots, fmt.Errorf("unknown shape type %q", name)
}

// MarshalJSON writes the shape by name.
func (t ShapeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON reads a shape name.
func (t *ShapeType) UnmarshalJSON(b []byte) error {
	var name string
	if err := json.Unmarshal(b, &name); err != nil {
		return err
	}
	v, err := ParseShapeType(name)
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// minSpacing is the floor applied to Config.Spacing so the grid walk
// always terminates.
const minSpacing = 1

// Config holds every knob for one pattern. It is a plain comparable value:
// regenerate by passing a new Config, never by mutating one in place.
type Config struct {
	Width            float64        `json:"width"`
	Height           float64        `json:"height"`
	Spacing          float64        `json:"spacing"`
	MinSize          float64        `json:"minSize"`
	MaxSize          float64        `json:"maxSize"`
	Pattern          OpacityPattern `json:"pattern"`
	BaseOpacity      float64        `json:"baseOpacity"`
	RandomizeOpacity bool           `json:"randomizeOpacity"`
	RotationDegrees  float64        `json:"rotationDegrees"`
	Seed             float64        `json:"seed"`
	Shape            ShapeType      `json:"shape"`

	// Render-only fields, ignored by Generate.
	Color      string `json:"color"`
	Background string `json:"background"`
}

// DefaultConfig returns the 400x400 reference setup.
func DefaultConfig() Config {
	return Config{
		Width:       400,
		Height:      400,
		Spacing:     20,
		MinSize:     4,
		MaxSize:     12,
		Pattern:     Radial,
		BaseOpacity: 0.8,
		Shape:       Dots,
		Color:       "#1a1a2e",
		Background:  "#f5f5f0",
	}
}

// Normalized returns a copy with degenerate values repaired: spacing gets a
// positive floor, inverted size bounds are swapped, negative sizes and
// out-of-range opacity are clamped, a non-finite seed becomes 0 and rotation
// is wrapped into [0, 360).
func (c Config) Normalized() Config {
	if !(c.Spacing >= minSpacing) { // also catches NaN
		c.Spacing = minSpacing
	}
	if c.MaxSize < c.MinSize {
		c.MinSize, c.MaxSize = c.MaxSize, c.MinSize
	}
	if c.MinSize < 0 {
		c.MinSize = 0
	}
	if c.MaxSize < 0 {
		c.MaxSize = 0
	}
	c.BaseOpacity = Clamp(c.BaseOpacity, 0, 1)
	if math.IsNaN(c.Seed) || math.IsInf(c.Seed, 0) {
		c.Seed = 0
	}
	c.RotationDegrees = math.Mod(c.RotationDegrees, 360)
	if c.RotationDegrees < 0 {
		c.RotationDegrees += 360
	}
	return c
}
