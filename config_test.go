package patgen

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalized(t *testing.T) {
	tests := []struct {
		name  string
		in    Config
		check func(Config) bool
	}{
		{
			"zero spacing gets a floor",
			Config{Spacing: 0},
			func(c Config) bool { return c.Spacing == minSpacing },
		},
		{
			"negative spacing gets a floor",
			Config{Spacing: -10},
			func(c Config) bool { return c.Spacing == minSpacing },
		},
		{
			"nan spacing gets a floor",
			Config{Spacing: math.NaN()},
			func(c Config) bool { return c.Spacing == minSpacing },
		},
		{
			"inverted sizes swap",
			Config{Spacing: 20, MinSize: 12, MaxSize: 4},
			func(c Config) bool { return c.MinSize == 4 && c.MaxSize == 12 },
		},
		{
			"negative sizes clamp to zero",
			Config{Spacing: 20, MinSize: -3, MaxSize: -1},
			func(c Config) bool { return c.MinSize == 0 && c.MaxSize == 0 },
		},
		{
			"base opacity clamps",
			Config{Spacing: 20, BaseOpacity: 1.5},
			func(c Config) bool { return c.BaseOpacity == 1 },
		},
		{
			"nan seed becomes zero",
			Config{Spacing: 20, Seed: math.NaN()},
			func(c Config) bool { return c.Seed == 0 },
		},
		{
			"rotation wraps",
			Config{Spacing: 20, RotationDegrees: 540},
			func(c Config) bool { return c.RotationDegrees == 180 },
		},
		{
			"negative rotation wraps positive",
			Config{Spacing: 20, RotationDegrees: -90},
			func(c Config) bool { return c.RotationDegrees == 270 },
		},
		{
			"full turn is no turn",
			Config{Spacing: 20, RotationDegrees: 360},
			func(c Config) bool { return c.RotationDegrees == 0 },
		},
	}
	for _, tt := range tests {
		if got := tt.in.Normalized(); !tt.check(got) {
			t.Errorf("%s: got %+v", tt.name, got)
		}
	}
}

func TestParseOpacityPattern(t *testing.T) {
	for _, p := range []OpacityPattern{Uniform, Linear, Radial, Angular, Wave} {
		got, err := ParseOpacityPattern(p.String())
		if err != nil {
			t.Errorf("ParseOpacityPattern(%q): %v", p.String(), err)
		}
		if got != p {
			t.Errorf("ParseOpacityPattern(%q) = %v", p.String(), got)
		}
	}
	if _, err := ParseOpacityPattern("spiral"); err == nil {
		t.Error("ParseOpacityPattern(\"spiral\") did not fail")
	}
}

func TestParseShapeType(t *testing.T) {
	for _, s := range []ShapeType{Dots, Squares, Triangles, Lines, Plus} {
		got, err := ParseShapeType(s.String())
		if err != nil {
			t.Errorf("ParseShapeType(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseShapeType(%q) = %v", s.String(), got)
		}
	}
	if _, err := ParseShapeType("hexagons"); err == nil {
		t.Error("ParseShapeType(\"hexagons\") did not fail")
	}
}

// The watched config file stores enums by name; a round trip through JSON
// must come back identical.
func TestConfigJSON(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Pattern = Angular
	cfg.Shape = Plus
	cfg.Seed = 0.25

	data, err := json.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var got Config
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got != cfg {
		t.Errorf("round trip changed config:\n got %+v\nwant %+v", got, cfg)
	}

	var bad Config
	if err := json.Unmarshal([]byte(`{"shape":"hexagons"}`), &bad); err == nil {
		t.Error("unknown shape name did not fail")
	}
}
