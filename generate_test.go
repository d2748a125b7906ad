package patgen

import (
	"math"
	"testing"
)

// zeroSource stands in for the random stream when a test needs jitter pinned
// to zero.
type zeroSource struct{}

func (zeroSource) Next() float64 { return 0 }

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 0.7331
	return cfg
}

func TestGenerateDeterminism(t *testing.T) {
	cfg := testConfig()
	cfg.Pattern = Wave
	cfg.RandomizeOpacity = true

	a := Generate(cfg)
	b := Generate(cfg)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("shape #%d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateCardinality(t *testing.T) {
	tests := []struct {
		w, h, spacing float64
		want          int
	}{
		{400, 400, 20, 361}, // the 19x19 reference grid
		{410, 400, 20, 361},
		{300, 200, 25, 77},
		{400, 400, 400, 0},
		{100, 100, 1, 9801},
	}
	for _, tt := range tests {
		cfg := testConfig()
		cfg.Width, cfg.Height, cfg.Spacing = tt.w, tt.h, tt.spacing
		if got := len(Generate(cfg)); got != tt.want {
			t.Errorf("%vx%v spacing %v: %d shapes, want %d", tt.w, tt.h, tt.spacing, got, tt.want)
		}
	}
}

func TestGenerateOpacityBounds(t *testing.T) {
	for _, pattern := range []OpacityPattern{Uniform, Linear, Radial, Angular, Wave} {
		for _, randomize := range []bool{false, true} {
			for _, base := range []float64{0, 0.05, 0.5, 1} {
				cfg := testConfig()
				cfg.Pattern = pattern
				cfg.RandomizeOpacity = randomize
				cfg.BaseOpacity = base
				for i, s := range Generate(cfg) {
					if s.Opacity < 0.1 || s.Opacity > 1.0 {
						t.Fatalf("%v randomize=%v base=%v: shape #%d opacity %v out of [0.1, 1.0]",
							pattern, randomize, base, i, s.Opacity)
					}
				}
			}
		}
	}
}

func TestGenerateUniformOpacity(t *testing.T) {
	tests := []struct {
		base float64
		want float64
	}{
		{0.8, 0.8},
		{1, 1},
		{0.05, 0.1}, // clamped at the floor
		{0, 0.1},
	}
	for _, tt := range tests {
		cfg := testConfig()
		cfg.Pattern = Uniform
		cfg.RandomizeOpacity = false
		cfg.BaseOpacity = tt.base
		for i, s := range Generate(cfg) {
			if s.Opacity != tt.want {
				t.Fatalf("base %v: shape #%d opacity = %v, want exactly %v", tt.base, i, s.Opacity, tt.want)
			}
		}
	}
}

// With the linear pattern, opacity never decreases as x grows along a row.
func TestGenerateLinearMonotonic(t *testing.T) {
	cfg := testConfig()
	cfg.Pattern = Linear
	cfg.RandomizeOpacity = false
	shapes := Generate(cfg)

	cols := gridSteps(cfg.Width, cfg.Spacing)
	rows := gridSteps(cfg.Height, cfg.Spacing)
	if len(shapes) != cols*rows {
		t.Fatalf("got %d shapes, want %d", len(shapes), cols*rows)
	}
	// Shapes are column-major: index = i*rows + j.
	for j := 0; j < rows; j++ {
		for i := 0; i+1 < cols; i++ {
			cur := shapes[i*rows+j]
			next := shapes[(i+1)*rows+j]
			if next.Opacity < cur.Opacity {
				t.Fatalf("row %d: opacity fell from %v at x=%v to %v at x=%v",
					j, cur.Opacity, cur.X, next.Opacity, next.X)
			}
		}
	}
}

// At the exact canvas center sizeRatio is 1, so with jitter pinned to zero
// the size is precisely MaxSize.
func TestGenerateCenterSize(t *testing.T) {
	cfg := testConfig().Normalized()
	shapes := generate(cfg, zeroSource{})

	found := false
	for _, s := range shapes {
		if s.X == cfg.Width/2 && s.Y == cfg.Height/2 {
			found = true
			if math.Abs(s.Size-cfg.MaxSize) > 1e-9 {
				t.Errorf("center shape size = %v, want %v", s.Size, cfg.MaxSize)
			}
		}
	}
	if !found {
		t.Fatal("no grid cell at the canvas center")
	}
}

// The wave pattern folds the seed into its phase, so two seeds must not
// produce the same opacities.
func TestGenerateWaveSeedDependence(t *testing.T) {
	cfg := testConfig()
	cfg.Pattern = Wave
	a := Generate(cfg)
	cfg.Seed = 0.1234
	b := Generate(cfg)

	same := true
	for i := range a {
		if a[i].Opacity != b[i].Opacity {
			same = false
			break
		}
	}
	if same {
		t.Error("wave opacities identical across different seeds")
	}
}

func TestGeneratorMemoizes(t *testing.T) {
	var g Generator
	cfg := testConfig()

	a := g.Regenerate(cfg)
	b := g.Regenerate(cfg)
	if len(a) == 0 || len(b) == 0 {
		t.Fatal("empty result")
	}
	if &a[0] != &b[0] {
		t.Error("identical config regenerated instead of hitting the cache")
	}

	cfg.Seed = 0.9
	c := g.Regenerate(cfg)
	if len(c) == len(a) && &c[0] == &a[0] {
		t.Error("changed config returned the cached result")
	}
}

// Degenerate configs must produce finite, non-crashing output.
func TestGenerateDegenerate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"zero spacing", func(c *Config) { c.Spacing = 0 }},
		{"negative spacing", func(c *Config) { c.Spacing = -3 }},
		{"inverted sizes", func(c *Config) { c.MinSize, c.MaxSize = 12, 4 }},
		{"nan seed", func(c *Config) { c.Seed = math.NaN() }},
		{"inf seed", func(c *Config) { c.Seed = math.Inf(1) }},
	}
	for _, tt := range tests {
		cfg := testConfig()
		tt.mod(&cfg)
		for i, s := range Generate(cfg) {
			if math.IsNaN(s.Size) || math.IsNaN(s.Opacity) || math.IsInf(s.Size, 0) {
				t.Errorf("%s: shape #%d not finite: %+v", tt.name, i, s)
			}
		}
	}
}
