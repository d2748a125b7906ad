package patgen

import "math"

// Shape is one generated grid cell: a position, a final size and an opacity
// already clamped to [0.1, 1.0]. Identity is positional only; the whole slice
// is rebuilt whenever the Config changes.
type Shape struct {
	X, Y    float64
	Size    float64
	Opacity float64
}

// source is the single draw operation Generate needs from a random stream.
// Tests substitute a constant stream to pin down the size/opacity model.
type source interface {
	Next() float64
}

// Generate produces the shape grid for cfg. It is pure: the same cfg
// (including Seed) always yields the same sequence, field for field.
//
// Cells are visited column by column, x = Spacing, 2*Spacing, ... < Width,
// with y walking the same way inside each column. Per cell the random stream
// is drawn from at most twice, opacity jitter first, size jitter always, so
// the stream position stays in lockstep with the cell index.
func Generate(cfg Config) []Shape {
	cfg = cfg.Normalized()
	return generate(cfg, NewRand(cfg.Seed))
}

func generate(cfg Config, rng source) []Shape {
	cx := cfg.Width / 2
	cy := cfg.Height / 2
	maxDist := math.Hypot(cx, cy)

	// Counting cells up front (instead of a float-stepped loop) keeps the
	// cardinality exactly floor((extent-spacing)/spacing) per axis, free of
	// accumulated rounding at the canvas edge.
	cols := gridSteps(cfg.Width, cfg.Spacing)
	rows := gridSteps(cfg.Height, cfg.Spacing)
	shapes := make([]Shape, 0, cols*rows)

	for i := 1; i <= cols; i++ {
		x := cfg.Spacing * float64(i)
		for j := 1; j <= rows; j++ {
			y := cfg.Spacing * float64(j)
			dist := math.Hypot(x-cx, y-cy)

			opacity := cfg.BaseOpacity * opacityFactor(cfg, x, y, dist, maxDist)
			if cfg.RandomizeOpacity {
				opacity *= 0.5 + rng.Next()*0.5
			}

			// Not clamped: corner cells of a non-square canvas may push
			// the ratio slightly negative and the reference keeps that.
			sizeRatio := 1 - dist/maxDist
			jitter := rng.Next() * (cfg.MaxSize - cfg.MinSize) * 0.2
			size := Lerp(cfg.MinSize, cfg.MaxSize, sizeRatio) + jitter

			shapes = append(shapes, Shape{
				X:       x,
				Y:       y,
				Size:    size,
				Opacity: Clamp(opacity, 0.1, 1.0),
			})
		}
	}
	return shapes
}

// gridSteps counts the cells along one axis, floor((extent-spacing)/spacing).
func gridSteps(extent, spacing float64) int {
	if spacing <= 0 || extent <= spacing {
		return 0
	}
	return int(math.Floor((extent - spacing) / spacing))
}

// opacityFactor is the per-pattern falloff in [0, 1] (wave and angular by
// construction, linear/radial over the grid's domain).
func opacityFactor(cfg Config, x, y, dist, maxDist float64) float64 {
	cx := cfg.Width / 2
	cy := cfg.Height / 2
	switch cfg.Pattern {
	case Linear:
		return x / cfg.Width
	case Radial:
		return 1 - dist/maxDist
	case Angular:
		return (math.Atan2(y-cy, x-cx) + math.Pi) / (2 * math.Pi)
	case Wave:
		s := math.Sin((x/50 + cfg.Seed*10) * math.Pi)
		c := math.Cos((y/50 + cfg.Seed*10) * math.Pi)
		return math.Abs(s * c)
	default:
		return 1
	}
}

// Generator memoizes Generate on the Config value, so a control surface can
// call Regenerate on every slider tick and only pay for real changes.
// Not goroutine-safe; generation is a single-threaded concern here.
type Generator struct {
	last   Config
	shapes []Shape
	valid  bool
}

// Regenerate returns the shapes for cfg, reusing the previous result when cfg
// is identical to the last call's.
func (g *Generator) Regenerate(cfg Config) []Shape {
	cfg = cfg.Normalized()
	if g.valid && cfg == g.last {
		return g.shapes
	}
	g.last = cfg
	g.shapes = generate(cfg, NewRand(cfg.Seed))
	g.valid = true
	return g.shapes
}
