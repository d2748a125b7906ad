package patgen

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Render draws the shapes in sequence order onto ctx: a solid background
// fill, then one primitive per shape. Opacity rides on the fill/stroke color
// alpha; rotation is applied about each shape's own center, never the canvas
// center.
func Render(ctx *Context, shapes []Shape, cfg Config) error {
	cfg = cfg.Normalized()
	bg, err := colorful.Hex(cfg.Background)
	if err != nil {
		return fmt.Errorf("bad background color %q: %v", cfg.Background, err)
	}
	fg, err := colorful.Hex(cfg.Color)
	if err != nil {
		return fmt.Errorf("bad shape color %q: %v", cfg.Color, err)
	}

	ctx.SetFillColor(withAlpha(bg, 1))
	ctx.FillRect(0, 0, cfg.Width, cfg.Height)

	for _, s := range shapes {
		col := withAlpha(fg, s.Opacity)
		ctx.SetFillColor(col)
		ctx.SetStrokeColor(col)
		drawShape(ctx, s, cfg.Shape, cfg.RotationDegrees, cfg.Height)
	}
	return nil
}

// drawShape emits one shape into the canvas. Shape geometry lives in the
// generator's top-left y-down space while the canvas origin is bottom-left
// y-up, so every point is mirrored through vecPoint; otherwise the vector
// export comes out upside down relative to the raster preview.
func drawShape(ctx *Context, s Shape, t ShapeType, deg, height float64) {
	switch t {
	case Squares:
		c := SquareCorners(s.X, s.Y, s.Size, deg)
		ctx.FillPolygon(vecPoint(c[0], height), vecPoint(c[1], height),
			vecPoint(c[2], height), vecPoint(c[3], height))
	case Triangles:
		p := TrianglePoints(s.X, s.Y, s.Size, deg)
		ctx.FillPolygon(vecPoint(p[0], height), vecPoint(p[1], height), vecPoint(p[2], height))
	case Lines:
		seg := vecSegment(LineSegment(s.X, s.Y, s.Size, deg), height)
		ctx.StrokeSegment(seg, StrokeWidth(s.Size))
	case Plus:
		segs := PlusSegments(s.X, s.Y, s.Size, deg)
		ctx.StrokeSegment(vecSegment(segs[0], height), StrokeWidth(s.Size))
		ctx.StrokeSegment(vecSegment(segs[1], height), StrokeWidth(s.Size))
	default: // Dots
		ctx.FillCircle(s.X, height-s.Y, s.Size/2)
	}
}

// vecPoint maps a point from the generator's top-left y-down space into the
// canvas's bottom-left y-up space. Applied after rotation, the mapping is a
// pure change of display convention: both backends show identical ink.
func vecPoint(p Point, height float64) Point {
	return Point{p.X, height - p.Y}
}

func vecSegment(s Segment, height float64) Segment {
	return Segment{vecPoint(s.A, height), vecPoint(s.B, height)}
}

// withAlpha converts a colorful color plus an opacity into a color.Color.
func withAlpha(c colorful.Color, alpha float64) color.Color {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(Clamp(alpha, 0, 1)*255 + 0.5)}
}
