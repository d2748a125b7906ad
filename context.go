package patgen

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/pdf"
	"github.com/tdewolff/canvas/rasterizer"
	"github.com/tdewolff/canvas/svg"
)

// Context is my abstraction for Canvas (or gg)
type Context struct {
	c   *canvas.Canvas
	ctx *canvas.Context
}

func NewContext(width, height float64) *Context {
	ctx := &Context{
		c: canvas.New(width, height),
	}
	ctx.ctx = canvas.NewContext(ctx.c)
	return ctx
}

// WritePNG writes to a PNG file
func (ctx *Context) WritePNG(fname string) error {
	return ctx.c.WriteFile(fname, rasterizer.PNGWriter(3.2))
}

// WriteSVG writes to an SVG file
func (ctx *Context) WriteSVG(fname string) error {
	return ctx.c.WriteFile(fname, svg.Writer)
}

// WritePDF writes to a PDF file
func (ctx *Context) WritePDF(fname string) error {
	return ctx.c.WriteFile(fname, pdf.Writer)
}

func (ctx *Context) SetFillColor(col color.Color) {
	ctx.ctx.SetFillColor(col)
}

func (ctx *Context) SetStrokeColor(col color.Color) {
	ctx.ctx.SetStrokeColor(col)
}

// FillRect draws a filled rectangle path
func (ctx *Context) FillRect(x, y, w, h float64) {
	ctx.ctx.DrawPath(x, y, canvas.Rectangle(w, h))
}

// FillCircle draws a filled circle of radius r centered at x,y.
func (ctx *Context) FillCircle(x, y, r float64) {
	ctx.ctx.DrawPath(x, y, canvas.Circle(r))
}

// FillPolygon fills the closed polygon through pts.
func (ctx *Context) FillPolygon(pts ...Point) {
	if len(pts) < 3 {
		return
	}
	ctx.ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		ctx.ctx.LineTo(p.X, p.Y)
	}
	ctx.ctx.Close()
	ctx.ctx.Fill()
}

// StrokeSegment strokes seg with the given width.
func (ctx *Context) StrokeSegment(seg Segment, width float64) {
	ctx.ctx.SetStrokeWidth(width)
	ctx.ctx.MoveTo(seg.A.X, seg.A.Y)
	ctx.ctx.LineTo(seg.B.X, seg.B.Y)
	ctx.ctx.Stroke()
}
