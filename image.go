package patgen

import (
	"fmt"
	"image"
	"os"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RenderImage rasterizes the shapes with gg. This is the quick preview path;
// vector export goes through Render and a Context instead.
func RenderImage(shapes []Shape, cfg Config) (image.Image, error) {
	cfg = cfg.Normalized()
	bg, err := colorful.Hex(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("bad background color %q: %v", cfg.Background, err)
	}
	fg, err := colorful.Hex(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("bad shape color %q: %v", cfg.Color, err)
	}

	dc := gg.NewContext(int(cfg.Width), int(cfg.Height))
	dc.SetColor(withAlpha(bg, 1))
	dc.Clear()

	for _, s := range shapes {
		dc.SetColor(withAlpha(fg, s.Opacity))
		switch cfg.Shape {
		case Squares:
			c := SquareCorners(s.X, s.Y, s.Size, cfg.RotationDegrees)
			dc.MoveTo(c[0].X, c[0].Y)
			dc.LineTo(c[1].X, c[1].Y)
			dc.LineTo(c[2].X, c[2].Y)
			dc.LineTo(c[3].X, c[3].Y)
			dc.ClosePath()
			dc.Fill()
		case Triangles:
			p := TrianglePoints(s.X, s.Y, s.Size, cfg.RotationDegrees)
			dc.MoveTo(p[0].X, p[0].Y)
			dc.LineTo(p[1].X, p[1].Y)
			dc.LineTo(p[2].X, p[2].Y)
			dc.ClosePath()
			dc.Fill()
		case Lines:
			seg := LineSegment(s.X, s.Y, s.Size, cfg.RotationDegrees)
			dc.SetLineWidth(StrokeWidth(s.Size))
			dc.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
			dc.Stroke()
		case Plus:
			segs := PlusSegments(s.X, s.Y, s.Size, cfg.RotationDegrees)
			dc.SetLineWidth(StrokeWidth(s.Size))
			for _, seg := range segs {
				dc.DrawLine(seg.A.X, seg.A.Y, seg.B.X, seg.B.Y)
				dc.Stroke()
			}
		default: // Dots
			dc.DrawCircle(s.X, s.Y, s.Size/2)
			dc.Fill()
		}
	}
	return dc.Image(), nil
}

// DecodeImages decodes previously exported pattern images for the preview
// browser. Files that cannot be read or decoded are skipped with a note, so
// the returned slices may be shorter than the input.
func DecodeImages(imageFiles []string) ([]string, []image.Image) {
	names := make([]string, 0, len(imageFiles))
	imgs := make([]image.Image, 0, len(imageFiles))
	for _, fName := range imageFiles {
		file, err := os.Open(fName)
		if err != nil {
			fmt.Println(err)
			continue
		}
		img, kind, err := image.Decode(file)
		file.Close()
		if err != nil {
			fmt.Printf("Could not decode %q into a supported image format: %v\n", fName, err)
			continue
		}
		fmt.Printf("Decoded %q as %s\n", fName, kind)
		names = append(names, Basename(fName))
		imgs = append(imgs, img)
	}
	return names, imgs
}

// VpCenter inspects the window and image geometry, and determines where the
// origin of the image should be painted into the window.
// If the image is bigger than the window, this is always (0, 0), otherwise
// the image is centered.
func VpCenter(ximg image.Image, winWidth, winHeight int) image.Point {
	xmargin, ymargin := 0, 0
	if ximg.Bounds().Dx() < winWidth {
		xmargin = (winWidth - ximg.Bounds().Dx()) / 2
	}
	if ximg.Bounds().Dy() < winHeight {
		ymargin = (winHeight - ximg.Bounds().Dy()) / 2
	}
	return image.Point{xmargin, ymargin}
}
