package patgen

import "math"

// Point is a 2D point in canvas units.
type Point struct {
	X, Y float64
}

// RotateAbout rotates p by deg degrees around c.
func (p Point) RotateAbout(c Point, deg float64) Point {
	sin, cos := math.Sincos(Radians(deg))
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{c.X + dx*cos - dy*sin, c.Y + dx*sin + dy*cos}
}

// Segment is a straight stroke between two points.
type Segment struct {
	A, B Point
}

// RotateAbout rotates both endpoints around c.
func (s Segment) RotateAbout(c Point, deg float64) Segment {
	return Segment{s.A.RotateAbout(c, deg), s.B.RotateAbout(c, deg)}
}

// Crosses returns true if the other segment crosses s.
// Basically, line intersection but looking at end points.
func (s Segment) Crosses(other Segment) bool {
	return Crosses(s.A, s.B, other.A, other.B)
}

func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// To find orientation of ordered triplet (p, q, r).
// The function returns following values
// 0 --> p, q and r are colinear
// 1 --> Clockwise
// 2 --> Counterclockwise
func orientation(p, q, r Point) int {
	val := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	if val == 0 {
		return 0 // colinear
	}
	if val > 0 {
		return 1 // clockwise
	}
	return 2 // counterclock wise
}

// Crosses returns true if line segment `p1`, `q1` and `p2`, `q2` crosses.
func Crosses(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	// General case
	if o1 != o2 && o3 != o4 {
		return true
	}
	// Colinear special cases: an endpoint lying on the other segment counts.
	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}
	return false
}

// StrokeWidth is the stroke width used for line and plus shapes of a given
// size.
func StrokeWidth(size float64) float64 {
	return size / 4
}

// SquareCorners returns the four corners of a square of side `size` centered
// at (x, y), rotated by deg around its own center. Corner order is
// counter-clockwise starting from the lower-left.
func SquareCorners(x, y, size, deg float64) [4]Point {
	c := Point{x, y}
	h := size / 2
	pts := [4]Point{
		{x - h, y - h},
		{x + h, y - h},
		{x + h, y + h},
		{x - h, y + h},
	}
	for i := range pts {
		pts[i] = pts[i].RotateAbout(c, deg)
	}
	return pts
}

// TrianglePoints returns an equilateral triangle with side `size` (height
// size*sqrt(3)/2) whose centroid sits at (x, y), apex toward -y, rotated by
// deg around the centroid.
func TrianglePoints(x, y, size, deg float64) [3]Point {
	c := Point{x, y}
	h := size * math.Sqrt(3) / 2
	pts := [3]Point{
		{x, y - 2*h/3},
		{x + size/2, y + h/3},
		{x - size/2, y + h/3},
	}
	for i := range pts {
		pts[i] = pts[i].RotateAbout(c, deg)
	}
	return pts
}

// LineSegment returns a horizontal segment of length `size` centered at
// (x, y), rotated by deg around its center.
func LineSegment(x, y, size, deg float64) Segment {
	s := Segment{Point{x - size/2, y}, Point{x + size/2, y}}
	return s.RotateAbout(Point{x, y}, deg)
}

// PlusSegments returns the two perpendicular strokes of a plus sign of span
// `size` centered at (x, y), rotated as one unit by deg around the center.
func PlusSegments(x, y, size, deg float64) [2]Segment {
	c := Point{x, y}
	h := Segment{Point{x - size/2, y}, Point{x + size/2, y}}
	v := Segment{Point{x, y - size/2}, Point{x, y + size/2}}
	return [2]Segment{h.RotateAbout(c, deg), v.RotateAbout(c, deg)}
}
