package geo

import "math"

// Rect is an axis-aligned rectangle defined by its min and max corners.
type Rect struct {
	Min Point2D `json:"min" yaml:"min"`
	Max Point2D `json:"max" yaml:"max"`
}

// NewRect creates a rectangle from two corners, normalizing the order.
func NewRect(a, b Point2D) Rect {
	return Rect{
		Min: Point2D{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		Max: Point2D{math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
	}
}

// RectFromCenter creates a rectangle centered at c with the given dimensions.
func RectFromCenter(c Point2D, width, height float64) Rect {
	return Rect{
		Min: Point2D{c.X - width/2, c.Y - height/2},
		Max: Point2D{c.X + width/2, c.Y + height/2},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	w, h := r.Width(), r.Height()
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// IsEmpty returns true if the rectangle has no positive area.
func (r Rect) IsEmpty() bool {
	return r.Width() < Epsilon || r.Height() < Epsilon
}

// Center returns the rectangle center.
func (r Rect) Center() Point2D {
	return MidPoint(r.Min, r.Max)
}

// Contains returns true if the point lies inside or on the boundary.
func (r Rect) Contains(p Point2D) bool {
	return p.X >= r.Min.X-Epsilon && p.X <= r.Max.X+Epsilon &&
		p.Y >= r.Min.Y-Epsilon && p.Y <= r.Max.Y+Epsilon
}

// ContainsRect returns true if other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// Intersects returns true if the two rectangles share interior area.
// Rectangles that merely touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.Min.X < other.Max.X-Epsilon && r.Max.X > other.Min.X+Epsilon &&
		r.Min.Y < other.Max.Y-Epsilon && r.Max.Y > other.Min.Y+Epsilon
}

// Expand returns the rectangle grown outward by d on every side.
// A negative d shrinks the rectangle.
func (r Rect) Expand(d float64) Rect {
	return Rect{
		Min: Point2D{r.Min.X - d, r.Min.Y - d},
		Max: Point2D{r.Max.X + d, r.Max.Y + d},
	}
}

// Intersect returns the overlapping region of two rectangles.
// The result is empty if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	out := Rect{
		Min: Point2D{math.Max(r.Min.X, other.Min.X), math.Max(r.Min.Y, other.Min.Y)},
		Max: Point2D{math.Min(r.Max.X, other.Max.X), math.Min(r.Max.Y, other.Max.Y)},
	}
	if out.Min.X > out.Max.X || out.Min.Y > out.Max.Y {
		return Rect{}
	}
	return out
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point2D{math.Min(r.Min.X, other.Min.X), math.Min(r.Min.Y, other.Min.Y)},
		Max: Point2D{math.Max(r.Max.X, other.Max.X), math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Corners returns the four corners in counterclockwise order starting at Min.
func (r Rect) Corners() [4]Point2D {
	return [4]Point2D{
		r.Min,
		{r.Max.X, r.Min.Y},
		r.Max,
		{r.Min.X, r.Max.Y},
	}
}

// Edges returns the four boundary edges as segments.
func (r Rect) Edges() [4]Segment {
	c := r.Corners()
	return [4]Segment{
		{c[0], c[1]},
		{c[1], c[2]},
		{c[2], c[3]},
		{c[3], c[0]},
	}
}

// ClampPoint returns the point inside r closest to p.
func (r Rect) ClampPoint(p Point2D) Point2D {
	return Point2D{
		X: math.Max(r.Min.X, math.Min(r.Max.X, p.X)),
		Y: math.Max(r.Min.Y, math.Min(r.Max.Y, p.Y)),
	}
}

// DistanceToPoint returns the distance from p to the rectangle,
// zero if p is inside.
func (r Rect) DistanceToPoint(p Point2D) float64 {
	return p.Distance(r.ClampPoint(p))
}

// GapTo returns the smallest distance between the boundaries of two
// disjoint rectangles, or 0 if they touch or overlap.
func (r Rect) GapTo(other Rect) float64 {
	dx := math.Max(0, math.Max(other.Min.X-r.Max.X, r.Min.X-other.Max.X))
	dy := math.Max(0, math.Max(other.Min.Y-r.Max.Y, r.Min.Y-other.Max.Y))
	return math.Hypot(dx, dy)
}

// BoundingRect returns the axis-aligned bounding box of the given points.
func BoundingRect(pts []Point2D) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	return r
}
