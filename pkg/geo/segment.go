package geo

import "math"

// Segment is a directed straight segment from A to B.
type Segment struct {
	A Point2D `json:"a" yaml:"a"`
	B Point2D `json:"b" yaml:"b"`
}

// Seg is a shorthand constructor for Segment.
func Seg(a, b Point2D) Segment {
	return Segment{A: a, B: b}
}

// Length returns the segment length.
func (s Segment) Length() float64 {
	return s.A.Distance(s.B)
}

// Midpoint returns the segment midpoint.
func (s Segment) Midpoint() Point2D {
	return MidPoint(s.A, s.B)
}

// Bounds returns the axis-aligned bounding box of the segment.
func (s Segment) Bounds() Rect {
	return NewRect(s.A, s.B)
}

// ClosestPoint returns the point on the segment closest to p.
func (s Segment) ClosestPoint(p Point2D) Point2D {
	d := s.B.Sub(s.A)
	lenSq := d.Dot(d)
	if lenSq < Epsilon {
		// Degenerate segment: both endpoints coincide.
		return s.A
	}
	t := math.Max(0, math.Min(1, p.Sub(s.A).Dot(d)/lenSq))
	return s.A.Lerp(s.B, t)
}

// DistanceToPoint returns the distance from p to the segment.
func (s Segment) DistanceToPoint(p Point2D) float64 {
	return p.Distance(s.ClosestPoint(p))
}

// DistanceToSegment returns the minimum distance between two segments.
// Intersecting segments have distance zero.
func (s Segment) DistanceToSegment(t Segment) float64 {
	if s.Intersects(t) {
		return 0
	}
	d := s.DistanceToPoint(t.A)
	if v := s.DistanceToPoint(t.B); v < d {
		d = v
	}
	if v := t.DistanceToPoint(s.A); v < d {
		d = v
	}
	if v := t.DistanceToPoint(s.B); v < d {
		d = v
	}
	return d
}

// Intersects returns true if the two segments share at least one point.
// Collinear overlapping segments intersect.
func (s Segment) Intersects(t Segment) bool {
	d1 := direction(t.A, t.B, s.A)
	d2 := direction(t.A, t.B, s.B)
	d3 := direction(s.A, s.B, t.A)
	d4 := direction(s.A, s.B, t.B)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if math.Abs(d1) < Epsilon && onSegment(t.A, t.B, s.A) {
		return true
	}
	if math.Abs(d2) < Epsilon && onSegment(t.A, t.B, s.B) {
		return true
	}
	if math.Abs(d3) < Epsilon && onSegment(s.A, s.B, t.A) {
		return true
	}
	if math.Abs(d4) < Epsilon && onSegment(s.A, s.B, t.B) {
		return true
	}
	return false
}

// IntersectionPoint returns the intersection point of the two segments,
// and false if they do not intersect or are collinear.
func (s Segment) IntersectionPoint(t Segment) (Point2D, bool) {
	r := s.B.Sub(s.A)
	q := t.B.Sub(t.A)
	denom := r.Cross(q)
	if math.Abs(denom) < Epsilon {
		return Point2D{}, false
	}
	diff := t.A.Sub(s.A)
	u := diff.Cross(q) / denom
	v := diff.Cross(r) / denom
	if u < -Epsilon || u > 1+Epsilon || v < -Epsilon || v > 1+Epsilon {
		return Point2D{}, false
	}
	return s.A.Add(r.Scale(u)), true
}

// IntersectsRect returns true if any part of the segment touches the
// rectangle, including a fully contained segment.
func (s Segment) IntersectsRect(r Rect) bool {
	if r.Contains(s.A) || r.Contains(s.B) {
		return true
	}
	for _, e := range r.Edges() {
		if s.Intersects(e) {
			return true
		}
	}
	return false
}

// CrossesRect returns true if the segment crosses the rectangle interior.
// Touching the boundary from outside does not count.
func (s Segment) CrossesRect(r Rect) bool {
	inner := r.Expand(-Epsilon * 10)
	if inner.IsEmpty() {
		return false
	}
	if inner.Contains(s.A) || inner.Contains(s.B) {
		return true
	}
	mid := s.Midpoint()
	if inner.Contains(mid) {
		return true
	}
	crossings := 0
	for _, e := range inner.Edges() {
		if s.Intersects(e) {
			crossings++
		}
	}
	return crossings >= 2
}

// direction returns the orientation of c relative to the line a→b.
func direction(a, b, c Point2D) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}

// onSegment reports whether c (known collinear with a→b) lies on the segment.
func onSegment(a, b, c Point2D) bool {
	return math.Min(a.X, b.X)-Epsilon <= c.X && c.X <= math.Max(a.X, b.X)+Epsilon &&
		math.Min(a.Y, b.Y)-Epsilon <= c.Y && c.Y <= math.Max(a.Y, b.Y)+Epsilon
}
