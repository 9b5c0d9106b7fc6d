package geo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
)

// PathLength returns the sum of consecutive point distances along a polyline.
func PathLength(pts []Point2D) float64 {
	total := 0.0
	for i := 1; i < len(pts); i++ {
		total += pts[i-1].Distance(pts[i])
	}
	return total
}

// ToOrbLineString converts a polyline to an orb.LineString.
func ToOrbLineString(pts []Point2D) orb.LineString {
	ls := make(orb.LineString, len(pts))
	for i, p := range pts {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return ls
}

// FromOrbLineString converts an orb.LineString back to a polyline.
func FromOrbLineString(ls orb.LineString) []Point2D {
	pts := make([]Point2D, len(ls))
	for i, p := range ls {
		pts[i] = Point2D{X: p[0], Y: p[1]}
	}
	return pts
}

// SimplifyPath reduces a polyline with Douglas-Peucker at the given
// tolerance (mm). The first and last points are always preserved, and
// the simplified path is never longer than the original.
func SimplifyPath(pts []Point2D, tolerance float64) []Point2D {
	if len(pts) <= 2 {
		out := make([]Point2D, len(pts))
		copy(out, pts)
		return out
	}
	ls := ToOrbLineString(pts)
	s := simplify.DouglasPeucker(tolerance).Simplify(ls.Clone())
	simplified, ok := s.(orb.LineString)
	if !ok || len(simplified) < 2 {
		out := make([]Point2D, len(pts))
		copy(out, pts)
		return out
	}
	return FromOrbLineString(simplified)
}
