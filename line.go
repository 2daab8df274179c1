package contour

import (
	"math"
)

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// IntersectRay intersects the segment with the ray origin + t·dir. It returns
// the ray parameter t of the hit, which is strictly positive. The segment is
// hit inclusive of both endpoints.
//
// Segments whose direction is within epsilon of parallel to the ray (measured
// by the magnitude of the cross product of the two directions) never
// intersect.
func (l Line) IntersectRay(origin Point, dir Vec2, epsilon float64) (float64, bool) {
	seg := l.P1.Sub(l.P0)
	det := dir.Cross(seg)
	if math.Abs(det) < epsilon {
		return 0, false
	}
	rel := l.P0.Sub(origin)
	t := rel.Cross(seg) / det
	s := rel.Cross(dir) / det
	if t > 0 && s >= 0 && s <= 1 {
		return t, true
	}
	return 0, false
}
