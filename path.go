package contour

import (
	"errors"
	"iter"
	"slices"
)

// ErrDegeneratePath is returned by operations that need more points than the
// path they were given has. It arises from ordinary input, such as a click
// without a drag, and callers usually treat it as a no-op.
var ErrDegeneratePath = errors.New("degenerate path")

// Path is an ordered sequence of points. By convention a path is closed when
// its first and last points are equal. Paths with fewer than two points carry
// no geometry.
type Path []Point

// Closed reports whether p has at least two points and ends where it starts.
func (p Path) Closed() bool {
	return len(p) >= 2 && p[0] == p[len(p)-1]
}

// Close returns a copy of p with its first point appended. An empty path
// stays empty.
func (p Path) Close() Path {
	if len(p) == 0 {
		return nil
	}
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, p[0])
}

// Clone returns a copy of p.
func (p Path) Clone() Path {
	return slices.Clone(p)
}

// Centroid returns the arithmetic mean of all but the last point of p. The
// last point of a closed path duplicates the first and would otherwise count
// twice.
func (p Path) Centroid() (Point, error) {
	n := len(p) - 1
	if n < 1 {
		return Point{}, ErrDegeneratePath
	}
	var sx, sy float64
	for _, pt := range p[:n] {
		sx += pt.X
		sy += pt.Y
	}
	return Pt(sx/float64(n), sy/float64(n)), nil
}

// Translate returns a copy of p moved by v.
func (p Path) Translate(v Vec2) Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	for i, pt := range p {
		out[i] = pt.Translate(v)
	}
	return out
}

// BoundingBox returns the smallest rectangle enclosing every point of p. The
// bounding box of an empty path is the zero rectangle.
func (p Path) BoundingBox() Rect {
	if len(p) == 0 {
		return Rect{}
	}
	r := Rect{p[0].X, p[0].Y, p[0].X, p[0].Y}
	for _, pt := range p[1:] {
		r = r.UnionPoint(pt)
	}
	return r
}

// Segments returns the line segments between consecutive points of p. It
// does not add a segment from the last point back to the first.
func (p Path) Segments() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 0; i+1 < len(p); i++ {
			if !yield(Line{p[i], p[i+1]}) {
				return
			}
		}
	}
}
