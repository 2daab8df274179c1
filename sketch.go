package contour

import (
	"slices"
)

// Sketch is an editable, cyclic sequence of control points. The zero value
// is an empty sketch with no selection.
type Sketch struct {
	points   []ControlPoint
	selected int // index+1; 0 means no selection
}

// NewSketch returns a sketch holding a copy of cps.
func NewSketch(cps []ControlPoint) *Sketch {
	return &Sketch{points: slices.Clone(cps)}
}

// Len returns the number of control points.
func (s *Sketch) Len() int { return len(s.points) }

// Points returns a copy of the control points.
func (s *Sketch) Points() []ControlPoint { return slices.Clone(s.points) }

// At returns the control point at index i.
func (s *Sketch) At(i int) ControlPoint { return s.points[i] }

// Reset removes all points and the selection.
func (s *Sketch) Reset() {
	s.points = nil
	s.selected = 0
}

// Add appends a control point at pt. The segment leaving it is straight if
// straight is set and curved otherwise.
func (s *Sketch) Add(pt Point, straight bool) {
	st := SegmentCurve
	if straight {
		st = SegmentStraight
	}
	s.points = append(s.points, ControlPoint{X: pt.X, Y: pt.Y, SegmentType: st})
}

// TryClose closes the sketch if it has more than two points and pt lies
// within radius of the first point. A closed sketch is smoothed with
// [SmoothSketchOpt] and returned as a closed path; the sketch itself is left
// untouched so that the caller can snapshot it. Otherwise, a point is added as
// by [Sketch.Add].
func (s *Sketch) TryClose(pt Point, radius float64, straight bool, opts SmoothOptions) (Path, bool) {
	if len(s.points) > 2 && pt.Distance(s.points[0].Point()) < radius {
		return s.Curve(opts), true
	}
	s.Add(pt, straight)
	return nil, false
}

// Curve returns the closed, smoothed curve of the sketch.
func (s *Sketch) Curve(opts SmoothOptions) Path {
	return SmoothSketchOpt(s.points, opts).Close()
}

// SelectNear selects the control point nearest to pt that lies within
// radius. If there is none, the selection is cleared.
func (s *Sketch) SelectNear(pt Point, radius float64) (int, bool) {
	s.selected = 0
	best := radius
	for i, cp := range s.points {
		if d := pt.Distance(cp.Point()); d < best {
			best = d
			s.selected = i + 1
		}
	}
	return s.Selected()
}

// Selected returns the index of the selected point.
func (s *Sketch) Selected() (int, bool) {
	return s.selected - 1, s.selected != 0
}

// Deselect clears the selection.
func (s *Sketch) Deselect() { s.selected = 0 }

// ToggleSharp flips the sharp flag of the point at index i. Making a point
// smooth also makes both of its adjoining segments curves, since a smooth
// point between straight segments would look no different.
func (s *Sketch) ToggleSharp(i int) {
	if i < 0 || i >= len(s.points) {
		return
	}
	cp := &s.points[i]
	cp.IsSharp = !cp.IsSharp
	if !cp.IsSharp {
		cp.SegmentType = SegmentCurve
		s.points[s.prev(i)].SegmentType = SegmentCurve
	}
}

// DragSelected moves the selected point to pt snapped to g. Moving a point
// clears its sharp flag. Dragging an edge midpoint makes both of its
// adjoining segments curves. DragSelected reports whether a point was moved.
func (s *Sketch) DragSelected(pt Point, g Grid) bool {
	i, ok := s.Selected()
	if !ok {
		return false
	}
	pt = g.Snap(pt)
	cp := &s.points[i]
	cp.X, cp.Y = pt.X, pt.Y
	cp.IsSharp = false
	if cp.PointType == PointMid {
		cp.SegmentType = SegmentCurve
		s.points[s.prev(i)].SegmentType = SegmentCurve
	}
	return true
}

func (s *Sketch) prev(i int) int {
	n := len(s.points)
	return (i - 1 + n) % n
}
