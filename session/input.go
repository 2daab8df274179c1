package session

import (
	"honnef.co/go/contour"
)

// Handle routes a pointer event to [Session.Press], [Session.Drag] or
// [Session.Release]. Events with non-finite coordinates are dropped.
func (s *Session) Handle(ev Event) {
	if ev.Pt.IsInf() || ev.Pt.IsNaN() {
		s.log.Debug("dropped pointer event", "kind", ev.Kind, "pt", ev.Pt)
		return
	}
	switch ev.Kind {
	case Press:
		s.Press(ev.Pt, ev.Alt)
	case Drag:
		s.Drag(ev.Pt)
	case Release:
		s.Release(ev.Pt)
	}
}

// Press handles a pointer press at pt.
//
// While editing, it selects the nearest control point, or with alt set,
// toggles it between sharp and smooth. Otherwise, while a boundary is still
// missing, it starts a quick shape, places or closes a sketch point, or
// starts a freehand stroke, depending on the selected tools. Presses are
// ignored once both boundaries exist.
func (s *Session) Press(pt contour.Point, alt bool) {
	if s.phase == PhaseEditing {
		i, ok := s.sketch.SelectNear(pt, s.selectRadius())
		if ok && alt {
			s.sketch.ToggleSharp(i)
			s.sketch.Deselect()
			s.log.Debug("toggled sharp", "index", i, "sharp", s.sketch.At(i).IsSharp)
		}
		return
	}
	if !s.accepting() {
		return
	}

	switch {
	case s.shape != contour.ShapeNone:
		s.sketch.Reset()
		s.anchor = s.grid().Snap(pt)
		s.preview = contour.ShapeOutline(s.shape, s.anchor, s.shapeExtent())
		s.setPhase(PhasePreviewing)

	case s.drawMode == DrawSketch:
		curve, closed := s.sketch.TryClose(pt, s.closeRadius(), s.straight, s.cfg.SmoothOptions())
		if !closed {
			if s.targetsInner() {
				s.setPhase(PhaseSketchingInner)
			} else {
				s.setPhase(PhaseSketchingOuter)
			}
			return
		}
		var snapshot []contour.ControlPoint
		if !s.targetsInner() {
			snapshot = s.sketch.Points()
		}
		s.finalize(curve, snapshot)

	default:
		s.sketch.Reset()
		s.stroke = contour.Path{pt}
		if s.targetsInner() {
			s.setPhase(PhaseDrawingInner)
		} else {
			s.setPhase(PhaseDrawingOuter)
		}
	}
}

// Drag handles pointer movement with the button held.
func (s *Session) Drag(pt contour.Point) {
	switch s.phase {
	case PhaseEditing:
		s.sketch.DragSelected(pt, s.grid())
	case PhaseDrawingInner, PhaseDrawingOuter:
		s.stroke = append(s.stroke, pt)
	}
}

// Release handles the end of a pointer gesture. It places a previewed quick
// shape, or smooths and closes a freehand stroke. Strokes of fewer than three
// points are discarded.
func (s *Session) Release(pt contour.Point) {
	switch s.phase {
	case PhaseEditing:
		s.sketch.Deselect()

	case PhasePreviewing:
		preview := s.preview
		var snapshot []contour.ControlPoint
		if !s.targetsInner() {
			snapshot = contour.ShapeSketch(s.shape, s.anchor, s.shapeExtent())
		}
		s.preview = nil
		s.shape = contour.ShapeNone
		s.finalize(preview, snapshot)

	case PhaseDrawingInner, PhaseDrawingOuter:
		stroke := s.stroke
		s.stroke = nil
		if len(stroke) <= 2 {
			s.setPhase(s.restingPhase())
			return
		}
		s.finalize(contour.SmoothOpt(stroke, s.cfg.SmoothOptions()).Close(), nil)
	}
}

// shapeExtent returns the size of the selected quick shape in model units.
func (s *Session) shapeExtent() contour.Size {
	mm := s.shape.Extent(s.settings.ShapeSize, contour.Sz(s.settings.ShapeWidth, s.settings.ShapeHeight))
	return mm.Scale(contour.PixelsPerMM)
}
