// Package session implements the state machine of a contour drawing: drawing
// or sketching the inner and outer boundaries, editing the outer boundary's
// control points, and producing the interpolated layers.
//
// A Session is driven by pointer events that have already been mapped into
// model space, and by control operations such as [Session.FinishEdit]. Every
// operation runs to completion and either commits fully or leaves the session
// unchanged. A Session is not safe for concurrent use.
package session

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"honnef.co/go/contour"
	"honnef.co/go/contour/config"
)

var (
	// ErrNoEditableSketch is returned when editing is requested for an outer
	// boundary that has no retained control points, such as a freehand
	// stroke.
	ErrNoEditableSketch = errors.New("no editable sketch")
	// ErrEmptyExportTarget is returned when an export is requested before
	// the drawing is finalized.
	ErrEmptyExportTarget = errors.New("drawing is not finalized")
	// ErrEditing is returned by drawing and shape tool changes while the
	// outer boundary is being edited.
	ErrEditing = errors.New("outer boundary is being edited")
	// ErrNotEditing is returned by FinishEdit outside of editing.
	ErrNotEditing = errors.New("outer boundary is not being edited")
	// ErrBoundarySet is returned when finalizing a boundary that already
	// exists.
	ErrBoundarySet = errors.New("boundary already set")
	// ErrNoInner is returned when finalizing the outer boundary before the
	// inner one.
	ErrNoInner = errors.New("inner boundary not set")
)

// Session is the complete, mutable state of one drawing.
type Session struct {
	cfg      config.Config
	log      *slog.Logger
	settings config.Settings
	phase    Phase

	inner  contour.Path
	outer  contour.Path
	center *contour.Point

	// record is the last committed sketch of the outer boundary.
	record []contour.ControlPoint
	sketch contour.Sketch

	drawMode DrawMode
	shape    contour.ShapeKind
	straight bool

	// stroke accumulates a freehand stroke.
	stroke contour.Path
	// anchor and preview describe a quick shape being placed.
	anchor  contour.Point
	preview contour.Path

	cache contour.LayerCache
}

// New returns an empty session. A nil logger discards all output.
func New(cfg config.Config, log *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{
		cfg:      cfg,
		log:      log,
		settings: cfg.Settings,
	}, nil
}

func (s *Session) Phase() Phase                   { return s.phase }
func (s *Session) Settings() config.Settings      { return s.settings }
func (s *Session) DrawMode() DrawMode             { return s.drawMode }
func (s *Session) Shape() contour.ShapeKind       { return s.shape }
func (s *Session) StraightLine() bool             { return s.straight }
func (s *Session) Inner() contour.Path            { return s.inner.Clone() }
func (s *Session) Outer() contour.Path            { return s.outer.Clone() }
func (s *Session) Stroke() contour.Path           { return s.stroke.Clone() }
func (s *Session) Preview() contour.Path          { return s.preview.Clone() }
func (s *Session) Sketch() []contour.ControlPoint { return s.sketch.Points() }

// EditRecord returns the last committed control points of the outer
// boundary. It is empty if the outer boundary was drawn freehand.
func (s *Session) EditRecord() []contour.ControlPoint { return slices.Clone(s.record) }

// Center returns the grid-snapped centroid of the inner boundary.
func (s *Session) Center() (contour.Point, bool) {
	if s.center == nil {
		return contour.Point{}, false
	}
	return *s.center, true
}

// SelectedPoint returns the index of the control point selected for
// dragging.
func (s *Session) SelectedPoint() (int, bool) { return s.sketch.Selected() }

func (s *Session) setPhase(p Phase) {
	if p == s.phase {
		return
	}
	s.log.Debug("phase change", "from", s.phase, "to", p)
	s.phase = p
}

// restingPhase is the phase implied by the boundaries alone, outside of any
// gesture or edit.
func (s *Session) restingPhase() Phase {
	switch {
	case len(s.inner) == 0:
		return PhaseEmpty
	case len(s.outer) == 0:
		return PhaseInnerDone
	default:
		return PhaseFinalized
	}
}

// accepting reports whether pointer input may start a new boundary.
func (s *Session) accepting() bool {
	switch s.phase {
	case PhaseEmpty, PhaseInnerDone, PhaseSketchingInner, PhaseSketchingOuter:
		return true
	default:
		return false
	}
}

func (s *Session) targetsInner() bool { return len(s.inner) == 0 }

func (s *Session) grid() contour.Grid { return s.cfg.Grid() }

func (s *Session) selectRadius() float64 { return s.cfg.SelectRadius / s.settings.Zoom }
func (s *Session) closeRadius() float64  { return s.cfg.CloseRadius / s.settings.Zoom }

// FinalizeInner stores raw, a closed path, as the inner boundary. The path is
// translated so that its centroid lies on the grid, and the snapped centroid
// becomes the center of the drawing.
func (s *Session) FinalizeInner(raw contour.Path) error {
	if len(s.inner) != 0 {
		return fmt.Errorf("inner: %w", ErrBoundarySet)
	}
	snapped, center, err := contour.SnapCentroid(raw, s.grid())
	if err != nil {
		return err
	}
	s.inner = snapped
	s.center = &center
	s.sketch.Reset()
	s.log.Debug("inner boundary finalized", "points", len(snapped), "center", center)
	s.setPhase(s.restingPhase())
	return nil
}

// FinalizeOuter stores raw, a closed path, as the outer boundary. If the path
// came from control points, snapshot holds them: they are kept for later
// editing and the session enters [PhaseEditing] so that they can be adjusted
// right away. Otherwise the drawing is finalized.
func (s *Session) FinalizeOuter(raw contour.Path, snapshot []contour.ControlPoint) error {
	switch {
	case len(s.inner) == 0:
		return ErrNoInner
	case len(s.outer) != 0:
		return fmt.Errorf("outer: %w", ErrBoundarySet)
	case len(raw) == 0:
		return contour.ErrDegeneratePath
	}
	s.outer = raw.Clone()
	if len(snapshot) > 0 {
		s.record = slices.Clone(snapshot)
		s.sketch = *contour.NewSketch(snapshot)
		s.log.Debug("outer boundary placed for editing", "points", len(raw), "controls", len(snapshot))
		s.setPhase(PhaseEditing)
		return nil
	}
	s.record = nil
	s.sketch.Reset()
	s.log.Debug("outer boundary finalized", "points", len(raw))
	s.setPhase(PhaseFinalized)
	return nil
}

func (s *Session) finalize(raw contour.Path, snapshot []contour.ControlPoint) {
	var err error
	if s.targetsInner() {
		err = s.FinalizeInner(raw)
	} else {
		err = s.FinalizeOuter(raw, snapshot)
	}
	if err != nil {
		s.log.Debug("finalize dropped", "err", err)
		s.setPhase(s.restingPhase())
	}
}

// StartEditOuter reopens the control points of the outer boundary for
// editing.
func (s *Session) StartEditOuter() error {
	if s.phase == PhaseEditing {
		return nil
	}
	if s.phase != PhaseFinalized || len(s.record) == 0 {
		s.log.Warn("edit rejected", "phase", s.phase, "err", ErrNoEditableSketch)
		return ErrNoEditableSketch
	}
	s.sketch = *contour.NewSketch(s.record)
	s.setPhase(PhaseEditing)
	return nil
}

// FinishEdit smooths the edited control points into the new outer boundary
// and finalizes the drawing.
func (s *Session) FinishEdit() error {
	if s.phase != PhaseEditing {
		return ErrNotEditing
	}
	if s.sketch.Len() < 3 {
		return contour.ErrDegeneratePath
	}
	s.outer = s.sketch.Curve(s.cfg.SmoothOptions())
	s.record = s.sketch.Points()
	s.sketch.Reset()
	s.log.Debug("outer boundary committed", "points", len(s.outer), "controls", len(s.record))
	s.setPhase(PhaseFinalized)
	return nil
}

// ClearOuter discards the outer boundary and its control points. Any gesture
// in progress is abandoned along with it.
func (s *Session) ClearOuter() {
	s.outer = nil
	s.record = nil
	s.sketch.Reset()
	s.stroke = nil
	s.preview = nil
	s.setPhase(s.restingPhase())
}

// Reset discards both boundaries, the center, all control points and any
// gesture in progress. Settings and tool selection are kept.
func (s *Session) Reset() {
	s.inner = nil
	s.outer = nil
	s.center = nil
	s.record = nil
	s.sketch.Reset()
	s.stroke = nil
	s.preview = nil
	s.cache.Reset()
	s.setPhase(PhaseEmpty)
}

// SetDrawMode switches between freehand drawing and control-point
// sketching. Any unfinished sketch is discarded.
func (s *Session) SetDrawMode(m DrawMode) error {
	if s.phase == PhaseEditing {
		return ErrEditing
	}
	s.drawMode = m
	if s.phase == PhaseSketchingInner || s.phase == PhaseSketchingOuter {
		s.sketch.Reset()
		s.setPhase(s.restingPhase())
	}
	return nil
}

// SetShape selects a quick shape for the next click. The selection is
// cleared once the shape has been placed.
func (s *Session) SetShape(k contour.ShapeKind) error {
	if s.phase == PhaseEditing {
		return ErrEditing
	}
	s.shape = k
	return nil
}

// SetStraightLine sets whether newly placed control points start straight
// segments.
func (s *Session) SetStraightLine(straight bool) error {
	if s.phase == PhaseEditing {
		return ErrEditing
	}
	s.straight = straight
	return nil
}

// SetNumLines sets the number of layers.
func (s *Session) SetNumLines(n int) error {
	if n < config.MinLines || n > config.MaxLines {
		return fmt.Errorf("number of lines must be in [%d, %d], got %d", config.MinLines, config.MaxLines, n)
	}
	s.settings.NumLines = n
	return nil
}

// SetZoom sets the view scale used to size hit-test radii.
func (s *Session) SetZoom(zoom float64) error {
	if zoom <= 0 {
		return fmt.Errorf("zoom must be positive, got %g", zoom)
	}
	s.settings.Zoom = zoom
	return nil
}

// SetShapeSize sets the extents of quick shapes, in millimeters.
func (s *Session) SetShapeSize(size, width, height float64) error {
	if size <= 0 || width <= 0 || height <= 0 {
		return fmt.Errorf("shape dimensions must be positive")
	}
	s.settings.ShapeSize = size
	s.settings.ShapeWidth = width
	s.settings.ShapeHeight = height
	return nil
}

func (s *Session) centerPoint() contour.Point {
	if s.center != nil {
		return *s.center
	}
	c, _ := s.inner.Centroid()
	return c
}

// Layers returns the interpolated layers. It returns nil unless the drawing
// is finalized. The result is memoized and must not be modified.
func (s *Session) Layers() []contour.Path {
	if s.phase != PhaseFinalized {
		return nil
	}
	return s.cache.Layers(s.inner, s.outer, s.centerPoint(), s.settings.NumLines, s.cfg.InterpolateOptions())
}

// Export returns the boundaries and layers of a finalized drawing with their
// padded bounding box.
func (s *Session) Export() (contour.ExportSet, error) {
	if s.phase != PhaseFinalized || len(s.inner) == 0 || len(s.outer) == 0 {
		return contour.ExportSet{}, ErrEmptyExportTarget
	}
	layers := slices.Clone(s.Layers())
	return contour.NewExportSet(s.inner.Clone(), s.outer.Clone(), layers, s.cfg.ExportPadding()), nil
}
