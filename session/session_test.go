package session

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/contour"
	"honnef.co/go/contour/config"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := New(config.Default(), nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func circle(center contour.Point, r float64, n int) []contour.Point {
	out := make([]contour.Point, n)
	for i := range out {
		a := float64(i) / float64(n) * 2 * math.Pi
		out[i] = center.Translate(contour.VecFromAngle(a).Mul(r))
	}
	return out
}

func stroke(s *Session, pts []contour.Point) {
	s.Handle(Event{Kind: Press, Pt: pts[0]})
	for _, pt := range pts[1:] {
		s.Handle(Event{Kind: Drag, Pt: pt})
	}
	s.Handle(Event{Kind: Release, Pt: pts[len(pts)-1]})
}

func wantPhase(t *testing.T, s *Session, want Phase) {
	t.Helper()
	if got := s.Phase(); got != want {
		t.Fatalf("got phase %v, want %v", got, want)
	}
}

var (
	origin       = contour.Pt(1000, 1000)
	outerCorners = []contour.Point{
		contour.Pt(500, 500),
		contour.Pt(1500, 500),
		contour.Pt(1500, 1500),
		contour.Pt(500, 1500),
	}
)

// drawFreehandInner leaves s in PhaseInnerDone.
func drawFreehandInner(t *testing.T, s *Session) {
	t.Helper()
	stroke(s, circle(origin, 200, 24))
	wantPhase(t, s, PhaseInnerDone)
}

// sketchOuter leaves s in PhaseEditing.
func sketchOuter(t *testing.T, s *Session) {
	t.Helper()
	if err := s.SetDrawMode(DrawSketch); err != nil {
		t.Fatal(err)
	}
	for _, pt := range outerCorners {
		s.Press(pt, false)
		wantPhase(t, s, PhaseSketchingOuter)
	}
	s.Press(outerCorners[0].Translate(contour.Vec(10, 5)), false)
	wantPhase(t, s, PhaseEditing)
}

func TestFreehand(t *testing.T) {
	s := newSession(t)
	wantPhase(t, s, PhaseEmpty)

	s.Press(origin, false)
	wantPhase(t, s, PhaseDrawingInner)
	s.Release(origin)
	wantPhase(t, s, PhaseEmpty)

	drawFreehandInner(t, s)
	center, ok := s.Center()
	if !ok {
		t.Fatal("no center after finalizing the inner boundary")
	}
	if g := s.cfg.Grid(); g.Snap(center) != center {
		t.Errorf("center %v is not on the grid", center)
	}
	inner := s.Inner()
	if !inner.Closed() {
		t.Error("inner boundary is not closed")
	}
	if c, _ := inner.Centroid(); c.Distance(center) > 1e-6 {
		t.Errorf("inner centroid %v differs from center %v", c, center)
	}
	if n, want := len(inner), 24*contour.DefaultSmoothOptions.Steps+1; n != want {
		t.Errorf("got %d inner points, want %d", n, want)
	}
	if s.Layers() != nil {
		t.Error("got layers before the outer boundary exists")
	}

	stroke(s, circle(origin, 600, 40))
	wantPhase(t, s, PhaseFinalized)
	if len(s.EditRecord()) != 0 {
		t.Error("freehand outer boundary left control points")
	}
	if n := len(s.Layers()); n != s.Settings().NumLines {
		t.Errorf("got %d layers, want %d", n, s.Settings().NumLines)
	}

	if err := s.StartEditOuter(); !errors.Is(err, ErrNoEditableSketch) {
		t.Errorf("got error %v, want %v", err, ErrNoEditableSketch)
	}
	wantPhase(t, s, PhaseFinalized)

	// Further input is ignored.
	outer := s.Outer()
	stroke(s, circle(origin, 900, 40))
	wantPhase(t, s, PhaseFinalized)
	if d := cmp.Diff(outer, s.Outer()); d != "" {
		t.Error(d)
	}
}

func TestNonFiniteInput(t *testing.T) {
	s := newSession(t)
	s.Handle(Event{Kind: Press, Pt: contour.Pt(math.NaN(), 0)})
	wantPhase(t, s, PhaseEmpty)
	s.Handle(Event{Kind: Press, Pt: origin})
	s.Handle(Event{Kind: Drag, Pt: contour.Pt(0, math.Inf(1))})
	if n := len(s.Stroke()); n != 1 {
		t.Errorf("got %d stroke points, want 1", n)
	}
}

func TestSketchEdit(t *testing.T) {
	s := newSession(t)
	drawFreehandInner(t, s)
	sketchOuter(t, s)

	if n := len(s.EditRecord()); n != 4 {
		t.Fatalf("got %d recorded control points, want 4", n)
	}
	if s.Layers() != nil {
		t.Error("got layers while editing")
	}
	if _, err := s.Export(); !errors.Is(err, ErrEmptyExportTarget) {
		t.Errorf("got error %v, want %v", err, ErrEmptyExportTarget)
	}
	if err := s.SetDrawMode(DrawFreehand); !errors.Is(err, ErrEditing) {
		t.Errorf("got error %v, want %v", err, ErrEditing)
	}
	if err := s.SetShape(contour.ShapeCircle); !errors.Is(err, ErrEditing) {
		t.Errorf("got error %v, want %v", err, ErrEditing)
	}
	if err := s.SetStraightLine(true); !errors.Is(err, ErrEditing) {
		t.Errorf("got error %v, want %v", err, ErrEditing)
	}

	// Alt-press toggles without selecting.
	s.Press(contour.Pt(1510, 495), true)
	if !s.Sketch()[1].IsSharp {
		t.Error("alt-press did not make the point sharp")
	}
	if _, ok := s.SelectedPoint(); ok {
		t.Error("alt-press left a selection")
	}

	s.Handle(Event{Kind: Press, Pt: contour.Pt(1490, 1520)})
	if i, ok := s.SelectedPoint(); !ok || i != 2 {
		t.Fatalf("got selection (%d, %t), want (2, true)", i, ok)
	}
	s.Handle(Event{Kind: Drag, Pt: contour.Pt(1612, 1590)})
	s.Handle(Event{Kind: Release, Pt: contour.Pt(1612, 1590)})
	if _, ok := s.SelectedPoint(); ok {
		t.Error("release kept the selection")
	}
	moved := s.cfg.Grid().Snap(contour.Pt(1612, 1590))

	if err := s.FinishEdit(); err != nil {
		t.Fatal(err)
	}
	wantPhase(t, s, PhaseFinalized)
	rec := s.EditRecord()
	if got := rec[2].Point(); got != moved {
		t.Errorf("got dragged point %v, want %v", got, moved)
	}
	if !rec[1].IsSharp {
		t.Error("sharp point was not committed")
	}
	want := contour.SmoothSketchOpt(rec, s.cfg.SmoothOptions()).Close()
	if d := cmp.Diff(want, s.Outer()); d != "" {
		t.Error(d)
	}
	if err := s.FinishEdit(); !errors.Is(err, ErrNotEditing) {
		t.Errorf("got error %v, want %v", err, ErrNotEditing)
	}

	if err := s.StartEditOuter(); err != nil {
		t.Fatal(err)
	}
	wantPhase(t, s, PhaseEditing)
	if d := cmp.Diff(rec, s.Sketch()); d != "" {
		t.Error(d)
	}
	if err := s.FinishEdit(); err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(want, s.Outer()); d != "" {
		t.Error(d)
	}
}

func TestSketchInner(t *testing.T) {
	s := newSession(t)
	if err := s.SetDrawMode(DrawSketch); err != nil {
		t.Fatal(err)
	}
	if err := s.SetStraightLine(true); err != nil {
		t.Fatal(err)
	}
	pts := circle(origin, 300, 6)
	for _, pt := range pts {
		s.Press(pt, false)
	}
	wantPhase(t, s, PhaseSketchingInner)
	if n := len(s.Sketch()); n != 6 {
		t.Fatalf("got %d sketch points, want 6", n)
	}

	// Switching modes abandons the sketch.
	if err := s.SetDrawMode(DrawSketch); err != nil {
		t.Fatal(err)
	}
	wantPhase(t, s, PhaseEmpty)
	if n := len(s.Sketch()); n != 0 {
		t.Fatalf("got %d sketch points after switching modes, want 0", n)
	}

	for _, pt := range pts {
		s.Press(pt, false)
	}
	s.Press(pts[0], false)
	wantPhase(t, s, PhaseInnerDone)
	if n := len(s.Inner()); n != 7 {
		t.Errorf("got %d inner points, want 7", n)
	}
	if len(s.EditRecord()) != 0 {
		t.Error("inner sketch was recorded for editing")
	}
}

func TestShapes(t *testing.T) {
	s := newSession(t)
	if err := s.SetShape(contour.ShapeCircle); err != nil {
		t.Fatal(err)
	}
	s.Press(contour.Pt(1010, 990), false)
	wantPhase(t, s, PhasePreviewing)
	if len(s.Preview()) == 0 {
		t.Fatal("no preview while placing a shape")
	}
	s.Release(contour.Pt(1010, 990))
	wantPhase(t, s, PhaseInnerDone)
	if s.Shape() != contour.ShapeNone {
		t.Error("shape selection survived placement")
	}
	center, _ := s.Center()
	if anchor := s.cfg.Grid().Snap(contour.Pt(1010, 990)); center.Distance(anchor) > 1e-6 {
		t.Errorf("got center %v, want %v", center, anchor)
	}
	r := contour.MM(s.Settings().ShapeSize) / 2
	for _, pt := range s.Inner() {
		if d := pt.Distance(center); math.Abs(d-r) > 1e-6 {
			t.Fatalf("inner point %v is %v from the center, want %v", pt, d, r)
		}
	}

	if err := s.SetShapeSize(300, 400, 300); err != nil {
		t.Fatal(err)
	}
	if err := s.SetShape(contour.ShapeRectangle); err != nil {
		t.Fatal(err)
	}
	s.Press(center, false)
	s.Release(center)
	wantPhase(t, s, PhaseEditing)
	rec := s.EditRecord()
	if d := cmp.Diff(contour.ShapeSketch(contour.ShapeRectangle, center, contour.Sz(contour.MM(400), contour.MM(300))), rec); d != "" {
		t.Error(d)
	}
	if err := s.FinishEdit(); err != nil {
		t.Fatal(err)
	}
	bb := s.Outer().BoundingBox()
	if w := contour.ToMM(bb.Width()); math.Abs(w-400) > 1e-9 {
		t.Errorf("got outer width %v mm, want 400", w)
	}

	if err := s.SetShapeSize(0, 1, 1); err == nil {
		t.Error("expected an error for a zero shape size")
	}
}

func TestClearAndReset(t *testing.T) {
	s := newSession(t)
	drawFreehandInner(t, s)
	sketchOuter(t, s)
	if err := s.FinishEdit(); err != nil {
		t.Fatal(err)
	}
	inner := s.Inner()

	s.ClearOuter()
	wantPhase(t, s, PhaseInnerDone)
	if len(s.Outer()) != 0 || len(s.EditRecord()) != 0 {
		t.Error("ClearOuter kept outer state")
	}
	if d := cmp.Diff(inner, s.Inner()); d != "" {
		t.Error(d)
	}

	if err := s.SetDrawMode(DrawFreehand); err != nil {
		t.Fatal(err)
	}
	stroke(s, circle(origin, 600, 40))
	wantPhase(t, s, PhaseFinalized)

	s.Reset()
	wantPhase(t, s, PhaseEmpty)
	if _, ok := s.Center(); ok {
		t.Error("Reset kept the center")
	}
	if len(s.Inner()) != 0 || len(s.Outer()) != 0 {
		t.Error("Reset kept a boundary")
	}
	if s.DrawMode() != DrawFreehand {
		t.Error("Reset changed the draw mode")
	}
}

func TestClearOuterAbandonsGesture(t *testing.T) {
	s := newSession(t)
	s.Press(origin, false)
	s.Drag(origin.Translate(contour.Vec(50, 0)))
	wantPhase(t, s, PhaseDrawingInner)
	s.ClearOuter()
	wantPhase(t, s, PhaseEmpty)
	if n := len(s.Stroke()); n != 0 {
		t.Errorf("got %d stroke points, want 0", n)
	}

	if err := s.SetShape(contour.ShapeCircle); err != nil {
		t.Fatal(err)
	}
	s.Press(origin, false)
	wantPhase(t, s, PhasePreviewing)
	s.ClearOuter()
	wantPhase(t, s, PhaseEmpty)
	if n := len(s.Preview()); n != 0 {
		t.Errorf("got %d preview points, want 0", n)
	}

	if err := s.SetDrawMode(DrawSketch); err != nil {
		t.Fatal(err)
	}
	if err := s.SetShape(contour.ShapeNone); err != nil {
		t.Fatal(err)
	}
	s.Press(origin, false)
	wantPhase(t, s, PhaseSketchingInner)
	s.ClearOuter()
	if n := len(s.Sketch()); n != 0 {
		t.Errorf("got %d sketch points, want 0", n)
	}
}

func TestFinalizeErrors(t *testing.T) {
	s := newSession(t)
	square := contour.Path{contour.Pt(0, 0), contour.Pt(10, 0), contour.Pt(10, 10), contour.Pt(0, 0)}
	if err := s.FinalizeOuter(square, nil); !errors.Is(err, ErrNoInner) {
		t.Errorf("got error %v, want %v", err, ErrNoInner)
	}
	if err := s.FinalizeInner(contour.Path{contour.Pt(1, 1)}); !errors.Is(err, contour.ErrDegeneratePath) {
		t.Errorf("got error %v, want %v", err, contour.ErrDegeneratePath)
	}
	if err := s.FinalizeInner(square); err != nil {
		t.Fatal(err)
	}
	if err := s.FinalizeInner(square); !errors.Is(err, ErrBoundarySet) {
		t.Errorf("got error %v, want %v", err, ErrBoundarySet)
	}
	if err := s.FinalizeOuter(square, nil); err != nil {
		t.Fatal(err)
	}
	if err := s.FinalizeOuter(square, nil); !errors.Is(err, ErrBoundarySet) {
		t.Errorf("got error %v, want %v", err, ErrBoundarySet)
	}
	if err := s.StartEditOuter(); !errors.Is(err, ErrNoEditableSketch) {
		t.Errorf("got error %v, want %v", err, ErrNoEditableSketch)
	}
}

func TestSnapCenterIdempotent(t *testing.T) {
	s := newSession(t)
	drawFreehandInner(t, s)
	center, _ := s.Center()

	s2 := newSession(t)
	if err := s2.FinalizeInner(s.Inner()); err != nil {
		t.Fatal(err)
	}
	if c, _ := s2.Center(); c != center {
		t.Errorf("got center %v, want %v", c, center)
	}
}

func TestSettings(t *testing.T) {
	s := newSession(t)
	for _, n := range []int{0, 101, -3} {
		if err := s.SetNumLines(n); err == nil {
			t.Errorf("SetNumLines(%d) succeeded", n)
		}
	}
	if err := s.SetNumLines(7); err != nil {
		t.Fatal(err)
	}
	if err := s.SetZoom(0); err == nil {
		t.Error("SetZoom(0) succeeded")
	}
	if err := s.SetZoom(2); err != nil {
		t.Fatal(err)
	}
	want := config.Default().Settings
	want.NumLines = 7
	want.Zoom = 2
	if d := cmp.Diff(want, s.Settings()); d != "" {
		t.Error(d)
	}

	drawFreehandInner(t, s)
	stroke(s, circle(origin, 600, 40))
	if n := len(s.Layers()); n != 7 {
		t.Errorf("got %d layers, want 7", n)
	}
	if err := s.SetNumLines(3); err != nil {
		t.Fatal(err)
	}
	if n := len(s.Layers()); n != 3 {
		t.Errorf("got %d layers, want 3", n)
	}
}

func TestExport(t *testing.T) {
	s := newSession(t)
	if _, err := s.Export(); !errors.Is(err, ErrEmptyExportTarget) {
		t.Errorf("got error %v, want %v", err, ErrEmptyExportTarget)
	}
	drawFreehandInner(t, s)
	stroke(s, circle(origin, 600, 40))
	set, err := s.Export()
	if err != nil {
		t.Fatal(err)
	}
	if n := len(set.Layers); n != s.Settings().NumLines {
		t.Errorf("got %d layers, want %d", n, s.Settings().NumLines)
	}
	outer := set.Outer.BoundingBox()
	pad := s.cfg.ExportPadding()
	if d := cmp.Diff(outer.Inflate(pad, pad), set.Bounds); d != "" {
		t.Error(d)
	}
}

func TestSnapshotRestore(t *testing.T) {
	s := newSession(t)
	drawFreehandInner(t, s)
	sketchOuter(t, s)

	editing := s.Snapshot()
	if editing.Finalized {
		t.Error("editing snapshot reported as finalized")
	}
	if err := s.FinishEdit(); err != nil {
		t.Fatal(err)
	}
	final := s.Snapshot()

	s2 := newSession(t)
	if err := s2.Restore(final); err != nil {
		t.Fatal(err)
	}
	wantPhase(t, s2, PhaseFinalized)
	if d := cmp.Diff(final, s2.Snapshot()); d != "" {
		t.Error(d)
	}
	if err := s2.StartEditOuter(); err != nil {
		t.Error(err)
	}

	if err := s2.Restore(editing); err != nil {
		t.Fatal(err)
	}
	wantPhase(t, s2, PhaseEditing)
	if d := cmp.Diff(editing.EditRecord, s2.Sketch()); d != "" {
		t.Error(d)
	}

	bad := final
	bad.Inner = nil
	if err := s2.Restore(bad); err == nil {
		t.Fatal("restored an outer boundary without an inner one")
	}
	wantPhase(t, s2, PhaseEditing)

	bad = final
	bad.EditRecord = bad.EditRecord[:2]
	if err := s2.Restore(bad); err == nil {
		t.Fatal("restored a two point edit record")
	}

	if err := s2.Restore(Snapshot{Settings: config.Default().Settings}); err != nil {
		t.Fatal(err)
	}
	wantPhase(t, s2, PhaseEmpty)
}
