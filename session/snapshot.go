package session

import (
	"errors"
	"fmt"
	"slices"

	"honnef.co/go/contour"
	"honnef.co/go/contour/config"
)

// Snapshot is an immutable copy of the persistent state of a session.
type Snapshot struct {
	Inner    contour.Path
	Outer    contour.Path
	Center   *contour.Point
	Settings config.Settings
	// Finalized reports whether the drawing was finalized. A drawing whose
	// outer boundary was being edited is not finalized.
	Finalized bool
	// EditRecord holds the committed control points of the outer boundary.
	EditRecord []contour.ControlPoint
}

// Snapshot returns a copy of the persistent state. Gestures in progress are
// not part of it.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Inner:      s.inner.Clone(),
		Outer:      s.outer.Clone(),
		Settings:   s.settings,
		Finalized:  s.phase == PhaseFinalized,
		EditRecord: slices.Clone(s.record),
	}
	if s.center != nil {
		c := *s.center
		snap.Center = &c
	}
	return snap
}

// Restore replaces the entire state of the session with snap. It validates
// snap first and leaves the session untouched if that fails.
//
// The phase is derived from snap: a finalized drawing is restored as
// finalized, a drawing with an unfinalized, editable outer boundary resumes
// editing, and anything else rests in the phase its boundaries imply.
func (s *Session) Restore(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	s.Reset()
	s.inner = snap.Inner.Clone()
	s.outer = snap.Outer.Clone()
	if snap.Center != nil {
		c := *snap.Center
		s.center = &c
	}
	s.settings = snap.Settings
	s.record = slices.Clone(snap.EditRecord)

	if !snap.Finalized && len(s.outer) != 0 && len(s.record) != 0 {
		s.sketch = *contour.NewSketch(s.record)
		s.setPhase(PhaseEditing)
	} else {
		s.setPhase(s.restingPhase())
	}
	s.log.Debug("session restored", "phase", s.phase, "inner", len(s.inner), "outer", len(s.outer))
	return nil
}

// Validate reports whether snap describes a consistent session.
func (snap Snapshot) Validate() error {
	if err := snap.Settings.Validate(); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	switch {
	case len(snap.Inner) == 0 && len(snap.Outer) != 0:
		return errors.New("outer boundary without inner boundary")
	case snap.Finalized && (len(snap.Inner) == 0 || len(snap.Outer) == 0):
		return errors.New("finalized drawing needs both boundaries")
	}
	for i, cp := range snap.EditRecord {
		if cp.SegmentType != contour.SegmentCurve && cp.SegmentType != contour.SegmentStraight {
			return fmt.Errorf("control point %d: invalid segment type %d", i, int(cp.SegmentType))
		}
	}
	if len(snap.EditRecord) > 0 && len(snap.EditRecord) < 3 {
		return fmt.Errorf("edit record has %d points, need at least 3", len(snap.EditRecord))
	}
	return nil
}
