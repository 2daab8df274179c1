package session

import (
	"fmt"

	"honnef.co/go/contour"
)

// Phase is the state of a drawing session.
type Phase int

const (
	// No boundary exists.
	PhaseEmpty Phase = iota
	// A freehand stroke for the inner boundary is in progress.
	PhaseDrawingInner
	// Control points for the inner boundary are being placed.
	PhaseSketchingInner
	// The inner boundary is set and the outer one is empty.
	PhaseInnerDone
	// A freehand stroke for the outer boundary is in progress.
	PhaseDrawingOuter
	// Control points for the outer boundary are being placed.
	PhaseSketchingOuter
	// A quick shape is being placed.
	PhasePreviewing
	// The control points of the outer boundary are being edited.
	PhaseEditing
	// Both boundaries are set. Layers and exports are only available in
	// this phase.
	PhaseFinalized
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseDrawingInner:
		return "drawing-inner"
	case PhaseSketchingInner:
		return "sketching-inner"
	case PhaseInnerDone:
		return "inner-done"
	case PhaseDrawingOuter:
		return "drawing-outer"
	case PhaseSketchingOuter:
		return "sketching-outer"
	case PhasePreviewing:
		return "previewing"
	case PhaseEditing:
		return "editing"
	case PhaseFinalized:
		return "finalized"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// DrawMode selects how pointer input creates a boundary when no quick shape
// is selected.
type DrawMode int

const (
	// Pointer strokes are smoothed into a closed curve.
	DrawFreehand DrawMode = iota
	// Clicks place control points; clicking near the first point closes the
	// sketch.
	DrawSketch
)

func (m DrawMode) String() string {
	switch m {
	case DrawFreehand:
		return "freehand"
	case DrawSketch:
		return "sketch"
	default:
		return fmt.Sprintf("DrawMode(%d)", int(m))
	}
}

// EventKind is the kind of a pointer event.
type EventKind int

const (
	Press EventKind = iota + 1
	Drag
	Release
)

// Event is a pointer event in model space. The input layer has already
// removed pan and zoom from Pt.
type Event struct {
	Kind EventKind
	Pt   contour.Point
	// Alt requests the alternate action. While editing, it toggles a point
	// between sharp and smooth instead of selecting it.
	Alt bool
}
