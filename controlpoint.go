package contour

import (
	"fmt"
)

// SegmentType describes the edge leaving a control point toward the next
// control point of a sketch.
type SegmentType int

const (
	// The edge is a Catmull-Rom curve through the neighboring points.
	SegmentCurve SegmentType = iota + 1
	// The edge is a straight line.
	SegmentStraight
)

func (st SegmentType) String() string {
	switch st {
	case SegmentCurve:
		return "curve"
	case SegmentStraight:
		return "straight"
	default:
		return fmt.Sprintf("SegmentType(%d)", int(st))
	}
}

func (st SegmentType) MarshalText() ([]byte, error) {
	switch st {
	case SegmentCurve, SegmentStraight:
		return []byte(st.String()), nil
	default:
		return nil, fmt.Errorf("invalid segment type %d", int(st))
	}
}

func (st *SegmentType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "curve":
		*st = SegmentCurve
	case "straight":
		*st = SegmentStraight
	default:
		return fmt.Errorf("unknown segment type %q", b)
	}
	return nil
}

// PointType is an editing hint set by the quick-shape generators. It
// distinguishes primary corners from edge midpoints and has no effect on
// geometry, other than keeping dragged midpoints curve-consistent.
type PointType int

const (
	PointUnset PointType = iota
	PointCorner
	PointMid
)

func (pt PointType) String() string {
	switch pt {
	case PointUnset:
		return ""
	case PointCorner:
		return "corner"
	case PointMid:
		return "mid"
	default:
		return fmt.Sprintf("PointType(%d)", int(pt))
	}
}

func (pt PointType) MarshalText() ([]byte, error) {
	switch pt {
	case PointUnset, PointCorner, PointMid:
		return []byte(pt.String()), nil
	default:
		return nil, fmt.Errorf("invalid point type %d", int(pt))
	}
}

func (pt *PointType) UnmarshalText(b []byte) error {
	switch string(b) {
	case "":
		*pt = PointUnset
	case "corner":
		*pt = PointCorner
	case "mid":
		*pt = PointMid
	default:
		return fmt.Errorf("unknown point type %q", b)
	}
	return nil
}

// ControlPoint is a point of a sketch.
type ControlPoint struct {
	X           float64     `json:"x"`
	Y           float64     `json:"y"`
	SegmentType SegmentType `json:"segmentType"`
	// IsSharp collapses the curve tangent at this point into the direction of
	// the adjoining segment, producing a corner.
	IsSharp   bool      `json:"isSharp"`
	PointType PointType `json:"pointType,omitempty"`
}

// Point returns the position of the control point.
func (cp ControlPoint) Point() Point {
	return Point{X: cp.X, Y: cp.Y}
}

// ControlPoints converts a sequence of control points to their positions.
func ControlPoints(cps []ControlPoint) Path {
	out := make(Path, len(cps))
	for i, cp := range cps {
		out[i] = cp.Point()
	}
	return out
}
