package contour

import (
	"fmt"
	"math"
)

// ShapeKind identifies one of the quick shapes that can be placed with a
// single click.
type ShapeKind int

const (
	ShapeNone ShapeKind = iota
	ShapeCircle
	ShapeSquare
	ShapeEllipse
	ShapeRectangle
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNone:
		return "none"
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeEllipse:
		return "ellipse"
	case ShapeRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ParseShapeKind is the inverse of [ShapeKind.String].
func ParseShapeKind(s string) (ShapeKind, error) {
	for k := ShapeNone; k <= ShapeRectangle; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return ShapeNone, fmt.Errorf("unknown shape %q", s)
}

// Round reports whether the shape is a circle or an ellipse.
func (k ShapeKind) Round() bool {
	return k == ShapeCircle || k == ShapeEllipse
}

// Extent returns the size of the shape given the configured square size and
// rectangle dimensions. Circles and squares use the square size on both axes.
func (k ShapeKind) Extent(size float64, rect Size) Size {
	switch k {
	case ShapeCircle, ShapeSquare:
		return Sz(size, size)
	case ShapeEllipse, ShapeRectangle:
		return rect
	default:
		return Size{}
	}
}

// ShapeOutline returns the preview outline of a shape of the given size
// centered on center. Round shapes get one point every two degrees; rectangular
// shapes get their four corners. The outline is closed.
func ShapeOutline(k ShapeKind, center Point, size Size) Path {
	hw := size.Width / 2
	hh := size.Height / 2
	cx, cy := center.Splat()
	switch {
	case k.Round():
		out := make(Path, 0, 181)
		for i := 0; i <= 360; i += 2 {
			a := float64(i) * math.Pi / 180
			out = append(out, Pt(cx+math.Cos(a)*hw, cy+math.Sin(a)*hh))
		}
		return out
	case k == ShapeSquare || k == ShapeRectangle:
		r := NewRectFromCenter(center, size)
		return Path{
			Pt(r.X0, r.Y0),
			Pt(r.X1, r.Y0),
			Pt(r.X1, r.Y1),
			Pt(r.X0, r.Y1),
			Pt(r.X0, r.Y0),
		}
	default:
		return nil
	}
}

// roundMidFactor places the mid points of round shapes on the diagonals.
const roundMidFactor = 0.7

// ShapeSketch returns the editable eight-point ring of a shape: four corners
// alternating with four edge midpoints. Rectangular shapes use straight
// segments, round shapes curved ones.
func ShapeSketch(k ShapeKind, center Point, size Size) []ControlPoint {
	hw := size.Width / 2
	hh := size.Height / 2
	cx, cy := center.Splat()
	corner := func(x, y float64, st SegmentType) ControlPoint {
		return ControlPoint{X: x, Y: y, SegmentType: st, PointType: PointCorner}
	}
	mid := func(x, y float64, st SegmentType) ControlPoint {
		return ControlPoint{X: x, Y: y, SegmentType: st, PointType: PointMid}
	}
	switch {
	case k.Round():
		const st = SegmentCurve
		const f = roundMidFactor
		return []ControlPoint{
			corner(cx-hw, cy, st),
			mid(cx-hw*f, cy-hh*f, st),
			corner(cx, cy-hh, st),
			mid(cx+hw*f, cy-hh*f, st),
			corner(cx+hw, cy, st),
			mid(cx+hw*f, cy+hh*f, st),
			corner(cx, cy+hh, st),
			mid(cx-hw*f, cy+hh*f, st),
		}
	case k == ShapeSquare || k == ShapeRectangle:
		const st = SegmentStraight
		r := NewRectFromCenter(center, size)
		return []ControlPoint{
			corner(r.X0, r.Y0, st),
			mid(cx, r.Y0, st),
			corner(r.X1, r.Y0, st),
			mid(r.X1, cy, st),
			corner(r.X1, r.Y1, st),
			mid(cx, r.Y1, st),
			corner(r.X0, r.Y1, st),
			mid(r.X0, cy, st),
		}
	default:
		return nil
	}
}
