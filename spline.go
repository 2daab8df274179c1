package contour

// SmoothOptions control the density and shape of smoothed curves.
type SmoothOptions struct {
	// Tension scales the Catmull-Rom tangents. 0.5 is the uniform
	// Catmull-Rom spline.
	Tension float64
	// Steps is the number of samples emitted per curved source segment.
	Steps int
}

// DefaultSmoothOptions are the options used by [Smooth] and [SmoothSketch].
var DefaultSmoothOptions = SmoothOptions{
	Tension: 0.5,
	Steps:   30,
}

// Smooth is like [SmoothOpt] but uses [DefaultSmoothOptions].
func Smooth(pts []Point) Path {
	return SmoothOpt(pts, DefaultSmoothOptions)
}

// SmoothOpt interpolates a closed Catmull-Rom spline through pts, treating
// pts as a cyclic sequence. Every source segment is sampled opts.Steps times,
// starting at its first point; the final segment runs from the last point
// back to the first. The result is not explicitly closed; use [Path.Close] for
// that.
//
// Fewer than three points do not define a curve and are returned unchanged,
// as are any points when opts.Steps is not positive.
func SmoothOpt(pts []Point, opts SmoothOptions) Path {
	n := len(pts)
	if n < 3 || opts.Steps <= 0 {
		return Path(pts).Clone()
	}
	out := make(Path, 0, n*opts.Steps)
	for i := range n {
		p0 := pts[(i-1+n)%n]
		p1 := pts[i]
		p2 := pts[(i+1)%n]
		p3 := pts[(i+2)%n]
		out = appendHermite(out, p0, p1, p2, p3, opts)
	}
	return out
}

// SmoothSketch is like [SmoothSketchOpt] but uses [DefaultSmoothOptions].
func SmoothSketch(cps []ControlPoint) Path {
	return SmoothSketchOpt(cps, DefaultSmoothOptions)
}

// SmoothSketchOpt converts a cyclic sequence of control points into a dense
// closed curve, honoring each point's segment type.
//
// A straight segment contributes only its start point, as a line is fully
// described by its endpoints. A curved segment is sampled like [SmoothOpt],
// except that a sharp endpoint replaces its outer neighbor as tangent source,
// which turns the tangent into the segment's own direction.
//
// Fewer than three control points are returned as plain points, as are any
// control points when opts.Steps is not positive.
func SmoothSketchOpt(cps []ControlPoint, opts SmoothOptions) Path {
	n := len(cps)
	if n < 3 || opts.Steps <= 0 {
		return ControlPoints(cps)
	}
	out := make(Path, 0, n*opts.Steps)
	for i := range n {
		c1 := cps[i]
		c2 := cps[(i+1)%n]
		if c1.SegmentType == SegmentStraight {
			out = append(out, c1.Point())
			continue
		}
		p0 := cps[(i-1+n)%n].Point()
		if c1.IsSharp {
			p0 = c1.Point()
		}
		p3 := cps[(i+2)%n].Point()
		if c2.IsSharp {
			p3 = c2.Point()
		}
		out = appendHermite(out, p0, c1.Point(), c2.Point(), p3, opts)
	}
	return out
}

// appendHermite samples the cubic Hermite segment from p1 to p2 with
// Catmull-Rom tangents derived from p0 and p3, for t in [0, 1).
func appendHermite(out Path, p0, p1, p2, p3 Point, opts SmoothOptions) Path {
	v0 := p2.Sub(p0).Mul(opts.Tension)
	v1 := p3.Sub(p1).Mul(opts.Tension)
	for k := range opts.Steps {
		t := float64(k) / float64(opts.Steps)
		t2 := t * t
		t3 := t2 * t
		x := (2*p1.X-2*p2.X+v0.X+v1.X)*t3 + (-3*p1.X+3*p2.X-2*v0.X-v1.X)*t2 + v0.X*t + p1.X
		y := (2*p1.Y-2*p2.Y+v0.Y+v1.Y)*t3 + (-3*p1.Y+3*p2.Y-2*v0.Y-v1.Y)*t2 + v0.Y*t + p1.Y
		out = append(out, Pt(x, y))
	}
	return out
}
