package contour

import (
	"math"
	"slices"
)

// InterpolateOptions control the sampling of [InterpolateOpt].
type InterpolateOptions struct {
	// Angles is the number of rays cast around the center, evenly spaced
	// over a full turn.
	Angles int
	// Epsilon is the cross-product magnitude below which a boundary segment
	// counts as parallel to a ray and is skipped.
	Epsilon float64
	// Smooth controls the smoothing of each layer's samples.
	Smooth SmoothOptions
}

// DefaultInterpolateOptions are the options used by [Interpolate].
var DefaultInterpolateOptions = InterpolateOptions{
	Angles:  360,
	Epsilon: 1e-4,
	Smooth:  DefaultSmoothOptions,
}

// Interpolate is like [InterpolateOpt] but uses [DefaultInterpolateOptions].
func Interpolate(inner, outer Path, center Point, numLines int) []Path {
	return InterpolateOpt(inner, outer, center, numLines, DefaultInterpolateOptions)
}

// InterpolateOpt generates numLines closed contours evenly spaced between the
// inner and outer boundaries.
//
// Rays are cast from center at opts.Angles evenly spaced angles. For every
// ray that hits both boundaries, layer l (1-based) receives the point at
// l/(numLines+1) of the way from the nearest inner hit to the nearest outer
// hit. Rays missing either boundary contribute nothing, which leaves a gap in
// every layer. The samples of each layer are smoothed with [SmoothOpt] and
// closed.
//
// Layers without samples are omitted, so the result has at most numLines
// entries. Results are only meaningful for boundaries that are star-shaped
// with respect to center.
func InterpolateOpt(inner, outer Path, center Point, numLines int, opts InterpolateOptions) []Path {
	if numLines <= 0 || len(inner) < 2 || len(outer) < 2 {
		return nil
	}
	samples := make([]Path, numLines)
	for i := range opts.Angles {
		a := float64(i) / float64(opts.Angles) * math.Pi * 2
		dir := VecFromAngle(a)
		iHit, ok := castRay(center, dir, inner, opts.Epsilon)
		if !ok {
			continue
		}
		oHit, ok := castRay(center, dir, outer, opts.Epsilon)
		if !ok {
			continue
		}
		for l := 1; l <= numLines; l++ {
			t := float64(l) / float64(numLines+1)
			samples[l-1] = append(samples[l-1], iHit.Lerp(oHit, t))
		}
	}

	layers := make([]Path, 0, numLines)
	for _, s := range samples {
		if len(s) == 0 {
			continue
		}
		layers = append(layers, SmoothOpt(s, opts.Smooth).Close())
	}
	return layers
}

// castRay returns the hit nearest to origin of the ray origin + t·dir with
// the segments of p.
func castRay(origin Point, dir Vec2, p Path, epsilon float64) (Point, bool) {
	best := math.Inf(1)
	var hit Point
	found := false
	for seg := range p.Segments() {
		t, ok := seg.IntersectRay(origin, dir, epsilon)
		if !ok {
			continue
		}
		pt := origin.Translate(dir.Mul(t))
		if d := pt.Distance(origin); d < best {
			best = d
			hit = pt
			found = true
		}
	}
	return hit, found
}

// LayerCache memoizes the result of [InterpolateOpt]. It recomputes only when
// any input differs from the previous call. The zero value is ready to use.
//
// A LayerCache is not safe for concurrent use.
type LayerCache struct {
	inner, outer Path
	center       Point
	numLines     int
	opts         InterpolateOptions
	layers       []Path
	valid        bool
}

// Layers returns InterpolateOpt(inner, outer, center, numLines, opts),
// reusing the previous result if the arguments are unchanged. The returned
// paths must not be modified.
func (c *LayerCache) Layers(inner, outer Path, center Point, numLines int, opts InterpolateOptions) []Path {
	if c.valid &&
		c.center == center &&
		c.numLines == numLines &&
		c.opts == opts &&
		slices.Equal(c.inner, inner) &&
		slices.Equal(c.outer, outer) {
		return c.layers
	}
	c.inner = inner.Clone()
	c.outer = outer.Clone()
	c.center = center
	c.numLines = numLines
	c.opts = opts
	c.layers = InterpolateOpt(inner, outer, center, numLines, opts)
	c.valid = true
	return c.layers
}

// Reset drops the memoized result.
func (c *LayerCache) Reset() {
	*c = LayerCache{}
}
