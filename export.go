package contour

import "iter"

// ExportSet is the finished geometry handed to output encoders. Encoders must
// not reorder or alter the points.
type ExportSet struct {
	Inner  Path   `json:"inner"`
	Outer  Path   `json:"outer"`
	Layers []Path `json:"layers"`
	// Bounds encloses every path, padded by a fixed margin.
	Bounds Rect `json:"bounds"`
}

// NewExportSet bundles the boundaries and layers of a drawing and computes
// their bounding box, inflated by padding on every side.
func NewExportSet(inner, outer Path, layers []Path, padding float64) ExportSet {
	set := ExportSet{
		Inner:  inner,
		Outer:  outer,
		Layers: layers,
	}
	first := true
	for p := range set.Paths() {
		if len(p) == 0 {
			continue
		}
		bb := p.BoundingBox()
		if first {
			set.Bounds = bb
			first = false
		} else {
			set.Bounds = set.Bounds.Union(bb)
		}
	}
	if !first {
		set.Bounds = set.Bounds.Inflate(padding, padding)
	}
	return set
}

// Paths yields the inner boundary, the outer boundary and then every layer,
// which is the order encoders draw them in.
func (set ExportSet) Paths() iter.Seq[Path] {
	return func(yield func(Path) bool) {
		if !yield(set.Inner) || !yield(set.Outer) {
			return
		}
		for _, l := range set.Layers {
			if !yield(l) {
				return
			}
		}
	}
}
