package contour

import "math"

// PixelsPerMM is the number of model units per millimeter. Model space uses
// CSS pixels at 96 DPI so that drawings are real-world scaled.
const PixelsPerMM = 3.7795275591

// MM converts millimeters to model units.
func MM(mm float64) float64 { return mm * PixelsPerMM }

// ToMM converts model units to millimeters.
func ToMM(v float64) float64 { return v / PixelsPerMM }

// Grid is the cell size of the snapping grid, in model units. A grid with a
// non-positive cell size does not snap.
type Grid float64

// GridMM returns a grid whose cells are mm millimeters wide.
func GridMM(mm float64) Grid { return Grid(MM(mm)) }

// Snap rounds pt to the nearest grid intersection.
func (g Grid) Snap(pt Point) Point {
	step := float64(g)
	if step <= 0 {
		return pt
	}
	return Point{
		X: math.Round(pt.X/step) * step,
		Y: math.Round(pt.Y/step) * step,
	}
}

// SnapCentroid translates a closed path so that its centroid lies on the
// grid. It returns the translated path and the snapped centroid.
func SnapCentroid(p Path, g Grid) (Path, Point, error) {
	c, err := p.Centroid()
	if err != nil {
		return nil, Point{}, err
	}
	snapped := g.Snap(c)
	return p.Translate(snapped.Sub(c)), snapped, nil
}
