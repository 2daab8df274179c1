package contour

import (
	"fmt"
)

// Size is a width and height pair, used for the extents of quick shapes.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Scale returns the size with both dimensions multiplied by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

