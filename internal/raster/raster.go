// Package raster renders finished drawings to PNG previews.
package raster

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"honnef.co/go/contour"
)

// Options control the preview image.
type Options struct {
	// Scale is the number of pixels per millimeter.
	Scale float64
	// LineWidth is the stroke width in pixels.
	LineWidth float64
	Background color.Color
	Foreground color.Color
}

// DefaultOptions renders black hairlines on white at four pixels per
// millimeter.
var DefaultOptions = Options{
	Scale:      4,
	LineWidth:  1.5,
	Background: color.White,
	Foreground: color.Black,
}

// maxSide bounds the image size so that a bad scale cannot exhaust memory.
const maxSide = 1 << 14

// Render draws every path of set, offset so that the set's bounds start at
// the image origin.
func Render(set contour.ExportSet, opts Options) (*image.RGBA, error) {
	if set.Bounds.IsInf() || set.Bounds.IsNaN() {
		return nil, errors.New("drawing has non-finite coordinates")
	}
	// Model units to image pixels.
	k := opts.Scale / contour.PixelsPerMM
	sz := set.Bounds.Size().Scale(k)
	w := int(math.Ceil(sz.Width))
	h := int(math.Ceil(sz.Height))
	if w <= 0 || h <= 0 {
		return nil, errors.New("empty drawing")
	}
	if w > maxSide || h > maxSide {
		return nil, errors.New("image too large, lower the scale")
	}

	ras := vector.NewRasterizer(w, h)
	origin := set.Bounds.Origin()
	for p := range set.Paths() {
		for seg := range p.Segments() {
			strokeSegment(ras, seg, origin, k, opts.LineWidth/2)
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	ras.Draw(img, img.Bounds(), image.NewUniform(opts.Foreground), image.Point{})
	return img, nil
}

// strokeSegment adds a quad of half-width hw around seg to ras.
func strokeSegment(ras *vector.Rasterizer, seg contour.Line, origin contour.Point, k, hw float64) {
	p0 := seg.P0.Sub(origin).Mul(k)
	p1 := seg.P1.Sub(origin).Mul(k)
	d := p1.Sub(p0)
	l := d.Hypot()
	if l == 0 {
		return
	}
	n := contour.Vec(-d.Y, d.X).Mul(hw / l)
	a, b := p0.Add(n), p1.Add(n)
	c, e := p1.Sub(n), p0.Sub(n)
	ras.MoveTo(float32(a.X), float32(a.Y))
	ras.LineTo(float32(b.X), float32(b.Y))
	ras.LineTo(float32(c.X), float32(c.Y))
	ras.LineTo(float32(e.X), float32(e.Y))
	ras.ClosePath()
}

// Encode renders set and writes it as PNG.
func Encode(w io.Writer, set contour.ExportSet, opts Options) error {
	img, err := Render(set, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}
