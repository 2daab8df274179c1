// Package config holds the tunable constants of contour drawing sessions and
// loads them from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/contour"
)

// ErrUnknownFormat is returned by [Open] for files that are neither TOML nor
// YAML.
var ErrUnknownFormat = errors.New("unknown config format")

// Settings are the user-adjustable drawing settings. They are saved with
// every project.
type Settings struct {
	// NumLines is the number of layers between the boundaries.
	NumLines int `toml:"num_lines" yaml:"num_lines"`
	// ShapeSize is the diameter of circles and side of squares, in mm.
	ShapeSize float64 `toml:"shape_size" yaml:"shape_size"`
	// ShapeWidth and ShapeHeight are the extents of ellipses and
	// rectangles, in mm.
	ShapeWidth  float64 `toml:"shape_width" yaml:"shape_width"`
	ShapeHeight float64 `toml:"shape_height" yaml:"shape_height"`
	// Zoom is the current view scale. Hit-test radii are divided by it.
	Zoom     float64 `toml:"zoom" yaml:"zoom"`
	ShowGrid bool    `toml:"show_grid" yaml:"show_grid"`
}

// MinLines and MaxLines bound Settings.NumLines.
const (
	MinLines = 1
	MaxLines = 100
)

// Config holds every constant of a drawing session.
type Config struct {
	// GridSizeMM is the snapping grid cell size.
	GridSizeMM float64 `toml:"grid_size_mm" yaml:"grid_size_mm"`
	// CanvasSizeMM is the side of the drawing area.
	CanvasSizeMM float64 `toml:"canvas_size_mm" yaml:"canvas_size_mm"`
	// AngleSamples is the number of rays cast by the interpolator.
	AngleSamples int `toml:"angle_samples" yaml:"angle_samples"`
	// SplineSteps is the number of samples per curved segment.
	SplineSteps int     `toml:"spline_steps" yaml:"spline_steps"`
	Tension     float64 `toml:"tension" yaml:"tension"`
	// ParallelEpsilon is the threshold below which a ray and a boundary
	// segment count as parallel.
	ParallelEpsilon float64 `toml:"parallel_epsilon" yaml:"parallel_epsilon"`
	// SelectRadius and CloseRadius are hit-test radii in screen pixels.
	SelectRadius float64 `toml:"select_radius" yaml:"select_radius"`
	CloseRadius  float64 `toml:"close_radius" yaml:"close_radius"`
	// ExportPaddingMM is the margin added around exported drawings.
	ExportPaddingMM float64 `toml:"export_padding_mm" yaml:"export_padding_mm"`

	Settings Settings `toml:"settings" yaml:"settings"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		GridSizeMM:      25,
		CanvasSizeMM:    2100,
		AngleSamples:    contour.DefaultInterpolateOptions.Angles,
		SplineSteps:     contour.DefaultSmoothOptions.Steps,
		Tension:         contour.DefaultSmoothOptions.Tension,
		ParallelEpsilon: contour.DefaultInterpolateOptions.Epsilon,
		SelectRadius:    10,
		CloseRadius:     15,
		ExportPaddingMM: 5,
		Settings: Settings{
			NumLines:    35,
			ShapeSize:   100,
			ShapeWidth:  150,
			ShapeHeight: 100,
			Zoom:        0.15,
			ShowGrid:    true,
		},
	}
}

// Validate reports the first setting that cannot be used.
func (cfg Config) Validate() error {
	switch {
	case cfg.AngleSamples <= 0:
		return fmt.Errorf("angle_samples must be positive, got %d", cfg.AngleSamples)
	case cfg.SplineSteps <= 0:
		return fmt.Errorf("spline_steps must be positive, got %d", cfg.SplineSteps)
	case cfg.ParallelEpsilon < 0:
		return fmt.Errorf("parallel_epsilon must not be negative, got %g", cfg.ParallelEpsilon)
	case cfg.GridSizeMM < 0:
		return fmt.Errorf("grid_size_mm must not be negative, got %g", cfg.GridSizeMM)
	case cfg.SelectRadius <= 0 || cfg.CloseRadius <= 0:
		return fmt.Errorf("hit radii must be positive")
	}
	return cfg.Settings.Validate()
}

// Validate reports the first setting that cannot be used.
func (s Settings) Validate() error {
	switch {
	case s.NumLines < MinLines || s.NumLines > MaxLines:
		return fmt.Errorf("num_lines must be in [%d, %d], got %d", MinLines, MaxLines, s.NumLines)
	case s.Zoom <= 0:
		return fmt.Errorf("zoom must be positive, got %g", s.Zoom)
	case s.ShapeSize <= 0 || s.ShapeWidth <= 0 || s.ShapeHeight <= 0:
		return fmt.Errorf("shape dimensions must be positive")
	}
	return nil
}

// Grid returns the snapping grid.
func (cfg Config) Grid() contour.Grid {
	return contour.GridMM(cfg.GridSizeMM)
}

func (cfg Config) SmoothOptions() contour.SmoothOptions {
	return contour.SmoothOptions{
		Tension: cfg.Tension,
		Steps:   cfg.SplineSteps,
	}
}

func (cfg Config) InterpolateOptions() contour.InterpolateOptions {
	return contour.InterpolateOptions{
		Angles:  cfg.AngleSamples,
		Epsilon: cfg.ParallelEpsilon,
		Smooth:  cfg.SmoothOptions(),
	}
}

// ExportPadding returns the export margin in model units.
func (cfg Config) ExportPadding() float64 {
	return contour.MM(cfg.ExportPaddingMM)
}

// Open reads the configuration at path over the defaults. The format is
// chosen by extension: .toml, or .yaml and .yml.
func Open(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Decode(b, filepath.Ext(path))
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses b in the format named by ext over the defaults and validates
// the result.
func Decode(b []byte, ext string) (Config, error) {
	cfg := Default()
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if err := toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(&cfg); err != nil {
			return Config{}, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, err
		}
	default:
		return Config{}, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Encode writes cfg as TOML.
func (cfg Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}
