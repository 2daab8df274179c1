package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/contour"
	"honnef.co/go/contour/project"
	"honnef.co/go/contour/session"
)

func shapeCmd() *cobra.Command {
	var (
		inner, outer            string
		innerSize, outerSize    float64
		innerWidth, innerHeight float64
		outerWidth, outerHeight float64
		lines                   int
		atX, atY                float64
		out                     string
	)
	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Build a drawing from two quick shapes and save it as a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			innerKind, err := contour.ParseShapeKind(inner)
			if err != nil {
				return err
			}
			outerKind, err := contour.ParseShapeKind(outer)
			if err != nil {
				return err
			}
			if innerKind == contour.ShapeNone || outerKind == contour.ShapeNone {
				return fmt.Errorf("both --inner and --outer are required")
			}

			s, err := session.New(cfg, logger)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lines") {
				if err := s.SetNumLines(lines); err != nil {
					return err
				}
			}
			at := contour.Pt(contour.MM(atX), contour.MM(atY))
			set := s.Settings()

			// Zero dimensions take their defaults from the settings.
			dims := func(size, w, h float64) (float64, float64, float64) {
				if size <= 0 {
					size = set.ShapeSize
				}
				if w <= 0 {
					w = set.ShapeWidth
				}
				if h <= 0 {
					h = set.ShapeHeight
				}
				return size, w, h
			}
			innerSize, innerWidth, innerHeight = dims(innerSize, innerWidth, innerHeight)
			outerSize, outerWidth, outerHeight = dims(outerSize, outerWidth, outerHeight)

			innerExt := innerKind.Extent(innerSize, contour.Sz(innerWidth, innerHeight))
			outerExt := outerKind.Extent(outerSize, contour.Sz(outerWidth, outerHeight))
			if outerExt.Width <= innerExt.Width || outerExt.Height <= innerExt.Height {
				return fmt.Errorf("outer shape (%v mm) must be larger than inner shape (%v mm) in both directions", outerExt, innerExt)
			}

			place := func(k contour.ShapeKind, size, w, h float64) error {
				if err := s.SetShapeSize(size, w, h); err != nil {
					return err
				}
				if err := s.SetShape(k); err != nil {
					return err
				}
				s.Press(at, false)
				s.Release(at)
				return nil
			}
			if err := place(innerKind, innerSize, innerWidth, innerHeight); err != nil {
				return err
			}
			if err := place(outerKind, outerSize, outerWidth, outerHeight); err != nil {
				return err
			}
			if s.Phase() == session.PhaseEditing {
				if err := s.FinishEdit(); err != nil {
					return err
				}
			}
			if s.Phase() != session.PhaseFinalized {
				return fmt.Errorf("drawing not finalized, ended in phase %s", s.Phase())
			}
			if err := project.Save(out, s); err != nil {
				return err
			}
			logger.Info("saved project", "path", out, "layers", len(s.Layers()))
			return nil
		},
	}
	cmd.Flags().StringVar(&inner, "inner", "", "inner shape: circle, square, ellipse, rectangle")
	cmd.Flags().StringVar(&outer, "outer", "", "outer shape: circle, square, ellipse, rectangle")
	cmd.Flags().Float64Var(&innerSize, "inner-size", 0, "diameter or side of the inner shape in mm (default from settings)")
	cmd.Flags().Float64Var(&outerSize, "outer-size", 0, "diameter or side of the outer shape in mm (default from settings)")
	cmd.Flags().Float64Var(&innerWidth, "inner-width", 0, "width of an inner ellipse or rectangle in mm (default from settings)")
	cmd.Flags().Float64Var(&innerHeight, "inner-height", 0, "height of an inner ellipse or rectangle in mm (default from settings)")
	cmd.Flags().Float64Var(&outerWidth, "outer-width", 0, "width of an outer ellipse or rectangle in mm (default from settings)")
	cmd.Flags().Float64Var(&outerHeight, "outer-height", 0, "height of an outer ellipse or rectangle in mm (default from settings)")
	cmd.Flags().IntVarP(&lines, "lines", "n", 0, "number of layers")
	cmd.Flags().Float64Var(&atX, "x", 0, "center x in mm")
	cmd.Flags().Float64Var(&atY, "y", 0, "center y in mm")
	cmd.Flags().StringVarP(&out, "output", "o", "drawing.json", "project file to write")
	return cmd
}
