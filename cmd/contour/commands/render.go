package commands

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/contour/internal/raster"
)

func renderCmd() *cobra.Command {
	var (
		out  string
		opts = raster.DefaultOptions
	)
	cmd := &cobra.Command{
		Use:   "render <project>",
		Short: "Render a saved project to a PNG preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openProject(args[0])
			if err != nil {
				return err
			}
			set, err := s.Export()
			if err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			bw := bufio.NewWriter(f)
			if err := raster.Encode(bw, set, opts); err != nil {
				_ = f.Close()
				return err
			}
			if err := bw.Flush(); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			logger.Info("rendered preview", "path", out, "layers", len(set.Layers))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "preview.png", "PNG file to write")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "pixels per millimeter")
	cmd.Flags().Float64Var(&opts.LineWidth, "line-width", opts.LineWidth, "stroke width in pixels")
	return cmd
}
