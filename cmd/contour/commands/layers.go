package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/contour"
)

func layersCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "layers <project>",
		Short: "Print the layers of a saved project",
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
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(set)
			}
			b := set.Bounds
			fmt.Fprintf(w, "inner:  %d points\n", len(set.Inner))
			fmt.Fprintf(w, "outer:  %d points\n", len(set.Outer))
			fmt.Fprintf(w, "layers: %d of %d\n", len(set.Layers), s.Settings().NumLines)
			fmt.Fprintf(w, "bounds: %.1f × %.1f mm at (%.1f, %.1f) mm\n",
				contour.ToMM(b.Width()), contour.ToMM(b.Height()),
				contour.ToMM(b.X0), contour.ToMM(b.Y0))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print every path as JSON")
	return cmd
}
