package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/contour/config"
	"honnef.co/go/contour/project"
	"honnef.co/go/contour/session"
)

var (
	configPath string
	verbose    bool

	cfg    config.Config
	logger *slog.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "contour",
		Short:         "Generate nested contour lines between two closed boundaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			cfg = config.Default()
			if configPath != "" {
				c, err := config.Open(configPath)
				if err != nil {
					return err
				}
				cfg = c
				logger.Debug("loaded config", "path", configPath)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "configuration file (.toml, .yaml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(shapeCmd(), layersCmd(), renderCmd(), versionCmd())
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
	}
	return err
}

// openProject loads the project at path into a fresh session.
func openProject(path string) (*session.Session, error) {
	s, err := session.New(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := project.Load(path, s); err != nil {
		return nil, err
	}
	return s, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the project file version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "contour project format %s\n", project.Version)
		},
	}
}
