package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukasried/meshflow/internal/app"
	"github.com/lukasried/meshflow/internal/config"
	"github.com/lukasried/meshflow/internal/project"
	"github.com/lukasried/meshflow/pkg/kernel/sdfx"
	"github.com/lukasried/meshflow/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "meshflow",
	Short:   "Node-based procedural 3D modeling editor",
	Long:    `meshflow is an editor for dataflow graphs whose terminal node produces a 3D scene, with an interactive viewport for picking, transforming and previewing graph output.`,
	Version: version.GetFullVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		g, err := project.NewStarterGraph(sdfx.New())
		if err != nil {
			return fmt.Errorf("failed to build starter document: %w", err)
		}

		a := app.New(g, cfg)
		if err := a.WatchConfig(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			fmt.Fprintln(os.Stderr, "Live preferences reload will not be available")
		}
		a.Run()
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "preferences file (default: per-user config dir)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
