package cmd

import (
	"fmt"
	"os"

	"github.com/philipparndt/goroad/internal/app"
	"github.com/philipparndt/goroad/internal/config"
	"github.com/philipparndt/goroad/internal/logging"
	"github.com/philipparndt/goroad/version"
	"github.com/spf13/cobra"
)

var (
	configPath  string
	terrainPath string
)

var rootCmd = &cobra.Command{
	Use:   "goroad-editor [project]",
	Short: "Interactive straight road editor",
	Long: `goroad-editor opens a 3D viewport to place straight road segments.
Press R to start the road tool, click a start and an end point, and save the
network with Ctrl+S. Starting on the end of an existing road continues it in
the same direction.`,
	Version: version.GetFullVersion(),
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		log, err := logging.New(logging.Options{Level: cfg.Log.Level, Encoding: cfg.Log.Encoding})
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		opts := app.Options{
			TerrainPath: terrainPath,
			Config:      cfg,
			Logger:      log,
		}
		if len(args) == 1 {
			opts.ProjectPath = args[0]
		}
		return app.Run(opts)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "configuration file (.yaml or .toml)")
	rootCmd.Flags().StringVar(&terrainPath, "terrain", "", "STL model to place roads on")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
