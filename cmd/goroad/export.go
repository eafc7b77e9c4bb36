package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goroad/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [project] [output]",
	Short: "Export a road network as OpenDRIVE, OSM or STL",
	Long: `Write the roads of a project file to another format. The format follows
the output extension: .xodr (OpenDRIVE), .osm (OpenStreetMap XML) or .stl
(binary STL of the road surfaces). OSM coordinates are placed around
export.origin_lat / export.origin_lon from the configuration.`,
	Args: cobra.ExactArgs(2),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	input, output := args[0], args[1]
	if _, err := export.FormatFromPath(output); err != nil {
		return err
	}

	_, segments, err := loadNetwork(cmd.Context(), input, cfg.Tool.ObjectName)
	if err != nil {
		return err
	}

	opts := export.Options{
		Name:      strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)),
		OriginLat: cfg.Export.OriginLat,
		OriginLon: cfg.Export.OriginLon,
	}
	if err := export.WriteFile(output, segments, opts); err != nil {
		return err
	}

	fmt.Printf("Exported %d roads to %s\n", len(segments), output)
	return nil
}
