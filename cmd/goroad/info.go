package main

import (
	"context"
	"fmt"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/internal/store"
	"github.com/philipparndt/goroad/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoLongest int

var infoCmd = &cobra.Command{
	Use:   "info [project]",
	Short: "Display general information about a road network",
	Long:  "Show segment count, lengths, extent and connectivity of a stored road network.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	infoCmd.Flags().IntVarP(&infoLongest, "longest", "n", 0, "also list the N longest roads")
	rootCmd.AddCommand(infoCmd)
}

// loadNetwork opens a project file and rebuilds its roads into a new scene
func loadNetwork(ctx context.Context, filename, objectName string) (*scene.Scene, []*road.Segment, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	st, err := store.Open(filename, nil)
	if err != nil {
		return nil, nil, err
	}
	defer st.Close()

	sc := scene.New()
	segments, err := st.Load(ctx, sc, road.NewBuilder(sc, objectName))
	if err != nil {
		return nil, nil, fmt.Errorf("error loading project: %w", err)
	}
	return sc, segments, nil
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	filename := args[0]
	_, segments, err := loadNetwork(cmd.Context(), filename, cfg.Tool.ObjectName)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeNetwork(segments)

	fmt.Println("Road Network Information")
	fmt.Println("========================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Network Statistics:")
	fmt.Printf("  Roads: %d\n", result.SegmentCount)
	fmt.Printf("  Connections: %d\n", result.Connections)
	fmt.Printf("  Total Length: %s\n\n", analysis.FormatMeasurement(result.TotalLength, "m"))

	if result.SegmentCount == 0 {
		return nil
	}

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f m\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f m\n", result.Dimensions.Y)
	fmt.Printf("  Diagonal: %.6f m\n\n", result.BoundingBox.Diagonal())

	fmt.Println("Road Lengths:")
	fmt.Printf("  Minimum: %.6f m\n", result.MinLength)
	fmt.Printf("  Maximum: %.6f m\n", result.MaxLength)
	fmt.Printf("  Average: %.6f m\n", result.AvgLength)

	if infoLongest > 0 {
		fmt.Printf("\nLongest %d roads:\n", infoLongest)
		for i, seg := range analysis.FindLongestSegments(result, infoLongest) {
			fmt.Printf("  %d. id %d: %.6f m, heading %s\n",
				i+1, seg.ID, seg.Length, analysis.FormatHeading(seg.Heading))
		}
	}
	return nil
}
