package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/goroad/internal/road"
)

// Format is an export file format
type Format string

const (
	FormatOpenDRIVE Format = "xodr"
	FormatOSM       Format = "osm"
	FormatSTL       Format = "stl"
)

// Options are shared by all exporters
type Options struct {
	// Name ends up in file headers
	Name string
	// OriginLat and OriginLon place the local origin for OSM output
	OriginLat float64
	OriginLon float64
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch f := Format(strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")); f {
	case FormatOpenDRIVE, FormatOSM, FormatSTL:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported export format: %q", filepath.Ext(path))
	}
}

// Write encodes the segments in the given format
func Write(w io.Writer, format Format, segments []*road.Segment, opts Options) error {
	switch format {
	case FormatOpenDRIVE:
		return WriteOpenDRIVE(w, segments, opts)
	case FormatOSM:
		return WriteOSM(w, segments, opts)
	case FormatSTL:
		return WriteSTL(w, segments, opts)
	default:
		return fmt.Errorf("unsupported export format: %q", format)
	}
}

// WriteFile exports the segments to path, choosing the format by extension
func WriteFile(path string, segments []*road.Segment, opts Options) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Write(file, format, segments, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
