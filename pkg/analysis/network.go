package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/geometry"
)

// ConnectionTolerance is the distance below which two endpoints coincide
const ConnectionTolerance = 1e-6

// SegmentInfo contains information about one road in the network
type SegmentInfo struct {
	ID      int
	Start   geometry.Vector3
	End     geometry.Vector3
	Length  float64
	Heading float64
}

// NetworkResult contains various measurements of a road network
type NetworkResult struct {
	BoundingBox  geometry.BoundingBox
	Dimensions   geometry.Vector3
	SegmentCount int
	TotalLength  float64
	MinLength    float64
	MaxLength    float64
	AvgLength    float64
	// Connections counts segments whose start lies on another segment's end
	Connections int
	Segments    []SegmentInfo
}

// AnalyzeNetwork measures the given segments
func AnalyzeNetwork(segments []*road.Segment) *NetworkResult {
	result := &NetworkResult{
		BoundingBox:  geometry.NewBoundingBox(),
		SegmentCount: len(segments),
		Segments:     make([]SegmentInfo, 0, len(segments)),
	}
	if len(segments) == 0 {
		result.BoundingBox = geometry.BoundingBox{}
		return result
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	for _, seg := range segments {
		result.Segments = append(result.Segments, SegmentInfo{
			ID:      seg.ConnectionID,
			Start:   seg.Start,
			End:     seg.End,
			Length:  seg.Length,
			Heading: seg.Heading,
		})
		result.BoundingBox.Extend(seg.Start)
		result.BoundingBox.Extend(seg.End)

		result.TotalLength += seg.Length
		if seg.Length < minLength {
			minLength = seg.Length
		}
		if seg.Length > maxLength {
			maxLength = seg.Length
		}
	}

	result.Dimensions = result.BoundingBox.Size()
	result.MinLength = minLength
	result.MaxLength = maxLength
	result.AvgLength = result.TotalLength / float64(len(segments))
	result.Connections = countConnections(segments)
	return result
}

func countConnections(segments []*road.Segment) int {
	count := 0
	for i, seg := range segments {
		for j, other := range segments {
			if i != j && seg.Start.Distance(other.End) < ConnectionTolerance {
				count++
				break
			}
		}
	}
	return count
}

// FindLongestSegments returns the N longest segments
func FindLongestSegments(result *NetworkResult, count int) []SegmentInfo {
	return sortedSegments(result, count, func(a, b SegmentInfo) bool {
		return a.Length > b.Length
	})
}

// FindShortestSegments returns the N shortest segments
func FindShortestSegments(result *NetworkResult, count int) []SegmentInfo {
	return sortedSegments(result, count, func(a, b SegmentInfo) bool {
		return a.Length < b.Length
	})
}

func sortedSegments(result *NetworkResult, count int, less func(a, b SegmentInfo) bool) []SegmentInfo {
	segments := make([]SegmentInfo, len(result.Segments))
	copy(segments, result.Segments)

	sort.SliceStable(segments, func(i, j int) bool {
		return less(segments[i], segments[j])
	})

	if count > len(segments) {
		count = len(segments)
	}
	return segments[:count]
}

// FindNearestEndpoint finds the segment endpoint nearest to a given point
func FindNearestEndpoint(result *NetworkResult, point geometry.Vector3) (geometry.Vector3, float64) {
	var nearest geometry.Vector3
	minDistance := math.MaxFloat64

	for _, seg := range result.Segments {
		for _, p := range []geometry.Vector3{seg.Start, seg.End} {
			distance := point.Distance(p)
			if distance < minDistance {
				minDistance = distance
				nearest = p
			}
		}
	}
	return nearest, minDistance
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "m"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}

// FormatHeading formats a heading in radians and degrees
func FormatHeading(h float64) string {
	return fmt.Sprintf("%.6f rad (%.2f°)", h, h*180/math.Pi)
}
