package export

import (
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/paulmach/osm"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/geometry"
)

// EarthRadius is the WGS84 equatorial radius in meters
const EarthRadius = 6378137.0

// Generator is written into exported OSM files
const Generator = "goroad"

// ToLatLon maps local plan-view meters around the origin onto WGS84
// coordinates using an equirectangular tangent plane
func ToLatLon(p geometry.Vector3, originLat, originLon float64) (lat, lon float64) {
	lat = originLat + p.Y/EarthRadius*180/math.Pi
	lon = originLon + p.X/(EarthRadius*math.Cos(originLat*math.Pi/180))*180/math.Pi
	return lat, lon
}

// BuildOSM converts the network into OSM nodes and ways. Segments sharing an
// endpoint share the node, so snapped roads stay connected.
func BuildOSM(segments []*road.Segment, opts Options) *osm.OSM {
	o := &osm.OSM{
		Version:   "0.6",
		Generator: Generator,
	}

	nodes := make(map[[3]float64]osm.NodeID)
	nodeFor := func(p geometry.Vector3) osm.NodeID {
		key := [3]float64{round(p.X), round(p.Y), round(p.Z)}
		if id, ok := nodes[key]; ok {
			return id
		}
		id := osm.NodeID(len(nodes) + 1)
		nodes[key] = id

		lat, lon := ToLatLon(p, opts.OriginLat, opts.OriginLon)
		o.Nodes = append(o.Nodes, &osm.Node{
			ID:      id,
			Lat:     lat,
			Lon:     lon,
			Visible: true,
			Version: 1,
			Tags:    osm.Tags{{Key: "ele", Value: formatFloat(p.Z)}},
		})
		return id
	}

	bounds := &osm.Bounds{MinLat: 90, MaxLat: -90, MinLon: 180, MaxLon: -180}
	for _, seg := range segments {
		from := nodeFor(seg.Start)
		to := nodeFor(seg.End)
		o.Ways = append(o.Ways, &osm.Way{
			ID:      osm.WayID(seg.ConnectionID),
			Visible: true,
			Version: 1,
			Nodes:   osm.WayNodes{{ID: from}, {ID: to}},
			Tags: osm.Tags{
				{Key: "highway", Value: "road"},
				{Key: "length", Value: formatFloat(seg.Length)},
				{Key: "opendrive:id", Value: strconv.Itoa(seg.ConnectionID)},
			},
		})
	}

	for _, n := range o.Nodes {
		bounds.MinLat = math.Min(bounds.MinLat, n.Lat)
		bounds.MaxLat = math.Max(bounds.MaxLat, n.Lat)
		bounds.MinLon = math.Min(bounds.MinLon, n.Lon)
		bounds.MaxLon = math.Max(bounds.MaxLon, n.Lon)
	}
	if len(o.Nodes) > 0 {
		o.Bounds = bounds
	}
	return o
}

// WriteOSM writes the network as OSM XML
func WriteOSM(w io.Writer, segments []*road.Segment, opts Options) error {
	data, err := xml.MarshalIndent(BuildOSM(segments, opts), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode OSM: %w", err)
	}
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err = io.WriteString(w, "\n")
	return err
}

func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
