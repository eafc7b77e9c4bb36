package export

import (
	"bytes"
	"encoding/xml"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/osm"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/stl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// network returns two connected roads: east along x, then north along y
func network(t *testing.T) []*road.Segment {
	t.Helper()
	b := road.NewBuilder(scene.New(), "")
	first, err := b.Build(geometry.Vector3{}, geometry.NewVector3(4, 0, 0))
	require.NoError(t, err)
	second, err := b.Build(geometry.NewVector3(4, 0, 0), geometry.NewVector3(4, 10, 0))
	require.NoError(t, err)
	return []*road.Segment{first, second}
}

func TestFormatFromPath(t *testing.T) {
	for path, want := range map[string]Format{
		"net.xodr": FormatOpenDRIVE,
		"NET.OSM":  FormatOSM,
		"a/b.stl":  FormatSTL,
	} {
		got, err := FormatFromPath(path)
		require.NoError(t, err, path)
		assert.Equal(t, want, got)
	}
	_, err := FormatFromPath("net.json")
	assert.Error(t, err)
}

func TestOpenDRIVEHeading(t *testing.T) {
	// Heading -Pi/2 points along +X, which is 0 in OpenDRIVE
	assert.InDelta(t, 0.0, OpenDRIVEHeading(-math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi/2, OpenDRIVEHeading(0), 1e-12)
	assert.InDelta(t, math.Pi, OpenDRIVEHeading(math.Pi/2), 1e-12)
}

func TestWriteOpenDRIVE(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOpenDRIVE(&buf, network(t), Options{Name: "test"}))

	var doc odrDocument
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, 1, doc.Header.RevMajor)
	assert.Equal(t, 6, doc.Header.RevMinor)
	assert.Equal(t, "test", doc.Header.Name)
	assert.InDelta(t, 10.0, doc.Header.North, 1e-12)
	assert.InDelta(t, 4.0, doc.Header.East, 1e-12)
	require.Len(t, doc.Roads, 2)

	r := doc.Roads[1]
	assert.Equal(t, "2", r.ID)
	assert.Equal(t, "-1", r.Junction)
	require.Len(t, r.PlanView.Geometry, 1)
	g := r.PlanView.Geometry[0]
	assert.InDelta(t, 4.0, g.X, 1e-12)
	assert.InDelta(t, 0.0, g.Y, 1e-12)
	assert.InDelta(t, 10.0, g.Length, 1e-12)
	assert.InDelta(t, math.Pi/2, g.Hdg, 1e-12)
	assert.NotNil(t, g.Line)
	assert.Contains(t, buf.String(), "<line>")
}

func TestBuildOSMSharesNodes(t *testing.T) {
	o := BuildOSM(network(t), Options{OriginLat: 47, OriginLon: 8})
	require.Len(t, o.Ways, 2)
	require.Len(t, o.Nodes, 3)

	first, second := o.Ways[0], o.Ways[1]
	assert.Equal(t, first.Nodes[1].ID, second.Nodes[0].ID)
	assert.Equal(t, "road", first.Tags.Find("highway"))
	assert.Equal(t, "4", first.Tags.Find("length"))
	assert.Equal(t, "2", second.Tags.Find("opendrive:id"))

	origin := o.Nodes[0]
	assert.InDelta(t, 47.0, origin.Lat, 1e-12)
	assert.InDelta(t, 8.0, origin.Lon, 1e-12)

	// 10 m north is roughly 9e-5 degrees
	north := o.Nodes[2]
	assert.InDelta(t, 47.0+10/EarthRadius*180/math.Pi, north.Lat, 1e-12)
	assert.Greater(t, o.Nodes[1].Lon, 8.0)
}

func TestWriteOSM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOSM(&buf, network(t), Options{}))

	var o osm.OSM
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &o))
	assert.Len(t, o.Ways, 2)
	assert.Len(t, o.Nodes, 3)
	assert.Equal(t, Generator, o.Generator)
}

func TestWriteFileSTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.stl")
	require.NoError(t, WriteFile(path, network(t), Options{}))

	model, err := stl.Parse(path)
	require.NoError(t, err)
	require.Len(t, model.Triangles, 8)
	area := 0.0
	for _, tri := range model.Triangles {
		area += tri.Area()
	}
	// Two strips, 8 wide, 4 and 10 long
	assert.InDelta(t, 8*4+8*10, area, 1e-3)
}

func TestWriteFileUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.txt")
	assert.Error(t, WriteFile(path, network(t), Options{}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
