package road

import (
	"math"
	"testing"

	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct{ next int }

func (c *counter) NextConnectionID() int {
	c.next++
	return c.next
}

func TestBuildLengthAndHeading(t *testing.T) {
	b := NewBuilder(&counter{}, "")
	cases := []struct {
		start, end geometry.Vector3
	}{
		{geometry.Vector3{}, geometry.NewVector3(4, 0, 0)},
		{geometry.NewVector3(1, 1, 0), geometry.NewVector3(-2, 5, 0)},
		{geometry.NewVector3(3, -1, 0), geometry.NewVector3(3, -7, 0)},
		{geometry.NewVector3(0, 0, 0), geometry.NewVector3(2, 2, 1)},
	}
	for _, c := range cases {
		seg, err := b.Build(c.start, c.end)
		require.NoError(t, err)

		diff := c.end.Sub(c.start)
		assert.InDelta(t, diff.Length(), seg.Length, 1e-12)
		assert.InDelta(t, math.Atan2(-diff.X, diff.Y), seg.Heading, 1e-12)

		// The stretched axis ends exactly at the requested end point
		axisEnd := seg.Mesh.Vertices[1].Add(seg.Start)
		assert.True(t, axisEnd.ApproxEqual(c.end, 1e-9), "axis end %v != %v", axisEnd, c.end)
	}
}

func TestBuildAlongX(t *testing.T) {
	b := NewBuilder(&counter{}, "")
	seg, err := b.Build(geometry.Vector3{}, geometry.NewVector3(4, 0, 0))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, seg.Length, 1e-12)
	assert.InDelta(t, -math.Pi/2, seg.Heading, 1e-12)
	assert.Len(t, seg.Triangles(), 4)

	// Road is 8 wide and 4 long
	area := 0.0
	for _, tri := range seg.Triangles() {
		area += tri.Area()
	}
	assert.InDelta(t, 32.0, area, 1e-9)
}

func TestBuildRefusesZeroLength(t *testing.T) {
	ids := &counter{}
	b := NewBuilder(ids, "")
	p := geometry.NewVector3(1, 2, 3)
	seg, err := b.Build(p, p)
	assert.ErrorIs(t, err, ErrDegenerateInput)
	assert.Nil(t, seg)
	assert.Equal(t, 0, ids.next, "no id must be consumed")
}

func TestBuildAllocatesIDs(t *testing.T) {
	b := NewBuilder(&counter{}, "")
	first, err := b.Build(geometry.Vector3{}, geometry.UnitY)
	require.NoError(t, err)
	second, err := b.Build(geometry.UnitY, geometry.NewVector3(0, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, 1, first.ConnectionID)
	assert.Equal(t, 2, second.ConnectionID)
}

func TestAttributes(t *testing.T) {
	b := NewBuilder(&counter{}, "")
	seg, err := b.Build(geometry.NewVector3(1, 2, 0), geometry.NewVector3(1, 5, 0))
	require.NoError(t, err)

	attrs := seg.Attributes()
	assert.Equal(t, "line", attrs[AttrGeometry])
	assert.Equal(t, 0.0, attrs[AttrS])
	assert.Equal(t, 1.0, attrs[AttrX])
	assert.Equal(t, 2.0, attrs[AttrY])
	assert.InDelta(t, 0.0, attrs[AttrHeading].(float64), 1e-12)
	assert.InDelta(t, 3.0, attrs[AttrLength].(float64), 1e-12)
	assert.Equal(t, geometry.NewVector3(1, 5, 0), attrs[AttrPointEnd])
	assert.Equal(t, 1, attrs[AttrID])

	end, heading := seg.ConnectionPoint()
	assert.Equal(t, seg.End, end)
	assert.Equal(t, seg.Heading, heading)
}

func TestRebuildKeepsID(t *testing.T) {
	ids := &counter{}
	b := NewBuilder(ids, "")
	seg, err := b.Rebuild(42, geometry.Vector3{}, geometry.UnitX)
	require.NoError(t, err)
	assert.Equal(t, 42, seg.ConnectionID)
	assert.Equal(t, 0, ids.next)
}
