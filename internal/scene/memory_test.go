package scene

import (
	"testing"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRoad(t *testing.T, s *Scene, start, end geometry.Vector3) *Object {
	t.Helper()
	seg, err := road.NewBuilder(s, "").Build(start, end)
	require.NoError(t, err)
	obj := NewRoadObject(s.UniqueName(road.DefaultMeshName), seg)
	require.NoError(t, s.Add(obj))
	require.NoError(t, s.Link(obj.Name))
	return obj
}

func TestUniqueName(t *testing.T) {
	s := New()
	assert.Equal(t, "road_straight", s.UniqueName("road_straight"))
	addRoad(t, s, geometry.Vector3{}, geometry.UnitY)
	assert.Equal(t, "road_straight.001", s.UniqueName("road_straight"))
	addRoad(t, s, geometry.UnitY, geometry.NewVector3(0, 2, 0))
	assert.Equal(t, "road_straight.002", s.UniqueName("road_straight"))
}

func TestAddDuplicateName(t *testing.T) {
	s := New()
	require.NoError(t, s.Add(NewObject("a", nil)))
	assert.ErrorIs(t, s.Add(NewObject("a", nil)), ErrDuplicateName)
}

func TestUnlinkKeepsPersistentObjects(t *testing.T) {
	s := New()
	keep := NewObject("keep", mesh.StencilStrip("keep"))
	keep.Persistent = true
	drop := NewObject("drop", nil)
	require.NoError(t, s.Add(keep))
	require.NoError(t, s.Add(drop))
	require.NoError(t, s.Link("keep"))
	require.NoError(t, s.Link("drop"))

	require.NoError(t, s.Unlink("keep"))
	require.NoError(t, s.Unlink("drop"))

	_, ok := s.Object("keep")
	assert.True(t, ok)
	assert.False(t, s.IsLinked("keep"))
	_, ok = s.Object("drop")
	assert.False(t, ok)
}

func TestRemoveMissingIsNoop(t *testing.T) {
	s := New()
	assert.NoError(t, s.Remove("nothing"))
	assert.ErrorIs(t, s.Link("nothing"), ErrObjectNotFound)
}

func TestSegmentIndex(t *testing.T) {
	s := New()
	a := addRoad(t, s, geometry.Vector3{}, geometry.UnitY)
	b := addRoad(t, s, geometry.UnitY, geometry.NewVector3(0, 3, 0))

	seg, ok := s.Segment(b.Segment.ConnectionID)
	require.True(t, ok)
	assert.Same(t, b.Segment, seg)

	segs := s.Segments()
	require.Len(t, segs, 2)
	assert.Equal(t, a.Segment.ConnectionID, segs[0].ConnectionID)

	require.NoError(t, s.Remove(a.Name))
	_, ok = s.Segment(a.Segment.ConnectionID)
	assert.False(t, ok)
}

func TestAddRestoredSegmentAdvancesIDs(t *testing.T) {
	s := New()
	seg, err := road.NewBuilder(s, "").Rebuild(7, geometry.Vector3{}, geometry.UnitX)
	require.NoError(t, err)
	require.NoError(t, s.Add(NewRoadObject("restored", seg)))
	assert.Equal(t, 8, s.NextConnectionID())
}

func TestActiveAndSelection(t *testing.T) {
	s := New()
	obj := addRoad(t, s, geometry.Vector3{}, geometry.UnitY)
	require.NoError(t, s.SetActive(obj.Name))
	active, ok := s.Active()
	require.True(t, ok)
	assert.Same(t, obj, active)
	assert.True(t, s.Selected(obj.Name))

	s.DeselectAll()
	_, ok = s.Active()
	assert.False(t, ok)
	assert.False(t, s.Selected(obj.Name))
}

func TestRaycastHitsLinkedRoad(t *testing.T) {
	s := New()
	obj := addRoad(t, s, geometry.Vector3{}, geometry.NewVector3(0, 10, 0))

	hit, ok := s.Raycast(geometry.NewRay(geometry.NewVector3(1, 5, 20), geometry.NewVector3(0, 0, -1)))
	require.True(t, ok)
	assert.Same(t, obj, hit.Object)
	assert.True(t, hit.Point.ApproxEqual(geometry.NewVector3(1, 5, 0), 1e-9))

	// Beyond the road width
	_, ok = s.Raycast(geometry.NewRay(geometry.NewVector3(6, 5, 20), geometry.NewVector3(0, 0, -1)))
	assert.False(t, ok)

	// Unlinked objects are invisible to rays
	obj.Persistent = true
	require.NoError(t, s.Unlink(obj.Name))
	_, ok = s.Raycast(geometry.NewRay(geometry.NewVector3(1, 5, 20), geometry.NewVector3(0, 0, -1)))
	assert.False(t, ok)
}

func TestObjectAttributes(t *testing.T) {
	s := New()
	obj := addRoad(t, s, geometry.Vector3{}, geometry.UnitY)
	v, ok := obj.Get(road.AttrGeometry)
	require.True(t, ok)
	assert.Equal(t, road.GeometryLine, v)
	assert.Equal(t, road.GeometryLine, obj.Category())

	plain := NewObject("terrain", nil)
	plain.Set("surface", "grass")
	v, ok = plain.Get("surface")
	require.True(t, ok)
	assert.Equal(t, "grass", v)
	assert.Equal(t, "", plain.Category())
}
