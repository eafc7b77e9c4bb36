package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addRoad(t *testing.T, sc *scene.Scene, start, end geometry.Vector3) *scene.Object {
	t.Helper()
	seg, err := road.NewBuilder(sc, "").Build(start, end)
	require.NoError(t, err)
	obj := scene.NewRoadObject(sc.UniqueName(road.DefaultMeshName), seg)
	require.NoError(t, sc.Add(obj))
	require.NoError(t, sc.Link(obj.Name))
	return obj
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "net.goroad")

	src := scene.New()
	first := addRoad(t, src, geometry.NewVector3(0, 0, 0), geometry.NewVector3(4, 0, 0))
	addRoad(t, src, geometry.NewVector3(4, 0, 0), geometry.NewVector3(4, 10, 0))
	require.NoError(t, src.Add(scene.NewObject("terrain", nil)))

	st, err := Open(path, nil)
	require.NoError(t, err)
	n, err := st.Save(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, st.Close())

	st, err = Open(path, nil)
	require.NoError(t, err)
	defer st.Close()

	dst := scene.New()
	segs, err := st.Load(ctx, dst, road.NewBuilder(dst, ""))
	require.NoError(t, err)
	require.Len(t, segs, 2)

	assert.Equal(t, 1, segs[0].ConnectionID)
	assert.InDelta(t, 4.0, segs[0].Length, 1e-9)
	assert.Equal(t, geometry.NewVector3(4, 10, 0), segs[1].End)
	assert.InDelta(t, 0.0, segs[1].Heading, 1e-9)

	restored, ok := dst.Object(first.Name)
	require.True(t, ok)
	assert.Equal(t, first.ID, restored.ID)
	assert.True(t, dst.IsLinked(first.Name))

	// Numbering continues after the restored ids
	assert.Equal(t, 3, dst.NextConnectionID())
}

func TestSaveReplacesNetwork(t *testing.T) {
	ctx := context.Background()
	st, err := Open(filepath.Join(t.TempDir(), "net.goroad"), nil)
	require.NoError(t, err)
	defer st.Close()

	sc := scene.New()
	obj := addRoad(t, sc, geometry.Vector3{}, geometry.NewVector3(0, 5, 0))
	addRoad(t, sc, geometry.NewVector3(0, 5, 0), geometry.NewVector3(0, 9, 0))
	_, err = st.Save(ctx, sc)
	require.NoError(t, err)

	require.NoError(t, sc.Remove(obj.Name))
	_, err = st.Save(ctx, sc)
	require.NoError(t, err)

	records, err := st.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 2, records[0].ConnectionID)
	assert.Equal(t, road.GeometryLine, records[0].Geometry)
}

func TestOpenLocked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "net.goroad")
	st, err := Open(path, nil)
	require.NoError(t, err)
	defer st.Close()

	_, err = Open(path, nil)
	assert.ErrorIs(t, err, ErrLocked)
}
