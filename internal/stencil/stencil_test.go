package stencil

import (
	"math"
	"testing"

	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countStencils(s *scene.Scene) int {
	n := 0
	for _, obj := range s.Objects() {
		if obj.Name == DefaultName {
			n++
		}
	}
	return n
}

func TestEnsureCreatesLinkedPersistentPreview(t *testing.T) {
	s := scene.New()
	p := New(s, "")

	obj, err := p.Ensure(geometry.NewVector3(1, 2, 0), 0)
	require.NoError(t, err)
	assert.Equal(t, DefaultName, obj.Name)
	assert.True(t, obj.Persistent)
	assert.True(t, s.IsLinked(DefaultName))
	assert.Empty(t, obj.Mesh.Faces)
	assert.Equal(t, geometry.NewVector3(1, 2, 0), obj.Location)
}

func TestEnsureOrientsAlongHeading(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	_, err := p.Ensure(geometry.Vector3{}, math.Pi/2)
	require.NoError(t, err)

	end, ok := p.End()
	require.True(t, ok)
	dir := end.Normalize()
	assert.True(t, dir.ApproxEqual(geometry.HeadingVector(math.Pi/2), 1e-9), "got %v", dir)
}

func TestEnsureReusesUnlinkedPreview(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	first, err := p.Ensure(geometry.Vector3{}, 0)
	require.NoError(t, err)
	require.NoError(t, s.Unlink(DefaultName))

	second, err := p.Ensure(geometry.NewVector3(5, 5, 0), 0)
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Same(t, first.Mesh, second.Mesh)
	assert.True(t, s.IsLinked(DefaultName))
	assert.Equal(t, geometry.NewVector3(5, 5, 0), second.Location)
	assert.Equal(t, 1, countStencils(s))
}

func TestUpdateScalesAndRotates(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	_, err := p.Ensure(geometry.Vector3{}, 0)
	require.NoError(t, err)

	require.True(t, p.Update(geometry.NewVector3(4, 0, 0), false))
	end, _ := p.End()
	assert.True(t, end.ApproxEqual(geometry.NewVector3(4, 0, 0), 1e-9), "got %v", end)

	// Repeated updates track the pointer, not the previous shape
	require.True(t, p.Update(geometry.NewVector3(0, -2, 0), false))
	end, _ = p.End()
	assert.True(t, end.ApproxEqual(geometry.NewVector3(0, -2, 0), 1e-9), "got %v", end)
}

func TestUpdateHeadingFixedOnlyScales(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	_, err := p.Ensure(geometry.Vector3{}, math.Pi/2)
	require.NoError(t, err)

	require.True(t, p.Update(geometry.NewVector3(-3, 0, 0), true))
	end, _ := p.End()
	assert.True(t, end.ApproxEqual(geometry.NewVector3(-3, 0, 0), 1e-9), "got %v", end)
}

func TestUpdateHeadingFixedBehindAnchorTurns(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	_, err := p.Ensure(geometry.Vector3{}, math.Pi/2)
	require.NoError(t, err)

	require.True(t, p.Update(geometry.NewVector3(3, 0, 0), true))
	end, _ := p.End()
	assert.True(t, end.ApproxEqual(geometry.NewVector3(3, 0, 0), 1e-9), "got %v", end)

	obj, _ := p.Object()
	for _, v := range obj.Mesh.Vertices {
		assert.InDelta(t, 0.0, v.Z, 1e-12)
	}

	require.True(t, p.Update(geometry.NewVector3(-5, 0, 0), true))
	end, _ = p.End()
	assert.True(t, end.ApproxEqual(geometry.NewVector3(-5, 0, 0), 1e-9), "got %v", end)
}

func TestUpdateDegenerateKeepsShape(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	_, err := p.Ensure(geometry.NewVector3(1, 1, 0), 0)
	require.NoError(t, err)
	require.True(t, p.Update(geometry.NewVector3(1, 3, 0), false))

	assert.False(t, p.Update(geometry.NewVector3(1, 1, 0), false))
	end, _ := p.End()
	assert.True(t, end.ApproxEqual(geometry.NewVector3(1, 3, 0), 1e-9))
}

func TestRemove(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	assert.NoError(t, p.Remove(), "remove without preview must be a no-op")
	assert.False(t, p.Update(geometry.UnitX, false))

	_, err := p.Ensure(geometry.Vector3{}, 0)
	require.NoError(t, err)
	require.NoError(t, p.Remove())
	_, ok := p.Object()
	assert.False(t, ok)
	assert.NoError(t, p.Remove())
}

func TestAtMostOnePreview(t *testing.T) {
	s := scene.New()
	p := New(s, "")
	other := New(s, "")

	steps := []func(){
		func() { _, _ = p.Ensure(geometry.Vector3{}, 0) },
		func() { _, _ = other.Ensure(geometry.UnitX, 1) },
		func() { p.Update(geometry.NewVector3(3, 3, 0), false) },
		func() { _ = s.Unlink(DefaultName) },
		func() { _, _ = other.Ensure(geometry.UnitY, 0) },
		func() { _ = p.Remove() },
		func() { _, _ = p.Ensure(geometry.Vector3{}, 0) },
		func() { _ = other.Remove() },
		func() { _ = p.Remove() },
	}
	for i, step := range steps {
		step()
		assert.LessOrEqual(t, countStencils(s), 1, "after step %d", i)
	}
	assert.Equal(t, 0, countStencils(s))
}
