package stl

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() *Model {
	model := NewModel("roads")
	a := geometry.NewVector3(0, 0, 0)
	b := geometry.NewVector3(4, 0, 0)
	c := geometry.NewVector3(4, 4, 0)
	d := geometry.NewVector3(0, 4, 0)
	model.AddTriangles(
		geometry.NewTriangle(geometry.UnitZ, a, b, c),
		geometry.NewTriangle(geometry.UnitZ, a, c, d),
	)
	return model
}

func TestWriteBinaryThenRead(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, quad()))
	assert.Equal(t, headerSize+4+2*facetSize, buf.Len())

	parsed, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	require.Len(t, parsed.Triangles, 2)
	assert.Equal(t, "roads", parsed.Name)
	assert.Equal(t, geometry.UnitZ, parsed.Triangles[0].Normal)
	assert.Equal(t, geometry.NewVector3(4, 4, 0), parsed.Bounds().Max)
}

func TestBinaryHeaderStartingWithSolid(t *testing.T) {
	model := quad()
	model.Name = "solid exported by a CAD tool"

	var buf bytes.Buffer
	require.NoError(t, WriteBinary(&buf, model))

	parsed, err := Read(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Len(t, parsed.Triangles, 2)
}

func TestReadASCII(t *testing.T) {
	src := `solid terrain
facet normal 0 0 1
  outer loop
    vertex 0 0 0
    vertex 2 0 0
    vertex 0 2 0
  endloop
endfacet
endsolid terrain
`
	model, err := Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "terrain", model.Name)
	require.Len(t, model.Triangles, 1)
	assert.Equal(t, geometry.NewVector3(2, 2, 0), model.Bounds().Max)
}

func TestReadASCIIErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"bad number", "solid x\nfacet normal 0 0 1\nvertex 0 a 0\n", "line 3"},
		{"short facet", "solid x\nfacet normal 0 0 1\nvertex 0 0 0\nvertex 1 0 0\nendfacet\n", "2 vertices"},
		{"bad normal", "solid x\nfacet 0 0 1\n", "malformed facet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestReadUnknownFormat(t *testing.T) {
	_, err := Read(strings.NewReader("not a mesh"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Read(bytes.NewReader(nil))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadMeshSharesVertices(t *testing.T) {
	path := filepath.Join(t.TempDir(), "terrain.stl")
	require.NoError(t, WriteFile(path, quad()))

	m, err := LoadMesh(path)
	require.NoError(t, err)
	assert.Len(t, m.Vertices, 4)
	assert.Len(t, m.Faces, 2)
	assert.Len(t, m.Edges, 5)
	assert.Len(t, m.Triangles(geometry.Vector3{}), 2)
}
