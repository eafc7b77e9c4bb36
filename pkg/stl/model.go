package stl

import (
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

// Model is a named triangle soup as stored in an STL file
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates an empty model
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// AddTriangles appends facets to the model
func (m *Model) AddTriangles(triangles ...geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangles...)
}

// Bounds returns the extent of all facets
func (m *Model) Bounds() geometry.BoundingBox {
	bbox := geometry.NewBoundingBox()
	for _, tri := range m.Triangles {
		bbox.Extend(tri.V1)
		bbox.Extend(tri.V2)
		bbox.Extend(tri.V3)
	}
	return bbox
}

// Mesh indexes the facets into a mesh with shared vertices
func (m *Model) Mesh() *mesh.Mesh {
	return mesh.FromTriangles(m.Name, m.Triangles)
}
