package mesh

import (
	"github.com/philipparndt/goroad/pkg/geometry"
)

// Mesh holds vertex, edge and face buffers in object-local coordinates
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	Edges    [][2]int
	Faces    [][]int
}

// New creates a mesh from raw buffers. Buffers are copied.
func New(name string, vertices []geometry.Vector3, edges [][2]int, faces [][]int) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: append([]geometry.Vector3(nil), vertices...),
		Edges:    append([][2]int(nil), edges...),
		Faces:    make([][]int, 0, len(faces)),
	}
	for _, f := range faces {
		m.Faces = append(m.Faces, append([]int(nil), f...))
	}
	return m
}

// Clone returns a deep copy of the mesh
func (m *Mesh) Clone() *Mesh {
	return New(m.Name, m.Vertices, m.Edges, m.Faces)
}

// Transform applies a linear transform to every vertex in place
func (m *Mesh) Transform(mat geometry.Matrix3) {
	for i, v := range m.Vertices {
		m.Vertices[i] = mat.Apply(v)
	}
}

// SetVertices replaces the vertex buffer while keeping the mesh identity
func (m *Mesh) SetVertices(vertices []geometry.Vector3) {
	m.Vertices = append(m.Vertices[:0], vertices...)
}

// Axis returns the vector from vertex 0 to vertex 1, the direction a
// road strip is stretched along
func (m *Mesh) Axis() geometry.Vector3 {
	if len(m.Vertices) < 2 {
		return geometry.Vector3{}
	}
	return m.Vertices[1].Sub(m.Vertices[0])
}

// Triangles fans every face into triangles, offset by location
func (m *Mesh) Triangles(location geometry.Vector3) []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, len(m.Faces)*2)
	for _, face := range m.Faces {
		if len(face) < 3 {
			continue
		}
		v0 := m.Vertices[face[0]].Add(location)
		for i := 1; i+1 < len(face); i++ {
			v1 := m.Vertices[face[i]].Add(location)
			v2 := m.Vertices[face[i+1]].Add(location)
			tri := geometry.NewTriangle(geometry.Vector3{}, v0, v1, v2)
			tri.Normal = tri.CalculateNormal()
			triangles = append(triangles, tri)
		}
	}
	return triangles
}

// WorldEdges returns each edge as a pair of points offset by location
func (m *Mesh) WorldEdges(location geometry.Vector3) [][2]geometry.Vector3 {
	edges := make([][2]geometry.Vector3, 0, len(m.Edges))
	for _, e := range m.Edges {
		edges = append(edges, [2]geometry.Vector3{
			m.Vertices[e[0]].Add(location),
			m.Vertices[e[1]].Add(location),
		})
	}
	return edges
}

// FromTriangles builds an indexed mesh from a triangle soup. Vertices are
// shared between triangles that use the exact same position.
func FromTriangles(name string, triangles []geometry.Triangle) *Mesh {
	m := &Mesh{Name: name}
	index := make(map[geometry.Vector3]int)
	vertex := func(v geometry.Vector3) int {
		if i, ok := index[v]; ok {
			return i
		}
		index[v] = len(m.Vertices)
		m.Vertices = append(m.Vertices, v)
		return index[v]
	}

	edges := make(map[[2]int]bool)
	for _, tri := range triangles {
		face := []int{vertex(tri.V1), vertex(tri.V2), vertex(tri.V3)}
		m.Faces = append(m.Faces, face)
		for i := range face {
			a, b := face[i], face[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			if !edges[[2]int{a, b}] {
				edges[[2]int{a, b}] = true
				m.Edges = append(m.Edges, [2]int{a, b})
			}
		}
	}
	return m
}
