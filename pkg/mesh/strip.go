package mesh

import "github.com/philipparndt/goroad/pkg/geometry"

// Canonical road strip: a unit-length segment from the origin along +Y,
// four units wide on each side. Vertex 0 -> 1 is the reference axis.
const (
	StripHalfWidth = 4.0
	// StencilThickness keeps the preview a visible but degenerate quad strip
	StencilThickness = 0.01
)

var stripEdges = [][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4},
	{0, 4}, {4, 5}, {5, 1},
}

func stripVertices(length float64) []geometry.Vector3 {
	return []geometry.Vector3{
		{X: 0, Y: 0},
		{X: 0, Y: length},
		{X: StripHalfWidth, Y: length},
		{X: StripHalfWidth, Y: 0},
		{X: -StripHalfWidth, Y: 0},
		{X: -StripHalfWidth, Y: length},
	}
}

// RoadStrip returns the canonical road mesh: two quads (four triangles)
func RoadStrip(name string) *Mesh {
	return New(name, stripVertices(1.0), stripEdges, [][]int{
		{0, 1, 2, 3},
		{0, 4, 5, 1},
	})
}

// StencilStrip returns the wire-only preview mesh
func StencilStrip(name string) *Mesh {
	return New(name, stripVertices(StencilThickness), stripEdges, nil)
}

// StencilVertices returns the untransformed stencil vertices
func StencilVertices() []geometry.Vector3 {
	return stripVertices(StencilThickness)
}
