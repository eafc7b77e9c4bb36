package road

import (
	"math"

	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

// OrientAtStart rotates a fresh strip about Z to the given heading.
// The caller places the object at the start point.
func OrientAtStart(m *mesh.Mesh, heading float64) {
	m.Transform(geometry.RotationZ(heading))
}

// StretchToEnd stretches the strip, anchored at location, so that its axis
// ends at end. With headingFixed the strip stays on its heading line: it is
// scaled, and turned half way about Z when end lies behind the anchor. It
// returns false and leaves the mesh untouched when either the current axis
// or the requested span has zero length.
func StretchToEnd(m *mesh.Mesh, location, end geometry.Vector3, headingFixed bool) bool {
	if len(m.Vertices) < 2 {
		return false
	}
	t, ok := geometry.ComputeTransform(m.Vertices[0], m.Vertices[1], location, end, headingFixed)
	if !ok {
		return false
	}
	if headingFixed && end.Sub(location).Dot(m.Axis()) < 0 {
		m.Transform(geometry.RotationZ(math.Pi))
	}
	m.Transform(t.Linear())
	return true
}
