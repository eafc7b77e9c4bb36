package road

import (
	"errors"

	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

// ErrDegenerateInput is returned for a zero-length segment
var ErrDegenerateInput = errors.New("impossible to create zero length road")

// DefaultMeshName is the mesh and object base name of straight roads
const DefaultMeshName = "road_straight"

// IDAllocator hands out process-unique connection ids
type IDAllocator interface {
	NextConnectionID() int
}

// Builder turns start/end points into road segments
type Builder struct {
	ids      IDAllocator
	meshName string
}

// NewBuilder creates a builder; an empty meshName selects DefaultMeshName
func NewBuilder(ids IDAllocator, meshName string) *Builder {
	if meshName == "" {
		meshName = DefaultMeshName
	}
	return &Builder{ids: ids, meshName: meshName}
}

// Build creates a straight segment from start to end with a fresh
// connection id. The stored heading is the plan-view heading of end-start.
func (b *Builder) Build(start, end geometry.Vector3) (*Segment, error) {
	if start == end {
		return nil, ErrDegenerateInput
	}
	return b.build(b.ids.NextConnectionID(), start, end)
}

// Rebuild recreates a segment with a known connection id, e.g. when
// restoring a saved network
func (b *Builder) Rebuild(id int, start, end geometry.Vector3) (*Segment, error) {
	if start == end {
		return nil, ErrDegenerateInput
	}
	return b.build(id, start, end)
}

func (b *Builder) build(id int, start, end geometry.Vector3) (*Segment, error) {
	m := mesh.RoadStrip(b.meshName)

	// Heading 0 in the segment's own frame; the stretch below does the rotation
	OrientAtStart(m, 0)
	if !StretchToEnd(m, start, end, false) {
		return nil, ErrDegenerateInput
	}

	vectorStartEnd := end.Sub(start)
	return &Segment{
		Mesh:         m,
		Geometry:     GeometryLine,
		Start:        start,
		End:          end,
		Heading:      geometry.HeadingOf(vectorStartEnd),
		Length:       vectorStartEnd.Length(),
		ConnectionID: id,
	}, nil
}
