package scene

import (
	"github.com/google/uuid"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

// Object is an entry in the scene data. Objects exist in data until they are
// removed; only linked objects are visible to the view and to ray casts.
type Object struct {
	ID       uuid.UUID
	Name     string
	Location geometry.Vector3
	Mesh     *mesh.Mesh

	// Segment is set for committed roads and holds their connectivity
	Segment *road.Segment

	// Persistent keeps the object in data while unlinked, so it can be
	// relinked instead of recreated
	Persistent bool

	props map[string]any
}

// NewObject creates an object with a fresh handle
func NewObject(name string, m *mesh.Mesh) *Object {
	return &Object{
		ID:    uuid.New(),
		Name:  name,
		Mesh:  m,
		props: make(map[string]any),
	}
}

// NewRoadObject wraps a committed segment
func NewRoadObject(name string, seg *road.Segment) *Object {
	obj := NewObject(name, seg.Mesh)
	obj.Location = seg.Start
	obj.Segment = seg
	return obj
}

// Get reads a custom attribute. Road attributes come from the segment.
func (o *Object) Get(key string) (any, bool) {
	if o.Segment != nil {
		if v, ok := o.Segment.Attributes()[key]; ok {
			return v, true
		}
	}
	v, ok := o.props[key]
	return v, ok
}

// Set writes a custom attribute that is not part of the road schema
func (o *Object) Set(key string, value any) {
	if o.props == nil {
		o.props = make(map[string]any)
	}
	o.props[key] = value
}

// Category returns the plan-view geometry tag, empty for non-road objects
func (o *Object) Category() string {
	if o.Segment != nil {
		return o.Segment.Geometry
	}
	if v, ok := o.props[road.AttrGeometry].(string); ok {
		return v
	}
	return ""
}

// Triangles returns the world-space faces of the object
func (o *Object) Triangles() []geometry.Triangle {
	if o.Mesh == nil {
		return nil
	}
	return o.Mesh.Triangles(o.Location)
}
