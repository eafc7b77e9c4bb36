package stencil

import (
	"fmt"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/pkg/geometry"
	"github.com/philipparndt/goroad/pkg/mesh"
)

// DefaultName is the reserved scene name of the preview object
const DefaultName = "dsc_stencil_object"

// Preview owns the transient stencil object. At most one object with the
// reserved name exists in the store; a stale one is relinked, never duplicated.
type Preview struct {
	store scene.Store
	name  string
}

// New creates a preview handle. An empty name selects DefaultName.
func New(store scene.Store, name string) *Preview {
	if name == "" {
		name = DefaultName
	}
	return &Preview{store: store, name: name}
}

// Name returns the reserved object name
func (p *Preview) Name() string {
	return p.name
}

// Object returns the live preview object, if any
func (p *Preview) Object() (*scene.Object, bool) {
	return p.store.Object(p.name)
}

// Ensure places the preview at anchor, oriented along heading. An existing
// preview is reused: relinked if needed and re-anchored in place.
func (p *Preview) Ensure(anchor geometry.Vector3, heading float64) (*scene.Object, error) {
	if obj, ok := p.store.Object(p.name); ok {
		if !p.store.IsLinked(p.name) {
			if err := p.store.Link(p.name); err != nil {
				return nil, fmt.Errorf("failed to relink stencil: %w", err)
			}
		}
		obj.Location = anchor
		obj.Mesh.SetVertices(mesh.StencilVertices())
		road.OrientAtStart(obj.Mesh, heading)
		return obj, nil
	}

	obj := scene.NewObject(p.name, mesh.StencilStrip(p.name))
	obj.Location = anchor
	obj.Persistent = true
	road.OrientAtStart(obj.Mesh, heading)

	if err := p.store.Add(obj); err != nil {
		return nil, fmt.Errorf("failed to add stencil: %w", err)
	}
	if err := p.store.Link(p.name); err != nil {
		return nil, fmt.Errorf("failed to link stencil: %w", err)
	}
	return obj, nil
}

// Update stretches the preview from its anchor towards end. With
// headingFixed the preview keeps its direction and only changes length.
// It reports false if there is no preview or the span is degenerate.
func (p *Preview) Update(end geometry.Vector3, headingFixed bool) bool {
	obj, ok := p.store.Object(p.name)
	if !ok {
		return false
	}
	return road.StretchToEnd(obj.Mesh, obj.Location, end, headingFixed)
}

// End returns the current far end of the preview axis in world space
func (p *Preview) End() (geometry.Vector3, bool) {
	obj, ok := p.store.Object(p.name)
	if !ok || len(obj.Mesh.Vertices) < 2 {
		return geometry.Vector3{}, false
	}
	return obj.Mesh.Vertices[1].Add(obj.Location), true
}

// Remove unlinks and destroys the preview. It is a no-op without preview.
func (p *Preview) Remove() error {
	if err := p.store.Remove(p.name); err != nil {
		return fmt.Errorf("failed to remove stencil: %w", err)
	}
	return nil
}
