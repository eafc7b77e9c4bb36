package scene

import (
	"errors"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/geometry"
)

var (
	ErrObjectNotFound = errors.New("object not found")
	ErrDuplicateName  = errors.New("object name already in use")
)

// Store is the object storage the placement tool works against
type Store interface {
	road.IDAllocator

	// Object looks up an object in data by name, linked or not
	Object(name string) (*Object, bool)
	// UniqueName returns base, or base with a numeric suffix if base is taken
	UniqueName(base string) string
	// Add registers an object in data without linking it
	Add(obj *Object) error
	Link(name string) error
	Unlink(name string) error
	IsLinked(name string) bool
	// Remove unlinks and deletes the object. Removing a missing object is a no-op.
	Remove(name string) error

	SetActive(name string) error
	Active() (*Object, bool)
	DeselectAll()

	// Segment looks up a committed road by connection id
	Segment(id int) (*road.Segment, bool)
	// Segments returns committed roads ordered by connection id
	Segments() []*road.Segment
}

// Hit is the closest intersection of a ray with a linked object
type Hit struct {
	Point    geometry.Vector3
	Distance float64
	Object   *Object
}

// Raycaster intersects rays with the linked scene
type Raycaster interface {
	Raycast(ray geometry.Ray) (Hit, bool)
}
