package scene

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/geometry"
)

var _ Store = (*Scene)(nil)
var _ Raycaster = (*Scene)(nil)

// Scene is an in-memory Store and Raycaster
type Scene struct {
	mu       sync.RWMutex
	objects  map[string]*Object
	linked   map[string]bool
	selected map[string]bool
	active   string
	segments map[int]*road.Segment
	lastID   int
}

// New creates an empty scene
func New() *Scene {
	return &Scene{
		objects:  make(map[string]*Object),
		linked:   make(map[string]bool),
		selected: make(map[string]bool),
		segments: make(map[int]*road.Segment),
	}
}

// NextConnectionID allocates the next connection id
func (s *Scene) NextConnectionID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastID++
	return s.lastID
}

func (s *Scene) Object(name string) (*Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[name]
	return obj, ok
}

func (s *Scene) UniqueName(base string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, taken := s.objects[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		name := fmt.Sprintf("%s.%03d", base, i)
		if _, taken := s.objects[name]; !taken {
			return name
		}
	}
}

func (s *Scene) Add(obj *Object) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.objects[obj.Name]; taken {
		return fmt.Errorf("add %q: %w", obj.Name, ErrDuplicateName)
	}
	s.objects[obj.Name] = obj
	if obj.Segment != nil {
		s.segments[obj.Segment.ConnectionID] = obj.Segment
		if obj.Segment.ConnectionID > s.lastID {
			s.lastID = obj.Segment.ConnectionID
		}
	}
	return nil
}

func (s *Scene) Link(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[name]; !ok {
		return fmt.Errorf("link %q: %w", name, ErrObjectNotFound)
	}
	s.linked[name] = true
	return nil
}

func (s *Scene) Unlink(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[name]
	if !ok {
		return fmt.Errorf("unlink %q: %w", name, ErrObjectNotFound)
	}
	delete(s.linked, name)
	delete(s.selected, name)
	if s.active == name {
		s.active = ""
	}
	// Objects nobody holds on to disappear with their last link
	if !obj.Persistent {
		s.deleteLocked(name)
	}
	return nil
}

func (s *Scene) IsLinked(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.linked[name]
}

func (s *Scene) Remove(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[name]; !ok {
		return nil
	}
	s.deleteLocked(name)
	return nil
}

func (s *Scene) deleteLocked(name string) {
	if obj, ok := s.objects[name]; ok && obj.Segment != nil {
		delete(s.segments, obj.Segment.ConnectionID)
	}
	delete(s.objects, name)
	delete(s.linked, name)
	delete(s.selected, name)
	if s.active == name {
		s.active = ""
	}
}

func (s *Scene) SetActive(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[name]; !ok {
		return fmt.Errorf("activate %q: %w", name, ErrObjectNotFound)
	}
	s.selected[name] = true
	s.active = name
	return nil
}

func (s *Scene) Active() (*Object, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[s.active]
	return obj, ok
}

// Selected reports whether the object is part of the selection
func (s *Scene) Selected(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected[name]
}

func (s *Scene) DeselectAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]bool)
	s.active = ""
}

func (s *Scene) Segment(id int) (*road.Segment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seg, ok := s.segments[id]
	return seg, ok
}

func (s *Scene) Segments() []*road.Segment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	segs := make([]*road.Segment, 0, len(s.segments))
	for _, seg := range s.segments {
		segs = append(segs, seg)
	}
	sort.Slice(segs, func(i, j int) bool {
		return segs[i].ConnectionID < segs[j].ConnectionID
	})
	return segs
}

// Objects returns all objects in data, sorted by name
func (s *Scene) Objects() []*Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objs := make([]*Object, 0, len(s.objects))
	for _, obj := range s.objects {
		objs = append(objs, obj)
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].Name < objs[j].Name })
	return objs
}

// LinkedObjects returns the objects visible in the view, sorted by name
func (s *Scene) LinkedObjects() []*Object {
	s.mu.RLock()
	defer s.mu.RUnlock()
	objs := make([]*Object, 0, len(s.linked))
	for name := range s.linked {
		objs = append(objs, s.objects[name])
	}
	sort.Slice(objs, func(i, j int) bool { return objs[i].Name < objs[j].Name })
	return objs
}

// Raycast returns the closest face hit among linked objects
func (s *Scene) Raycast(ray geometry.Ray) (Hit, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	best := Hit{Distance: math.MaxFloat64}
	found := false
	for name := range s.linked {
		obj := s.objects[name]
		for _, tri := range obj.Triangles() {
			dist, ok := tri.IntersectRay(ray)
			if !ok || dist >= best.Distance {
				continue
			}
			best = Hit{Point: ray.At(dist), Distance: dist, Object: obj}
			found = true
		}
	}
	return best, found
}
