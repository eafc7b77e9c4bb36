package placement

import "github.com/philipparndt/goroad/pkg/geometry"

// State of the placement session
type State int

const (
	StateInit State = iota
	StateSelectStart
	StateSelectEnd
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "INIT"
	case StateSelectStart:
		return "SELECT_START"
	case StateSelectEnd:
		return "SELECT_END"
	case StateTerminated:
		return "TERMINATED"
	default:
		return "UNKNOWN"
	}
}

// PointerSample is a resolved pointer position
type PointerSample struct {
	Point   geometry.Vector3
	Heading float64
	Snapped bool
}

// Session is the state carried between events of one tool invocation
type Session struct {
	State          State
	Start          PointerSample
	SnappedAtStart bool

	// last valid pointer point, reused when a ray misses every plane
	last    geometry.Vector3
	hasLast bool
}
