package placement

// EventType categorizes host input events
type EventType int

const (
	EventNone EventType = iota
	EventMove
	EventPress
	EventRelease
	EventKey
	EventTimer
)

func (t EventType) String() string {
	switch t {
	case EventMove:
		return "move"
	case EventPress:
		return "press"
	case EventRelease:
		return "release"
	case EventKey:
		return "key"
	case EventTimer:
		return "timer"
	default:
		return "none"
	}
}

// Button identifies a pointer button
type Button int

const (
	ButtonNone Button = iota
	ButtonPrimary
	ButtonSecondary
)

// Key identifies the keys the tool reacts to
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyOther
)

// Event is one input event with pointer coordinates in view space
type Event struct {
	Type   EventType
	Button Button
	Key    Key
	X, Y   float64
}

// Move builds a pointer movement event
func Move(x, y float64) Event {
	return Event{Type: EventMove, X: x, Y: y}
}

// Click builds a primary button release at x, y
func Click(x, y float64) Event {
	return Event{Type: EventRelease, Button: ButtonPrimary, X: x, Y: y}
}

// Escape builds an escape key press
func Escape() Event {
	return Event{Type: EventKey, Key: KeyEscape}
}

// Status is returned for every handled event
type Status int

const (
	// StatusRunning keeps the modal loop alive and consumes the event
	StatusRunning Status = iota
	// StatusPassThrough keeps the loop alive and lets the host handle the event
	StatusPassThrough
	// StatusFinished is returned once the loop has ended
	StatusFinished
	// StatusCancelled ends the loop on a cancel event
	StatusCancelled
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPassThrough:
		return "pass-through"
	case StatusFinished:
		return "finished"
	case StatusCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Done reports whether the modal loop has ended
func (s Status) Done() bool {
	return s == StatusFinished || s == StatusCancelled
}
