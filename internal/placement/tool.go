package placement

import (
	"errors"

	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/internal/snap"
	"github.com/philipparndt/goroad/internal/stencil"
	"github.com/philipparndt/goroad/pkg/geometry"
	"go.uber.org/zap"
)

// DefaultStatusText is shown while the tool is active
const DefaultStatusText = "Place road by clicking, press ESCAPE, RIGHTMOUSE to exit."

// Options configures a Tool. Zero values select the defaults.
type Options struct {
	StencilName  string
	ObjectName   string
	SnapCategory string
	StatusText   string
	Ground       geometry.Plane
	Logger       *zap.Logger
}

// Result is the outcome of one handled event
type Result struct {
	Status Status
	// Segment is set on the event that committed a road
	Segment *road.Segment
	// Err holds a refused commit; the tool keeps running
	Err error
}

// Tool is the modal straight-road placement tool
type Tool struct {
	host       Host
	store      scene.Store
	query      *snap.Query
	builder    *road.Builder
	stencil    *stencil.Preview
	objectName string
	statusText string
	log        *zap.Logger

	session *Session
}

// NewTool wires the tool to a host view and a scene
func NewTool(host Host, store scene.Store, raycaster scene.Raycaster, opts Options) *Tool {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.ObjectName == "" {
		opts.ObjectName = road.DefaultMeshName
	}
	if opts.StatusText == "" {
		opts.StatusText = DefaultStatusText
	}
	return &Tool{
		host:       host,
		store:      store,
		query:      snap.New(raycaster, opts.SnapCategory, opts.Ground, log),
		builder:    road.NewBuilder(store, opts.ObjectName),
		stencil:    stencil.New(store, opts.StencilName),
		objectName: opts.ObjectName,
		statusText: opts.StatusText,
		log:        log.Named("placement"),
	}
}

// Invoke starts a new session. A session that is still running is closed first.
func (t *Tool) Invoke(ev Event) Status {
	if t.Active() {
		t.Close()
	}
	t.store.DeselectAll()
	t.session = &Session{State: StateInit}
	t.log.Debug("tool invoked", zap.Stringer("event", ev.Type))
	return StatusRunning
}

// Active reports whether a session is running
func (t *Tool) Active() bool {
	return t.session != nil && t.session.State != StateTerminated
}

// Session returns a copy of the current session state
func (t *Tool) Session() (Session, bool) {
	if t.session == nil {
		return Session{}, false
	}
	return *t.session, true
}

// Stencil returns the preview handle
func (t *Tool) Stencil() *stencil.Preview {
	return t.stencil
}

// HandleEvent advances the state machine by one event
func (t *Tool) HandleEvent(ev Event) Result {
	if !t.Active() {
		return Result{Status: StatusFinished}
	}
	s := t.session

	if s.State == StateInit {
		t.enter()
	}

	switch ev.Type {
	case EventNone, EventTimer:
		return Result{Status: StatusPassThrough}
	case EventMove:
		return t.handleMove(ev)
	case EventPress:
		if ev.Button == ButtonSecondary {
			return t.cancel()
		}
	case EventRelease:
		switch ev.Button {
		case ButtonPrimary:
			return t.handleRelease(ev)
		case ButtonSecondary:
			return t.cancel()
		}
	case EventKey:
		if ev.Key == KeyEscape {
			return t.cancel()
		}
	}
	return Result{Status: StatusRunning}
}

// Close ends the session from outside the event stream, e.g. when the
// host shuts down. No preview outlives it.
func (t *Tool) Close() {
	if !t.Active() {
		return
	}
	t.teardown()
	t.log.Debug("session closed")
}

func (t *Tool) enter() {
	t.host.SetStatusText(t.statusText)
	t.host.SetCursor(CursorCrosshair)
	t.session.SnappedAtStart = false
	t.transition(StateSelectStart)
}

func (t *Tool) handleMove(ev Event) Result {
	s := t.session
	sample, ok := t.sample(ev)
	if !ok {
		return Result{Status: StatusRunning}
	}
	t.host.SetCursorLocation(sample.Point)

	if s.State != StateSelectEnd {
		return Result{Status: StatusPassThrough}
	}
	t.stencil.Update(t.resolveEnd(sample.Point), s.SnappedAtStart)
	return Result{Status: StatusRunning}
}

func (t *Tool) handleRelease(ev Event) Result {
	switch t.session.State {
	case StateSelectStart:
		return t.selectStart(ev)
	case StateSelectEnd:
		return t.selectEnd(ev)
	}
	return Result{Status: StatusRunning}
}

func (t *Tool) selectStart(ev Event) Result {
	s := t.session
	sample, ok := t.sample(ev)
	if !ok {
		return Result{Status: StatusRunning}
	}
	s.Start = sample
	s.SnappedAtStart = sample.Snapped

	if _, err := t.stencil.Ensure(sample.Point, sample.Heading); err != nil {
		t.log.Error("stencil unavailable", zap.Error(err))
	} else if err := t.store.SetActive(t.stencil.Name()); err != nil {
		t.log.Debug("stencil not activated", zap.Error(err))
	}
	t.host.SetCursorLocation(sample.Point)

	t.log.Debug("start selected",
		zap.Stringer("point", sample.Point),
		zap.Float64("heading", sample.Heading),
		zap.Bool("snapped", sample.Snapped))
	t.transition(StateSelectEnd)
	return Result{Status: StatusRunning}
}

func (t *Tool) selectEnd(ev Event) Result {
	s := t.session
	sample, ok := t.sample(ev)
	if !ok {
		return Result{Status: StatusRunning}
	}
	end := t.resolveEnd(sample.Point)

	result := Result{Status: StatusRunning}
	seg, err := t.commit(s.Start.Point, end)
	if err != nil {
		result.Err = err
		if errors.Is(err, road.ErrDegenerateInput) {
			t.host.Warn("Impossible to create zero length road!")
			t.log.Warn("commit refused", zap.Error(err), zap.Stringer("point", end))
		} else {
			t.host.Warn(err.Error())
			t.log.Error("commit failed", zap.Error(err))
		}
	} else {
		result.Segment = seg
		t.log.Info("road created",
			zap.Int("id", seg.ConnectionID),
			zap.Stringer("start", seg.Start),
			zap.Stringer("end", seg.End),
			zap.Float64("length", seg.Length),
			zap.Float64("heading", seg.Heading))
	}

	if err := t.stencil.Remove(); err != nil {
		t.log.Error("stencil not removed", zap.Error(err))
	}
	t.host.SetCursorLocation(sample.Point)
	t.transition(StateInit)
	return result
}

// commit builds the segment and links it into the scene as the active object
func (t *Tool) commit(start, end geometry.Vector3) (*road.Segment, error) {
	seg, err := t.builder.Build(start, end)
	if err != nil {
		return nil, err
	}
	obj := scene.NewRoadObject(t.store.UniqueName(t.objectName), seg)
	if err := t.store.Add(obj); err != nil {
		return nil, err
	}
	if err := t.store.Link(obj.Name); err != nil {
		return nil, err
	}
	if err := t.store.SetActive(obj.Name); err != nil {
		return nil, err
	}
	return seg, nil
}

func (t *Tool) cancel() Result {
	t.teardown()
	t.log.Debug("session cancelled")
	return Result{Status: StatusCancelled}
}

func (t *Tool) teardown() {
	if err := t.stencil.Remove(); err != nil {
		t.log.Error("stencil not removed", zap.Error(err))
	}
	t.host.SetCursor(CursorDefault)
	t.host.SetStatusText("")
	t.transition(StateTerminated)
}

// resolveEnd constrains end candidates to the start heading after a snapped start
func (t *Tool) resolveEnd(candidate geometry.Vector3) geometry.Vector3 {
	s := t.session
	if s.SnappedAtStart {
		return geometry.ProjectPointOntoHeadingRay(s.Start.Point, s.Start.Heading, candidate)
	}
	return candidate
}

// sample resolves the event position. When the ray meets no plane the
// last valid point is reused; without one the event is dropped.
func (t *Tool) sample(ev Event) (PointerSample, bool) {
	s := t.session
	c, err := t.query.Candidate(t.host.CastRay(ev.X, ev.Y))
	if err != nil {
		t.log.Debug("pointer sample unresolved", zap.Error(err))
		if !s.hasLast {
			return PointerSample{}, false
		}
		return PointerSample{Point: s.last}, true
	}
	s.last = c.Point
	s.hasLast = true
	return PointerSample{Point: c.Point, Heading: c.Heading, Snapped: c.Snapped}, true
}

func (t *Tool) transition(next State) {
	prev := t.session.State
	t.session.State = next
	if prev != next {
		t.log.Debug("state changed", zap.Stringer("from", prev), zap.Stringer("to", next))
	}
}
