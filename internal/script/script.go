package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/philipparndt/goroad/internal/placement"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/internal/scene"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Step is one scripted input event
type Step struct {
	Type   string  `yaml:"type"`
	Button string  `yaml:"button,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
}

// Script is a recorded interaction with the placement tool
type Script struct {
	Name   string  `yaml:"name,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Events []Step  `yaml:"events"`
}

// Load reads a script from a yaml file
func Load(filename string) (*Script, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

// Decode reads a script and checks every step
func Decode(r io.Reader) (*Script, error) {
	var s Script
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		if err == io.EOF {
			return &s, nil
		}
		return nil, err
	}
	for i, step := range s.Events {
		if _, err := step.Event(); err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
	}
	return &s, nil
}

// Event converts the step into a tool event
func (s Step) Event() (placement.Event, error) {
	ev := placement.Event{X: s.X, Y: s.Y}

	switch strings.ToLower(s.Type) {
	case "none", "":
		ev.Type = placement.EventNone
	case "move":
		ev.Type = placement.EventMove
	case "press":
		ev.Type = placement.EventPress
	case "release":
		ev.Type = placement.EventRelease
	case "click":
		ev.Type = placement.EventRelease
		if s.Button == "" {
			ev.Button = placement.ButtonPrimary
		}
	case "key":
		ev.Type = placement.EventKey
	case "timer":
		ev.Type = placement.EventTimer
	default:
		return ev, fmt.Errorf("unknown event type %q", s.Type)
	}

	switch strings.ToLower(s.Button) {
	case "":
	case "left", "primary":
		ev.Button = placement.ButtonPrimary
	case "right", "secondary":
		ev.Button = placement.ButtonSecondary
	default:
		return ev, fmt.Errorf("unknown button %q", s.Button)
	}

	switch strings.ToLower(s.Key) {
	case "":
	case "esc", "escape":
		ev.Key = placement.KeyEscape
	default:
		ev.Key = placement.KeyOther
	}
	return ev, nil
}

// Outcome summarizes a replayed script
type Outcome struct {
	Status placement.Status
	// Consumed counts the events handed to the tool before it stopped
	Consumed int
	Segments []*road.Segment
	Refused  []error
	Host     *PlanViewHost
}

// Run invokes a fresh tool on the scene and feeds it every scripted event.
// It stops early when the tool ends its loop.
func Run(s *Script, sc *scene.Scene, opts placement.Options) Outcome {
	host := NewPlanViewHost()
	if s.Height > 0 {
		host.Height = s.Height
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tool := NewTool(host, sc, opts)
	defer tool.Close()

	out := Outcome{Status: tool.Invoke(placement.Event{}), Host: host}
	for i, step := range s.Events {
		ev, err := step.Event()
		if err != nil {
			log.Warn("event skipped", zap.Int("index", i), zap.Error(err))
			continue
		}
		res := tool.HandleEvent(ev)
		out.Consumed = i + 1
		out.Status = res.Status
		if res.Segment != nil {
			out.Segments = append(out.Segments, res.Segment)
		}
		if res.Err != nil {
			out.Refused = append(out.Refused, res.Err)
		}
		if res.Status.Done() {
			break
		}
	}
	return out
}

// NewTool creates a placement tool acting on an in-memory scene
func NewTool(host placement.Host, sc *scene.Scene, opts placement.Options) *placement.Tool {
	return placement.NewTool(host, sc, sc, opts)
}
