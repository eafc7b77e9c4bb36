package script

import (
	"github.com/philipparndt/goroad/internal/placement"
	"github.com/philipparndt/goroad/pkg/geometry"
)

// DefaultEyeHeight is the height rays are cast from in plan view
const DefaultEyeHeight = 1000.0

var _ placement.Host = (*PlanViewHost)(nil)

// PlanViewHost is a headless top-down view. Event coordinates are taken as
// world x/y and every ray looks straight down.
type PlanViewHost struct {
	Height float64

	Cursor         placement.Cursor
	StatusText     string
	CursorLocation geometry.Vector3
	Warnings       []string
}

// NewPlanViewHost creates a host looking down from DefaultEyeHeight
func NewPlanViewHost() *PlanViewHost {
	return &PlanViewHost{Height: DefaultEyeHeight}
}

func (h *PlanViewHost) CastRay(x, y float64) geometry.Ray {
	height := h.Height
	if height == 0 {
		height = DefaultEyeHeight
	}
	return geometry.NewRay(geometry.NewVector3(x, y, height), geometry.NewVector3(0, 0, -1))
}

func (h *PlanViewHost) SetCursor(c placement.Cursor) {
	h.Cursor = c
}

func (h *PlanViewHost) SetStatusText(text string) {
	h.StatusText = text
}

func (h *PlanViewHost) SetCursorLocation(p geometry.Vector3) {
	h.CursorLocation = p
}

func (h *PlanViewHost) Warn(msg string) {
	h.Warnings = append(h.Warnings, msg)
}
