package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/placement"
	"github.com/philipparndt/goroad/pkg/geometry"
)

// CameraState holds all camera-related state
type CameraState struct {
	camera        rl.Camera3D
	distance      float32
	angleX        float32
	angleY        float32
	target        rl.Vector3 // Current camera target (can be panned)
	defaultDist   float32    // Default camera distance (for reset)
	defaultAngleX float32    // Default camera angle X (for reset)
	defaultAngleY float32    // Default camera angle Y (for reset)
}

// TerrainData holds the optional non-road mesh rays can hit
type TerrainData struct {
	loaded   bool
	name     string
	mesh     rl.Mesh
	material rl.Material
}

// ViewSettings holds display settings
type ViewSettings struct {
	showWireframe bool
	showFilled    bool
	showGrid      bool
	showHelp      bool
}

// InteractionState holds mouse and interaction state
type InteractionState struct {
	lastMousePos rl.Vector2
	isOrbiting   bool
	isPanning    bool
}

// HostState is what the placement tool pushed to the view
type HostState struct {
	cursor         placement.Cursor
	statusText     string
	cursorLocation geometry.Vector3
	hasCursor      bool
	messages       []message
}

// message is a transient notice in the bottom-right corner
type message struct {
	text    string
	warning bool
	until   time.Time
}

// UIState holds UI-related state
type UIState struct {
	// dirty is set when the network changed since the last save
	dirty bool
}
