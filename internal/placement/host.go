package placement

import "github.com/philipparndt/goroad/pkg/geometry"

// Cursor is a pointer glyph
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorCrosshair
)

// Host is what the tool needs from the viewport it runs in
type Host interface {
	// CastRay converts view coordinates into a world-space pointer ray
	CastRay(x, y float64) geometry.Ray
	SetCursor(c Cursor)
	// SetStatusText shows instructions; an empty text clears them
	SetStatusText(text string)
	// SetCursorLocation moves the 3D cursor marker
	SetCursorLocation(p geometry.Vector3)
	// Warn surfaces a recoverable problem to the user
	Warn(msg string)
}
