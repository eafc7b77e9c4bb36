package app

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/placement"
	"github.com/philipparndt/goroad/pkg/geometry"
	"go.uber.org/zap"
)

const messageDuration = 4 * time.Second

var _ placement.Host = (*App)(nil)

// CastRay returns the picking ray through a screen position
func (app *App) CastRay(x, y float64) geometry.Ray {
	return toRay(rl.GetMouseRay(rl.Vector2{X: float32(x), Y: float32(y)}, app.Camera.camera))
}

func (app *App) SetCursor(c placement.Cursor) {
	app.Host.cursor = c
	switch c {
	case placement.CursorCrosshair:
		rl.SetMouseCursor(rl.MouseCursorCrosshair)
	default:
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (app *App) SetStatusText(text string) {
	app.Host.statusText = text
}

func (app *App) SetCursorLocation(p geometry.Vector3) {
	app.Host.cursorLocation = p
	app.Host.hasCursor = true
}

func (app *App) Warn(msg string) {
	app.log.Warn(msg)
	app.notify(msg, true)
}

// notify queues a transient message
func (app *App) notify(text string, warning bool) {
	app.Host.messages = append(app.Host.messages, message{
		text:    text,
		warning: warning,
		until:   time.Now().Add(messageDuration),
	})
	app.log.Debug("notice", zap.String("text", text), zap.Bool("warning", warning))
}

// activeMessages drops expired messages and returns the rest
func (app *App) activeMessages(now time.Time) []message {
	kept := app.Host.messages[:0]
	for _, m := range app.Host.messages {
		if now.Before(m.until) {
			kept = append(kept, m)
		}
	}
	app.Host.messages = kept
	return kept
}
