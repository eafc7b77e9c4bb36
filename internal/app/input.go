package app

import (
	"context"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/placement"
	"go.uber.org/zap"
)

// frameInput is the pointer and key state of one frame
type frameInput struct {
	x, y          float64
	moved         bool
	leftPressed   bool
	leftReleased  bool
	rightPressed  bool
	rightReleased bool
	escape        bool
}

func readFrameInput() frameInput {
	pos := rl.GetMousePosition()
	delta := rl.GetMouseDelta()
	return frameInput{
		x:             float64(pos.X),
		y:             float64(pos.Y),
		moved:         delta.X != 0 || delta.Y != 0,
		leftPressed:   rl.IsMouseButtonPressed(rl.MouseLeftButton),
		leftReleased:  rl.IsMouseButtonReleased(rl.MouseLeftButton),
		rightPressed:  rl.IsMouseButtonPressed(rl.MouseRightButton),
		rightReleased: rl.IsMouseButtonReleased(rl.MouseRightButton),
		escape:        rl.IsKeyPressed(rl.KeyEscape),
	}
}

// toolEvents turns a frame into the event sequence the placement tool sees.
// A frame without input yields a timer tick.
func toolEvents(in frameInput) []placement.Event {
	var events []placement.Event
	at := func(ev placement.Event) placement.Event {
		ev.X, ev.Y = in.x, in.y
		return ev
	}

	if in.moved {
		events = append(events, placement.Move(in.x, in.y))
	}
	if in.leftPressed {
		events = append(events, at(placement.Event{Type: placement.EventPress, Button: placement.ButtonPrimary}))
	}
	if in.rightPressed {
		events = append(events, at(placement.Event{Type: placement.EventPress, Button: placement.ButtonSecondary}))
	}
	if in.leftReleased {
		events = append(events, placement.Click(in.x, in.y))
	}
	if in.rightReleased {
		events = append(events, at(placement.Event{Type: placement.EventRelease, Button: placement.ButtonSecondary}))
	}
	if in.escape {
		events = append(events, placement.Escape())
	}
	if len(events) == 0 {
		events = append(events, placement.Event{Type: placement.EventTimer})
	}
	return events
}

// handleInput processes user input
func (app *App) handleInput() {
	in := readFrameInput()
	app.Interaction.lastMousePos = rl.Vector2{X: float32(in.x), Y: float32(in.y)}

	// Middle drag orbits, Shift+middle drag pans
	shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
	ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	app.Interaction.isOrbiting = false
	app.Interaction.isPanning = false
	if rl.IsMouseButtonDown(rl.MouseMiddleButton) {
		delta := rl.GetMouseDelta()
		if shiftPressed {
			app.Interaction.isPanning = true
			app.doPan(delta)
		} else {
			app.Interaction.isOrbiting = true
			app.orbit(delta)
		}
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.zoom(wheel)
	}

	if ctrlPressed && rl.IsKeyPressed(rl.KeyS) {
		app.save()
		return
	}

	// View shortcuts
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyT) {
		app.setCameraTopView()
	}
	if rl.IsKeyPressed(rl.KeyW) {
		app.View.showWireframe = !app.View.showWireframe
	}
	if rl.IsKeyPressed(rl.KeyF) {
		app.View.showFilled = !app.View.showFilled
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}

	if app.tool.Active() {
		for _, ev := range toolEvents(in) {
			app.dispatch(ev)
		}
		return
	}

	switch {
	case rl.IsKeyPressed(rl.KeyR):
		app.tool.Invoke(placement.Event{Type: placement.EventKey, Key: placement.KeyOther})
	case rl.IsKeyPressed(rl.KeyDelete), rl.IsKeyPressed(rl.KeyBackspace):
		app.deleteActive()
	case in.escape:
		app.scene.DeselectAll()
	case in.leftReleased:
		app.selectAt(in.x, in.y)
	}
}

// dispatch hands one event to the running tool
func (app *App) dispatch(ev placement.Event) {
	res := app.tool.HandleEvent(ev)

	if res.Segment != nil {
		app.UI.dirty = true
		app.notify(fmt.Sprintf("Road %d created (%.2f m)", res.Segment.ConnectionID, res.Segment.Length), false)
	}
	if res.Status == placement.StatusCancelled {
		app.log.Debug("road tool closed")
	}
}

// selectAt makes the object under the pointer active
func (app *App) selectAt(x, y float64) {
	hit, ok := app.scene.Raycast(app.CastRay(x, y))
	if !ok {
		app.scene.DeselectAll()
		return
	}
	app.scene.DeselectAll()
	if err := app.scene.SetActive(hit.Object.Name); err != nil {
		app.log.Debug("select failed", zap.Error(err))
	}
}

// deleteActive removes the active road from the scene
func (app *App) deleteActive() {
	obj, ok := app.scene.Active()
	if !ok || obj.Segment == nil {
		return
	}
	if err := app.scene.Unlink(obj.Name); err != nil {
		app.Warn(err.Error())
		return
	}
	// Roads are not persistent, unlinking drops them from the scene
	app.UI.dirty = true
	app.notify(fmt.Sprintf("Deleted %s", obj.Name), false)
}

// save writes the network to the project file
func (app *App) save() {
	if app.store == nil {
		app.Warn("No project file, start the editor with a project path to save")
		return
	}
	n, err := app.store.Save(context.Background(), app.scene)
	if err != nil {
		app.Warn(fmt.Sprintf("Save failed: %v", err))
		return
	}
	app.UI.dirty = false
	app.notify(fmt.Sprintf("Saved %d roads to %s", n, app.store.Path()), false)
}
