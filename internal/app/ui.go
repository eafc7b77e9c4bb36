package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/road"
	"github.com/philipparndt/goroad/pkg/analysis"
	"github.com/philipparndt/goroad/version"
)

// drawUI draws the user interface
func (app *App) drawUI() {
	y := int32(10)
	lineHeight := int32(20)
	fontSize16 := int32(16)
	fontSize14 := int32(14)
	fontSize12 := int32(12)

	screenWidth := int32(rl.GetScreenWidth())
	screenHeight := int32(rl.GetScreenHeight())

	// === NETWORK ===
	result := analysis.AnalyzeNetwork(app.scene.Segments())
	rl.DrawText("Network:", 10, y, fontSize16, rl.Yellow)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Roads: %d", result.SegmentCount), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Total length: %.2f m", result.TotalLength), 10, y, fontSize14, rl.White)
	y += lineHeight
	rl.DrawText(fmt.Sprintf("  Connections: %d", result.Connections), 10, y, fontSize14, rl.White)
	y += lineHeight
	if app.store != nil {
		project := app.store.Path()
		if app.UI.dirty {
			project += " *"
		}
		rl.DrawText(fmt.Sprintf("  Project: %s", project), 10, y, fontSize14, rl.LightGray)
		y += lineHeight
	}
	y += lineHeight

	// === ACTIVE ===
	if obj, ok := app.scene.Active(); ok && obj.Segment != nil {
		rl.DrawText(fmt.Sprintf("Active: %s", obj.Name), 10, y, fontSize16, rl.Yellow)
		y += lineHeight
		for _, key := range []string{road.AttrID, road.AttrX, road.AttrY, road.AttrHeading, road.AttrLength} {
			v, _ := obj.Get(key)
			rl.DrawText(fmt.Sprintf("  %s: %v", key, formatAttr(v)), 10, y, fontSize14, rl.White)
			y += lineHeight
		}
		y += lineHeight
	}

	// === HELP ===
	if app.View.showHelp {
		rl.DrawText("Controls:", 10, y, fontSize16, rl.Yellow)
		y += lineHeight
		for _, line := range []string{
			"  R: Place straight road",
			"  Left Click: Select | Delete: Remove road",
			"  Middle Drag: Orbit | Shift+Middle: Pan | Wheel: Zoom",
			"  Home: Reset | T: Top | G: Grid | W: Wireframe | F: Fill",
			"  Ctrl+S: Save | H: Hide help",
		} {
			rl.DrawText(line, 10, y, fontSize14, rl.LightGray)
			y += lineHeight
		}
	}

	// Status bar of the running tool
	if app.tool.Active() && app.Host.statusText != "" {
		barHeight := int32(28)
		rl.DrawRectangle(0, screenHeight-barHeight, screenWidth, barHeight, rl.NewColor(0, 0, 0, 200))
		rl.DrawText(app.Host.statusText, 10, screenHeight-barHeight+7, fontSize14, rl.White)

		if session, ok := app.tool.Session(); ok {
			state := session.State.String()
			if session.SnappedAtStart {
				state += " (snapped)"
			}
			w := rl.MeasureText(state, fontSize14)
			rl.DrawText(state, screenWidth-w-10, screenHeight-barHeight+7, fontSize14, rl.Lime)
		}
	}

	// Messages in the bottom-right corner
	msgY := screenHeight - 70
	for _, m := range app.activeMessages(time.Now()) {
		color := rl.Green
		if m.warning {
			color = rl.Orange
		}
		w := rl.MeasureText(m.text, fontSize14)
		rl.DrawRectangle(screenWidth-w-30, msgY-6, w+20, 26, rl.NewColor(0, 0, 0, 200))
		rl.DrawText(m.text, screenWidth-w-20, msgY, fontSize14, color)
		msgY -= 32
	}

	// Version and FPS in the top-right corner
	versionText := fmt.Sprintf("v%s  FPS: %d", version.GetVersion(), rl.GetFPS())
	w := rl.MeasureText(versionText, fontSize12)
	rl.DrawText(versionText, screenWidth-w-10, 10, fontSize12, rl.Gray)
}

func formatAttr(v any) string {
	switch val := v.(type) {
	case float64:
		return fmt.Sprintf("%.3f", val)
	case nil:
		return "-"
	default:
		return fmt.Sprint(val)
	}
}
