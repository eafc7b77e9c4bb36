package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/internal/scene"
	"github.com/philipparndt/goroad/pkg/geometry"
)

var (
	roadColor     = rl.NewColor(70, 74, 84, 255)
	roadEdgeColor = rl.NewColor(190, 190, 200, 255)
	activeColor   = rl.NewColor(255, 160, 40, 255)
	stencilColor  = rl.NewColor(80, 200, 255, 255)
	axisColor     = rl.NewColor(255, 220, 60, 255)
)

// drawScene renders terrain, roads, the stencil and the 3D cursor
func (app *App) drawScene() {
	if app.View.showGrid {
		rl.DrawGrid(100, 4)
	}

	if app.Terrain.loaded && app.View.showFilled && app.scene.IsLinked(app.Terrain.name) {
		rl.DrawMesh(app.Terrain.mesh, app.Terrain.material, rl.MatrixIdentity())
	}

	active, _ := app.scene.Active()
	stencilName := app.tool.Stencil().Name()
	for _, obj := range app.scene.LinkedObjects() {
		switch {
		case obj.Name == stencilName:
			app.drawStencil(obj)
		case obj.Segment != nil:
			app.drawRoad(obj, obj == active)
		}
	}

	if app.tool.Active() && app.Host.hasCursor {
		rl.DrawSphere(toRaylib(app.Host.cursorLocation), app.Camera.distance*0.004, rl.Red)
	}
}

// drawRoad draws the road surface and its outline
func (app *App) drawRoad(obj *scene.Object, active bool) {
	if app.View.showFilled {
		for _, tri := range obj.Triangles() {
			v1, v2, v3 := toRaylib(tri.V1), toRaylib(tri.V2), toRaylib(tri.V3)
			// Both windings, roads are visible from below
			rl.DrawTriangle3D(v1, v2, v3, roadColor)
			rl.DrawTriangle3D(v1, v3, v2, roadColor)
		}
	}

	edgeColor := roadEdgeColor
	if active {
		edgeColor = activeColor
	}
	if app.View.showWireframe || active {
		app.drawEdges(obj, edgeColor)
	}

	// Center line from start to end
	seg := obj.Segment
	lift := geometry.NewVector3(0, 0, 0.02)
	rl.DrawLine3D(toRaylib(seg.Start.Add(lift)), toRaylib(seg.End.Add(lift)), axisColor)
}

// drawStencil draws the preview outline
func (app *App) drawStencil(obj *scene.Object) {
	app.drawEdges(obj, stencilColor)
	if end, ok := app.tool.Stencil().End(); ok {
		rl.DrawLine3D(toRaylib(obj.Location), toRaylib(end), axisColor)
	}
}

func (app *App) drawEdges(obj *scene.Object, color rl.Color) {
	if obj.Mesh == nil {
		return
	}
	for _, e := range obj.Mesh.WorldEdges(obj.Location) {
		rl.DrawLine3D(toRaylib(e[0]), toRaylib(e[1]), color)
	}
}
