package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = rl.Vector3{}
}

// setCameraTopView looks straight down onto the ground plane
func (app *App) setCameraTopView() {
	app.Camera.angleX = 1.5
	app.Camera.angleY = 0
}

// orbit rotates the camera around its target
func (app *App) orbit(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01

	// Stay above the ground and short of the pole
	if app.Camera.angleX > 1.5 {
		app.Camera.angleX = 1.5
	}
	if app.Camera.angleX < 0.05 {
		app.Camera.angleX = 0.05
	}
}

// zoom scales the camera distance by the wheel movement
func (app *App) zoom(wheel float32) {
	app.Camera.distance *= 1.0 - wheel*0.08
	if app.Camera.distance < 2.0 {
		app.Camera.distance = 2.0
	}
	if app.Camera.distance > 5000 {
		app.Camera.distance = 5000
	}
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doPan moves the camera target within the ground plane
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position)
	forward.Y = 0
	forward = rl.Vector3Normalize(forward)
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, rl.Vector3{Y: 1}))

	panSpeed := app.Camera.distance * 0.002

	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(right, -delta.X*panSpeed))
	app.Camera.target = rl.Vector3Add(app.Camera.target, rl.Vector3Scale(forward, delta.Y*panSpeed))
}
