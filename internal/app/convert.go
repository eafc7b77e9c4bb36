package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/goroad/pkg/geometry"
)

// Roads live in a Z-up frame, raylib is Y-up. (x, y, z) maps to (x, z, -y).

func toRaylib(v geometry.Vector3) rl.Vector3 {
	return rl.Vector3{X: float32(v.X), Y: float32(v.Z), Z: float32(-v.Y)}
}

func fromRaylib(v rl.Vector3) geometry.Vector3 {
	return geometry.NewVector3(float64(v.X), float64(-v.Z), float64(v.Y))
}

// toRay converts a raylib picking ray into scene space
func toRay(r rl.Ray) geometry.Ray {
	return geometry.NewRay(fromRaylib(r.Position), fromRaylib(r.Direction))
}
