package geometry

import "math"

// Reference axes of the plan view. Headings are measured about UnitZ,
// counter-clockwise positive, starting at UnitY.
var (
	UnitX = Vector3{X: 1}
	UnitY = Vector3{Y: 1}
	UnitZ = Vector3{Z: 1}
)

// HeadingOf returns the signed plan-view angle of v measured from +Y.
// A vector along +X has heading -Pi/2.
func HeadingOf(v Vector3) float64 {
	return math.Atan2(-v.X, v.Y)
}

// HeadingVector returns the unit vector in the XY plane for a heading.
// It is the inverse of HeadingOf for non-zero plan-view vectors.
func HeadingVector(heading float64) Vector3 {
	return Vector3{X: -math.Sin(heading), Y: math.Cos(heading)}
}

// NormalizeAngle wraps an angle into (-Pi, Pi]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
