package geometry

import (
	"errors"
	"math"
)

// ErrNoPlaneIntersection is returned when a pointer ray has no finite
// intersection with the ground plane nor with the camera-facing fallback plane.
var ErrNoPlaneIntersection = errors.New("no plane intersection")

const parallelEpsilon = 1e-9

// Ray is a half-line used for pointer picking
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a new ray
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Plane is defined by a point and a normal
type Plane struct {
	Point  Vector3
	Normal Vector3
}

// GroundPlane is the XY plane through the origin
var GroundPlane = Plane{Normal: UnitZ}

// IntersectLine intersects the infinite line through origin along direction
// with the plane. Points behind the origin are valid, matching how a
// viewport projects the pointer onto the ground.
func (p Plane) IntersectLine(origin, direction Vector3) (Vector3, bool) {
	denom := direction.Dot(p.Normal)
	if math.Abs(denom) < parallelEpsilon {
		return Vector3{}, false
	}
	t := p.Point.Sub(origin).Dot(p.Normal) / denom
	point := origin.Add(direction.Mul(t))
	if math.IsNaN(point.X) || math.IsInf(point.X, 0) ||
		math.IsNaN(point.Y) || math.IsInf(point.Y, 0) ||
		math.IsNaN(point.Z) || math.IsInf(point.Z, 0) {
		return Vector3{}, false
	}
	return point, true
}

// IntersectPointerWithPlane projects a pointer ray onto a plane. If the ray
// runs parallel to the plane it retries against the plane through the same
// point whose normal is the ray direction, so the cursor sticks to a
// camera-facing plane instead of getting lost.
func IntersectPointerWithPlane(rayOrigin, rayDirection, planePoint, planeNormal Vector3) (Vector3, error) {
	if point, ok := (Plane{Point: planePoint, Normal: planeNormal}).IntersectLine(rayOrigin, rayDirection); ok {
		return point, nil
	}
	if point, ok := (Plane{Point: planePoint, Normal: rayDirection}).IntersectLine(rayOrigin, rayDirection); ok {
		return point, nil
	}
	return Vector3{}, ErrNoPlaneIntersection
}

// ProjectPointOntoHeadingRay drops the component of (candidate - origin)
// perpendicular to the heading direction. The result lies on the line
// origin + t*HeadingVector(heading); t may be negative.
func ProjectPointOntoHeadingRay(origin Vector3, heading float64, candidate Vector3) Vector3 {
	v := candidate.Sub(origin)
	if v.IsZero() {
		return origin
	}
	u := HeadingVector(heading)
	return origin.Add(u.Mul(v.Dot(u)))
}
