package geometry

import "math"

// Matrix3 is a row-major 3x3 linear transform
type Matrix3 [3][3]float64

// Identity3 returns the identity matrix
func Identity3() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// RotationZ returns a counter-clockwise rotation about the Z axis
func RotationZ(angle float64) Matrix3 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	}
}

// RotationAxisAngle returns the rotation of angle radians about a unit axis (Rodrigues)
func RotationAxisAngle(axis Vector3, angle float64) Matrix3 {
	a := axis.Normalize()
	c, s := math.Cos(angle), math.Sin(angle)
	t := 1 - c
	return Matrix3{
		{t*a.X*a.X + c, t*a.X*a.Y - s*a.Z, t*a.X*a.Z + s*a.Y},
		{t*a.X*a.Y + s*a.Z, t*a.Y*a.Y + c, t*a.Y*a.Z - s*a.X},
		{t*a.X*a.Z - s*a.Y, t*a.Y*a.Z + s*a.X, t*a.Z*a.Z + c},
	}
}

// ScaleAlong scales by factor along axis only; directions perpendicular to axis are kept
func ScaleAlong(axis Vector3, factor float64) Matrix3 {
	a := axis.Normalize()
	k := factor - 1
	m := Identity3()
	comps := [3]float64{a.X, a.Y, a.Z}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] += k * comps[i] * comps[j]
		}
	}
	return m
}

// RotationBetween returns the minimal rotation taking the direction of from onto the direction of to
func RotationBetween(from, to Vector3) Matrix3 {
	f := from.Normalize()
	t := to.Normalize()
	if f.IsZero() || t.IsZero() {
		return Identity3()
	}

	cos := math.Max(-1, math.Min(1, f.Dot(t)))
	axis := f.Cross(t)
	if axis.Length() < 1e-12 {
		if cos > 0 {
			return Identity3()
		}
		// Opposite directions: half turn about any axis perpendicular to from.
		// Prefer Z so plan-view geometry stays in its plane.
		perp := f.Cross(UnitZ)
		if perp.Length() < 1e-12 {
			perp = f.Cross(UnitX)
		}
		return RotationAxisAngle(f.Cross(perp), math.Pi)
	}
	return RotationAxisAngle(axis, math.Acos(cos))
}

// Mul returns m * other
func (m Matrix3) Mul(other Matrix3) Matrix3 {
	var r Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * other[k][j]
			}
		}
	}
	return r
}

// Apply multiplies the matrix with a column vector
func (m Matrix3) Apply(v Vector3) Vector3 {
	return Vector3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}
