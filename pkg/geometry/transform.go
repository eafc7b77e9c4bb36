package geometry

// Transform maps a canonical segment onto a target start/end pair.
// Points are mapped as Rotation * Scale * p + Translation.
type Transform struct {
	Rotation    Matrix3
	Scale       Matrix3
	Translation Vector3
}

// Linear returns the combined rotation and scale
func (t Transform) Linear() Matrix3 {
	return t.Rotation.Mul(t.Scale)
}

// Apply transforms a point
func (t Transform) Apply(p Vector3) Vector3 {
	return t.Linear().Apply(p).Add(t.Translation)
}

// ComputeTransform returns the transform that moves the canonical origin to
// targetStart, scales along the canonical direction by
// |targetEnd-targetStart| / |canonicalEnd-canonicalStart| and, unless
// headingFixed, rotates the canonical direction onto the target direction.
// The second return value is false when either length is zero; callers
// must then keep their previous shape.
func ComputeTransform(canonicalStart, canonicalEnd, targetStart, targetEnd Vector3, headingFixed bool) (Transform, bool) {
	vectorObject := canonicalEnd.Sub(canonicalStart)
	vectorSelected := targetEnd.Sub(targetStart)
	lengthObject := vectorObject.Length()
	lengthSelected := vectorSelected.Length()
	if lengthObject == 0 || lengthSelected == 0 {
		return Transform{}, false
	}

	t := Transform{
		Rotation:    Identity3(),
		Scale:       ScaleAlong(vectorObject, lengthSelected/lengthObject),
		Translation: targetStart,
	}
	if !headingFixed {
		t.Rotation = RotationBetween(vectorObject, vectorSelected)
	}
	return t, true
}
