package geometry

import "math"

// Transform is a local spatial transform: translation, Euler rotation
// (degrees, applied X then Y then Z) and per-axis scale.
type Transform struct {
	Position Vector3
	Rotation Vector3 // Euler angles in degrees
	Scale    Vector3
}

// IdentityTransform returns a transform that leaves points unchanged
func IdentityTransform() Transform {
	return Transform{Scale: NewVector3(1, 1, 1)}
}

// IsIdentity reports whether the transform leaves points unchanged
func (t Transform) IsIdentity() bool {
	return t.Position == Vector3{} && t.Rotation == Vector3{} && t.Scale == NewVector3(1, 1, 1)
}

// Apply transforms a local-space point: scale, then rotate, then translate
func (t Transform) Apply(point Vector3) Vector3 {
	p := Vector3{
		X: point.X * t.Scale.X,
		Y: point.Y * t.Scale.Y,
		Z: point.Z * t.Scale.Z,
	}
	p = rotateEuler(p, t.Rotation)
	return p.Add(t.Position)
}

// rotateEuler rotates a point by Euler angles in degrees, X then Y then Z
func rotateEuler(p Vector3, angles Vector3) Vector3 {
	if (angles == Vector3{}) {
		return p
	}
	rx := angles.X * math.Pi / 180.0
	ry := angles.Y * math.Pi / 180.0
	rz := angles.Z * math.Pi / 180.0

	// Rotate around X
	cos, sin := math.Cos(rx), math.Sin(rx)
	p = Vector3{X: p.X, Y: p.Y*cos - p.Z*sin, Z: p.Y*sin + p.Z*cos}

	// Rotate around Y
	cos, sin = math.Cos(ry), math.Sin(ry)
	p = Vector3{X: p.X*cos + p.Z*sin, Y: p.Y, Z: -p.X*sin + p.Z*cos}

	// Rotate around Z
	cos, sin = math.Cos(rz), math.Sin(rz)
	return Vector3{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos, Z: p.Z}
}

// ApplyToBox transforms a bounding box by transforming all eight corners
// and re-extending; the result is conservative for rotated boxes.
func (t Transform) ApplyToBox(box BoundingBox) BoundingBox {
	if box.IsEmpty() {
		return box
	}
	result := NewBoundingBox()
	for _, x := range []float64{box.Min.X, box.Max.X} {
		for _, y := range []float64{box.Min.Y, box.Max.Y} {
			for _, z := range []float64{box.Min.Z, box.Max.Z} {
				result.Extend(t.Apply(NewVector3(x, y, z)))
			}
		}
	}
	return result
}
