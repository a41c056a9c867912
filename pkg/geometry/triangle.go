package geometry

// Triangle is one face of a mesh, wound counter-clockwise when viewed
// from the front.
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a triangle from its corner points
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Normal returns the unit face normal implied by the winding order, or the
// zero vector for a degenerate triangle.
func (t Triangle) Normal() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

// Transformed returns the triangle with every corner mapped through fn.
func (t Triangle) Transformed(fn func(Vector3) Vector3) Triangle {
	return Triangle{V1: fn(t.V1), V2: fn(t.V2), V3: fn(t.V3)}
}
