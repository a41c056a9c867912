package geometry

import "math"

// Ray is a half-line with an origin and a unit direction
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// NewRay creates a ray, normalizing the direction
func NewRay(origin, direction Vector3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// IntersectTriangle tests the ray against a triangle using the
// Möller–Trumbore algorithm. Returns the hit distance along the ray.
func (r Ray) IntersectTriangle(tri Triangle) (float64, bool) {
	const epsilon = 1e-9

	edge1 := tri.V2.Sub(tri.V1)
	edge2 := tri.V3.Sub(tri.V1)
	h := r.Direction.Cross(edge2)
	a := edge1.Dot(h)
	if a > -epsilon && a < epsilon {
		return 0, false // ray parallel to triangle plane
	}

	f := 1.0 / a
	s := r.Origin.Sub(tri.V1)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * r.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, false
	}

	t := f * edge2.Dot(q)
	if t <= epsilon {
		return 0, false // intersection behind the origin
	}
	return t, true
}

// IntersectBox tests the ray against an axis-aligned box using the slab
// method. Returns the distance to the nearest intersection point; a ray
// starting inside the box reports distance 0.
func (r Ray) IntersectBox(box BoundingBox) (float64, bool) {
	if box.IsEmpty() {
		return 0, false
	}

	tMin := math.Inf(-1)
	tMax := math.Inf(1)

	origin := [3]float64{r.Origin.X, r.Origin.Y, r.Origin.Z}
	dir := [3]float64{r.Direction.X, r.Direction.Y, r.Direction.Z}
	min := [3]float64{box.Min.X, box.Min.Y, box.Min.Z}
	max := [3]float64{box.Max.X, box.Max.Y, box.Max.Z}

	for axis := 0; axis < 3; axis++ {
		if math.Abs(dir[axis]) < 1e-12 {
			// Ray parallel to the slab: must already be inside it
			if origin[axis] < min[axis] || origin[axis] > max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (min[axis] - origin[axis]) / dir[axis]
		t2 := (max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false // box entirely behind the ray
	}
	if tMin < 0 {
		return 0, true // origin inside the box
	}
	return tMin, true
}
