package geometry

import (
	"math"
	"testing"
)

func unitTriangle() Triangle {
	return NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)
}

func TestRayIntersectTriangleHit(t *testing.T) {
	// Triangle in the z=0 plane, ray shooting down the -Z axis through it
	ray := NewRay(NewVector3(0.2, 0.2, 5), NewVector3(0, 0, -1))

	dist, hit := ray.IntersectTriangle(unitTriangle())
	if !hit {
		t.Fatal("expected ray to hit the triangle")
	}
	if math.Abs(dist-5.0) > 1e-9 {
		t.Errorf("hit distance failed: expected 5, got %v", dist)
	}
}

func TestRayIntersectTriangleMiss(t *testing.T) {
	// Aimed outside the triangle
	ray := NewRay(NewVector3(2, 2, 5), NewVector3(0, 0, -1))

	if _, hit := ray.IntersectTriangle(unitTriangle()); hit {
		t.Error("expected ray to miss the triangle")
	}
}

func TestRayIntersectTriangleBehindOrigin(t *testing.T) {
	// Triangle behind the ray origin must not register a hit
	ray := NewRay(NewVector3(0.2, 0.2, -5), NewVector3(0, 0, -1))

	if _, hit := ray.IntersectTriangle(unitTriangle()); hit {
		t.Error("triangle behind the origin should not be hit")
	}
}

func TestRayIntersectTransformedTriangle(t *testing.T) {
	// A triangle moved out of the ray's path stops being hit, and a ray
	// aimed at the moved position hits at the translated distance
	moved := unitTriangle().Transformed(func(v Vector3) Vector3 {
		return v.Add(NewVector3(10, 0, 0))
	})

	ray := NewRay(NewVector3(0.2, 0.2, 5), NewVector3(0, 0, -1))
	if _, hit := ray.IntersectTriangle(moved); hit {
		t.Error("expected ray to miss the translated triangle")
	}

	aimed := NewRay(NewVector3(10.2, 0.2, 5), NewVector3(0, 0, -1))
	dist, hit := aimed.IntersectTriangle(moved)
	if !hit {
		t.Fatal("expected ray to hit the translated triangle")
	}
	if math.Abs(dist-5.0) > 1e-9 {
		t.Errorf("hit distance failed: expected 5, got %v", dist)
	}
}

func TestRayIntersectBox(t *testing.T) {
	box := NewBoundingBox()
	box.Extend(NewVector3(-1, -1, -1))
	box.Extend(NewVector3(1, 1, 1))

	ray := NewRay(NewVector3(0, 0, 5), NewVector3(0, 0, -1))
	dist, hit := ray.IntersectBox(box)
	if !hit {
		t.Fatal("expected ray to hit the box")
	}
	if math.Abs(dist-4.0) > 1e-9 {
		t.Errorf("hit distance failed: expected 4, got %v", dist)
	}

	miss := NewRay(NewVector3(5, 5, 5), NewVector3(0, 0, -1))
	if _, hit := miss.IntersectBox(box); hit {
		t.Error("expected ray to miss the box")
	}
}

func TestRayIntersectBoxFromInside(t *testing.T) {
	box := NewBoundingBox()
	box.Extend(NewVector3(-1, -1, -1))
	box.Extend(NewVector3(1, 1, 1))

	ray := NewRay(NewVector3(0, 0, 0), NewVector3(1, 0, 0))
	dist, hit := ray.IntersectBox(box)
	if !hit {
		t.Fatal("ray starting inside the box should hit")
	}
	if dist != 0 {
		t.Errorf("inside hit distance failed: expected 0, got %v", dist)
	}
}
