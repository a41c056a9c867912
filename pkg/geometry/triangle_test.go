package geometry

import "testing"

func TestTriangleNormal(t *testing.T) {
	// Counter-clockwise in the z=0 plane faces +Z
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	n := tri.Normal()
	expected := NewVector3(0, 0, 1)
	if n != expected {
		t.Errorf("Normal failed: expected %v, got %v", expected, n)
	}

	// Reversed winding flips the normal
	flipped := NewTriangle(tri.V1, tri.V3, tri.V2).Normal()
	if flipped != NewVector3(0, 0, -1) {
		t.Errorf("reversed winding failed: expected (0,0,-1), got %v", flipped)
	}
}

func TestTriangleNormalDegenerate(t *testing.T) {
	// Collinear corners have no face; the normal must be zero, not NaN
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(2, 0, 0),
	)

	n := tri.Normal()
	if (n != Vector3{}) {
		t.Errorf("degenerate normal failed: expected zero vector, got %v", n)
	}
}

func TestTriangleTransformed(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)
	offset := NewVector3(2, 3, 4)

	moved := tri.Transformed(func(v Vector3) Vector3 {
		return v.Add(offset)
	})

	if moved.V1 != offset {
		t.Errorf("Transformed V1 failed: expected %v, got %v", offset, moved.V1)
	}
	if moved.V2 != NewVector3(3, 3, 4) || moved.V3 != NewVector3(2, 4, 4) {
		t.Errorf("Transformed corners failed: got %v, %v", moved.V2, moved.V3)
	}

	// Translation must not change the face normal
	if moved.Normal() != tri.Normal() {
		t.Errorf("translated normal changed: %v vs %v", moved.Normal(), tri.Normal())
	}
}
