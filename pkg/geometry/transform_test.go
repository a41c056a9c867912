package geometry

import (
	"math"
	"testing"
)

func vecNear(a, b Vector3, eps float64) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestIdentityTransform(t *testing.T) {
	tr := IdentityTransform()
	if !tr.IsIdentity() {
		t.Error("identity transform should report IsIdentity")
	}

	p := NewVector3(1, 2, 3)
	if tr.Apply(p) != p {
		t.Errorf("identity transform moved point: got %v", tr.Apply(p))
	}
}

func TestTransformTranslate(t *testing.T) {
	tr := IdentityTransform()
	tr.Position = NewVector3(10, 0, -5)

	result := tr.Apply(NewVector3(1, 1, 1))
	expected := NewVector3(11, 1, -4)
	if result != expected {
		t.Errorf("translate failed: expected %v, got %v", expected, result)
	}
}

func TestTransformScale(t *testing.T) {
	tr := IdentityTransform()
	tr.Scale = NewVector3(2, 3, 4)

	result := tr.Apply(NewVector3(1, 1, 1))
	expected := NewVector3(2, 3, 4)
	if result != expected {
		t.Errorf("scale failed: expected %v, got %v", expected, result)
	}
}

func TestTransformRotateZ(t *testing.T) {
	tr := IdentityTransform()
	tr.Rotation = NewVector3(0, 0, 90)

	result := tr.Apply(NewVector3(1, 0, 0))
	expected := NewVector3(0, 1, 0)
	if !vecNear(result, expected, 1e-10) {
		t.Errorf("rotate Z failed: expected %v, got %v", expected, result)
	}
}

func TestTransformRotateY(t *testing.T) {
	tr := IdentityTransform()
	tr.Rotation = NewVector3(0, 90, 0)

	result := tr.Apply(NewVector3(1, 0, 0))
	expected := NewVector3(0, 0, -1)
	if !vecNear(result, expected, 1e-10) {
		t.Errorf("rotate Y failed: expected %v, got %v", expected, result)
	}
}

func TestTransformApplyToBox(t *testing.T) {
	tr := IdentityTransform()
	tr.Position = NewVector3(5, 0, 0)

	box := NewBoundingBox()
	box.Extend(NewVector3(-1, -1, -1))
	box.Extend(NewVector3(1, 1, 1))

	moved := tr.ApplyToBox(box)
	if moved.Min != NewVector3(4, -1, -1) {
		t.Errorf("box Min failed: got %v", moved.Min)
	}
	if moved.Max != NewVector3(6, 1, 1) {
		t.Errorf("box Max failed: got %v", moved.Max)
	}
}
