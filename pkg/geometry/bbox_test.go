package geometry

import "testing"

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Error("new bounding box should be empty")
	}

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(-1, 0, 5))

	expectedMin := NewVector3(-1, 0, 3)
	expectedMax := NewVector3(1, 2, 5)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxCenterAndSize(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(4, 2, 6))

	center := bbox.Center()
	expected := NewVector3(2, 1, 3)
	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}

	size := bbox.Size()
	expectedSize := NewVector3(4, 2, 6)
	if size != expectedSize {
		t.Errorf("Size failed: expected %v, got %v", expectedSize, size)
	}
}

func TestBoundingBoxUnion(t *testing.T) {
	a := NewBoundingBox()
	a.Extend(NewVector3(0, 0, 0))
	a.Extend(NewVector3(1, 1, 1))

	b := NewBoundingBox()
	b.Extend(NewVector3(5, 5, 5))
	b.Extend(NewVector3(6, 6, 6))

	union := a.Union(b)

	// The union must contain both boxes exactly
	if !union.ContainsBox(a) {
		t.Error("union does not contain first box")
	}
	if !union.ContainsBox(b) {
		t.Error("union does not contain second box")
	}
	if union.Min != a.Min {
		t.Errorf("union Min failed: expected %v, got %v", a.Min, union.Min)
	}
	if union.Max != b.Max {
		t.Errorf("union Max failed: expected %v, got %v", b.Max, union.Max)
	}
}

func TestBoundingBoxUnionWithEmpty(t *testing.T) {
	a := NewBoundingBox()
	a.Extend(NewVector3(1, 2, 3))

	empty := NewBoundingBox()

	union := a.Union(empty)
	if union.Min != a.Min || union.Max != a.Max {
		t.Errorf("union with empty box changed bounds: got %v", union)
	}

	union = empty.Union(a)
	if union.Min != a.Min || union.Max != a.Max {
		t.Errorf("union from empty box lost bounds: got %v", union)
	}
}

func TestBoundingBoxContains(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(2, 2, 2))

	if !bbox.Contains(NewVector3(1, 1, 1)) {
		t.Error("box should contain interior point")
	}
	if !bbox.Contains(NewVector3(0, 0, 0)) {
		t.Error("box should contain corner point")
	}
	if bbox.Contains(NewVector3(3, 1, 1)) {
		t.Error("box should not contain exterior point")
	}
}
