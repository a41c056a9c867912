package geometry

import (
	"math"
	"testing"
)

func TestVector3Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vector3
		want Vector3
	}{
		{"add", NewVector3(1, 2, 3).Add(NewVector3(4, 5, 6)), NewVector3(5, 7, 9)},
		{"sub", NewVector3(5, 7, 9).Sub(NewVector3(1, 2, 3)), NewVector3(4, 5, 6)},
		{"mul", NewVector3(1, -2, 3).Mul(2), NewVector3(2, -4, 6)},
		{"cross", NewVector3(1, 0, 0).Cross(NewVector3(0, 1, 0)), NewVector3(0, 0, 1)},
		{"min", NewVector3(1, 5, 3).Min(NewVector3(2, 4, 3)), NewVector3(1, 4, 3)},
		{"max", NewVector3(1, 5, 3).Max(NewVector3(2, 4, 3)), NewVector3(2, 5, 3)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s failed: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}
}

func TestVector3Dot(t *testing.T) {
	result := NewVector3(1, 2, 3).Dot(NewVector3(4, 5, 6))
	if result != 32.0 {
		t.Errorf("Dot failed: expected 32, got %v", result)
	}

	// Orthogonal vectors have zero dot product
	if d := NewVector3(1, 0, 0).Dot(NewVector3(0, 1, 0)); d != 0 {
		t.Errorf("orthogonal dot failed: expected 0, got %v", d)
	}
}

func TestVector3LengthAndDistance(t *testing.T) {
	if l := NewVector3(3, 4, 0).Length(); math.Abs(l-5.0) > 1e-12 {
		t.Errorf("Length failed: expected 5, got %v", l)
	}
	if d := NewVector3(1, 1, 1).Distance(NewVector3(4, 5, 1)); math.Abs(d-5.0) > 1e-12 {
		t.Errorf("Distance failed: expected 5, got %v", d)
	}
}

func TestVector3Normalize(t *testing.T) {
	n := NewVector3(3, 4, 0).Normalize()
	if math.Abs(n.Length()-1.0) > 1e-12 {
		t.Errorf("Normalize failed: expected unit length, got %v", n.Length())
	}

	// Zero vector must survive without NaN
	if z := (Vector3{}).Normalize(); (z != Vector3{}) {
		t.Errorf("zero Normalize failed: expected zero vector, got %v", z)
	}
}
