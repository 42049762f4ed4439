package core

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "Head-on reflection",
			vector:   NewVec3(0, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "45 degree reflection",
			vector:   NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "Parallel to surface",
			vector:   NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.vector.Reflect(tt.normal)
			if !vecNear(result, tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	result := NewVec3(0, 0, 0).Normalize()
	if result != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", result)
	}
	if !result.IsFinite() {
		t.Error("Normalized zero vector must stay finite")
	}
}

func TestVec3_Lerp(t *testing.T) {
	a := NewVec3(0, 2, 4)
	b := NewVec3(2, 4, 8)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Expected %v at t=0, got %v", a, got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Expected %v at t=1, got %v", b, got)
	}
	if got := a.Lerp(b, 0.5); !vecNear(got, NewVec3(1, 3, 6), 1e-12) {
		t.Errorf("Expected midpoint (1,3,6), got %v", got)
	}
	if got := Lerp(2, 4, 0.25); got != 2.5 {
		t.Errorf("Expected 2.5, got %f", got)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component must not be finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("Inf component must not be finite")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 5), NewVec3(0, 0, -2))
	if got := ray.At(2); !vecNear(got, NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected (0,0,1), got %v", got)
	}
}

func TestAABB_FromPointsAndUnion(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, -1, 0), NewVec3(-2, 3, 5), NewVec3(0, 0, -1))
	if box.Min != NewVec3(-2, -1, -1) || box.Max != NewVec3(1, 3, 5) {
		t.Errorf("Unexpected bounds %v", box)
	}

	other := NewAABB(NewVec3(4, 4, 4), NewVec3(6, 6, 6))
	union := box.Union(other)
	if union.Min != NewVec3(-2, -1, -1) || union.Max != NewVec3(6, 6, 6) {
		t.Errorf("Unexpected union %v", union)
	}
	if union.Size() != NewVec3(8, 7, 7) {
		t.Errorf("Expected size (8,7,7), got %v", union.Size())
	}
}
