package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/material"
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

// nearestRoot solves the sphere quadratic independently for comparison
func nearestRoot(sphere *Sphere, ray core.Ray) float64 {
	oc := ray.Origin.Subtract(sphere.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - sphere.Radius*sphere.Radius
	d := math.Sqrt(b*b - 4*a*c)
	return math.Min((-b-d)/(2*a), (-b+d)/(2*a))
}

func TestSphere_HitTest_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	if distance, hit := sphere.HitTest(ray); hit {
		t.Errorf("Expected miss, but got hit at t=%f", distance)
	}
}

func TestSphere_HitTest_NearestRoot(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Vec3
		radius    float64
		origin    core.Vec3
		direction core.Vec3
	}{
		{
			name:      "unit sphere along -Z",
			center:    core.NewVec3(0, 0, 0),
			radius:    1,
			origin:    core.NewVec3(0, 0, 5),
			direction: core.NewVec3(0, 0, -1),
		},
		{
			name:      "non-unit direction",
			center:    core.NewVec3(0, 0, 0),
			radius:    1,
			origin:    core.NewVec3(0, 0, 5),
			direction: core.NewVec3(0, 0, -3),
		},
		{
			name:      "offset sphere oblique ray",
			center:    core.NewVec3(1, 2, -3),
			radius:    0.75,
			origin:    core.NewVec3(-2, 0, 4),
			direction: core.NewVec3(1, 2, -3).Subtract(core.NewVec3(-2, 0, 4)).Add(core.NewVec3(0.2, -0.1, 0)),
		},
		{
			name:      "large sphere",
			center:    core.NewVec3(0, -100, 0),
			radius:    99,
			origin:    core.NewVec3(0, 3, 0),
			direction: core.NewVec3(0.1, -1, 0.05),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, nil)
			ray := core.NewRay(tt.origin, tt.direction)

			distance, hit := sphere.HitTest(ray)
			if !hit {
				t.Fatal("Expected hit, but got miss")
			}
			if distance <= 0 {
				t.Errorf("Expected positive distance, got %f", distance)
			}

			expected := nearestRoot(sphere, ray)
			if math.Abs(distance-expected) > 1e-9 {
				t.Errorf("Expected nearest root %f, got %f", expected, distance)
			}

			// The hit point must lie on the sphere surface
			point := ray.At(distance)
			if math.Abs(point.Subtract(tt.center).Length()-tt.radius) > 1e-9 {
				t.Errorf("Hit point %v is not on the sphere", point)
			}
		})
	}
}

func TestSphere_HitTest_Tangent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(1, 0, 5), core.NewVec3(0, 0, -1))

	distance, hit := sphere.HitTest(ray)
	if !hit {
		t.Fatal("Expected tangent hit, but got miss")
	}

	// -b / (2a) with a = 1, b = 2 * (0,0,-1)·(1,0,5) = -10
	expected := 5.0
	if math.Abs(distance-expected) > 1e-9 {
		t.Errorf("Expected t=%f, got t=%f", expected, distance)
	}

	expectedPoint := core.NewVec3(1, 0, 0)
	if !vecNear(ray.At(distance), expectedPoint, 1e-9) {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, ray.At(distance))
	}
}

func TestSphere_HitTest_BehindOrigin(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	// Sphere entirely behind the ray
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 1))
	if distance, hit := sphere.HitTest(ray); hit {
		t.Errorf("Expected miss for sphere behind ray, got t=%f", distance)
	}

	// Tangent point behind the ray
	tangent := core.NewRay(core.NewVec3(1, 0, -5), core.NewVec3(0, 0, -1))
	if distance, hit := sphere.HitTest(tangent); hit {
		t.Errorf("Expected miss for tangent point behind ray, got t=%f", distance)
	}
}

func TestSphere_HitTest_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	distance, hit := sphere.HitTest(ray)
	if !hit {
		t.Fatal("Expected exit hit from inside the sphere")
	}
	if math.Abs(distance-2.0) > 1e-9 {
		t.Errorf("Expected t=2, got t=%f", distance)
	}
}

func TestSphere_HitTest_ZeroDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, 0))

	if _, hit := sphere.HitTest(ray); hit {
		t.Error("Expected miss for zero-length direction")
	}
}

func TestSphere_GetExtent(t *testing.T) {
	tests := []struct {
		center core.Vec3
		radius float64
	}{
		{core.NewVec3(0, 0, 0), 1},
		{core.NewVec3(1.5, -2, 3.25), 0.5},
		{core.NewVec3(-10, 4, 0), 7},
	}

	for _, tt := range tests {
		sphere := NewSphere(tt.center, tt.radius, nil)
		extent := sphere.GetExtent()

		expectedMin := core.NewVec3(tt.center.X-tt.radius, tt.center.Y-tt.radius, tt.center.Z-tt.radius)
		expectedMax := core.NewVec3(tt.center.X+tt.radius, tt.center.Y+tt.radius, tt.center.Z+tt.radius)
		if extent.Min != expectedMin || extent.Max != expectedMax {
			t.Errorf("Sphere(%v, %f): expected (%v, %v), got (%v, %v)",
				tt.center, tt.radius, expectedMin, expectedMax, extent.Min, extent.Max)
		}
	}
}

func TestSphere_GetIntersection(t *testing.T) {
	red := material.NewDiffuse(core.NewVec3(1, 0, 0))
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, red)
	eye := core.NewVec3(0, 0, 5)
	ray := core.NewRay(eye, core.NewVec3(0, 0, -1))

	distance, hit := sphere.HitTest(ray)
	if !hit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(distance-(eye.Z-1)) > 1e-9 {
		t.Errorf("Expected distance %f, got %f", eye.Z-1, distance)
	}

	isect := sphere.GetIntersection(ray, distance)
	if !vecNear(isect.Position, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected position (0,0,1), got %v", isect.Position)
	}
	if !vecNear(isect.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected normal (0,0,1), got %v", isect.Normal)
	}
	if !vecNear(isect.ViewDirection, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected view direction (0,0,-1), got %v", isect.ViewDirection)
	}
	if isect.Material != red {
		t.Error("Expected sphere material on intersection")
	}
	if isect.Primitive != sphere {
		t.Error("Expected intersection to reference the sphere")
	}
}

func TestSphere_NilMaterialUsesDefault(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	isect := sphere.GetIntersection(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), 4)

	if isect.Material != material.Default() {
		t.Errorf("Expected default material, got %+v", isect.Material)
	}
}
