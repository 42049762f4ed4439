package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

func TestMergeCameraConfig(t *testing.T) {
	base := DefaultCameraConfig()
	merged := MergeCameraConfig(base, CameraConfig{Eye: core.NewVec3(1, 2, 3), VFov: 60})

	if merged.Eye != core.NewVec3(1, 2, 3) {
		t.Errorf("Expected eye override, got %v", merged.Eye)
	}
	if merged.VFov != 60 {
		t.Errorf("Expected VFov override, got %f", merged.VFov)
	}
	if merged.LookAt != base.LookAt || merged.Near != base.Near || merged.Far != base.Far || merged.Aspect != base.Aspect {
		t.Errorf("Expected untouched fields to keep base values, got %+v", merged)
	}
}

func TestCamera_GetRayCenter(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	ray := camera.GetRay(0.5, 0.5, camera.Aspect)

	if ray.Origin != camera.Eye {
		t.Errorf("Expected ray origin at eye, got %v", ray.Origin)
	}
	if !vecNear(ray.Direction, core.NewVec3(0, 0, -1), 1e-12) {
		t.Errorf("Expected forward direction, got %v", ray.Direction)
	}
}

func TestCamera_GetRayMatchesProjection(t *testing.T) {
	config := DefaultCameraConfig()
	config.Eye = core.NewVec3(2, 3, 6)
	config.LookAt = core.NewVec3(0, 0.5, 0)
	camera := NewCamera(config)
	viewProjection := camera.ProjectionMatrix(camera.Aspect).Mul4(camera.ViewMatrix())

	tests := []struct{ s, t float64 }{
		{0.5, 0.5},
		{0.1, 0.9},
		{0.8, 0.25},
	}

	for _, tt := range tests {
		ray := camera.GetRay(tt.s, tt.t, camera.Aspect)
		point := ray.At(7)
		clip := viewProjection.Mul4x1(point.Point())

		ndcX := clip[0] / clip[3]
		ndcY := clip[1] / clip[3]
		if math.Abs(ndcX-(2*tt.s-1)) > 1e-9 || math.Abs(ndcY-(2*tt.t-1)) > 1e-9 {
			t.Errorf("GetRay(%f, %f) projects to (%f, %f)", tt.s, tt.t, ndcX, ndcY)
		}
		if math.Abs(ray.Direction.Length()-1) > 1e-12 {
			t.Errorf("Expected normalized direction, got length %f", ray.Direction.Length())
		}
	}
}

func TestCamera_AspectFor(t *testing.T) {
	camera := NewCamera(CameraConfig{VFov: 45, Near: 0.1, Far: 10})
	if got := camera.AspectFor(200, 100); got != 2 {
		t.Errorf("Expected aspect from image size, got %f", got)
	}
	camera.Aspect = 1.5
	if got := camera.AspectFor(200, 100); got != 1.5 {
		t.Errorf("Expected configured aspect, got %f", got)
	}
	if got := NewCamera(CameraConfig{}).AspectFor(10, 0); got != 1 {
		t.Errorf("Expected fallback aspect 1, got %f", got)
	}
}

func TestCamera_ViewMatrixLooksDownNegativeZ(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig())
	view := camera.ViewMatrix()
	got := mgl64.TransformCoordinate(camera.LookAt.ToMgl(), view)
	if math.Abs(got[0]) > 1e-12 || math.Abs(got[1]) > 1e-12 || got[2] >= 0 {
		t.Errorf("Expected look-at point on the -Z view axis, got %v", got)
	}
}
