package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

// CameraConfig contains the parameters of a pinhole camera
type CameraConfig struct {
	Eye    core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	VFov   float64   // Vertical field of view in degrees
	Aspect float64   // Width / height
	Near   float64   // Near clipping plane distance
	Far    float64   // Far clipping plane distance
}

// DefaultCameraConfig returns a camera on +Z looking at the origin
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Eye:    core.NewVec3(0, 0, 5),
		LookAt: core.NewVec3(0, 0, 0),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   45.0,
		Aspect: 4.0 / 3.0,
		Near:   0.1,
		Far:    100.0,
	}
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if override.Eye != (core.Vec3{}) {
		result.Eye = override.Eye
	}
	if override.LookAt != (core.Vec3{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.VFov > 0 {
		result.VFov = override.VFov
	}
	if override.Aspect > 0 {
		result.Aspect = override.Aspect
	}
	if override.Near > 0 {
		result.Near = override.Near
	}
	if override.Far > 0 {
		result.Far = override.Far
	}
	return result
}

// Camera is a scene node providing view parameters to both renderers
type Camera struct {
	node
	CameraConfig
}

// NewCamera creates a camera node
func NewCamera(config CameraConfig) *Camera {
	return &Camera{CameraConfig: config}
}

// Kind implements Node
func (c *Camera) Kind() Kind { return KindCamera }

// ViewMatrix returns the look-at transformation
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(c.Eye.ToMgl(), c.LookAt.ToMgl(), c.Up.ToMgl())
}

// ProjectionMatrix returns the perspective projection for the given aspect ratio
func (c *Camera) ProjectionMatrix(aspect float64) mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.VFov), aspect, c.Near, c.Far)
}

// AspectFor returns the camera aspect ratio, falling back to the image shape
// when none is configured
func (c *Camera) AspectFor(width, height int) float64 {
	if c.Aspect > 0 {
		return c.Aspect
	}
	if height == 0 {
		return 1
	}
	return float64(width) / float64(height)
}

// GetRay generates a ray for screen coordinates (s, t) where 0 <= s,t <= 1,
// (0,0) being the lower-left corner of the view. The ray direction is normalized.
func (c *Camera) GetRay(s, t, aspect float64) core.Ray {
	viewportHeight := 2.0 * math.Tan(mgl64.DegToRad(c.VFov)/2.0)
	viewportWidth := aspect * viewportHeight

	// Orthonormal camera basis
	w := c.Eye.Subtract(c.LookAt).Normalize()
	u := c.Up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := c.Eye.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	direction := lowerLeftCorner.
		Add(horizontal.Multiply(s)).
		Add(vertical.Multiply(t)).
		Subtract(c.Eye)

	return core.NewRay(c.Eye, direction.Normalize())
}
