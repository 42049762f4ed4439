package lights

import (
	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
)

// Scene is the read-only view of the scene that shading needs: the optional
// occlusion accelerator. A nil accelerator disables shadow rays.
type Scene interface {
	Accelerator() geometry.Accelerator
}

// Light is a light source usable by both the ray tracer and the rasterizer
type Light interface {
	// Position returns the light position in world space
	Position() core.Vec3

	// IntensityToward returns the intensity emitted toward point, before
	// distance attenuation
	IntensityToward(point core.Vec3) core.Vec3

	// ComputeDirectContribution returns the diffuse and specular light
	// reflected at the intersection, including the shadow test
	ComputeDirectContribution(isect geometry.Intersection, scene Scene) core.Vec3
}

const (
	// attenuationEpsilon keeps the inverse-square falloff finite at zero distance
	attenuationEpsilon = 0.001

	// shadowEpsilon offsets shadow rays to avoid self-intersection
	shadowEpsilon = 0.001
)

// Attenuation returns the inverse-square falloff for a light-to-point offset
func Attenuation(delta core.Vec3) float64 {
	return 1.0 / (attenuationEpsilon + delta.LengthSquared())
}
