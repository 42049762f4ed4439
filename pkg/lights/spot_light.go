package lights

import (
	"math"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
)

// SpotLight is a point light restricted to a cone with a smooth falloff band
type SpotLight struct {
	position        core.Vec3 // Light position in world space
	direction       core.Vec3 // Normalized direction vector (from -> to)
	intensity       core.Vec3 // Light intensity/color
	cosTotalWidth   float64   // Cosine of total cone angle (outer edge)
	cosFalloffStart float64   // Cosine of falloff start angle (inner cone)
}

// NewSpotLight creates a new spot light
// from: light position
// to: point the light is aimed at
// coneAngleDegrees: total cone angle in degrees
// coneDeltaAngleDegrees: falloff transition angle in degrees
func NewSpotLight(from, to, intensity core.Vec3, coneAngleDegrees, coneDeltaAngleDegrees float64) *SpotLight {
	totalWidthRadians := coneAngleDegrees * math.Pi / 180.0
	falloffStartRadians := (coneAngleDegrees - coneDeltaAngleDegrees) * math.Pi / 180.0

	return &SpotLight{
		position:        from,
		direction:       to.Subtract(from).Normalize(),
		intensity:       intensity,
		cosTotalWidth:   math.Cos(totalWidthRadians),
		cosFalloffStart: math.Cos(falloffStartRadians),
	}
}

// Position implements the Light interface
func (sl *SpotLight) Position() core.Vec3 {
	return sl.position
}

// IntensityToward implements the Light interface, applying the cone falloff
func (sl *SpotLight) IntensityToward(point core.Vec3) core.Vec3 {
	lightToPoint := point.Subtract(sl.position).Normalize()
	return sl.intensity.Multiply(sl.falloff(sl.direction.Dot(lightToPoint)))
}

// ComputeDirectContribution implements the Light interface
func (sl *SpotLight) ComputeDirectContribution(isect geometry.Intersection, scene Scene) core.Vec3 {
	intensity := sl.IntensityToward(isect.Position)
	if intensity.LengthSquared() == 0 {
		return core.Vec3{}
	}
	return phong(sl.position, intensity, isect, scene)
}

// falloff returns 1 inside the inner cone, 0 outside the outer cone and a
// quartic ramp in between
func (sl *SpotLight) falloff(cosAngle float64) float64 {
	if cosAngle < sl.cosTotalWidth {
		return 0.0
	}
	if cosAngle >= sl.cosFalloffStart {
		return 1.0
	}

	delta := (cosAngle - sl.cosTotalWidth) / (sl.cosFalloffStart - sl.cosTotalWidth)
	return delta * delta * delta * delta
}
