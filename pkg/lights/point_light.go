package lights

import (
	"math"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
)

// PointLight is an isotropic point light
type PointLight struct {
	position  core.Vec3
	intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{
		position:  position,
		intensity: intensity,
	}
}

// Position implements the Light interface
func (pl *PointLight) Position() core.Vec3 {
	return pl.position
}

// IntensityToward implements the Light interface; point lights emit uniformly
func (pl *PointLight) IntensityToward(point core.Vec3) core.Vec3 {
	return pl.intensity
}

// ComputeDirectContribution implements the Light interface
func (pl *PointLight) ComputeDirectContribution(isect geometry.Intersection, scene Scene) core.Vec3 {
	return phong(pl.position, pl.intensity, isect, scene)
}

// phong evaluates the Phong diffuse and specular terms for a light at
// position emitting intensity toward the intersection
func phong(position, intensity core.Vec3, isect geometry.Intersection, scene Scene) core.Vec3 {
	black := core.Vec3{}

	delta := position.Subtract(isect.Position)
	attenuation := Attenuation(delta)
	direction := delta.Normalize()

	lambert := math.Max(0, isect.Normal.Dot(direction))
	if lambert <= 0 {
		return black
	}

	if scene != nil {
		if accelerator := scene.Accelerator(); accelerator != nil {
			shadowRay := core.NewRay(isect.Position.Add(direction.Multiply(shadowEpsilon)), direction)
			if accelerator.Cast(shadowRay, delta.Length()-shadowEpsilon) {
				return black
			}
		}
	}

	mat := isect.Material
	c := mat.Diffuse.MultiplyVec(intensity).Multiply(lambert * attenuation)

	if mat.HasSpecular() {
		specular := isect.ViewDirection.Dot(direction.Reflect(isect.Normal))
		if specular > 0 {
			specular = math.Min(specular, 1)
			c = c.Add(mat.Specular.MultiplyVec(intensity).Multiply(math.Pow(specular, mat.Shininess) * attenuation))
		}
	}

	return c
}
