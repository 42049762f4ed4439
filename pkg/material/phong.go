package material

import "github.com/df07/go-teaching-renderer/pkg/core"

// Material holds the Phong reflectance parameters used by both renderers.
// Materials are read-only while a frame is rendered.
type Material struct {
	Diffuse   core.Vec3 // Diffuse reflectance (RGB)
	Specular  core.Vec3 // Specular reflectance (RGB), zero disables highlights
	Shininess float64   // Phong exponent
}

// NewMaterial creates a material with diffuse and specular terms
func NewMaterial(diffuse, specular core.Vec3, shininess float64) *Material {
	return &Material{
		Diffuse:   diffuse,
		Specular:  specular,
		Shininess: shininess,
	}
}

// NewDiffuse creates a purely diffuse material
func NewDiffuse(diffuse core.Vec3) *Material {
	return &Material{Diffuse: diffuse, Shininess: 1}
}

var defaultMaterial = Material{
	Diffuse:   core.NewVec3(0.8, 0.8, 0.8),
	Shininess: 1,
}

// Default returns the material used for primitives created without one.
// The returned value is shared and must not be modified.
func Default() *Material {
	return &defaultMaterial
}

// OrDefault returns m, or the default material when m is nil
func OrDefault(m *Material) *Material {
	if m == nil {
		return Default()
	}
	return m
}

// HasSpecular reports whether the material has a non-zero specular color
func (m *Material) HasSpecular() bool {
	return m.Specular.Length() > 0
}
