package geometry

import (
	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/material"
)

// Primitive is a ray-traceable object.
// HitTest only answers whether and where the ray hits; the surface data is
// produced afterwards by GetIntersection for the winning hit.
type Primitive interface {
	HitTest(ray core.Ray) (distance float64, hit bool)
	GetExtent() core.AABB
	GetIntersection(ray core.Ray, distance float64) Intersection
}

// Accelerator answers nearest-hit and occlusion queries over a set of primitives
type Accelerator interface {
	// Intersect returns the closest hit with tMin < distance < tMax
	Intersect(ray core.Ray, tMin, tMax float64) (RayHit, bool)

	// Cast reports whether anything is hit with 0 < distance < maxDistance
	Cast(ray core.Ray, maxDistance float64) bool
}

// RayHit records which primitive a ray hit and how far along the ray
type RayHit struct {
	Ray       core.Ray
	Distance  float64
	Primitive Primitive
}

// Intersection holds the surface data needed to shade a hit point.
// It is transient: produced by a hit, consumed by shading.
type Intersection struct {
	Distance      float64            // Distance along the ray
	Position      core.Vec3          // origin + distance*direction
	ViewDirection core.Vec3          // Normalized ray direction
	Normal        core.Vec3          // Unit surface normal
	Material      *material.Material // Never nil
	Primitive     Primitive
}

// Intersection returns the shading record for this hit
func (h RayHit) Intersection() Intersection {
	return h.Primitive.GetIntersection(h.Ray, h.Distance)
}
