package geometry

import (
	"math"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/material"
)

// tangentEpsilon is the relative tolerance below which a discriminant counts as zero
const tangentEpsilon = 1e-12

// Sphere represents a sphere primitive
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Radius2  float64
	Material *material.Material
}

// NewSphere creates a new sphere. A nil material selects material.Default().
func NewSphere(center core.Vec3, radius float64, mat *material.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Radius2:  radius * radius,
		Material: material.OrDefault(mat),
	}
}

// HitTest solves a·t² + b·t + c = 0 and returns the nearest positive root
func (s *Sphere) HitTest(ray core.Ray) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius2

	if a == 0 {
		return 0, false
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return 0, false
	}

	var distance float64
	if discriminant <= tangentEpsilon*b*b {
		// Tangent ray: one (double) root
		distance = -b / (2 * a)
	} else {
		sqrtD := math.Sqrt(discriminant)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t1 < t0 {
			t0, t1 = t1, t0
		}

		// Nearest root in front of the origin; the far root is only
		// taken when the origin is inside the sphere.
		distance = t0
		if distance <= 0 {
			distance = t1
		}
	}

	if distance <= 0 {
		return 0, false
	}
	return distance, true
}

// GetExtent returns the axis-aligned bounding box center ± radius
func (s *Sphere) GetExtent() core.AABB {
	radius := core.Splat(s.Radius)
	return core.NewAABB(
		s.Center.Subtract(radius),
		s.Center.Add(radius),
	)
}

// GetIntersection fills the shading record for a distance returned by HitTest
func (s *Sphere) GetIntersection(ray core.Ray, distance float64) Intersection {
	position := ray.At(distance)
	return Intersection{
		Distance:      distance,
		Position:      position,
		ViewDirection: ray.Direction.Normalize(),
		Normal:        position.Subtract(s.Center).Normalize(),
		Material:      s.Material,
		Primitive:     s,
	}
}
