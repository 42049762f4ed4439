package geometry

import (
	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/material"
)

// Triangle represents a single ray-traceable triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3          // The three vertices, counter-clockwise seen from the front
	Material   *material.Material // Material of the triangle
	normal     core.Vec3          // Cached normal vector
	extent     core.AABB          // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices. A nil material selects material.Default().
func NewTriangle(v0, v1, v2 core.Vec3, mat *material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: material.OrDefault(mat),
	}

	t.normal = v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	t.extent = core.NewAABBFromPoints(v0, v1, v2)

	return t
}

// HitTest tests ray intersection using the Möller-Trumbore algorithm
func (t *Triangle) HitTest(ray core.Ray) (float64, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return 0, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return 0, false
	}

	distance := f * edge2.Dot(q)
	if distance <= 0 {
		return 0, false
	}
	return distance, true
}

// GetExtent returns the bounding box of the three vertices
func (t *Triangle) GetExtent() core.AABB {
	return t.extent
}

// GetIntersection fills the shading record for a distance returned by HitTest
func (t *Triangle) GetIntersection(ray core.Ray, distance float64) Intersection {
	return Intersection{
		Distance:      distance,
		Position:      ray.At(distance),
		ViewDirection: ray.Direction.Normalize(),
		Normal:        t.normal,
		Material:      t.Material,
		Primitive:     t,
	}
}

// Normal returns the triangle's geometric normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
