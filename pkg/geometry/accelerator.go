package geometry

import "github.com/df07/go-teaching-renderer/pkg/core"

// PrimitiveList is a brute-force accelerator: every query tests every primitive
type PrimitiveList struct {
	primitives []Primitive
	extent     core.AABB
}

// NewPrimitiveList creates an accelerator over a copy of primitives
func NewPrimitiveList(primitives []Primitive) *PrimitiveList {
	list := &PrimitiveList{
		primitives: make([]Primitive, len(primitives)),
	}
	copy(list.primitives, primitives)

	for i, p := range list.primitives {
		if i == 0 {
			list.extent = p.GetExtent()
			continue
		}
		list.extent = list.extent.Union(p.GetExtent())
	}

	return list
}

// Intersect returns the closest hit with tMin < distance < tMax
func (l *PrimitiveList) Intersect(ray core.Ray, tMin, tMax float64) (RayHit, bool) {
	closest := RayHit{Ray: ray}
	closestSoFar := tMax
	hitAnything := false

	for _, p := range l.primitives {
		distance, hit := p.HitTest(ray)
		if !hit || distance <= tMin || distance >= closestSoFar {
			continue
		}
		hitAnything = true
		closestSoFar = distance
		closest.Distance = distance
		closest.Primitive = p
	}

	return closest, hitAnything
}

// Cast reports whether any primitive blocks the ray before maxDistance
func (l *PrimitiveList) Cast(ray core.Ray, maxDistance float64) bool {
	for _, p := range l.primitives {
		if distance, hit := p.HitTest(ray); hit && distance < maxDistance {
			return true
		}
	}
	return false
}

// Len returns the number of primitives
func (l *PrimitiveList) Len() int {
	return len(l.primitives)
}

// Extent returns the union of all primitive extents
func (l *PrimitiveList) Extent() core.AABB {
	return l.extent
}
