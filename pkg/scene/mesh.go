package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
	"github.com/df07/go-teaching-renderer/pkg/material"
)

// Triangle is a mesh triangle in model space with per-vertex normals and colors
type Triangle struct {
	Position [3]core.Vec3
	Normal   [3]core.Vec3
	Color    [3]core.Vec3
}

// NewFlatTriangle creates a triangle with a single color and the geometric
// normal of its counter-clockwise winding on all three vertices
func NewFlatTriangle(v0, v1, v2, color core.Vec3) Triangle {
	normal := v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize()
	return Triangle{
		Position: [3]core.Vec3{v0, v1, v2},
		Normal:   [3]core.Vec3{normal, normal, normal},
		Color:    [3]core.Vec3{color, color, color},
	}
}

// Mesh is a triangle mesh node with a local transformation
type Mesh struct {
	node
	Name      string
	Transform mgl64.Mat4
	Material  *material.Material // Used when the mesh is ray traced
	RayTraced bool               // False for raster-only proxies of analytic primitives
	triangles []Triangle
}

// NewMesh creates a mesh from model-space triangles
func NewMesh(name string, triangles []Triangle, mat *material.Material) *Mesh {
	return &Mesh{
		Name:      name,
		Transform: mgl64.Ident4(),
		Material:  material.OrDefault(mat),
		RayTraced: true,
		triangles: triangles,
	}
}

// Kind implements Node
func (m *Mesh) Kind() Kind { return KindMesh }

// GetGlobalTransformation returns the parent chain composed with the mesh transformation
func (m *Mesh) GetGlobalTransformation() mgl64.Mat4 {
	if m.parent == nil {
		return m.Transform
	}
	return m.parent.GetGlobalTransformation().Mul4(m.Transform)
}

// GetTriangles returns a fresh copy of the mesh triangles.
// Callers may transform the returned triangles in place.
func (m *Mesh) GetTriangles() []Triangle {
	triangles := make([]Triangle, len(m.triangles))
	copy(triangles, m.triangles)
	return triangles
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.triangles)
}

// Primitives returns the mesh as world-space ray-traceable triangles,
// or nil for raster-only meshes
func (m *Mesh) Primitives() []geometry.Primitive {
	if !m.RayTraced {
		return nil
	}
	transform := m.GetGlobalTransformation()
	primitives := make([]geometry.Primitive, 0, len(m.triangles))
	for _, t := range m.triangles {
		var world [3]core.Vec3
		for i, p := range t.Position {
			world[i] = core.FromMgl(mgl64.TransformCoordinate(p.ToMgl(), transform))
		}
		primitives = append(primitives, geometry.NewTriangle(world[0], world[1], world[2], m.Material))
	}
	return primitives
}
