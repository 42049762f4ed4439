package scene

import (
	"math"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

// NewQuadTriangles returns two triangles covering the parallelogram spanned by
// u and v at corner. The front face points along u × v.
func NewQuadTriangles(corner, u, v, color core.Vec3) []Triangle {
	p0 := corner
	p1 := corner.Add(u)
	p2 := corner.Add(u).Add(v)
	p3 := corner.Add(v)
	return []Triangle{
		NewFlatTriangle(p0, p1, p2, color),
		NewFlatTriangle(p0, p2, p3, color),
	}
}

// NewGroundGrid returns a square grid on the y=0 plane centred at the origin,
// divided into divisions×divisions quads facing +Y
func NewGroundGrid(size float64, divisions int, color core.Vec3) []Triangle {
	if divisions < 1 {
		divisions = 1
	}
	step := size / float64(divisions)
	u := core.NewVec3(0, 0, step)
	v := core.NewVec3(step, 0, 0)

	triangles := make([]Triangle, 0, 2*divisions*divisions)
	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			corner := core.NewVec3(-size/2+float64(j)*step, 0, -size/2+float64(i)*step)
			triangles = append(triangles, NewQuadTriangles(corner, u, v, color)...)
		}
	}
	return triangles
}

// NewCubeTriangles returns an axis-aligned cube of edge length size centred at
// the origin with outward-facing normals
func NewCubeTriangles(size float64, color core.Vec3) []Triangle {
	h := size / 2
	x := core.NewVec3(h, 0, 0)
	y := core.NewVec3(0, h, 0)
	z := core.NewVec3(0, 0, h)

	// normal, u, v with u × v = normal
	faces := [][3]core.Vec3{
		{x, y, z},
		{x.Negate(), z, y},
		{y, z, x},
		{y.Negate(), x, z},
		{z, x, y},
		{z.Negate(), y, x},
	}

	triangles := make([]Triangle, 0, 12)
	for _, f := range faces {
		normal, u, v := f[0], f[1], f[2]
		corner := normal.Subtract(u).Subtract(v)
		triangles = append(triangles, NewQuadTriangles(corner, u.Multiply(2), v.Multiply(2), color)...)
	}
	return triangles
}

// NewSphereTriangles tessellates a sphere centred at the origin into
// rings×segments quads with smooth per-vertex normals
func NewSphereTriangles(radius float64, rings, segments int, color core.Vec3) []Triangle {
	rings = max(rings, 2)
	segments = max(segments, 3)

	point := func(ring, segment int) core.Vec3 {
		theta := math.Pi * float64(ring) / float64(rings)
		phi := 2 * math.Pi * float64(segment) / float64(segments)
		return core.NewVec3(
			math.Sin(theta)*math.Cos(phi),
			math.Cos(theta),
			math.Sin(theta)*math.Sin(phi),
		)
	}

	smooth := func(n0, n1, n2 core.Vec3) Triangle {
		return Triangle{
			Position: [3]core.Vec3{n0.Multiply(radius), n1.Multiply(radius), n2.Multiply(radius)},
			Normal:   [3]core.Vec3{n0, n1, n2},
			Color:    [3]core.Vec3{color, color, color},
		}
	}

	var triangles []Triangle
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			p00 := point(i, j)
			p01 := point(i, j+1)
			p10 := point(i+1, j)
			p11 := point(i+1, j+1)

			// The triangles touching a pole collapse to a line and are skipped
			if i < rings-1 {
				triangles = append(triangles, smooth(p00, p11, p10))
			}
			if i > 0 {
				triangles = append(triangles, smooth(p00, p01, p11))
			}
		}
	}
	return triangles
}
