package renderer

import (
	"image"
	"math"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

// ScreenVertex is a triangle vertex after projection
type ScreenVertex struct {
	X, Y  float64   // Window coordinates, origin top-left
	Z     float64   // NDC depth in [-1, 1]
	W     float64   // Clip-space w, used for perspective-correct interpolation
	Color core.Vec3 // Lit vertex color
}

// ScreenTriangle is a projected, lit triangle ready for scan conversion
type ScreenTriangle [3]ScreenVertex

// InterpolateVertex interpolates between a (t=0) and b (t=1) at screen-space
// parameter t. Color is interpolated perspective-correctly through 1/w, depth
// linearly.
func InterpolateVertex(a, b ScreenVertex, t float64) ScreenVertex {
	invW := core.Lerp(1/a.W, 1/b.W, t)
	colorW := a.Color.Multiply(1 / a.W).Lerp(b.Color.Multiply(1/b.W), t)
	return ScreenVertex{
		X:     core.Lerp(a.X, b.X, t),
		Y:     core.Lerp(a.Y, b.Y, t),
		Z:     core.Lerp(a.Z, b.Z, t),
		W:     1 / invW,
		Color: colorW.Multiply(1 / invW),
	}
}

// LinePoints returns the pixels of the Bresenham line from (x0,y0) to (x1,y1),
// both ends included
func LinePoints(x0, y0, x1, y1 int) []image.Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	points := make([]image.Point, 0, max(dx, -dy)+1)
	err := dx + dy
	for {
		points = append(points, image.Pt(x0, y0))
		if x0 == x1 && y0 == y1 {
			return points
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLine plots a Bresenham line, skipping pixels outside the image
func DrawLine(img Image, x0, y0, x1, y1 int, color core.Vec3) {
	width, height := img.Width(), img.Height()
	for _, p := range LinePoints(x0, y0, x1, y1) {
		if p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height {
			img.SetPixel(p.X, p.Y, color)
		}
	}
}

// edgeRow holds the leftmost and rightmost pixel of an edge on one scan line
type edgeRow struct {
	left, right ScreenVertex
}

// edge is a triangle edge rasterized into one row entry per scan line
type edge struct {
	startY int
	rows   []edgeRow
}

// newEdge rasterizes the edge from top to bottom (top.Y <= bottom.Y).
// Each pixel carries the attributes interpolated at its position along the line.
func newEdge(top, bottom ScreenVertex) edge {
	x0, y0 := pixelCoord(top.X), pixelCoord(top.Y)
	x1, y1 := pixelCoord(bottom.X), pixelCoord(bottom.Y)

	points := LinePoints(x0, y0, x1, y1)
	e := edge{startY: y0, rows: make([]edgeRow, y1-y0+1)}
	seen := make([]bool, len(e.rows))

	for i, p := range points {
		t := 0.0
		if len(points) > 1 {
			t = float64(i) / float64(len(points)-1)
		}
		v := InterpolateVertex(top, bottom, t)
		v.X, v.Y = float64(p.X), float64(p.Y)

		row := p.Y - y0
		if !seen[row] {
			e.rows[row] = edgeRow{left: v, right: v}
			seen[row] = true
			continue
		}
		if v.X < e.rows[row].left.X {
			e.rows[row].left = v
		}
		if v.X > e.rows[row].right.X {
			e.rows[row].right = v
		}
	}
	return e
}

// row returns the edge pixels on scan line y
func (e edge) row(y int) edgeRow {
	return e.rows[y-e.startY]
}

// pixelCoord maps a window coordinate to the pixel containing it
func pixelCoord(v float64) int {
	return int(math.Floor(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortByY orders the vertices by ascending window y, keeping the order of ties
func sortByY(t ScreenTriangle) ScreenTriangle {
	if t[1].Y < t[0].Y {
		t[0], t[1] = t[1], t[0]
	}
	if t[2].Y < t[1].Y {
		t[1], t[2] = t[2], t[1]
	}
	if t[1].Y < t[0].Y {
		t[0], t[1] = t[1], t[0]
	}
	return t
}
