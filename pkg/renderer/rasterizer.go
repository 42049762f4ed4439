package renderer

import (
	"math"
	"slices"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/lights"
	"github.com/df07/go-teaching-renderer/pkg/log"
	"github.com/df07/go-teaching-renderer/pkg/scene"
)

const (
	// wEpsilon culls triangles with a vertex on or behind the eye plane
	wEpsilon = 1e-6

	// guardBand culls triangles projecting absurdly far outside the image
	guardBand = 1 << 15
)

// Rasterizer renders scene meshes by scan conversion with per-vertex lighting
// and a depth buffer
type Rasterizer struct {
	config RasterizerConfig
	logger log.Logger
	depth  DepthBuffer
	stats  RasterizerStats
}

// NewRasterizer creates a rasterizer. Use DefaultRasterizerConfig for the
// depth-tested pipeline.
func NewRasterizer(config RasterizerConfig) *Rasterizer {
	return &Rasterizer{
		config: config,
		logger: log.New("rasterizer"),
	}
}

// SetLogger replaces the logger
func (r *Rasterizer) SetLogger(logger log.Logger) {
	r.logger = logger
}

// SetConfig updates the configuration
func (r *Rasterizer) SetConfig(config RasterizerConfig) {
	r.config = config
}

// Config returns the active configuration
func (r *Rasterizer) Config() RasterizerConfig {
	return r.config
}

// Stats returns the statistics of the last frame
func (r *Rasterizer) Stats() RasterizerStats {
	return r.stats
}

// DepthBuffer returns the depth buffer of the last frame
func (r *Rasterizer) DepthBuffer() *DepthBuffer {
	return &r.depth
}

// Render clears img to black and draws every mesh of the scene
func (r *Rasterizer) Render(img Image, s Scene) error {
	start := time.Now()
	r.stats = RasterizerStats{}
	img.Clear(core.Vec3{})

	camera := s.ActiveCamera()
	if camera == nil {
		r.logger.Warning("rasterization skipped: no active camera")
		return ErrNoCamera
	}

	width, height := img.Width(), img.Height()
	if r.config.DepthTest {
		r.depth.Reset(width, height)
	}

	sceneLights, meshes := scene.Collect(s.Root())
	r.stats.Meshes = len(meshes)
	r.stats.Lights = len(sceneLights)

	view := camera.ViewMatrix()
	projection := camera.ProjectionMatrix(camera.AspectFor(width, height))
	viewProjection := projection.Mul4(view)

	var painter []ScreenTriangle
	for _, mesh := range meshes {
		model := mesh.GetGlobalTransformation()
		normalMatrix := NormalMatrix(model)

		for _, tri := range mesh.GetTriangles() {
			r.stats.Triangles++
			screen, ok := r.TransformAndLightTriangle(tri, model, normalMatrix, viewProjection, sceneLights, width, height)
			if !ok {
				r.stats.CulledTriangles++
				continue
			}
			if r.config.DepthTest {
				r.DrawTriangle(img, screen)
			} else {
				painter = append(painter, screen)
			}
		}
	}

	if !r.config.DepthTest {
		SortTriangles(painter)
		for _, screen := range painter {
			r.DrawTriangle(img, screen)
		}
	}

	r.stats.Elapsed = time.Since(start)
	r.logger.Debugf("rasterized %dx%d: %d meshes, %d triangles (%d culled), %d fragments, %d written in %v",
		width, height, r.stats.Meshes, r.stats.Triangles, r.stats.CulledTriangles,
		r.stats.Fragments, r.stats.PixelsWritten, r.stats.Elapsed)
	return nil
}

// TransformAndLightTriangle moves a model-space triangle to world space,
// lights its vertices and projects it to window coordinates. It returns false
// for triangles that cannot be drawn.
func (r *Rasterizer) TransformAndLightTriangle(tri scene.Triangle, model, normalMatrix, viewProjection mgl64.Mat4,
	sceneLights []lights.Light, width, height int) (ScreenTriangle, bool) {
	var screen ScreenTriangle

	for i := range tri.Position {
		world := model.Mul4x1(tri.Position[i].Point())
		position := core.FromMgl4(world).Multiply(1 / world[3])
		normal := TransformNormal(normalMatrix, tri.Normal[i])

		clip := viewProjection.Mul4x1(position.Point())
		w := clip[3]
		if !(w > wEpsilon) {
			return ScreenTriangle{}, false
		}

		x := (clip[0]/w + 1) * float64(width) / 2
		y := (-clip[1]/w + 1) * float64(height) / 2
		if math.Abs(x) > guardBand || math.Abs(y) > guardBand {
			return ScreenTriangle{}, false
		}

		screen[i] = ScreenVertex{
			X:     x,
			Y:     y,
			Z:     clip[2] / w,
			W:     w,
			Color: LightVertex(position, normal, tri.Color[i], sceneLights, r.config.Ambient),
		}
	}

	return screen, true
}

// NormalMatrix returns the inverse transpose of model, which keeps normals
// perpendicular to surfaces under non-uniform scaling
func NormalMatrix(model mgl64.Mat4) mgl64.Mat4 {
	return model.Inv().Transpose()
}

// TransformNormal applies a normal matrix to n and renormalizes it
func TransformNormal(normalMatrix mgl64.Mat4, n core.Vec3) core.Vec3 {
	return core.FromMgl4(normalMatrix.Mul4x1(n.Direction())).Normalize()
}

// LightVertex returns the Lambert-lit color of a vertex. There are no specular
// highlights or shadows at vertex level.
func LightVertex(position, normal, color core.Vec3, sceneLights []lights.Light, ambient float64) core.Vec3 {
	result := color.Multiply(ambient)
	for _, light := range sceneLights {
		delta := light.Position().Subtract(position)
		lambert := normal.Dot(delta.Normalize())
		if lambert <= 0 {
			continue
		}
		intensity := light.IntensityToward(position).Multiply(lambert * lights.Attenuation(delta))
		result = result.Add(color.MultiplyVec(intensity))
	}
	return result
}

// DrawTriangle scan-converts a screen triangle: the long edge from the top to
// the bottom vertex is paired with the upper short edge above the middle
// vertex and the lower short edge from it on.
func (r *Rasterizer) DrawTriangle(img Image, t ScreenTriangle) {
	t = sortByY(t)
	long := newEdge(t[0], t[2])
	upper := newEdge(t[0], t[1])
	lower := newEdge(t[1], t[2])

	middleY := pixelCoord(t[1].Y)
	firstY := max(long.startY, 0)
	lastY := min(long.startY+len(long.rows)-1, img.Height()-1)

	for y := firstY; y <= lastY; y++ {
		a := long.row(y)
		var b edgeRow
		if y < middleY {
			b = upper.row(y)
		} else {
			b = lower.row(y)
		}

		left, right := a.left, a.right
		if b.left.X < left.X {
			left = b.left
		}
		if b.right.X > right.X {
			right = b.right
		}
		r.DrawSpan(img, y, left, right)
	}
}

// DrawSpan fills the pixels of row y from left.X to right.X inclusive,
// interpolating between the two end vertices
func (r *Rasterizer) DrawSpan(img Image, y int, left, right ScreenVertex) {
	width, height := img.Width(), img.Height()
	if y < 0 || y >= height {
		return
	}
	if r.config.DepthTest {
		r.depth.ensure(width, height)
	}

	x1, x2 := pixelCoord(left.X), pixelCoord(right.X)
	if x1 > x2 {
		x1, x2 = x2, x1
		left, right = right, left
	}

	for x := max(x1, 0); x <= min(x2, width-1); x++ {
		t := 0.0
		if x2 > x1 {
			t = float64(x-x1) / float64(x2-x1)
		}
		r.drawFragment(img, x, y, InterpolateVertex(left, right, t))
	}
}

// drawFragment depth-tests and writes one in-bounds pixel
func (r *Rasterizer) drawFragment(img Image, x, y int, v ScreenVertex) {
	r.stats.Fragments++

	// Nearer than the near plane, or numerically broken
	if math.IsNaN(v.Z) || v.Z < -1 || !v.Color.IsFinite() {
		return
	}

	if r.config.DepthTest {
		if !r.depth.TestAndSet(x, y, v.Z) {
			r.stats.DepthRejected++
			return
		}
	} else if v.Z > farDepth {
		return
	}

	img.SetPixel(x, y, v.Color)
	r.stats.PixelsWritten++
}

// CompareTriangle orders triangles back to front by summed depth: it returns
// a negative number when a is farther than b
func CompareTriangle(a, b ScreenTriangle) int {
	za := a[0].Z + a[1].Z + a[2].Z
	zb := b[0].Z + b[1].Z + b[2].Z
	switch {
	case za > zb:
		return -1
	case za < zb:
		return 1
	default:
		return 0
	}
}

// SortTriangles sorts triangles back to front for painter's-algorithm drawing
func SortTriangles(triangles []ScreenTriangle) {
	slices.SortStableFunc(triangles, CompareTriangle)
}
