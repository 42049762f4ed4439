package renderer

import (
	"math"
	"time"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
	"github.com/df07/go-teaching-renderer/pkg/lights"
	"github.com/df07/go-teaching-renderer/pkg/log"
	"github.com/df07/go-teaching-renderer/pkg/scene"
)

// Raytracer renders a scene by casting one or more primary rays per pixel
// and shading the closest hit with every light
type Raytracer struct {
	config RaytracerConfig
	logger log.Logger
	stats  RaytracerStats
}

// NewRaytracer creates a ray tracer with the given configuration
func NewRaytracer(config RaytracerConfig) *Raytracer {
	return &Raytracer{
		config: MergeRaytracerConfig(DefaultRaytracerConfig(), config),
		logger: log.New("raytracer"),
	}
}

// SetLogger replaces the logger
func (rt *Raytracer) SetLogger(logger log.Logger) {
	rt.logger = logger
}

// SetConfig updates the configuration. A zero Ambient is kept as zero.
func (rt *Raytracer) SetConfig(config RaytracerConfig) {
	rt.config = config
	if rt.config.SamplesPerPixel < 1 {
		rt.config.SamplesPerPixel = 1
	}
}

// Config returns the active configuration
func (rt *Raytracer) Config() RaytracerConfig {
	return rt.config
}

// Stats returns the statistics of the last frame
func (rt *Raytracer) Stats() RaytracerStats {
	return rt.stats
}

// Render draws the scene into img.
// Without a camera the image is left untouched; without an accelerator it is
// cleared to the background color.
func (rt *Raytracer) Render(img Image, s Scene) error {
	start := time.Now()
	rt.stats = RaytracerStats{}

	camera := s.ActiveCamera()
	if camera == nil {
		rt.logger.Warning("ray tracing skipped: no active camera")
		return ErrNoCamera
	}

	background := s.Background()
	accelerator := s.Accelerator()
	if accelerator == nil {
		img.Clear(background)
		rt.logger.Warning("ray tracing skipped: no accelerator")
		return ErrNoAccelerator
	}

	sceneLights, _ := scene.Collect(s.Root())
	rt.stats.Lights = len(sceneLights)

	width, height := img.Width(), img.Height()
	aspect := camera.AspectFor(width, height)
	n := gridSize(rt.config.SamplesPerPixel)
	weight := 1.0 / float64(n*n)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixelColor := core.Vec3{}

			for sy := 0; sy < n; sy++ {
				for sx := 0; sx < n; sx++ {
					// Image rows run top to bottom, camera t runs bottom to top
					u := (float64(x) + (float64(sx)+0.5)/float64(n)) / float64(width)
					v := 1.0 - (float64(y)+(float64(sy)+0.5)/float64(n))/float64(height)

					ray := camera.GetRay(u, v, aspect)
					pixelColor = pixelColor.Add(rt.traceRay(ray, s, sceneLights, background))
				}
			}

			img.SetPixel(x, y, pixelColor.Multiply(weight))
			rt.stats.Pixels++
		}
	}

	rt.stats.Elapsed = time.Since(start)
	rt.logger.Debugf("ray traced %dx%d with %d samples/pixel: %d rays, %d hits, %d lights in %v",
		width, height, n*n, rt.stats.PrimaryRays, rt.stats.Hits, rt.stats.Lights, rt.stats.Elapsed)
	return nil
}

// traceRay returns the color seen along a primary ray
func (rt *Raytracer) traceRay(ray core.Ray, s Scene, sceneLights []lights.Light, background core.Vec3) core.Vec3 {
	rt.stats.PrimaryRays++

	hit, ok := s.Accelerator().Intersect(ray, 0, math.Inf(1))
	if !ok {
		return background
	}
	rt.stats.Hits++

	isect := hit.Intersection()
	return rt.Shade(isect, s, sceneLights)
}

// Shade returns the ambient term plus the direct contribution of every light at isect
func (rt *Raytracer) Shade(isect geometry.Intersection, s lights.Scene, sceneLights []lights.Light) core.Vec3 {
	color := isect.Material.Diffuse.Multiply(rt.config.Ambient)
	for _, light := range sceneLights {
		color = color.Add(light.ComputeDirectContribution(isect, s))
	}
	return color
}
