package renderer

import (
	"time"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

// RaytracerStats contains statistics about the last ray-traced frame
type RaytracerStats struct {
	Pixels      int           // Pixels written
	PrimaryRays int           // Camera rays cast
	Hits        int           // Camera rays that hit a primitive
	Lights      int           // Lights collected from the scene graph
	Elapsed     time.Duration // Wall time of the frame
}

// HitRatio returns the fraction of primary rays that hit something
func (s RaytracerStats) HitRatio() float64 {
	if s.PrimaryRays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.PrimaryRays)
}

// RasterizerStats contains statistics about the last rasterized frame
type RasterizerStats struct {
	Meshes          int           // Meshes collected from the scene graph
	Lights          int           // Lights collected from the scene graph
	Triangles       int           // Triangles submitted
	CulledTriangles int           // Triangles with a vertex on or behind the eye plane
	Fragments       int           // Span pixels inside the image
	DepthRejected   int           // Fragments that failed the depth test
	PixelsWritten   int           // Fragments written to the image
	Elapsed         time.Duration // Wall time of the frame
}

// luminance returns the Rec. 709 luminance of a linear color
func luminance(c core.Vec3) float64 {
	return 0.2126*c.X + 0.7152*c.Y + 0.0722*c.Z
}

// AverageLuminance returns the mean luminance of the canvas, channels clamped to [0,1]
func AverageLuminance(c *Canvas) float64 {
	if len(c.pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, p := range c.pixels {
		total += luminance(p.Clamp(0, 1))
	}
	return total / float64(len(c.pixels))
}
