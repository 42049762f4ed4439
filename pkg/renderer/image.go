package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

// Image is the pixel sink written by the renderers.
// Colors are linear RGB; values outside [0,1] are allowed and clamped on output.
type Image interface {
	Width() int
	Height() int
	Clear(color core.Vec3)
	SetPixel(x, y int, color core.Vec3)
}

// Canvas is an in-memory Image with read-back
type Canvas struct {
	width  int
	height int
	pixels []core.Vec3
}

// NewCanvas creates a black canvas of the given size
func NewCanvas(width, height int) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// Width implements Image
func (c *Canvas) Width() int { return c.width }

// Height implements Image
func (c *Canvas) Height() int { return c.height }

// Clear implements Image
func (c *Canvas) Clear(color core.Vec3) {
	for i := range c.pixels {
		c.pixels[i] = color
	}
}

// SetPixel implements Image. Writes outside the canvas are ignored.
func (c *Canvas) SetPixel(x, y int, color core.Vec3) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pixels[y*c.width+x] = color
}

// At returns the pixel color, or black outside the canvas
func (c *Canvas) At(x, y int) core.Vec3 {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return core.Vec3{}
	}
	return c.pixels[y*c.width+x]
}

// ToRGBA converts the canvas to an 8-bit image, clamping each channel to [0,1]
func (c *Canvas) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, vec3ToColor(c.pixels[y*c.width+x]))
		}
	}
	return img
}

// vec3ToColor converts a linear color to RGBA with clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	if !colorVec.IsFinite() {
		colorVec = core.Vec3{}
	}
	colorVec = colorVec.Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255*colorVec.X + 0.5),
		G: uint8(255*colorVec.Y + 0.5),
		B: uint8(255*colorVec.Z + 0.5),
		A: 255,
	}
}
