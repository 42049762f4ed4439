package renderer

// farDepth is the depth of an empty pixel, the far plane in NDC
const farDepth = 1.0

// DepthBuffer stores one NDC depth per pixel, row-major.
// Storage is reused across frames while the size is unchanged.
type DepthBuffer struct {
	width  int
	height int
	depth  []float64
}

// Reset sizes the buffer for a width×height frame and sets every depth to far
func (d *DepthBuffer) Reset(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	size := width * height
	if cap(d.depth) < size {
		d.depth = make([]float64, size)
	}
	d.depth = d.depth[:size]
	d.width = width
	d.height = height

	for i := range d.depth {
		d.depth[i] = farDepth
	}
}

// ensure resets the buffer only if it does not match the frame size
func (d *DepthBuffer) ensure(width, height int) {
	if d.width != width || d.height != height || len(d.depth) != width*height {
		d.Reset(width, height)
	}
}

// Width returns the buffer width in pixels
func (d *DepthBuffer) Width() int { return d.width }

// Height returns the buffer height in pixels
func (d *DepthBuffer) Height() int { return d.height }

// At returns the stored depth, or far outside the buffer
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return farDepth
	}
	return d.depth[y*d.width+x]
}

// TestAndSet stores z and returns true if z is nearer than the stored depth
func (d *DepthBuffer) TestAndSet(x, y int, z float64) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	pix := y*d.width + x
	if d.depth[pix] > z {
		d.depth[pix] = z
		return true
	}
	return false
}
