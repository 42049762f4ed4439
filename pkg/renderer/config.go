package renderer

// RaytracerConfig contains ray tracer settings
type RaytracerConfig struct {
	SamplesPerPixel int     // Rays per pixel, rounded down to an n×n stratified grid
	Ambient         float64 // Ambient factor applied to the diffuse color
}

// DefaultRaytracerConfig returns one centred sample per pixel and a dim ambient term
func DefaultRaytracerConfig() RaytracerConfig {
	return RaytracerConfig{
		SamplesPerPixel: 1,
		Ambient:         0.01,
	}
}

// MergeRaytracerConfig overlays the set fields of override onto base
func MergeRaytracerConfig(base, override RaytracerConfig) RaytracerConfig {
	result := base
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.Ambient > 0 {
		result.Ambient = override.Ambient
	}
	return result
}

// RasterizerConfig contains rasterizer settings
type RasterizerConfig struct {
	Ambient   float64 // Ambient factor applied to vertex colors
	DepthTest bool    // False draws triangles back to front without a depth buffer
}

// DefaultRasterizerConfig returns the z-buffered rasterizer with a dim ambient term
func DefaultRasterizerConfig() RasterizerConfig {
	return RasterizerConfig{
		Ambient:   0.01,
		DepthTest: true,
	}
}

// gridSize returns n such that n×n samples do not exceed samplesPerPixel
func gridSize(samplesPerPixel int) int {
	n := 1
	for (n+1)*(n+1) <= samplesPerPixel {
		n++
	}
	return n
}
