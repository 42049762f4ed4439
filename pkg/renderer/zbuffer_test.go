package renderer

import "testing"

func TestDepthBuffer_Reset(t *testing.T) {
	var d DepthBuffer
	d.Reset(3, 2)

	if d.Width() != 3 || d.Height() != 2 {
		t.Fatalf("Expected 3x2 buffer, got %dx%d", d.Width(), d.Height())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if d.At(x, y) != 1.0 {
				t.Errorf("Expected far depth at (%d,%d), got %f", x, y, d.At(x, y))
			}
		}
	}
}

func TestDepthBuffer_TestAndSet(t *testing.T) {
	var d DepthBuffer
	d.Reset(2, 2)

	tests := []struct {
		name     string
		x, y     int
		z        float64
		expected bool
	}{
		{"nearer than far", 1, 0, 0.5, true},
		{"farther than stored", 1, 0, 0.7, false},
		{"equal to stored", 1, 0, 0.5, false},
		{"nearer than stored", 1, 0, -0.2, true},
		{"at far plane", 0, 1, 1.0, false},
		{"outside buffer", 2, 0, 0.0, false},
		{"negative coordinate", 0, -1, 0.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.TestAndSet(tt.x, tt.y, tt.z); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	if d.At(1, 0) != -0.2 {
		t.Errorf("Expected stored depth -0.2, got %f", d.At(1, 0))
	}
	// Row-major layout: (1,0) and (0,1) are distinct entries
	if d.At(0, 1) != 1.0 {
		t.Errorf("Expected (0,1) untouched, got %f", d.At(0, 1))
	}
}

func TestDepthBuffer_ReusesStorage(t *testing.T) {
	var d DepthBuffer
	d.Reset(8, 8)
	first := &d.depth[0]

	d.TestAndSet(3, 3, 0)
	d.Reset(8, 8)
	if &d.depth[0] != first {
		t.Error("Expected storage to be reused for an unchanged size")
	}
	if d.At(3, 3) != 1.0 {
		t.Errorf("Expected reset to restore far depth, got %f", d.At(3, 3))
	}

	d.Reset(4, 4)
	if &d.depth[0] != first || len(d.depth) != 16 {
		t.Error("Expected a smaller frame to reuse the existing storage")
	}

	d.Reset(16, 16)
	if len(d.depth) != 256 {
		t.Errorf("Expected 256 entries after growing, got %d", len(d.depth))
	}
}
