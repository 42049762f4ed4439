package material

import (
	"testing"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

func TestOrDefault(t *testing.T) {
	if got := OrDefault(nil); got != Default() {
		t.Errorf("Expected default material for nil, got %+v", got)
	}

	custom := NewDiffuse(core.NewVec3(1, 0, 0))
	if got := OrDefault(custom); got != custom {
		t.Errorf("Expected custom material to be kept, got %+v", got)
	}
}

func TestDefault_HasNoSpecular(t *testing.T) {
	if Default().HasSpecular() {
		t.Error("Default material should not have a specular term")
	}
	if Default().Diffuse.Length() == 0 {
		t.Error("Default material should reflect some diffuse light")
	}
}

func TestHasSpecular(t *testing.T) {
	tests := []struct {
		name     string
		material *Material
		expected bool
	}{
		{"diffuse only", NewDiffuse(core.NewVec3(0.5, 0.5, 0.5)), false},
		{"with specular", NewMaterial(core.NewVec3(0.5, 0.5, 0.5), core.NewVec3(0.2, 0.2, 0.2), 16), true},
		{"single channel specular", NewMaterial(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0.1), 8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.material.HasSpecular(); got != tt.expected {
				t.Errorf("Expected %t, got %t", tt.expected, got)
			}
		})
	}
}
