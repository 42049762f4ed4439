package scene

import (
	"testing"

	"github.com/df07/go-teaching-renderer/pkg/core"
)

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		sceneName   string
		expectError bool
	}{
		{"spheres scene", "spheres", false},
		{"ground scene", "ground", false},
		{"cubes scene", "cubes", false},
		{"unknown scene", "nonexistent", true},
		{"empty scene name", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Create(tt.sceneName)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s', but got none", tt.sceneName)
				}
				if s != nil {
					t.Errorf("Expected nil scene for '%s'", tt.sceneName)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene '%s': %v", tt.sceneName, err)
			}
			if s.ActiveCamera() == nil {
				t.Error("Scene should have an active camera")
			}
			if s.Accelerator() == nil || s.PrimitiveCount() == 0 {
				t.Error("Scene should have a populated accelerator")
			}
			if len(s.Lights()) == 0 {
				t.Error("Scene should have at least one light")
			}
			if len(s.Meshes()) == 0 {
				t.Error("Scene should have at least one mesh")
			}
		})
	}
}

func TestCreate_CameraOverride(t *testing.T) {
	s, err := Create("spheres", CameraConfig{Aspect: 2, Eye: core.NewVec3(0, 0, 9)})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	camera := s.ActiveCamera()
	if camera.Aspect != 2 || camera.Eye != core.NewVec3(0, 0, 9) {
		t.Errorf("Expected overrides to apply, got %+v", camera.CameraConfig)
	}
	if camera.VFov != DefaultCameraConfig().VFov {
		t.Errorf("Expected default VFov, got %f", camera.VFov)
	}
}

func TestList(t *testing.T) {
	infos := List()
	if len(infos) != 3 {
		t.Fatalf("Expected 3 built-in scenes, got %d", len(infos))
	}
	for i := 1; i < len(infos); i++ {
		if infos[i-1].Name >= infos[i].Name {
			t.Errorf("Scenes not sorted: %s before %s", infos[i-1].Name, infos[i].Name)
		}
	}
	for _, info := range infos {
		if info.Description == "" {
			t.Errorf("Scene %s has no description", info.Name)
		}
	}
}
