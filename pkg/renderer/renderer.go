package renderer

import (
	"errors"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
	"github.com/df07/go-teaching-renderer/pkg/scene"
)

// Precondition failures reported by Render
var (
	ErrNoCamera      = errors.New("scene has no active camera")
	ErrNoAccelerator = errors.New("scene has no accelerator")
)

// Scene is the read-only view of a scene used by both renderers
type Scene interface {
	ActiveCamera() *scene.Camera
	Root() scene.Node
	Accelerator() geometry.Accelerator
	Background() core.Vec3
}

// Renderer draws one frame of a scene into an image
type Renderer interface {
	Render(img Image, s Scene) error
}

