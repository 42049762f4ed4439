package scene

import (
	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
	"github.com/df07/go-teaching-renderer/pkg/lights"
)

// Scene is a scene graph with an active camera and an optional accelerator
type Scene struct {
	Name        string
	root        *Group
	camera      *Camera
	background  core.Vec3
	accelerator *geometry.PrimitiveList
}

// New creates an empty scene
func New(name string) *Scene {
	return &Scene{
		Name: name,
		root: NewGroup("root"),
	}
}

// Root returns the root node of the scene graph
func (s *Scene) Root() Node {
	return s.root
}

// RootGroup returns the root group for adding nodes
func (s *Scene) RootGroup() *Group {
	return s.root
}

// Add appends a node to the root group
func (s *Scene) Add(n Node) Node {
	return s.root.AddChild(n)
}

// AddCamera adds a camera node and makes it active if no camera is active yet
func (s *Scene) AddCamera(c *Camera) *Camera {
	s.root.AddChild(c)
	if s.camera == nil {
		s.camera = c
	}
	return c
}

// SetActiveCamera selects the camera used for rendering; nil disables rendering
func (s *Scene) SetActiveCamera(c *Camera) {
	s.camera = c
}

// ActiveCamera returns the active camera, or nil
func (s *Scene) ActiveCamera() *Camera {
	return s.camera
}

// SetBackground sets the color of rays that hit nothing
func (s *Scene) SetBackground(color core.Vec3) {
	s.background = color
}

// Background returns the background color
func (s *Scene) Background() core.Vec3 {
	return s.background
}

// Accelerator returns the occlusion/intersection accelerator, or nil if none was built
func (s *Scene) Accelerator() geometry.Accelerator {
	if s.accelerator == nil {
		return nil
	}
	return s.accelerator
}

// BuildAccelerator collects all primitive nodes and ray-traceable mesh
// triangles into a brute-force accelerator. Call it again after changing the graph.
func (s *Scene) BuildAccelerator() *geometry.PrimitiveList {
	var primitives []geometry.Primitive
	Walk(s.root, func(n Node) {
		switch n.Kind() {
		case KindPrimitive:
			primitives = append(primitives, n.(*PrimitiveNode).Primitive)
		case KindMesh:
			primitives = append(primitives, n.(*Mesh).Primitives()...)
		}
	})
	s.accelerator = geometry.NewPrimitiveList(primitives)
	return s.accelerator
}

// Extent returns the bounds of everything the ray tracer can hit; false when
// no accelerator was built or it is empty
func (s *Scene) Extent() (core.AABB, bool) {
	if s.accelerator == nil || s.accelerator.Len() == 0 {
		return core.AABB{}, false
	}
	return s.accelerator.Extent(), true
}

// ClearAccelerator removes the accelerator; shadow rays are skipped afterwards
func (s *Scene) ClearAccelerator() {
	s.accelerator = nil
}

// Lights returns all lights in depth-first order
func (s *Scene) Lights() []lights.Light {
	return CollectLights(s.root)
}

// Meshes returns all meshes in depth-first order
func (s *Scene) Meshes() []*Mesh {
	return CollectMeshes(s.root)
}

// Collect walks the graph below root once and returns its lights and meshes
// in depth-first order
func Collect(root Node) (sceneLights []lights.Light, meshes []*Mesh) {
	Walk(root, func(n Node) {
		switch n.Kind() {
		case KindLight:
			sceneLights = append(sceneLights, n.(*LightNode).Light)
		case KindMesh:
			meshes = append(meshes, n.(*Mesh))
		}
	})
	return sceneLights, meshes
}

// CollectLights returns the lights below root in depth-first order
func CollectLights(root Node) []lights.Light {
	sceneLights, _ := Collect(root)
	return sceneLights
}

// CollectMeshes returns the meshes below root in depth-first order
func CollectMeshes(root Node) []*Mesh {
	_, meshes := Collect(root)
	return meshes
}

// PrimitiveCount returns the number of primitives in the accelerator
func (s *Scene) PrimitiveCount() int {
	if s.accelerator == nil {
		return 0
	}
	return s.accelerator.Len()
}
