package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-teaching-renderer/pkg/core"
	"github.com/df07/go-teaching-renderer/pkg/geometry"
	"github.com/df07/go-teaching-renderer/pkg/lights"
	"github.com/df07/go-teaching-renderer/pkg/material"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func(CameraConfig) *Scene
}

var builtinScenes = map[string]SceneInfo{
	"spheres": {
		Name:        "spheres",
		Description: "Unit sphere at the origin between two coloured spheres on a ground plane",
		build:       NewSpheresScene,
	},
	"ground": {
		Name:        "ground",
		Description: "Flat ground grid lit by one overhead point light at height 5",
		build:       NewGroundScene,
	},
	"cubes": {
		Name:        "cubes",
		Description: "Transformed cube meshes under a rotated group with point and spot lights",
		build:       NewCubesScene,
	},
}

// List returns the built-in scenes sorted by name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Create builds the named built-in scene with its accelerator.
// Non-zero fields of cameraOverrides replace the scene's default camera settings.
func Create(name string, cameraOverrides ...CameraConfig) (*Scene, error) {
	info, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}

	override := CameraConfig{}
	if len(cameraOverrides) > 0 {
		override = cameraOverrides[0]
	}

	s := info.build(override)
	s.BuildAccelerator()
	return s, nil
}

// NewSpheresScene creates the sphere scene: a unit sphere at the origin seen
// from +Z, two smaller spheres and a ground quad
func NewSpheresScene(cameraOverride CameraConfig) *Scene {
	s := New("spheres")
	s.AddCamera(NewCamera(MergeCameraConfig(DefaultCameraConfig(), cameraOverride)))

	red := material.NewMaterial(core.NewVec3(0.9, 0.2, 0.2), core.NewVec3(0.6, 0.6, 0.6), 32)
	green := material.NewDiffuse(core.NewVec3(0.2, 0.8, 0.3))
	blue := material.NewMaterial(core.NewVec3(0.2, 0.3, 0.9), core.NewVec3(0.3, 0.3, 0.3), 8)
	grey := material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))

	addSphere(s, core.NewVec3(0, 0, 0), 1, red)
	addSphere(s, core.NewVec3(-2.25, -0.25, -1), 0.75, green)
	addSphere(s, core.NewVec3(2.25, -0.25, -1), 0.75, blue)

	ground := NewMesh("ground", NewGroundGrid(20, 8, grey.Diffuse), grey)
	ground.Transform = mgl64.Translate3D(0, -1, 0)
	s.Add(ground)

	s.Add(NewLightNode(lights.NewPointLight(core.NewVec3(3, 5, 5), core.NewVec3(60, 60, 60))))
	s.Add(NewLightNode(lights.NewPointLight(core.NewVec3(-4, 2, 3), core.NewVec3(10, 10, 12))))

	s.SetBackground(core.NewVec3(0.05, 0.05, 0.08))
	return s
}

// NewGroundScene creates a flat ground made of triangles lit by one overhead
// point light at height 5 with unit intensity
func NewGroundScene(cameraOverride CameraConfig) *Scene {
	s := New("ground")
	defaults := DefaultCameraConfig()
	defaults.Eye = core.NewVec3(0, 3, 8)
	s.AddCamera(NewCamera(MergeCameraConfig(defaults, cameraOverride)))

	white := material.NewDiffuse(core.NewVec3(1, 1, 1))
	s.Add(NewMesh("ground", NewGroundGrid(16, 16, white.Diffuse), white))
	s.Add(NewLightNode(lights.NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(1, 1, 1))))

	return s
}

// NewCubesScene creates cube meshes below a rotated group, lit by a point
// light and a spot light
func NewCubesScene(cameraOverride CameraConfig) *Scene {
	s := New("cubes")
	defaults := DefaultCameraConfig()
	defaults.Eye = core.NewVec3(4, 4, 7)
	defaults.LookAt = core.NewVec3(0, 0.5, 0)
	s.AddCamera(NewCamera(MergeCameraConfig(defaults, cameraOverride)))

	grey := material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6))
	s.Add(NewMesh("ground", NewGroundGrid(12, 6, grey.Diffuse), grey))

	group := NewGroup("cubes")
	group.Transform = mgl64.HomogRotate3DY(mgl64.DegToRad(30))
	s.Add(group)

	orange := material.NewMaterial(core.NewVec3(0.9, 0.5, 0.1), core.NewVec3(0.4, 0.4, 0.4), 16)
	cube := NewMesh("cube", NewCubeTriangles(1, orange.Diffuse), orange)
	cube.Transform = mgl64.Translate3D(-1.2, 0.5, 0)
	group.AddChild(cube)

	// Non-uniform scale exercises the inverse-transpose normal transform
	teal := material.NewDiffuse(core.NewVec3(0.1, 0.7, 0.7))
	pillar := NewMesh("pillar", NewCubeTriangles(1, teal.Diffuse), teal)
	pillar.Transform = mgl64.Translate3D(1.2, 1, 0).Mul4(mgl64.Scale3D(0.6, 2, 0.6))
	group.AddChild(pillar)

	purple := material.NewMaterial(core.NewVec3(0.6, 0.3, 0.8), core.NewVec3(0.5, 0.5, 0.5), 24)
	addSphere(s, core.NewVec3(0, 0.5, 1.8), 0.5, purple)

	s.Add(NewLightNode(lights.NewPointLight(core.NewVec3(2, 6, 4), core.NewVec3(40, 40, 40))))
	s.Add(NewLightNode(lights.NewSpotLight(
		core.NewVec3(-4, 5, 2), core.NewVec3(0, 0, 0), core.NewVec3(50, 45, 35), 25, 5,
	)))

	s.SetBackground(core.NewVec3(0.02, 0.02, 0.04))
	return s
}

// addSphere adds an analytic sphere for the ray tracer and a tessellated
// raster-only proxy for the rasterizer
func addSphere(s *Scene, center core.Vec3, radius float64, mat *material.Material) {
	s.Add(NewPrimitiveNode(geometry.NewSphere(center, radius, mat)))

	proxy := NewMesh("sphere", NewSphereTriangles(radius, 16, 32, mat.Diffuse), mat)
	proxy.RayTraced = false
	proxy.Transform = mgl64.Translate3D(center.X, center.Y, center.Z)
	s.Add(proxy)
}
