// Package scene builds the demo scenes the CLI can render: a bvh.BVH over the scene's
// primitives paired with a renderer.Camera and a core.SamplingConfig,
// bundled behind the core.Scene interface the integrator consumes.
package scene

import (
	"github.com/df07/bvhtracer/pkg/bvh"
	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/geometry"
	"github.com/df07/bvhtracer/pkg/material"
	"github.com/df07/bvhtracer/pkg/renderer"
)

// demoScene implements core.Scene over a BVH-accelerated primitive set.
type demoScene struct {
	camera      *renderer.Camera
	world       *bvh.BVH
	topColor    core.Vec3
	bottomColor core.Vec3
	config      core.SamplingConfig
}

func (s *demoScene) GetCamera() core.Camera                      { return s.camera }
func (s *demoScene) GetWorld() core.Hittable                     { return s.world }
func (s *demoScene) GetSamplingConfig() core.SamplingConfig       { return s.config }
func (s *demoScene) GetBackgroundColors() (core.Vec3, core.Vec3) { return s.topColor, s.bottomColor }

// RecommendedSamplingConfig implements core.SamplingConfigProvider; it returns the same
// config as GetSamplingConfig, which is the method the CLI reads.
func (s *demoScene) RecommendedSamplingConfig() core.SamplingConfig { return s.config }

// newDemoScene builds the BVH once from primitives, strategy defaults to BinnedSAH: the
// shipping construction strategy described in the BVH component design.
func newDemoScene(camera *renderer.Camera, primitives []core.Primitive, top, bottom core.Vec3, config core.SamplingConfig) *demoScene {
	return &demoScene{
		camera:      camera,
		world:       bvh.New(primitives, bvh.BinnedSAH),
		topColor:    top,
		bottomColor: bottom,
		config:      config,
	}
}

// newGroundQuad creates a large, finite horizontal quad centered at center, standing
// in for an infinite ground plane (which wouldn't have a finite AABB for the BVH).
func newGroundQuad(center core.Vec3, size float64, mat core.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(size, 0, 0)
	v := core.NewVec3(0, 0, size)
	return geometry.NewQuad(corner, u, v, mat)
}

// newCameraAutoFocus builds a Camera like renderer.NewCamera, but treats
// FocusDistance == 0 as "auto": focus on the LookAt point.
func newCameraAutoFocus(cfg renderer.CameraConfig) *renderer.Camera {
	if cfg.FocusDistance == 0 {
		cfg.FocusDistance = cfg.Center.Subtract(cfg.LookAt).Length()
	}
	return renderer.NewCamera(cfg)
}

// checker returns a two-color 3D checkerboard texture, a small helper shared by the
// texture gallery and spheregrid demo scenes.
func checker(scale float64, even, odd core.Vec3) *material.Checker3D {
	return material.NewCheckerboard3D(scale, material.NewSolid(even), material.NewSolid(odd))
}
