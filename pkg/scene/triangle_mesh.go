package scene

import (
	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/geometry"
	"github.com/df07/bvhtracer/pkg/loaders"
	"github.com/df07/bvhtracer/pkg/material"
	"github.com/df07/bvhtracer/pkg/renderer"
)

// NewTriangleMeshScene loads a .tri mesh file (see pkg/loaders.LoadMesh) and renders
// it over a ground quad. A missing mesh file yields an empty mesh and malformed lines
// are skipped, rather than failing scene construction.
func NewTriangleMeshScene(meshPath string) core.Scene {
	camera := newCameraAutoFocus(renderer.CameraConfig{
		Center:      core.NewVec3(0, 1.5, 4),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
	})

	meshMat := material.NewLambertian(core.NewVec3(0.6, 0.6, 0.65))
	triangles := loaders.LoadMesh(meshPath, meshMat, nil)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	groundQuad := newGroundQuad(core.NewVec3(0, 0, 0), 50.0, ground)

	primitives := append([]core.Primitive{groundQuad}, triangles...)

	sun := material.NewEmissive(core.NewVec3(10, 10, 10))
	primitives = append(primitives, geometry.NewSphere(core.NewVec3(4, 6, 4), 1.0, sun))

	config := core.SamplingConfig{
		Width:              camera.Width(),
		Height:             camera.Height(),
		SamplesPerPixel:    100,
		MaxDepth:           20,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.01,
	}

	return newDemoScene(camera, primitives,
		core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0), config)
}
