package scene

import (
	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/geometry"
	"github.com/df07/bvhtracer/pkg/material"
	"github.com/df07/bvhtracer/pkg/renderer"
)

// NewSphereGridScene builds a grid of small spheres cycling through every material
// kind (Lambertian, metal at increasing fuzz, dielectric) over a checkered ground
// plane, exercising the full material set in one frame.
func NewSphereGridScene() core.Scene {
	camera := newCameraAutoFocus(renderer.CameraConfig{
		Center:      core.NewVec3(0, 2, 6),
		LookAt:      core.NewVec3(0, 0.5, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        35.0,
	})

	ground := material.NewLambertianTexture(checker(1.0, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))
	groundQuad := newGroundQuad(core.NewVec3(0, 0, 0), 40.0, ground)

	primitives := []core.Primitive{groundQuad}

	const gridSize = 5
	const spacing = 1.2
	const radius = 0.4

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := (float64(i) - float64(gridSize-1)/2) * spacing
			z := (float64(j) - float64(gridSize-1)/2) * spacing
			center := core.NewVec3(x, radius, z)

			var mat core.Material
			switch (i + j) % 3 {
			case 0:
				mat = material.NewLambertian(core.NewVec3(
					0.3+0.5*float64(i)/gridSize,
					0.3+0.5*float64(j)/gridSize,
					0.5))
			case 1:
				fuzz := float64(i+j) / (2 * gridSize)
				mat = material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), fuzz)
			default:
				mat = material.NewDielectric(1.5)
			}

			primitives = append(primitives, geometry.NewSphere(center, radius, mat))
		}
	}

	sun := material.NewEmissive(core.NewVec3(10, 10, 10))
	primitives = append(primitives, geometry.NewSphere(core.NewVec3(5, 8, 5), 1.5, sun))

	config := core.SamplingConfig{
		Width:              camera.Width(),
		Height:             camera.Height(),
		SamplesPerPixel:    150,
		MaxDepth:           30,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.01,
	}

	return newDemoScene(camera, primitives,
		core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0), config)
}
