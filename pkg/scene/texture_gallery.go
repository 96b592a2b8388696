package scene

import (
	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/geometry"
	"github.com/df07/bvhtracer/pkg/loaders"
	"github.com/df07/bvhtracer/pkg/material"
	"github.com/df07/bvhtracer/pkg/renderer"
)

// NewTextureGalleryScene lines up one sphere per texture kind: solid, 3D checker, 2D
// checker, gradient, and image (falling back to the cyan debug sentinel if no image
// file is supplied), so every Texture implementation gets exercised in one render.
func NewTextureGalleryScene() core.Scene {
	camera := newCameraAutoFocus(renderer.CameraConfig{
		Center:      core.NewVec3(0, 1, 6),
		LookAt:      core.NewVec3(0, 1, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       500,
		AspectRatio: 2.5,
		VFov:        30.0,
	})

	solidTex := material.NewSolid(core.NewVec3(0.8, 0.2, 0.2))
	checker3D := checker(4.0, core.NewVec3(0.1, 0.1, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	checker2D := material.NewCheckerboard2D(8.0, material.NewSolid(core.NewVec3(0.1, 0.4, 0.8)), material.NewSolid(core.NewVec3(0.9, 0.9, 0.9)))
	gradientTex := material.NewGradient(material.GradientV,
		material.NewSolid(core.NewVec3(1.0, 0.5, 0.0)), material.NewSolid(core.NewVec3(0.1, 0.0, 0.4)))
	// No texture file ships with the demo scenes, so this resolves to the cyan debug
	// sentinel per the image loader's documented fallback policy.
	imageTex := loaders.LoadImage("textures/gallery.png", nil)

	spacing := 2.2
	xs := []float64{-2 * spacing, -spacing, 0, spacing, 2 * spacing}

	primitives := []core.Primitive{
		geometry.NewSphere(core.NewVec3(xs[0], 1, 0), 1.0, material.NewLambertianTexture(solidTex)),
		geometry.NewSphere(core.NewVec3(xs[1], 1, 0), 1.0, material.NewLambertianTexture(checker3D)),
		geometry.NewSphere(core.NewVec3(xs[2], 1, 0), 1.0, material.NewLambertianTexture(checker2D)),
		geometry.NewSphere(core.NewVec3(xs[3], 1, 0), 1.0, material.NewLambertianTexture(gradientTex)),
		geometry.NewSphere(core.NewVec3(xs[4], 1, 0), 1.0, material.NewLambertianTexture(imageTex)),
		newGroundQuad(core.NewVec3(0, 0, 0), 100.0, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))),
	}

	sun := material.NewEmissive(core.NewVec3(12, 12, 12))
	primitives = append(primitives, geometry.NewSphere(core.NewVec3(0, 10, 8), 1.5, sun))

	config := core.SamplingConfig{
		Width:              camera.Width(),
		Height:             camera.Height(),
		SamplesPerPixel:    100,
		MaxDepth:           15,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.01,
	}

	return newDemoScene(camera, primitives,
		core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0), config)
}
