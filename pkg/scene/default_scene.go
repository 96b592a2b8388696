package scene

import (
	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/geometry"
	"github.com/df07/bvhtracer/pkg/material"
	"github.com/df07/bvhtracer/pkg/renderer"
)

// NewDefaultScene builds a handful of spheres (diffuse, metal, glass) over a ground
// quad, lit by a distant emissive sphere and a sky gradient background.
func NewDefaultScene() core.Scene {
	camera := newCameraAutoFocus(renderer.CameraConfig{
		Center:      core.NewVec3(0, 0.75, 2),
		LookAt:      core.NewVec3(0, 0.5, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        40.0,
		Aperture:    0.05,
	})

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalSilver := material.NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.0)
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	sphereCenter := geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed)
	sphereLeft := geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, metalSilver)
	sphereRight := geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold)
	solidGlassSphere := geometry.NewSphere(core.NewVec3(0.5, 0.25, -0.5), 0.25, glass)

	groundQuad := newGroundQuad(core.NewVec3(0, 0, 0), 10000.0, lambertianGreen)

	// Hollow glass sphere: a glass shell (negative inner radius flips the normal) with
	// a small blue diffuse sphere nested inside.
	hollowGlassOuter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.25, glass)
	hollowGlassInner := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), -0.24, glass)
	hollowGlassCenter := geometry.NewSphere(core.NewVec3(-0.5, 0.25, -0.5), 0.20, lambertianBlue)

	emissiveSun := material.NewEmissive(core.NewVec3(15.0, 14.0, 13.0))
	sun := geometry.NewSphere(core.NewVec3(30, 30.5, 15), 10, emissiveSun)

	primitives := []core.Primitive{
		sphereCenter, sphereLeft, sphereRight, groundQuad,
		solidGlassSphere, hollowGlassOuter, hollowGlassInner, hollowGlassCenter, sun,
	}

	config := core.SamplingConfig{
		Width:              camera.Width(),
		Height:             camera.Height(),
		SamplesPerPixel:    200,
		MaxDepth:           50,
		AdaptiveMinSamples: 0.15,
		AdaptiveThreshold:  0.01,
	}

	return newDemoScene(camera, primitives,
		core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0), config)
}
