package scene

import (
	"github.com/df07/bvhtracer/pkg/core"
	"github.com/df07/bvhtracer/pkg/geometry"
	"github.com/df07/bvhtracer/pkg/material"
	"github.com/df07/bvhtracer/pkg/renderer"
)

// NewCornellScene builds the classic five-wall Cornell box with a ceiling light,
// matching the camera/geometry configuration used by the end-to-end scenario in the
// testable-properties section: walls at y in [0, 555], x/z in [0, 555], camera looking
// down the box's length.
func NewCornellScene() core.Scene {
	const boxSize = 555.0

	camera := newCameraAutoFocus(renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 1.0,
		VFov:        40.0,
	})

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(15, 15, 15))

	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	ceiling := geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	backWall := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	greenWall := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(0, 0, -boxSize), core.NewVec3(0, boxSize, 0), green)
	redWall := geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)

	// A 130x105 light recessed just below the ceiling, per the classic Cornell box.
	lightQuad := geometry.NewQuad(
		core.NewVec3(213, boxSize-1, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		light,
	)

	shortBox := geometry.NewAxisAlignedBox(core.NewVec3(212.5, 82.5, 147.5), core.NewVec3(82.5, 82.5, 82.5), white)
	tallBox := geometry.NewAxisAlignedBox(core.NewVec3(347.5, 165, 377.5), core.NewVec3(82.5, 165, 82.5), white)

	primitives := []core.Primitive{
		floor, ceiling, backWall, greenWall, redWall, lightQuad, shortBox, tallBox,
	}

	config := core.SamplingConfig{
		Width:              camera.Width(),
		Height:             camera.Height(),
		SamplesPerPixel:    64,
		MaxDepth:           8,
		AdaptiveMinSamples: 0.25,
		AdaptiveThreshold:  0.02,
	}

	return newDemoScene(camera, primitives, core.Vec3{}, core.Vec3{}, config)
}
