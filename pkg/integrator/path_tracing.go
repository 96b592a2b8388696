package integrator

import (
	"math"
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// nearZero is the shadow-acne epsilon used as t_min for every world-intersection test:
// using 0 would let a scattered ray re-hit the surface it just left due to floating
// point error.
const nearZero = 1e-8

// PathTracingIntegrator implements unidirectional Monte Carlo path tracing: per pixel
// sample, trace a ray through the scene, accumulating emission and attenuating by each
// material's scatter color, until the ray is absorbed or the depth budget runs out.
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a path tracer with the given maximum recursion depth.
func NewPathTracingIntegrator(config core.SamplingConfig) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: config.MaxDepth}
}

// RayColor implements core.Integrator.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, scene core.Scene, random *rand.Rand) core.Vec3 {
	return pt.rayColor(ray, scene, random, pt.maxDepth)
}

// rayColor is the recursive core of the path tracer: emitted + attenuation * rayColor(scattered, depth-1).
func (pt *PathTracingIntegrator) rayColor(ray core.Ray, scene core.Scene, random *rand.Rand, depth int) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, hit := scene.GetWorld().Hit(ray, nearZero, math.Inf(1))
	if !hit {
		return pt.background(ray, scene)
	}

	var emitted core.Vec3
	if emitter, ok := rec.Material.(core.Emitter); ok {
		emitted = emitter.Emit(ray, rec)
	}

	scatter, scattered := rec.Material.Scatter(ray, rec, random)
	if !scattered {
		return emitted
	}

	incoming := pt.rayColor(scatter.Scattered, scene, random, depth-1)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// background resolves the sky color for a ray that escaped the scene, linearly
// interpolating between the scene's bottom and top colors by the ray's vertical
// direction component.
func (pt *PathTracingIntegrator) background(ray core.Ray, scene core.Scene) core.Vec3 {
	top, bottom := scene.GetBackgroundColors()
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return bottom.Multiply(1.0 - t).Add(top.Multiply(t))
}
