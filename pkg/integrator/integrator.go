// Package integrator implements the light transport algorithm that turns a camera ray
// into a color: a simple recursive path tracer with a fixed recursion-depth cutoff (no
// multiple importance sampling or light-splatting machinery).
package integrator

import "github.com/df07/bvhtracer/pkg/core"

// Integrator is an alias of core.Integrator kept local so integrator implementations
// read naturally (e.g. "PathTracingIntegrator implements Integrator").
type Integrator = core.Integrator
