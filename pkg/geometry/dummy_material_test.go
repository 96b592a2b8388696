package geometry

import (
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// dummyMaterial is a core.Material stand-in for tests that only care about geometry.
type dummyMaterial struct{}

func (d dummyMaterial) Scatter(rayIn core.Ray, rec core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}
