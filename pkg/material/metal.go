package material

import (
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// Metal is a specular-reflective material whose reflection direction is perturbed by
// Fuzzness to model micro-roughness.
type Metal struct {
	Albedo   core.Vec3 // Metal color, no 1/pi factor: specular, not diffuse.
	Fuzzness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy. Clamped at construction.
}

// NewMetal creates a metal material, clamping fuzzness to [0,1].
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	if fuzzness > 1.0 {
		fuzzness = 1.0
	}
	if fuzzness < 0.0 {
		fuzzness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter implements core.Material. Reflects rayIn about the normal, perturbs by
// Fuzzness*RandomInUnitSphere, and only scatters if the result still points away from
// the surface (otherwise the ray would be absorbed into the surface it bounced off).
func (m *Metal) Scatter(rayIn core.Ray, rec core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	reflected := reflect(rayIn.Direction.Normalize(), rec.Normal)
	if m.Fuzzness > 0 {
		reflected = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.Fuzzness))
	}

	scattered := core.NewRay(rec.Point, reflected)
	scatters := scattered.Direction.Dot(rec.Normal) > 0

	return core.ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}

// reflect returns the reflection of v about a surface with normal n.
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
