package material

import (
	"math"
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// Dielectric is a transparent material (glass, water) that either reflects or refracts
// an incoming ray, chosen probabilistically by Schlick's approximation to the Fresnel
// reflectance so that grazing angles become progressively more reflective.
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass, 1.33 for water.
}

// NewDielectric creates a dielectric material with the given index of refraction.
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements core.Material. Always scatters; attenuation is white (clear glass
// absorbs no color). eta is inverted depending on whether the ray is entering or
// exiting the surface, per rec.FrontFace.
func (d *Dielectric) Scatter(rayIn core.Ray, rec core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	var etaRatio float64
	if rec.FrontFace {
		etaRatio = 1.0 / d.RefractiveIndex
	} else {
		etaRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := etaRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, etaRatio) > random.Float64() {
		direction = reflectVector(unitDirection, rec.Normal)
	} else {
		direction = refractVector(unitDirection, rec.Normal, etaRatio)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction),
		Attenuation: attenuation,
	}, true
}

// reflectVector returns the reflection of v about a surface with normal n.
func reflectVector(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractVector returns the Snell's-law refraction of uv through a surface with normal
// n, given the ratio of refractive indices etaiOverEtat. Caller must have already ruled
// out total internal reflection.
func refractVector(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance estimates Fresnel reflectance via Schlick's approximation.
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
