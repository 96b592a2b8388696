package material

import (
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// Lambertian is a perfectly diffuse material: it scatters in a cosine-weighted random
// direction around the surface normal and attenuates by an albedo texture.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian creates a Lambertian material from a solid albedo color.
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolid(albedo)}
}

// NewLambertianTexture creates a Lambertian material backed by an arbitrary texture.
func NewLambertianTexture(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements core.Material. Lambertian always scatters: the direction is
// normal + a random unit vector, falling back to the bare normal if that sum is
// degenerate (near the zero vector).
func (l *Lambertian) Scatter(rayIn core.Ray, rec core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	direction := rec.Normal.Add(core.RandomUnitVector(random))
	if direction.NearZero() {
		direction = rec.Normal
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction),
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}
