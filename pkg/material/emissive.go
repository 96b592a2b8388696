package material

import (
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// Emissive is a diffuse light material: it never scatters, only emits the value of its
// texture at the hit point. Implements core.Material and core.Emitter.
type Emissive struct {
	Emission core.Texture
}

// NewEmissive creates an emissive material from a solid emission color.
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolid(emission)}
}

// NewEmissiveTexture creates an emissive material backed by an arbitrary texture.
func NewEmissiveTexture(emission core.Texture) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements core.Material. Diffuse lights absorb everything; they never scatter.
func (e *Emissive) Scatter(rayIn core.Ray, rec core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emit implements core.Emitter.
func (e *Emissive) Emit(rayIn core.Ray, rec core.HitRecord) core.Vec3 {
	return e.Emission.Value(rec.U, rec.V, rec.Point)
}
