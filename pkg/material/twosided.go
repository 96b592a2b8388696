package material

import (
	"math/rand"

	"github.com/df07/bvhtracer/pkg/core"
)

// TwoSided delegates to one of two materials depending on which face of the surface was
// hit, e.g. a different look on the inside vs outside of an open surface.
type TwoSided struct {
	Front core.Material
	Back  core.Material
}

// NewTwoSided creates a two-sided material from a front-face and back-face material.
func NewTwoSided(front, back core.Material) *TwoSided {
	return &TwoSided{Front: front, Back: back}
}

// Scatter implements core.Material by delegating to Front or Back per rec.FrontFace.
func (t *TwoSided) Scatter(rayIn core.Ray, rec core.HitRecord, random *rand.Rand) (core.ScatterResult, bool) {
	if rec.FrontFace {
		return t.Front.Scatter(rayIn, rec, random)
	}
	return t.Back.Scatter(rayIn, rec, random)
}

// Emit implements core.Emitter by delegating to the material of the face that was hit,
// per rec.FrontFace; it returns black if that material does not implement core.Emitter.
func (t *TwoSided) Emit(rayIn core.Ray, rec core.HitRecord) core.Vec3 {
	side := t.Back
	if rec.FrontFace {
		side = t.Front
	}
	if emitter, ok := side.(core.Emitter); ok {
		return emitter.Emit(rayIn, rec)
	}
	return core.Vec3{}
}
