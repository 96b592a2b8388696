package core

import "math/rand"

// Logger is the minimal logging contract used throughout the renderer, satisfied by
// both a plain fmt wrapper and the zap-backed logger used by the CLI.
type Logger interface {
	Printf(format string, args ...interface{})
}

// HitRecord describes the geometry and material at a ray/primitive intersection.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3 // Always faces against the incoming ray; see SetFaceNormal.
	T         float64
	U, V      float64
	FrontFace bool
	Material  Material
}

// SetFaceNormal orients Normal to face against rayDirection and records which side of
// the surface was hit, given the true outward-facing geometric normal.
func (rec *HitRecord) SetFaceNormal(rayDirection, outwardNormal Vec3) {
	rec.FrontFace = rayDirection.Dot(outwardNormal) < 0
	if rec.FrontFace {
		rec.Normal = outwardNormal
	} else {
		rec.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything a ray can intersect: individual primitives, the BVH, and the
// flat hittable list all implement it, so the integrator never needs to know which.
type Hittable interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
}

// Primitive is a Hittable with a finite bounding box, the subset the BVH can index.
// An infinite plane is a Hittable but deliberately not a Primitive.
type Primitive interface {
	Hittable
	BoundingBox() AABB
}

// ScatterResult is what a Material returns when it chooses to scatter a ray.
type ScatterResult struct {
	Scattered   Ray
	Attenuation Vec3
}

// Material decides how light scatters off a surface. Scatter returns false when the
// ray is fully absorbed (pure light sources do this; see Emitter below).
type Material interface {
	Scatter(rayIn Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter is an optional capability of a Material: light sources implement it in
// addition to Material, and the integrator probes for it with a type assertion rather
// than forcing every material to carry a no-op Emit method.
type Emitter interface {
	Emit(rayIn Ray, rec HitRecord) Vec3
}

// Texture evaluates a color at a surface point, given UV coordinates and the point in
// object space. A 3D checker keys off p alone; a 2D checker and a gradient key off uv;
// image textures ignore p.
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}
