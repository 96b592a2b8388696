package geometry

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal. It implements
// core.Hittable but not core.Primitive: an infinite plane has no finite bounding box, so
// it cannot live inside a BVH leaf and must be intersected directly against the scene.
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3
	Material core.Material
}

// NewPlane creates a new plane.
func NewPlane(point, normal core.Vec3, material core.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Material: material}
}

// Hit tests if a ray intersects with the plane.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.Point = ray.At(t)
	rec.Material = p.Material
	rec.SetFaceNormal(ray.Direction, p.Normal)

	return rec, true
}
