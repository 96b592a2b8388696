package geometry

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// Disc represents a circular disc in 3D space: a bonus primitive beyond the core
// sphere/triangle/quad/plane set, handy for lens-shaped lights and camera apertures.
type Disc struct {
	Center   core.Vec3
	Normal   core.Vec3
	Radius   float64
	Material core.Material
	Right    core.Vec3
	Up       core.Vec3
}

// NewDisc creates a new disc.
func NewDisc(center, normal core.Vec3, radius float64, material core.Material) *Disc {
	normalNormalized := normal.Normalize()

	var right core.Vec3
	if math.Abs(normalNormalized.X) > 0.1 {
		right = core.NewVec3(0, 1, 0)
	} else {
		right = core.NewVec3(1, 0, 0)
	}
	right = right.Cross(normalNormalized).Normalize()
	up := normalNormalized.Cross(right).Normalize()

	return &Disc{Center: center, Normal: normalNormalized, Radius: radius, Material: material, Right: right, Up: up}
}

// Hit tests if a ray intersects with the disc.
func (d *Disc) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-6 {
		return core.HitRecord{}, false
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(d.Center)
	if centerToHit.LengthSquared() > d.Radius*d.Radius {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.Point = hitPoint
	rec.T = t
	rec.Material = d.Material
	rec.SetFaceNormal(ray.Direction, d.Normal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this disc.
func (d *Disc) BoundingBox() core.AABB {
	rightExtent := d.Right.Multiply(d.Radius)
	upExtent := d.Up.Multiply(d.Radius)

	corner1 := d.Center.Add(rightExtent).Add(upExtent)
	corner2 := d.Center.Add(rightExtent).Subtract(upExtent)
	corner3 := d.Center.Subtract(rightExtent).Add(upExtent)
	corner4 := d.Center.Subtract(rightExtent).Subtract(upExtent)

	return core.NewAABBFromPoints(corner1, corner2, corner3, corner4)
}
