package geometry

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// Sphere represents a sphere shape. A negative Radius is a legal encoding of an
// inverted-normal sphere (used for hollow glass shells): magnitude is the true radius,
// and SetFaceNormal's front/back logic handles the inversion.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere.
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// Hit tests if a ray intersects with the sphere via the quadratic solve.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	theta := math.Acos(-outwardNormal.Y)
	phi := math.Atan2(-outwardNormal.Z, outwardNormal.X) + math.Pi

	var rec core.HitRecord
	rec.T = root
	rec.Point = point
	rec.U = phi / (2.0 * math.Pi)
	rec.V = theta / math.Pi
	rec.Material = s.Material
	rec.SetFaceNormal(ray.Direction, outwardNormal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this sphere.
func (s *Sphere) BoundingBox() core.AABB {
	radius := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	return core.NewAABB(s.Center.Subtract(radius), s.Center.Add(radius))
}
