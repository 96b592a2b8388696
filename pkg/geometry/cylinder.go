package geometry

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// Cylinder represents a finite cylinder shape: a bonus primitive beyond the core
// sphere/triangle/quad/plane set.
type Cylinder struct {
	BaseCenter core.Vec3
	TopCenter  core.Vec3
	Radius     float64
	Capped     bool
	Material   core.Material

	axis   core.Vec3
	height float64
}

// NewCylinder creates a new cylinder.
func NewCylinder(baseCenter, topCenter core.Vec3, radius float64, capped bool, mat core.Material) *Cylinder {
	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	axis := axisVector.Normalize()

	return &Cylinder{BaseCenter: baseCenter, TopCenter: topCenter, Radius: radius, Capped: capped, Material: mat, axis: axis, height: height}
}

// BoundingBox returns the axis-aligned bounding box for this cylinder.
func (c *Cylinder) BoundingBox() core.AABB {
	minCorner := core.NewVec3(
		math.Min(c.BaseCenter.X, c.TopCenter.X),
		math.Min(c.BaseCenter.Y, c.TopCenter.Y),
		math.Min(c.BaseCenter.Z, c.TopCenter.Z),
	)
	maxCorner := core.NewVec3(
		math.Max(c.BaseCenter.X, c.TopCenter.X),
		math.Max(c.BaseCenter.Y, c.TopCenter.Y),
		math.Max(c.BaseCenter.Z, c.TopCenter.Z),
	)

	const parallelThreshold = 0.9999
	extentX, extentY, extentZ := c.Radius, c.Radius, c.Radius
	if math.Abs(c.axis.X) > parallelThreshold {
		extentX = 0
	}
	if math.Abs(c.axis.Y) > parallelThreshold {
		extentY = 0
	}
	if math.Abs(c.axis.Z) > parallelThreshold {
		extentZ = 0
	}

	return core.NewAABB(
		core.NewVec3(minCorner.X-extentX, minCorner.Y-extentY, minCorner.Z-extentZ),
		core.NewVec3(maxCorner.X+extentX, maxCorner.Y+extentY, maxCorner.Z+extentZ),
	)
}

// Hit tests if a ray intersects with the cylinder body and, if capped, its end caps.
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closest core.HitRecord
	found := false
	closestT := tMax

	if rec, ok := c.hitBody(ray, tMin, closestT); ok {
		closest, found, closestT = rec, true, rec.T
	}

	if c.Capped {
		if rec, ok := c.hitCap(ray, c.BaseCenter, c.axis.Negate(), tMin, closestT); ok {
			closest, found, closestT = rec, true, rec.T
		}
		if rec, ok := c.hitCap(ray, c.TopCenter, c.axis, tMin, closestT); ok {
			closest, found = rec, true
		}
	}

	return closest, found
}

func (c *Cylinder) hitBody(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	delta := ray.Origin.Subtract(c.BaseCenter)

	dv := ray.Direction.Dot(c.axis)
	deltaV := delta.Dot(c.axis)

	a := ray.Direction.LengthSquared() - dv*dv
	b := 2.0 * (delta.Dot(ray.Direction) - deltaV*dv)
	cc := delta.LengthSquared() - deltaV*deltaV - c.Radius*c.Radius

	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return core.HitRecord{}, false
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	t := (-b - sqrtD) / (2 * a)
	point := ray.At(t)
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	if t < tMin || t > tMax || h < 0 || h > c.height {
		t = (-b + sqrtD) / (2 * a)
		if t < tMin || t > tMax {
			return core.HitRecord{}, false
		}
		point = ray.At(t)
		h = point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			return core.HitRecord{}, false
		}
	}

	axisPoint := c.BaseCenter.Add(c.axis.Multiply(h))
	outwardNormal := point.Subtract(axisPoint).Normalize()

	v := h / c.height
	radial := point.Subtract(axisPoint)
	var refVector core.Vec3
	if math.Abs(c.axis.Y) < 0.9 {
		refVector = core.NewVec3(0, 1, 0)
	} else {
		refVector = core.NewVec3(1, 0, 0)
	}
	tangent := c.axis.Cross(refVector).Normalize()
	bitangent := c.axis.Cross(tangent)

	u := math.Atan2(radial.Dot(bitangent), radial.Dot(tangent))
	u = (u + math.Pi) / (2.0 * math.Pi)

	var rec core.HitRecord
	rec.T = t
	rec.Point = point
	rec.Material = c.Material
	rec.U = u
	rec.V = v
	rec.SetFaceNormal(ray.Direction, outwardNormal)

	return rec, true
}

func (c *Cylinder) hitCap(ray core.Ray, center, normal core.Vec3, tMin, tMax float64) (core.HitRecord, bool) {
	const epsilon = 1e-8

	denom := ray.Direction.Dot(normal)
	if math.Abs(denom) < epsilon {
		return core.HitRecord{}, false
	}

	t := center.Subtract(ray.Origin).Dot(normal) / denom
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	point := ray.At(t)
	if point.Subtract(center).Length() > c.Radius {
		return core.HitRecord{}, false
	}

	localPoint := point.Subtract(center)
	var refVector core.Vec3
	if math.Abs(normal.Y) < 0.9 {
		refVector = core.NewVec3(0, 1, 0)
	} else {
		refVector = core.NewVec3(1, 0, 0)
	}
	tangent := normal.Cross(refVector).Normalize()
	bitangent := normal.Cross(tangent)

	u := (localPoint.Dot(tangent)/c.Radius + 1.0) / 2.0
	v := (localPoint.Dot(bitangent)/c.Radius + 1.0) / 2.0

	var rec core.HitRecord
	rec.T = t
	rec.Point = point
	rec.Material = c.Material
	rec.U = u
	rec.V = v
	rec.SetFaceNormal(ray.Direction, normal)

	return rec, true
}
