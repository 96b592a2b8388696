package geometry

import (
	"fmt"
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// Cone represents a finite cone or frustum shape: a bonus primitive beyond the core
// sphere/triangle/quad/plane set.
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64 // 0 for a pointed cone, >0 for a frustum
	Capped     bool
	Material   core.Material

	axis     core.Vec3 // Unit vector from base to top
	height   float64
	tanAngle float64
	apex     core.Vec3 // Apex of the infinite cone the frustum is cut from
}

// NewCone creates a new cone or frustum.
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, capped bool, mat core.Material) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must be greater than top radius for a cone (got base=%f, top=%f); use Cylinder for equal radii", baseRadius, topRadius)
	}

	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive (base and top centers cannot be the same)")
	}

	axis := axisVector.Normalize()
	tanAngle := (baseRadius - topRadius) / height

	var apex core.Vec3
	if topRadius == 0 {
		apex = topCenter
	} else {
		dFromTop := topRadius * height / (baseRadius - topRadius)
		apex = topCenter.Add(axis.Multiply(dFromTop))
	}

	return &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		TopCenter:  topCenter,
		TopRadius:  topRadius,
		Capped:     capped,
		Material:   mat,
		axis:       axis,
		height:     height,
		tanAngle:   tanAngle,
		apex:       apex,
	}, nil
}

// BoundingBox returns the axis-aligned bounding box for this cone.
func (c *Cone) BoundingBox() core.AABB {
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
	extentX, extentY, extentZ := c.BaseRadius, c.BaseRadius, c.BaseRadius
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

// Hit tests if a ray intersects with the cone body and, if capped, its end cap(s).
func (c *Cone) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closest core.HitRecord
	found := false
	closestT := tMax

	if rec, ok := c.hitBody(ray, tMin, closestT); ok {
		closest, found, closestT = rec, true, rec.T
	}

	if c.Capped {
		if rec, ok := c.hitCap(ray, c.BaseCenter, c.axis.Negate(), c.BaseRadius, tMin, closestT); ok {
			closest, found, closestT = rec, true, rec.T
		}
		if c.TopRadius > 0 {
			if rec, ok := c.hitCap(ray, c.TopCenter, c.axis, c.TopRadius, tMin, closestT); ok {
				closest, found = rec, true
			}
		}
	}

	return closest, found
}

func (c *Cone) hitBody(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	co := ray.Origin.Subtract(c.apex)

	ddotV := ray.Direction.Dot(c.axis)
	coDotV := co.Dot(c.axis)
	k := c.tanAngle * c.tanAngle

	a := ray.Direction.LengthSquared() - (1+k)*ddotV*ddotV
	b := 2.0 * (ray.Direction.Dot(co) - (1+k)*ddotV*coDotV)
	cc := co.LengthSquared() - (1+k)*coDotV*coDotV

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
	if !c.validateIntersection(ray, t, tMin, tMax) {
		t = (-b + sqrtD) / (2 * a)
		if !c.validateIntersection(ray, t, tMin, tMax) {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(t)

	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	centerPoint := c.BaseCenter.Add(c.axis.Multiply(h))
	radial := point.Subtract(centerPoint)

	normalScale := (c.BaseRadius - c.TopRadius) / c.height
	outwardNormal := radial.Add(c.axis.Multiply(normalScale)).Normalize()

	var rec core.HitRecord
	rec.T = t
	rec.Point = point
	rec.Material = c.Material
	rec.SetFaceNormal(ray.Direction, outwardNormal)

	return rec, true
}

func (c *Cone) validateIntersection(ray core.Ray, t, tMin, tMax float64) bool {
	const epsilon = 1e-8

	if t < tMin || t > tMax {
		return false
	}

	point := ray.At(t)
	h := point.Subtract(c.BaseCenter).Dot(c.axis)
	if h < -epsilon || h > c.height+epsilon {
		return false
	}

	apexToPoint := point.Subtract(c.apex)
	if apexToPoint.Dot(c.axis) > epsilon {
		return false
	}

	return true
}

func (c *Cone) hitCap(ray core.Ray, center, normal core.Vec3, radius, tMin, tMax float64) (core.HitRecord, bool) {
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
	if point.Subtract(center).Length() > radius {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.Point = point
	rec.Material = c.Material
	rec.SetFaceNormal(ray.Direction, normal)

	return rec, true
}
