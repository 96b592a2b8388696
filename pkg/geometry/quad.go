package geometry

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// axisAlignment represents which axis a normal vector is aligned with.
type axisAlignment int

const (
	notAxisAligned axisAlignment = iota
	xAxisAligned
	yAxisAligned
	zAxisAligned
)

func getAxisAlignment(normal core.Vec3) axisAlignment {
	const threshold = 0.9999
	const tolerance = 0.0001

	if math.Abs(normal.X) > threshold && math.Abs(normal.Y) < tolerance && math.Abs(normal.Z) < tolerance {
		return xAxisAligned
	}
	if math.Abs(normal.Y) > threshold && math.Abs(normal.X) < tolerance && math.Abs(normal.Z) < tolerance {
		return yAxisAligned
	}
	if math.Abs(normal.Z) > threshold && math.Abs(normal.X) < tolerance && math.Abs(normal.Y) < tolerance {
		return zAxisAligned
	}
	return notAxisAligned
}

// createAxisAlignedAABB builds a thin but non-degenerate bounding box for quads whose
// normal is axis-aligned, where a plain min/max over the corners would collapse to zero
// thickness on the normal axis and make BVH slab tests unreliable.
func createAxisAlignedAABB(corners []core.Vec3, alignment axisAlignment, fixedCoord float64) core.AABB {
	const epsilon = 0.001

	switch alignment {
	case xAxisAligned:
		minY, maxY := findMinMax(corners, func(v core.Vec3) float64 { return v.Y })
		minZ, maxZ := findMinMax(corners, func(v core.Vec3) float64 { return v.Z })
		return core.NewAABB(
			core.NewVec3(fixedCoord-epsilon, minY, minZ),
			core.NewVec3(fixedCoord+epsilon, maxY, maxZ),
		)
	case yAxisAligned:
		minX, maxX := findMinMax(corners, func(v core.Vec3) float64 { return v.X })
		minZ, maxZ := findMinMax(corners, func(v core.Vec3) float64 { return v.Z })
		return core.NewAABB(
			core.NewVec3(minX, fixedCoord-epsilon, minZ),
			core.NewVec3(maxX, fixedCoord+epsilon, maxZ),
		)
	case zAxisAligned:
		minX, maxX := findMinMax(corners, func(v core.Vec3) float64 { return v.X })
		minY, maxY := findMinMax(corners, func(v core.Vec3) float64 { return v.Y })
		return core.NewAABB(
			core.NewVec3(minX, minY, fixedCoord-epsilon),
			core.NewVec3(maxX, maxY, fixedCoord+epsilon),
		)
	default:
		return core.NewAABBFromPoints(corners[0], corners[1], corners[2], corners[3])
	}
}

func findMinMax(corners []core.Vec3, accessor func(core.Vec3) float64) (float64, float64) {
	min := accessor(corners[0])
	max := min
	for i := 1; i < len(corners); i++ {
		val := accessor(corners[i])
		if val < min {
			min = val
		}
		if val > max {
			max = val
		}
	}
	return min, max
}

// Quad represents a parallelogram surface defined by a corner and two edge vectors.
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3
	V        core.Vec3
	Normal   core.Vec3
	Material core.Material
	D        float64   // Plane equation constant: normal . p = D
	W        core.Vec3 // Cached vector for barycentric coordinate projection
}

// NewQuad creates a new quad from a corner point and two edge vectors.
func NewQuad(corner, u, v core.Vec3, material core.Material) *Quad {
	normal := u.Cross(v).Normalize()
	d := normal.Dot(corner)

	cross := u.Cross(v)
	w := normal.Multiply(1.0 / normal.Dot(cross))

	return &Quad{Corner: corner, U: u, V: v, Normal: normal, Material: material, D: d, W: w}
}

// Hit tests if a ray intersects the quad's plane within the parallelogram spanned by U, V.
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return core.HitRecord{}, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	var rec core.HitRecord
	rec.T = t
	rec.Point = hitPoint
	rec.Material = q.Material
	rec.U = alpha
	rec.V = beta
	rec.SetFaceNormal(ray.Direction, q.Normal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this quad.
func (q *Quad) BoundingBox() core.AABB {
	corners := []core.Vec3{
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	}

	alignment := getAxisAlignment(q.Normal)
	if alignment != notAxisAligned {
		var fixedCoord float64
		switch alignment {
		case xAxisAligned:
			fixedCoord = corners[0].X
		case yAxisAligned:
			fixedCoord = corners[0].Y
		case zAxisAligned:
			fixedCoord = corners[0].Z
		}
		return createAxisAlignedAABB(corners, alignment, fixedCoord)
	}

	return core.NewAABBFromPoints(corners[0], corners[1], corners[2], corners[3])
}
