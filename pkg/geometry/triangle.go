package geometry

import "github.com/df07/bvhtracer/pkg/core"

// Triangle represents a single triangle defined by three vertices.
type Triangle struct {
	V0, V1, V2    core.Vec3 // The three vertices
	UV0, UV1, UV2 core.Vec2 // Per-vertex texture coordinates (optional)
	hasUVs        bool
	Material      core.Material
	normal        core.Vec3 // Cached geometric normal; not normalized (direction only)
	bbox          core.AABB
}

// NewTriangle creates a new triangle from three vertices.
func NewTriangle(v0, v1, v2 core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormal creates a new triangle from three vertices with a custom normal.
func NewTriangleWithNormal(v0, v1, v2, normal core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, Material: material, normal: normal}
	t.computeBoundingBox()
	return t
}

// NewTriangleWithUVs creates a new triangle with per-vertex UV coordinates.
func NewTriangleWithUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: material}
	t.computeNormal()
	t.computeBoundingBox()
	return t
}

// NewTriangleWithNormalAndUVs creates a new triangle with a custom normal and per-vertex UVs.
func NewTriangleWithNormalAndUVs(v0, v1, v2 core.Vec3, uv0, uv1, uv2 core.Vec2, normal core.Vec3, material core.Material) *Triangle {
	t := &Triangle{V0: v0, V1: v1, V2: v2, UV0: uv0, UV1: uv1, UV2: uv2, hasUVs: true, Material: material, normal: normal}
	t.computeBoundingBox()
	return t
}

// computeNormal caches edge1 x edge2. It is deliberately left unnormalized:
// SetFaceNormal only consumes its direction (front/back sign and the Dot test), and
// renormalizing here would hide a degenerate (near-zero-area) triangle instead of
// letting it naturally fail to intersect anything.
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2)
}

func (t *Triangle) computeBoundingBox() {
	t.bbox = core.NewAABBFromPoints(t.V0, t.V1, t.V2)
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	if a > -epsilon && a < epsilon {
		return core.HitRecord{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return core.HitRecord{}, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return core.HitRecord{}, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return core.HitRecord{}, false
	}

	hitPoint := ray.At(tParam)

	var uv core.Vec2
	if t.hasUVs {
		w := 1.0 - u - v
		uv = t.UV0.Multiply(w).Add(t.UV1.Multiply(u)).Add(t.UV2.Multiply(v))
	} else {
		uv = core.NewVec2(u, v)
	}

	var rec core.HitRecord
	rec.T = tParam
	rec.Point = hitPoint
	rec.Material = t.Material
	rec.U = uv.X
	rec.V = uv.Y
	rec.SetFaceNormal(ray.Direction, t.normal)

	return rec, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle.
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// GetNormal returns the triangle's cached (unnormalized) geometric normal.
func (t *Triangle) GetNormal() core.Vec3 {
	return t.normal
}
