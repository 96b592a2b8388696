package geometry

import "github.com/df07/bvhtracer/pkg/core"

// Box represents a rectangular box made of 6 quad faces, with optional rotation.
type Box struct {
	Center   core.Vec3
	Size     core.Vec3 // Half-extents: (1,1,1) makes a 2x2x2 box
	Rotation core.Vec3 // Radians around X, Y, Z, applied in that order
	Material core.Material
	faces    [6]*Quad
	bbox     core.AABB
}

// NewBox creates a new box with the given center, half-extents, rotation, and material.
func NewBox(center, size, rotation core.Vec3, material core.Material) *Box {
	box := &Box{Center: center, Size: size, Rotation: rotation, Material: material}
	box.generateFaces()
	return box
}

// NewAxisAlignedBox creates a new box with no rotation.
func NewAxisAlignedBox(center, size core.Vec3, material core.Material) *Box {
	return NewBox(center, size, core.NewVec3(0, 0, 0), material)
}

func (b *Box) generateFaces() {
	corners := [8]core.Vec3{
		core.NewVec3(-1, -1, -1),
		core.NewVec3(1, -1, -1),
		core.NewVec3(1, 1, -1),
		core.NewVec3(-1, 1, -1),
		core.NewVec3(-1, -1, 1),
		core.NewVec3(1, -1, 1),
		core.NewVec3(1, 1, 1),
		core.NewVec3(-1, 1, 1),
	}

	for i := range corners {
		corners[i] = core.NewVec3(corners[i].X*b.Size.X, corners[i].Y*b.Size.Y, corners[i].Z*b.Size.Z)
		corners[i] = corners[i].Rotate(b.Rotation)
		corners[i] = corners[i].Add(b.Center)
	}

	b.faces[0] = NewQuad(corners[4], corners[5].Subtract(corners[4]), corners[7].Subtract(corners[4]), b.Material) // front (Z+)
	b.faces[1] = NewQuad(corners[1], corners[0].Subtract(corners[1]), corners[2].Subtract(corners[1]), b.Material) // back (Z-)
	b.faces[2] = NewQuad(corners[5], corners[1].Subtract(corners[5]), corners[6].Subtract(corners[5]), b.Material) // right (X+)
	b.faces[3] = NewQuad(corners[0], corners[4].Subtract(corners[0]), corners[3].Subtract(corners[0]), b.Material) // left (X-)
	b.faces[4] = NewQuad(corners[3], corners[7].Subtract(corners[3]), corners[2].Subtract(corners[3]), b.Material) // top (Y+)
	b.faces[5] = NewQuad(corners[4], corners[0].Subtract(corners[4]), corners[5].Subtract(corners[4]), b.Material) // bottom (Y-)

	b.bbox = core.NewAABBFromPoints(corners[0], corners[1], corners[2], corners[3], corners[4], corners[5], corners[6], corners[7])
}

// Hit tests if a ray intersects with any face of the box.
func (b *Box) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closest core.HitRecord
	found := false
	closestT := tMax

	for _, face := range b.faces {
		if rec, ok := face.Hit(ray, tMin, closestT); ok {
			closest, found, closestT = rec, true, rec.T
		}
	}

	return closest, found
}

// BoundingBox returns the axis-aligned bounding box for this box.
func (b *Box) BoundingBox() core.AABB {
	return b.bbox
}
