package core

import "math"

// AABB represents an axis-aligned bounding box. The empty box is represented by
// Min = +Inf, Max = -Inf in every component so that Grow always widens it correctly.
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// EmptyAABB returns an AABB that contains no points; growing it by anything yields that thing.
func EmptyAABB() AABB {
	return AABB{
		Min: NewVec3(infinity, infinity, infinity),
		Max: NewVec3(-infinity, -infinity, -infinity),
	}
}

// NewAABB creates a new AABB from min and max points.
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Vec3) AABB {
	box := EmptyAABB()
	for _, p := range points {
		box = box.GrowPoint(p)
	}
	return box
}

// GrowPoint returns an AABB that also bounds the given point.
func (aabb AABB) GrowPoint(p Vec3) AABB {
	return AABB{Min: aabb.Min.Min(p), Max: aabb.Max.Max(p)}
}

// Union returns an AABB that bounds both this AABB and another. Union is grow-by-box.
func (aabb AABB) Union(other AABB) AABB {
	return AABB{Min: aabb.Min.Min(other.Min), Max: aabb.Max.Max(other.Max)}
}

// Hit tests a ray against the box using the slab method, returning whether it was hit and
// the entry parameter. A miss always reports tEnter = +Inf so ordered BVH descent can treat
// it as "do not visit" without a separate hit flag.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) (bool, float64) {
	tEnter, tExit := tMin, tMax

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.AxisValue(axis)
		direction := ray.Direction.AxisValue(axis)
		boxMin := aabb.Min.AxisValue(axis)
		boxMax := aabb.Max.AxisValue(axis)

		if math.Abs(direction) < nearZero {
			if origin < boxMin || origin > boxMax {
				return false, infinity
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (boxMin - origin) * invDirection
		t2 := (boxMax - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tEnter = math.Max(tEnter, t1)
		tExit = math.Min(tExit, t2)
	}

	if tExit < tEnter || tExit <= 0 || tEnter >= tMax {
		return false, infinity
	}
	return true, tEnter
}

// Center returns the center point of the AABB.
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent of the AABB along each axis.
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// Area returns the half-surface-area sum ex*ey + ey*ez + ez*ex, the quantity the Surface
// Area Heuristic compares splits by. An empty box (negative extent on any axis) reports 0;
// a flat box reports the area of its one non-degenerate face.
func (aabb AABB) Area() float64 {
	size := aabb.Size()
	if size.X < 0 || size.Y < 0 || size.Z < 0 {
		return 0
	}
	return size.X*size.Y + size.Y*size.Z + size.Z*size.X
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// IsValid reports whether this is a non-empty box (min <= max on every axis).
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X && aabb.Min.Y <= aabb.Max.Y && aabb.Min.Z <= aabb.Max.Z
}

// Expand returns an AABB expanded by the given amount in all directions.
func (aabb AABB) Expand(amount float64) AABB {
	expansion := NewVec3(amount, amount, amount)
	return AABB{Min: aabb.Min.Subtract(expansion), Max: aabb.Max.Add(expansion)}
}
