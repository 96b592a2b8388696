package geometry

import (
	"github.com/df07/bvhtracer/pkg/bvh"
	"github.com/df07/bvhtracer/pkg/core"
)

// TriangleMesh represents a collection of triangles accelerated by its own BVH, so a mesh
// loaded from a .tri file behaves as a single core.Primitive inside the scene's top-level
// BVH while still resolving per-triangle intersections efficiently on its own.
type TriangleMesh struct {
	triangles []core.Primitive
	accel     *bvh.BVH
	bbox      core.AABB
	material  core.Material
}

// TriangleMeshOptions contains optional parameters for triangle mesh creation.
type TriangleMeshOptions struct {
	Normals   []core.Vec3 // Optional custom normals (one per triangle)
	Materials []core.Material
	Rotation  *core.Vec3
	Center    *core.Vec3
	VertexUVs []core.Vec2 // Optional per-vertex texture coordinates
}

// NewTriangleMesh creates a new triangle mesh from vertices and face indices. faces is a
// flat array of triangle indices, each group of 3 forming one triangle.
func NewTriangleMesh(vertices []core.Vec3, faces []int, material core.Material, options *TriangleMeshOptions) *TriangleMesh {
	if len(faces)%3 != 0 {
		panic("geometry: face indices must be a multiple of 3")
	}

	numTriangles := len(faces) / 3

	if options != nil {
		if options.Normals != nil && len(options.Normals) != numTriangles {
			panic("geometry: number of normals must match number of triangles")
		}
		if options.Materials != nil && len(options.Materials) != numTriangles {
			panic("geometry: number of materials must match number of triangles")
		}
		if options.VertexUVs != nil && len(options.VertexUVs) != len(vertices) {
			panic("geometry: number of vertex UVs must match number of vertices")
		}
	}

	workingVertices := vertices
	if options != nil && options.Rotation != nil {
		workingVertices = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			if options.Center != nil {
				vertex = vertex.Subtract(*options.Center)
			}
			vertex = vertex.Rotate(*options.Rotation)
			if options.Center != nil {
				vertex = vertex.Add(*options.Center)
			}
			workingVertices[i] = vertex
		}
	}

	triangles := make([]core.Primitive, numTriangles)

	for i := 0; i < numTriangles; i++ {
		i0, i1, i2 := faces[i*3], faces[i*3+1], faces[i*3+2]

		if i0 >= len(workingVertices) || i1 >= len(workingVertices) || i2 >= len(workingVertices) ||
			i0 < 0 || i1 < 0 || i2 < 0 {
			panic("geometry: face index out of bounds")
		}

		triangleMaterial := material
		if options != nil && options.Materials != nil {
			triangleMaterial = options.Materials[i]
		}

		v0, v1, v2 := workingVertices[i0], workingVertices[i1], workingVertices[i2]

		hasUVs := options != nil && options.VertexUVs != nil
		hasNormals := options != nil && options.Normals != nil

		var triangle *Triangle
		switch {
		case hasUVs && hasNormals:
			triangle = NewTriangleWithNormalAndUVs(v0, v1, v2, options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2], options.Normals[i], triangleMaterial)
		case hasUVs:
			triangle = NewTriangleWithUVs(v0, v1, v2, options.VertexUVs[i0], options.VertexUVs[i1], options.VertexUVs[i2], triangleMaterial)
		case hasNormals:
			triangle = NewTriangleWithNormal(v0, v1, v2, options.Normals[i], triangleMaterial)
		default:
			triangle = NewTriangle(v0, v1, v2, triangleMaterial)
		}
		triangles[i] = triangle
	}

	accel := bvh.New(triangles, bvh.BinnedSAH)

	bbox := core.EmptyAABB()
	for _, t := range triangles {
		bbox = bbox.Union(t.BoundingBox())
	}

	defaultMaterial := material
	if options != nil && len(options.Materials) > 0 {
		defaultMaterial = options.Materials[0]
	}

	return &TriangleMesh{triangles: triangles, accel: accel, bbox: bbox, material: defaultMaterial}
}

// Hit tests if a ray intersects with any triangle in the mesh, via the mesh's own BVH.
func (tm *TriangleMesh) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	return tm.accel.Hit(ray, tMin, tMax)
}

// BoundingBox returns the axis-aligned bounding box for the entire mesh.
func (tm *TriangleMesh) BoundingBox() core.AABB {
	return tm.bbox
}

// TriangleCount returns the number of triangles in this mesh.
func (tm *TriangleMesh) TriangleCount() int {
	return len(tm.triangles)
}

// Triangles returns the individual triangles that make up the mesh.
func (tm *TriangleMesh) Triangles() []core.Primitive {
	return tm.triangles
}
