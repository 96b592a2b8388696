package bvh

import "github.com/df07/bvhtracer/pkg/core"

// Strategy selects which split-selection heuristic subdivide uses during construction.
// The three values are kept side by side deliberately: a pedagogical point of this
// package is being able to rebuild the same primitive set under each and compare.
type Strategy int

const (
	// Midpoint splits the longest axis at the bounding box midpoint. No cost gate.
	Midpoint Strategy = iota
	// ExhaustiveSAH evaluates every primitive centroid as a candidate split plane.
	ExhaustiveSAH
	// BinnedSAH buckets centroids into a fixed bin count per axis for O(N·B) construction.
	BinnedSAH
)

// DefaultBinCount is the number of spatial bins BinnedSAH uses per axis, chosen from
// the low end of the spec's suggested 48-512 range.
const DefaultBinCount = 64

// leafStopCount is the primitive count at or below which Midpoint always stops
// subdividing, regardless of split quality.
const leafStopCount = 2

// BVH is a packed-array Bounding Volume Hierarchy over an immutable primitive slice.
// Primitives are not owned: callers may keep using the same slice in a core.HittableList
// fallback without copying.
type BVH struct {
	Nodes       []Node
	PrimIndices []uint32
	Primitives  []core.Primitive
	NodesUsed   uint32
}

// New builds a BVH over primitives using the given construction strategy. N=0 yields
// an empty-world BVH whose Hit always reports a miss; construction for N>=1 never fails.
func New(primitives []core.Primitive, strategy Strategy) *BVH {
	n := len(primitives)
	if n == 0 {
		return &BVH{}
	}

	b := &BVH{
		Primitives:  primitives,
		PrimIndices: make([]uint32, n),
		// Capacity 2N covers the worst case of a balanced binary tree over N leaves;
		// index 1 is reserved and never referenced (the original C++ BVH does the same
		// with no explanation — kept here deliberately, not "fixed").
		Nodes:     make([]Node, 2*n),
		NodesUsed: 2,
	}
	for i := range b.PrimIndices {
		b.PrimIndices[i] = uint32(i)
	}

	root := &b.Nodes[0]
	root.FirstPrimOrLeft = 0
	root.PrimCount = uint32(n)
	b.updateNodeBounds(0)
	b.subdivide(0, strategy)

	return b
}

// updateNodeBounds recomputes a node's AABB from scratch over its current primitive span.
func (b *BVH) updateNodeBounds(nodeIdx uint32) {
	node := &b.Nodes[nodeIdx]
	box := core.EmptyAABB()
	first := node.FirstPrimOrLeft
	for i := uint32(0); i < node.PrimCount; i++ {
		prim := b.Primitives[b.PrimIndices[first+i]]
		box = box.Union(prim.BoundingBox())
	}
	node.Bounds = box
}

// centroid returns the bounding-box center of the primitive at the given index, used
// uniformly as the "centroid" spec §4.F refers to for splitting purposes.
func (b *BVH) centroid(primIndex uint32) core.Vec3 {
	return b.Primitives[primIndex].BoundingBox().Center()
}

// Bounds returns the AABB of the whole tree (the root node's box), or an empty box for
// an empty BVH.
func (b *BVH) Bounds() core.AABB {
	if len(b.Nodes) == 0 {
		return core.EmptyAABB()
	}
	return b.Nodes[0].Bounds
}
