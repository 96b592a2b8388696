// Package bvh implements a Bounding Volume Hierarchy acceleration structure over
// core.Primitive values: packed-array node storage, three construction strategies
// (midpoint, exhaustive SAH, binned SAH) and two equivalent traversals (recursive,
// iterative ordered-descent).
package bvh

import "github.com/df07/bvhtracer/pkg/core"

// Node is one entry in the packed BVH node array. A node is a leaf iff PrimCount > 0;
// FirstPrimOrLeft is then the start of its span into PrimIndices. Otherwise PrimCount
// is zero and FirstPrimOrLeft is the index of the left child; the right child is always
// FirstPrimOrLeft+1, so child pairs are allocated together and never stored separately.
type Node struct {
	Bounds          core.AABB
	FirstPrimOrLeft uint32
	PrimCount       uint32
}

// IsLeaf reports whether this node stores a primitive span rather than two children.
func (n *Node) IsLeaf() bool { return n.PrimCount > 0 }

// FirstPrim returns the start of this leaf's span into PrimIndices. Only valid when IsLeaf.
func (n *Node) FirstPrim() uint32 { return n.FirstPrimOrLeft }

// LeftChild returns the index of the left child node. Only valid when !IsLeaf; the
// right child is always LeftChild()+1.
func (n *Node) LeftChild() uint32 { return n.FirstPrimOrLeft }

// RightChild returns the index of the right child node. Only valid when !IsLeaf.
func (n *Node) RightChild() uint32 { return n.FirstPrimOrLeft + 1 }
