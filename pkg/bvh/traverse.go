package bvh

import "github.com/df07/bvhtracer/pkg/core"

// maxStackDepth bounds the iterative traversal's explicit stack. 64 slots covers any
// balanced tree over millions of primitives (2*log2(N) is ~40 at N=10^6); traversal
// panics rather than silently truncating if this is ever not enough. Construction does
// not check tree depth.
const maxStackDepth = 64

// Hit finds the closest primitive intersection along ray within [tMin, tMax], using the
// iterative ordered-descent traversal. This is the shipping path; HitRecursive exists
// as a correctness oracle for tests and is not used on the hot rendering path.
func (b *BVH) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var best core.HitRecord
	hitAnything := false

	if len(b.Nodes) == 0 {
		return best, false
	}

	closest := tMax

	var stack [maxStackDepth]uint32
	stackPtr := 0
	current := uint32(0)

	for {
		node := &b.Nodes[current]

		if node.IsLeaf() {
			first := node.FirstPrimOrLeft
			for i := uint32(0); i < node.PrimCount; i++ {
				prim := b.Primitives[b.PrimIndices[first+i]]
				if rec, ok := prim.Hit(ray, tMin, closest); ok {
					hitAnything = true
					closest = rec.T
					best = rec
				}
			}

			if stackPtr == 0 {
				return best, hitAnything
			}
			stackPtr--
			current = stack[stackPtr]
			continue
		}

		leftIdx, rightIdx := node.LeftChild(), node.RightChild()
		leftHit, leftT := b.Nodes[leftIdx].Bounds.Hit(ray, tMin, closest)
		rightHit, rightT := b.Nodes[rightIdx].Bounds.Hit(ray, tMin, closest)
		if !leftHit {
			leftT = infinityCost
		}
		if !rightHit {
			rightT = infinityCost
		}

		near, far := leftIdx, rightIdx
		nearT, farT := leftT, rightT
		if nearT > farT {
			near, far = far, near
			nearT, farT = farT, nearT
		}

		if nearT == infinityCost {
			if stackPtr == 0 {
				return best, hitAnything
			}
			stackPtr--
			current = stack[stackPtr]
			continue
		}

		current = near
		if farT != infinityCost {
			if stackPtr == maxStackDepth {
				panic("bvh: traversal stack overflow — tree deeper than expected for its primitive count")
			}
			stack[stackPtr] = far
			stackPtr++
		}
	}
}

// HitRecursive finds the closest primitive intersection using straightforward
// left-then-right recursion. Functionally equivalent to Hit; kept only as a readable
// correctness oracle that tests cross-check the iterative traversal against.
func (b *BVH) HitRecursive(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	if len(b.Nodes) == 0 {
		var empty core.HitRecord
		return empty, false
	}
	return b.hitNodeRecursive(0, ray, tMin, tMax)
}

func (b *BVH) hitNodeRecursive(nodeIdx uint32, ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	node := &b.Nodes[nodeIdx]
	if hit, _ := node.Bounds.Hit(ray, tMin, tMax); !hit {
		var empty core.HitRecord
		return empty, false
	}

	var best core.HitRecord
	hitAnything := false
	closest := tMax

	if node.IsLeaf() {
		first := node.FirstPrimOrLeft
		for i := uint32(0); i < node.PrimCount; i++ {
			prim := b.Primitives[b.PrimIndices[first+i]]
			if rec, ok := prim.Hit(ray, tMin, closest); ok {
				hitAnything = true
				closest = rec.T
				best = rec
			}
		}
		return best, hitAnything
	}

	if rec, ok := b.hitNodeRecursive(node.LeftChild(), ray, tMin, closest); ok {
		hitAnything = true
		closest = rec.T
		best = rec
	}
	if rec, ok := b.hitNodeRecursive(node.RightChild(), ray, tMin, closest); ok {
		hitAnything = true
		best = rec
	}

	return best, hitAnything
}
