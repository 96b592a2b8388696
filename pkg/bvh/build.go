package bvh

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// infinityCost stands in for "no usable split found" when comparing candidate SAH costs.
var infinityCost = math.Inf(1)

// subdivide decides, per strategy, whether to split node nodeIdx, and recurses into
// the two children it creates if so. A node that doesn't split remains a leaf.
func (b *BVH) subdivide(nodeIdx uint32, strategy Strategy) {
	switch strategy {
	case Midpoint:
		b.subdivideMidpoint(nodeIdx, strategy)
	case ExhaustiveSAH:
		b.subdivideSAH(nodeIdx, strategy, b.evaluateExhaustiveSplit)
	case BinnedSAH:
		b.subdivideSAH(nodeIdx, strategy, b.evaluateBinnedSplit)
	default:
		panic("bvh: unknown construction strategy")
	}
}

// subdivideMidpoint implements the Midpoint strategy: split the longest axis at the
// bounding-box midpoint, with no cost comparison, stopping once a node holds few enough
// primitives or the partition would be degenerate.
func (b *BVH) subdivideMidpoint(nodeIdx uint32, strategy Strategy) {
	node := &b.Nodes[nodeIdx]
	if node.PrimCount <= leafStopCount {
		return
	}

	axis := node.Bounds.LongestAxis()
	if node.Bounds.Size().AxisValue(axis) <= 0 {
		return
	}
	splitPos := node.Bounds.Center().AxisValue(axis)

	b.split(nodeIdx, axis, splitPos, strategy)
}

// splitCost is the result of evaluating a candidate split plane: its SAH cost and the
// axis/position that produced it. A cost of +Inf means "no usable split found".
type splitCost struct {
	axis     int
	position float64
	cost     float64
}

// subdivideSAH implements both SAH-gated strategies (exhaustive and binned): find the
// cheapest candidate split via evaluate, compare it against the cost of not splitting,
// and only commit to it if it's actually an improvement.
func (b *BVH) subdivideSAH(nodeIdx uint32, strategy Strategy, evaluate func(nodeIdx uint32) splitCost) {
	node := &b.Nodes[nodeIdx]
	if node.PrimCount <= 1 {
		return
	}

	best := evaluate(nodeIdx)
	noSplitCost := float64(node.PrimCount) * node.Bounds.Area()
	if best.cost >= noSplitCost {
		return
	}

	b.split(nodeIdx, best.axis, best.position, strategy)
}

// evaluateExhaustiveSplit tries every axis and every primitive centroid in the node as
// a candidate split plane, keeping the lowest-cost one. O(N^2) per subtree level.
func (b *BVH) evaluateExhaustiveSplit(nodeIdx uint32) splitCost {
	node := &b.Nodes[nodeIdx]
	first := node.FirstPrimOrLeft
	count := node.PrimCount

	best := splitCost{cost: infinityCost}

	for axis := 0; axis < 3; axis++ {
		for i := uint32(0); i < count; i++ {
			pos := b.centroid(b.PrimIndices[first+i]).AxisValue(axis)
			cost := b.evaluatePlaneCost(node, axis, pos)
			if cost < best.cost {
				best = splitCost{axis: axis, position: pos, cost: cost}
			}
		}
	}
	return best
}

// evaluatePlaneCost computes the SAH cost n_L*area(L) + n_R*area(R) of splitting node's
// primitive span at the given axis/position, by partitioning centroids against it.
func (b *BVH) evaluatePlaneCost(node *Node, axis int, pos float64) float64 {
	leftBox, rightBox := core.EmptyAABB(), core.EmptyAABB()
	var leftCount, rightCount int

	first := node.FirstPrimOrLeft
	for i := uint32(0); i < node.PrimCount; i++ {
		primIdx := b.PrimIndices[first+i]
		prim := b.Primitives[primIdx]
		if b.centroid(primIdx).AxisValue(axis) < pos {
			leftCount++
			leftBox = leftBox.Union(prim.BoundingBox())
		} else {
			rightCount++
			rightBox = rightBox.Union(prim.BoundingBox())
		}
	}

	cost := float64(leftCount)*leftBox.Area() + float64(rightCount)*rightBox.Area()
	if cost <= 0 {
		return infinityCost
	}
	return cost
}
