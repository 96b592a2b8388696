package bvh

import (
	"math"

	"github.com/df07/bvhtracer/pkg/core"
)

// bin accumulates the primitives whose centroid falls in one bucket of a binned-SAH pass.
type bin struct {
	bounds core.AABB
	count  int
}

// evaluateBinnedSplit implements the BinnedSAH strategy: for each axis, bucket
// primitive centroids into DefaultBinCount bins, then prefix-sweep the bins once from
// each side to get per-plane left/right counts and areas in O(B), instead of evaluating
// every primitive centroid as evaluateExhaustiveSplit does.
//
// Construction reads exclusively through node.FirstPrimOrLeft (the leaf span start) here,
// never through a child-index interpretation of the same field — the node being
// evaluated is always still a leaf at this point, so there is no aliasing ambiguity
// between "first primitive index" and "left child index" to get wrong.
func (b *BVH) evaluateBinnedSplit(nodeIdx uint32) splitCost {
	node := &b.Nodes[nodeIdx]
	first := node.FirstPrimOrLeft
	count := node.PrimCount

	best := splitCost{cost: infinityCost}

	for axis := 0; axis < 3; axis++ {
		boundsMin, boundsMax := math.Inf(1), math.Inf(-1)
		for i := uint32(0); i < count; i++ {
			c := b.centroid(b.PrimIndices[first+i]).AxisValue(axis)
			if c < boundsMin {
				boundsMin = c
			}
			if c > boundsMax {
				boundsMax = c
			}
		}
		if boundsMax <= boundsMin {
			continue // zero extent on this axis: cannot split here
		}

		const binCount = DefaultBinCount
		bins := make([]bin, binCount)
		for i := range bins {
			bins[i].bounds = core.EmptyAABB()
		}

		scale := float64(binCount) / (boundsMax - boundsMin)
		for i := uint32(0); i < count; i++ {
			primIdx := b.PrimIndices[first+i]
			c := b.centroid(primIdx).AxisValue(axis)
			binIdx := int((c - boundsMin) * scale)
			if binIdx >= binCount {
				binIdx = binCount - 1
			}
			bins[binIdx].count++
			bins[binIdx].bounds = bins[binIdx].bounds.Union(b.Primitives[primIdx].BoundingBox())
		}

		leftCount := make([]int, binCount-1)
		leftArea := make([]float64, binCount-1)
		rightCount := make([]int, binCount-1)
		rightArea := make([]float64, binCount-1)

		leftBox := core.EmptyAABB()
		leftSum := 0
		for i := 0; i < binCount-1; i++ {
			leftSum += bins[i].count
			leftBox = leftBox.Union(bins[i].bounds)
			leftCount[i] = leftSum
			leftArea[i] = leftBox.Area()
		}

		rightBox := core.EmptyAABB()
		rightSum := 0
		for i := binCount - 1; i >= 1; i-- {
			rightSum += bins[i].count
			rightBox = rightBox.Union(bins[i].bounds)
			rightCount[i-1] = rightSum
			rightArea[i-1] = rightBox.Area()
		}

		planeScale := (boundsMax - boundsMin) / binCount
		for i := 0; i < binCount-1; i++ {
			if leftCount[i] == 0 || rightCount[i] == 0 {
				continue
			}
			cost := float64(leftCount[i])*leftArea[i] + float64(rightCount[i])*rightArea[i]
			if cost < best.cost {
				best = splitCost{axis: axis, position: boundsMin + planeScale*float64(i+1), cost: cost}
			}
		}
	}

	return best
}
