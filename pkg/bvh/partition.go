package bvh

// split partitions node nodeIdx's primitive span in place around (axis, pos) using a
// two-pointer sweep, then allocates two child node slots and recurses into each. If the
// partition turns out degenerate (everything landed on one side), the node is left as a
// leaf instead — this can happen even after a strategy decided a split looked good,
// since the split plane and the partition both key off the same centroid values but a
// strategy's cost estimate can still be wrong at the boundary.
//
// Ties go to the right: a primitive whose centroid equals pos exactly is never moved
// into the left partition (strict '<' test), matching the construction tie-break policy.
func (b *BVH) split(nodeIdx uint32, axis int, pos float64, strategy Strategy) {
	node := &b.Nodes[nodeIdx]
	first := node.FirstPrimOrLeft
	count := node.PrimCount

	i, j := first, first+count-1
	for i <= j {
		if b.centroid(b.PrimIndices[i]).AxisValue(axis) < pos {
			i++
		} else {
			b.PrimIndices[i], b.PrimIndices[j] = b.PrimIndices[j], b.PrimIndices[i]
			if j == 0 {
				break
			}
			j--
		}
	}

	leftCount := i - first
	if leftCount == 0 || leftCount == count {
		return
	}

	leftIdx := b.NodesUsed
	rightIdx := b.NodesUsed + 1
	b.NodesUsed += 2

	b.Nodes[leftIdx].FirstPrimOrLeft = first
	b.Nodes[leftIdx].PrimCount = leftCount
	b.Nodes[rightIdx].FirstPrimOrLeft = i
	b.Nodes[rightIdx].PrimCount = count - leftCount

	node.FirstPrimOrLeft = leftIdx
	node.PrimCount = 0

	b.updateNodeBounds(leftIdx)
	b.updateNodeBounds(rightIdx)

	b.subdivide(leftIdx, strategy)
	b.subdivide(rightIdx, strategy)
}
