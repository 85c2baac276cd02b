package mmr

import "math/bits"

const (
	// MaxWidth is the largest supported leaf count. It keeps every position,
	// and every 2^h computed from a height, well inside uint64.
	MaxWidth = uint64(1) << 61

	// MaxPosition is the position of the last node in an mmr of MaxWidth leaves
	MaxPosition = 2*MaxWidth - 1

	// maxHeight bounds the search in MountainHeight so 1 << h never wraps
	maxHeight = 63
)

// HeightSize returns the node count of a single mountain of the given (one
// based) height. It is also the offset from a node of that height to its
// sibling.
func HeightSize(height uint64) uint64 {
	return (1 << height) - 1
}

// HeightLeafCount returns the number of leaves in a mountain of the given height
func HeightLeafCount(height uint64) uint64 {
	return 1 << (height - 1)
}

// Size returns the total number of nodes, leaves and interior, in an mmr with
// width leaves. Each leaf contributes itself plus the parents it completes, and
// that sums to 2w minus one node for every mountain that is still open.
//
// The position of the next leaf is always Size(width) + 1
func Size(width uint64) uint64 {
	return 2*width - uint64(bits.OnesCount64(width))
}

// LeafPosition returns the one based node position of the leaf with the given
// zero based leaf index (the order in which it was appended).
//
//	leaf index | 0  1  2  3  4  5   6
//	position   | 1  2  4  5  8  9  11
func LeafPosition(leafIndex uint64) uint64 {
	return Size(leafIndex) + 1
}
