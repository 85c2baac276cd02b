package mmr

import (
	"fmt"
)

// LeafCount returns the width of the mmr that has exactly size nodes.
//
// Not every size is valid. Adding a leaf may back fill interior nodes, so the
// sizes an mmr passes through are not continuous. For example, there is no mmr
// with 2 nodes, the second leaf immediately produces the parent at 3. An
// invalid size is reported as ErrInvalidInput.
//
// The width is a bit map of the peaks: working down from the largest mountain
// that fits, each mountain size that can be removed from the remainder marks a
// peak whose height is the bit position + 1.
//
//	3       7
//	      /   \
//	2    3     6     10
//	    / \  /  \   /  \
//	1  1   2 4   5 8    9 11
//
// LeafCount(11) returns 0b111, three peaks of heights 3, 2 and 1, and 7
// leaves.
func LeafCount(size uint64) (uint64, error) {
	if size > MaxPosition {
		return 0, fmt.Errorf("%w: size %d exceeds the maximum", ErrInvalidInput, size)
	}

	remainder := size
	width := uint64(0)
	for height := BitLength64(size); height > 0; height-- {
		mountain := HeightSize(height)
		if remainder >= mountain {
			remainder -= mountain
			width |= HeightLeafCount(height)
		}
	}
	if remainder != 0 {
		return 0, fmt.Errorf("%w: %d is not a complete mmr size", ErrInvalidInput, size)
	}
	return width, nil
}
