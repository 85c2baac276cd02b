package mmr

import (
	"fmt"
)

// GetPeakIndexes returns the positions of the mountain peaks of an mmr with
// width leaves.
//
// Each set bit k of the width is a mountain with 2^k leaves, height k+1 and
// 2^(k+1) - 1 nodes. The mountains are laid out from the most significant bit
// down, each starting immediately after the previous peak, so the peaks are
// returned tallest (and left most) first.
//
// For a width of 14 (0b1110) the mountains hold 15, 7 and 3 nodes and so the
// peaks are [15, 22, 25]
//
//	4              15
//	           /        \
//	3        7            14          22
//	       /   \        /    \      /    \
//	2     3     6     10     13   18     21    25
//	     / \   / \   /  \   /  \  / \   /  \  /  \
//	1   1   2 4   5 8    9 11  12 16 17 19 20 23  24
func GetPeakIndexes(width uint64) ([]uint64, error) {
	if width == 0 || width > MaxWidth {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidInput, width)
	}

	peaks := make([]uint64, 0, PeakCount(width))
	last := uint64(0)
	for height := BitLength64(width); height > 0; height-- {
		if width&HeightLeafCount(height) == 0 {
			continue
		}
		last += HeightSize(height)
		peaks = append(peaks, last)
	}
	return peaks, nil
}

// PeakIndex returns the rank, in the list returned by GetPeakIndexes, of the
// mountain that contains pos.
func PeakIndex(width uint64, pos uint64) (int, error) {
	peaks, err := GetPeakIndexes(width)
	if err != nil {
		return 0, err
	}
	if pos == 0 {
		return 0, fmt.Errorf("%w: position 0", ErrInvalidInput)
	}
	for i, peak := range peaks {
		if pos <= peak {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: position %d not in an mmr of width %d", ErrPositionNotFound, pos, width)
}
