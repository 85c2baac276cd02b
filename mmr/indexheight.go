package mmr

// References:
// * https://github.com/Snowfork/solidity-mmr (the flat one based numbering used here)
// * https://github.com/mimblewimble/grin/blob/0ff6763ee64e5a14e70ddd4642b99789a1648a32/core/src/core/pmmr.rs#L606

import (
	"fmt"
)

// MountainHeight returns the height of the tallest perfect mountain that can be
// described within a budget of n positions.
//
// A mountain of height h holds 2^h - 1 nodes. Rather than inverting that with
// a logarithm we search upward for the first h where 2^h > n + h, and the
// answer is the height before it.
//
//	n      | 1  2  3  4  5 .. 11  12 .. 26  27
//	height | 1  2  2  2  3 ..  3   4 ..  4   5
func MountainHeight(n uint64) (uint64, error) {
	if n == 0 {
		return 0, fmt.Errorf("%w: mountain height requires a non zero size", ErrInvalidInput)
	}
	h := uint64(1)
	for h < maxHeight && (uint64(1)<<h) <= n+h {
		h++
	}
	return h - 1, nil
}

// HeightAt returns the height of the node at the one based position pos. Leaves
// have height 1.
//
// The numbering is the same whatever the size of the mmr, so the height depends
// on nothing but pos.
//
//	4                         15
//	                     /          \
//	3          7                          14
//	        /     \                    /      \
//	2     3         6          10             13         18
//	     /  \     /  \       /    \         /    \      /   \
//	1   1    2   4    5     8      9      11      12  16     17  19
//
// The position is first reduced by whole mountains to its left. What remains
// either lands exactly on a peak, or falls inside a mountain, in which case we
// descend from that mountain's peak, choosing the left or right child each
// time, until we land on it.
func HeightAt(pos uint64) (uint64, error) {
	if pos == 0 || pos > MaxPosition {
		return 0, fmt.Errorf("%w: position %d out of range", ErrInvalidInput, pos)
	}

	remainder := pos
	for {
		// remainder is never zero here, so MountainHeight can't fail
		height, _ := MountainHeight(remainder)
		peak := HeightSize(height)

		if remainder == peak {
			return height, nil
		}
		if remainder > peak {
			remainder -= peak
			continue
		}
		return descendHeight(remainder, peak, height), nil
	}
}

// descendHeight walks down from the mountain whose peak is at (local) position
// peak, with the given height, towards target. target must be strictly inside
// the mountain.
func descendHeight(target, peak, height uint64) uint64 {
	for {
		right := peak - 1
		left := right - HeightSize(height-1)
		if target > left {
			peak = right
		} else {
			peak = left
		}
		height--
		if target == peak || height == 1 {
			return height
		}
	}
}

// IsLeaf is true if pos identifies a leaf. Out of range positions are not leaves.
func IsLeaf(pos uint64) bool {
	height, err := HeightAt(pos)
	return err == nil && height == 1
}

// GetChildren returns the left and right child positions of the interior node
// at pos.
//
// The right child always immediately precedes its parent. The left child
// precedes the right by the size of the mountain rooted at the right child.
//
//	pos 7 has height 3: right = 6, left = 6 - (2^2 - 1) = 3
//	pos 30 has height 4: right = 29, left = 29 - (2^3 - 1) = 22
func GetChildren(pos uint64) (uint64, uint64, error) {
	height, err := HeightAt(pos)
	if err != nil {
		return 0, 0, err
	}
	if height == 1 {
		return 0, 0, fmt.Errorf("%w: position %d", ErrLeafHasNoChildren, pos)
	}
	right := pos - 1
	left := right - HeightSize(height-1)
	return left, right, nil
}

// parentOf returns the parent position for the node at pos, which has the
// given height, and whether pos is the right child of that parent.
//
// If the node following pos is taller, pos is a right child and that next
// node is its parent. Otherwise pos is a left child, its sibling is a whole
// mountain ahead, and the parent immediately follows the sibling.
func parentOf(pos, height uint64) (uint64, bool, error) {
	nextHeight, err := HeightAt(pos + 1)
	if err != nil {
		return 0, false, err
	}
	if nextHeight > height {
		return pos + 1, true, nil
	}
	return pos + HeightSize(height) + 1, false, nil
}

// siblingOf returns the position of the sibling of pos given its height and
// side.
func siblingOf(pos, height uint64, isRight bool) uint64 {
	if isRight {
		return pos - HeightSize(height)
	}
	return pos + HeightSize(height)
}
