package mmr

import (
	"fmt"
	"hash"
)

// NodeStore is the persistence the mmr is built on. Positions are one based
// and each is written exactly once, in increasing order.
type NodeStore interface {
	Get(pos uint64) ([]byte, error)
	Put(pos uint64, value []byte) error
}

// Sizer is implemented by stores that can report how many nodes they already
// hold. It allows an accumulator to be re-opened over a populated store.
type Sizer interface {
	Size() uint64
}

// AddLeaf adds a single leaf to an mmr currently holding size nodes and back
// fills any interior nodes 'above and to the left'
//
// Returns the size of the mmr after addition of the leaf. This is also the
// position of the last node written.
func AddLeaf(store NodeStore, hasher hash.Hash, size uint64, value []byte) (uint64, error) {

	pos := size + 1
	if err := store.Put(pos, HashLeaf(hasher, pos, value)); err != nil {
		return 0, err
	}

	// This loop checks to see if we can back fill any new mountains. If the
	// node after the one just written would be taller, the one just written
	// completed its right subtree, and the taller node is its parent. Merging
	// may complete a further mountain, exactly like the carry when
	// incrementing a binary counter.
	//
	//  1 2   <- we add '2'
	//
	//   3    <- so we get to write '3' as well, because it is higher
	//  / \
	// 1   2
	height := uint64(1)
	for {
		// The last node of an mmr of MaxWidth leaves is a peak and nothing
		// can follow it.
		if pos == MaxPosition {
			return pos, nil
		}
		next := pos + 1
		nextHeight, err := HeightAt(next)
		if err != nil {
			return 0, err
		}
		if nextHeight <= height {
			return pos, nil
		}

		left, right, err := GetChildren(next)
		if err != nil {
			return 0, err
		}

		var leftValue, rightValue []byte
		if leftValue, err = store.Get(left); err != nil {
			return 0, fmt.Errorf("%w: left child %d: %v", ErrNodeMissing, left, err)
		}
		if rightValue, err = store.Get(right); err != nil {
			return 0, fmt.Errorf("%w: right child %d: %v", ErrNodeMissing, right, err)
		}

		if err = store.Put(next, HashBranch(hasher, leftValue, rightValue)); err != nil {
			return 0, err
		}
		pos = next
		height = nextHeight
	}
}
