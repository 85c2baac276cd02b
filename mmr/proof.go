package mmr

import (
	"bytes"
	"fmt"
)

// Proof is an inclusion proof for a single leaf.
//
// Siblings are the witnesses from the leaf up to the peak of its mountain,
// nearest the leaf first. PeakBagging holds the hashes of every other peak in
// the mmr of Width leaves, tallest first. The verifier re-inserts the peak it
// recomputes at the rank of the leaf's mountain and bags the complete list.
type Proof struct {
	Root        []byte
	Width       uint64
	PeakBagging [][]byte
	Siblings    [][]byte
}

// ProofPath returns the positions of the witnesses for pos in an mmr of width
// leaves, and the position of the peak that the path reaches.
//
// For the following mmr, with width 7, and pos 5 we would obtain the path
//
//	[4, 3]
//
// Because the peak committing 5 is 7, and given the value for 5, we only need 4
// and then 3 to reach it.
//
//	3        7
//	       /   \
//	2     3     6     10
//	     / \   / \   /  \
//	1   1   2 4   5 8    9  11
func ProofPath(width uint64, pos uint64) ([]uint64, uint64, error) {
	if pos == 0 {
		return nil, 0, fmt.Errorf("%w: position 0", ErrInvalidInput)
	}
	if width > MaxWidth {
		return nil, 0, fmt.Errorf("%w: width %d", ErrInvalidInput, width)
	}
	size := Size(width)
	if pos > size {
		return nil, 0, fmt.Errorf("%w: position %d, size %d", ErrPositionNotFound, pos, size)
	}

	height, err := HeightAt(pos) // allows for paths from interior nodes
	if err != nil {
		return nil, 0, err
	}

	var path []uint64
	for {
		// The last node is always a peak
		if pos == size {
			return path, pos, nil
		}
		parent, isRight, err := parentOf(pos, height)
		if err != nil {
			return nil, 0, err
		}
		// When the parent is beyond the mmr, pos is a peak and the path is
		// complete.
		if parent > size {
			return path, pos, nil
		}
		path = append(path, siblingOf(pos, height, isRight))
		pos = parent
		height++
	}
}

// BuildProof collects the inclusion proof for the leaf at leafPos against the
// current state of the accumulator.
func (a *Accumulator) BuildProof(leafPos uint64) (Proof, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.failed != nil {
		return Proof{}, a.failed
	}
	if leafPos == 0 {
		return Proof{}, fmt.Errorf("%w: position 0", ErrInvalidInput)
	}
	if leafPos > a.size {
		return Proof{}, fmt.Errorf("%w: position %d, size %d", ErrPositionNotFound, leafPos, a.size)
	}
	height, err := HeightAt(leafPos)
	if err != nil {
		return Proof{}, err
	}
	if height != 1 {
		return Proof{}, fmt.Errorf("%w: position %d has height %d", ErrNotALeaf, leafPos, height)
	}

	path, localPeak, err := ProofPath(a.width, leafPos)
	if err != nil {
		return Proof{}, err
	}

	proof := Proof{
		Root:     bytes.Clone(a.root),
		Width:    a.width,
		Siblings: make([][]byte, 0, len(path)),
	}
	for _, pos := range path {
		value, err := a.get(pos)
		if err != nil {
			return Proof{}, err
		}
		proof.Siblings = append(proof.Siblings, value)
	}

	peaks, err := GetPeakIndexes(a.width)
	if err != nil {
		return Proof{}, err
	}
	proof.PeakBagging = make([][]byte, 0, len(peaks)-1)
	for _, pos := range peaks {
		if pos == localPeak {
			continue
		}
		value, err := a.get(pos)
		if err != nil {
			return Proof{}, err
		}
		proof.PeakBagging = append(proof.PeakBagging, value)
	}
	return proof, nil
}
