package mmr

import (
	"bytes"
	"fmt"
	"hash"
	"slices"
)

// Verify returns true if value, appended at leafPos, is included in the mmr of
// width leaves committed by root.
//
// It is a pure function of its arguments, so proofs can be checked off line
// without any access to the accumulator that produced them. Any inconsistency
// between the arguments, including a width or position the proof can not
// belong to, is a rejection.
func Verify(
	hasher hash.Hash, root []byte, width uint64, leafPos uint64, value []byte,
	peakBagging [][]byte, siblings [][]byte,
) bool {

	peaks, err := GetPeakIndexes(width)
	if err != nil {
		return false
	}
	if len(peakBagging) != len(peaks)-1 {
		return false
	}
	size := peaks[len(peaks)-1]
	if leafPos == 0 || leafPos > size || !IsLeaf(leafPos) {
		return false
	}

	pos := leafPos
	height := uint64(1)
	current := HashLeaf(hasher, pos, value)

	for _, sibling := range siblings {
		if pos == size {
			return false
		}
		parent, isRight, err := parentOf(pos, height)
		if err != nil || parent > size {
			return false
		}
		// Preserve left then right ordering whichever side we arrived from
		if isRight {
			current = HashBranch(hasher, sibling, current)
		} else {
			current = HashBranch(hasher, current, sibling)
		}
		pos = parent
		height++
	}

	// The siblings must have taken us exactly to a peak. Its rank among the
	// peaks is where the recomputed hash belongs in the bagging.
	rank := slices.Index(peaks, pos)
	if rank < 0 {
		return false
	}

	all := make([][]byte, 0, len(peaks))
	all = append(all, peakBagging[:rank]...)
	all = append(all, current)
	all = append(all, peakBagging[rank:]...)

	return bytes.Equal(BagPeaks(hasher, width, all), root)
}

// Verify checks the proof for value at leafPos. A proof that does not reproduce
// its root returns ErrProofMismatch.
func (p Proof) Verify(hasher hash.Hash, leafPos uint64, value []byte) error {
	if !Verify(hasher, p.Root, p.Width, leafPos, value, p.PeakBagging, p.Siblings) {
		return fmt.Errorf("%w: leaf %d, width %d", ErrProofMismatch, leafPos, p.Width)
	}
	return nil
}
