package mmr

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"
)

// NewSHA256 returns the default hash primitive
func NewSHA256() hash.Hash { return sha256.New() }

// NewKeccak256 returns the legacy (pre NIST padding) keccak-256 used on
// ethereum, for accumulators whose roots are checked on chain.
func NewKeccak256() hash.Hash { return sha3.NewLegacyKeccak256() }

// HashWriteUint64 writes a uint64 to a hasher in bigendian layout - most
// significant byte at lowest address/storage location
func HashWriteUint64(hasher hash.Hash, value uint64) {
	b := [8]byte{}
	binary.BigEndian.PutUint64(b[:], value)
	hasher.Write(b[:])
}

// HashLeaf returns H(pos || value)
//
// Committing the position stops a value proven at one position being passed
// off as the same value at another.
// ** the hasher is reset **
func HashLeaf(hasher hash.Hash, pos uint64, value []byte) []byte {
	hasher.Reset()
	HashWriteUint64(hasher, pos)
	hasher.Write(value)
	return hasher.Sum(nil)
}

// HashBranch returns H(left || right)
// ** the hasher is reset **
func HashBranch(hasher hash.Hash, left []byte, right []byte) []byte {
	hasher.Reset()
	hasher.Write(left)
	hasher.Write(right)
	return hasher.Sum(nil)
}

// BagPeaks folds the peak hashes, which must be ordered tallest first, into the
// root committing an mmr of width leaves.
//
// The fold runs right to left, so the shortest peak is innermost:
//
//	bag = H(p1 || H(p2 || ... H(pk-1 || pk)))
//	root = H(width || bag)
//
// Binding the width means a forest with a different number of leaves can not
// produce the same root even if it happened to share the bag. Builders and
// verifiers must agree on this order exactly.
// ** the hasher is reset **
func BagPeaks(hasher hash.Hash, width uint64, peakHashes [][]byte) []byte {
	if len(peakHashes) == 0 {
		return nil
	}
	bag := peakHashes[len(peakHashes)-1]
	for i := len(peakHashes) - 2; i >= 0; i-- {
		bag = HashBranch(hasher, peakHashes[i], bag)
	}
	hasher.Reset()
	HashWriteUint64(hasher, width)
	hasher.Write(bag)
	return hasher.Sum(nil)
}
