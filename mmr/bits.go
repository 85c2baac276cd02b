package mmr

import "math/bits"

func BitLength64(num uint64) uint64 { return uint64(bits.Len64(num)) }

// PeakCount returns the number of mountains in an mmr of the given width. It is
// simply the count of set bits.
func PeakCount(width uint64) int {
	return bits.OnesCount64(width)
}
