package mmrtesting

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

const (
	ValueBytes = 32
)

// TestGenerator produces reproducible leaf values
type TestGenerator struct {
	rand *rand.Rand
}

func NewTestGenerator(seed int64) TestGenerator {
	return TestGenerator{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// NextValue returns the next ValueBytes of the seeded random sequence
func (g *TestGenerator) NextValue() []byte {
	value := make([]byte, ValueBytes)
	// math/rand Read never returns an error
	_, _ = g.rand.Read(value)
	return value
}

// NumberedValue returns sha256 of the big endian encoding of i. It does not
// depend on the generator state.
func NumberedValue(i uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, i)
	h := sha256.Sum256(b)
	return h[:]
}
