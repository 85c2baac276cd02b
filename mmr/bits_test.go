package mmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitLength64(t *testing.T) {
	tests := []struct {
		num  uint64
		want uint64
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{7, 3},
		{8, 4},
		{1 << 61, 62},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, BitLength64(tt.num), "num %d", tt.num)
	}
}

func TestPeakCount(t *testing.T) {
	assert.Equal(t, 0, PeakCount(0))
	assert.Equal(t, 1, PeakCount(8))
	assert.Equal(t, 3, PeakCount(7))
	assert.Equal(t, 4, PeakCount(27))
}
