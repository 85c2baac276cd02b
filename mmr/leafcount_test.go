package mmr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	type args struct {
		width uint64
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"empty", args{0}, 0},
		{"one leaf", args{1}, 1},
		{"two leaves and their parent", args{2}, 3},
		{"seven leaves", args{7}, 11},
		{"fourteen leaves", args{14}, 25},
		{"twenty seven leaves", args{27}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Size(tt.args.width); got != tt.want {
				t.Errorf("Size() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLeafCount(t *testing.T) {
	for width := uint64(0); width <= 1024; width++ {
		got, err := LeafCount(Size(width))
		require.NoError(t, err)
		require.Equal(t, width, got)
	}
}

func TestLeafCountInvalidSizes(t *testing.T) {
	// sizes that stop between a leaf and the parent it completes
	for _, size := range []uint64{2, 5, 6, 9, 12, 13, 14} {
		_, err := LeafCount(size)
		assert.ErrorIs(t, err, ErrInvalidInput, "size %d", size)
	}
}

func TestLeafPosition(t *testing.T) {
	want := canonicalFloors[1]
	for i, pos := range want {
		assert.Equal(t, pos, LeafPosition(uint64(i)), "leaf index %d", i)
	}
}
