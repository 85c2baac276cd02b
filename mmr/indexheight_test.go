package mmr

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//	5 |                             31
//	4 |             15                                 30                                    46
//	3 |      7             14                 22                 29                 38                 45
//	2 |   3      6     10       13       18       21        25       28        34        37       41        44       49
//	1 | 1  2   4  5   8  9    11  12   16  17    19  20   23  24    26  27   32  33    35  36   39  40    42  43   47  48    50
var canonicalFloors = map[uint64][]uint64{
	1: {1, 2, 4, 5, 8, 9, 11, 12, 16, 17, 19, 20, 23, 24, 26, 27, 32, 33, 35, 36, 39, 40, 42, 43, 47, 48, 50},
	2: {3, 6, 10, 13, 18, 21, 25, 28, 34, 37, 41, 44, 49},
	3: {7, 14, 22, 29, 38, 45},
	4: {15, 30, 46},
	5: {31},
}

func TestMountainHeight(t *testing.T) {
	tests := []struct {
		from, to uint64
		want     uint64
	}{
		{1, 1, 1},
		{2, 4, 2},
		{5, 11, 3},
		{12, 26, 4},
		{27, 57, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("[%d, %d] is %d", tt.from, tt.to, tt.want), func(t *testing.T) {
			for n := tt.from; n <= tt.to; n++ {
				got, err := MountainHeight(n)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got, "n = %d", n)
			}
		})
	}
}

func TestMountainHeightZero(t *testing.T) {
	_, err := MountainHeight(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHeightAt(t *testing.T) {
	for height, positions := range canonicalFloors {
		t.Run(fmt.Sprintf("floor %d", height), func(t *testing.T) {
			for _, pos := range positions {
				got, err := HeightAt(pos)
				require.NoError(t, err)
				assert.Equal(t, height, got, "position %d", pos)
			}
		})
	}
}

func TestHeightAtInvalid(t *testing.T) {
	_, err := HeightAt(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = HeightAt(MaxPosition + 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHeightAtLargePositions(t *testing.T) {
	// every all ones position is the peak of a left most mountain
	for height := uint64(1); height <= 62; height++ {
		got, err := HeightAt(HeightSize(height))
		require.NoError(t, err)
		assert.Equal(t, height, got)
	}
	// and the node following it is always a leaf
	for height := uint64(1); height < 62; height++ {
		got, err := HeightAt(HeightSize(height) + 1)
		require.NoError(t, err)
		assert.Equal(t, uint64(1), got)
	}
}

// TestHeightAtSequence checks HeightAt against the heights produced by actually
// building the structure leaf by leaf.
func TestHeightAtSequence(t *testing.T) {
	var heights []uint64
	var stack []uint64 // heights of the current peaks
	for leaf := 0; leaf < 300; leaf++ {
		heights = append(heights, 1)
		stack = append(stack, 1)
		for len(stack) > 1 && stack[len(stack)-1] == stack[len(stack)-2] {
			h := stack[len(stack)-1] + 1
			stack = append(stack[:len(stack)-2], h)
			heights = append(heights, h)
		}
	}
	for i, want := range heights {
		pos := uint64(i + 1)
		got, err := HeightAt(pos)
		require.NoError(t, err)
		require.Equal(t, want, got, "position %d", pos)

		// pure: a second call agrees
		again, _ := HeightAt(pos)
		require.Equal(t, got, again)
	}
}

func TestGetChildren(t *testing.T) {
	tests := []struct {
		pos         uint64
		left, right uint64
	}{
		{3, 1, 2},
		{7, 3, 6},
		{30, 22, 29},
		{15, 7, 14},
		{31, 15, 30},
		{46, 38, 45},
		{49, 47, 48},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.pos), func(t *testing.T) {
			left, right, err := GetChildren(tt.pos)
			require.NoError(t, err)
			assert.Equal(t, tt.left, left)
			assert.Equal(t, tt.right, right)
		})
	}
}

func TestGetChildrenOfLeaf(t *testing.T) {
	for _, pos := range []uint64{1, 2, 4, 50} {
		_, _, err := GetChildren(pos)
		assert.ErrorIs(t, err, ErrLeafHasNoChildren, "position %d", pos)
	}
	_, _, err := GetChildren(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetChildrenHeights(t *testing.T) {
	for pos := uint64(1); pos <= 2000; pos++ {
		height, err := HeightAt(pos)
		require.NoError(t, err)

		left, right, err := GetChildren(pos)
		if height == 1 {
			require.ErrorIs(t, err, ErrLeafHasNoChildren)
			continue
		}
		require.NoError(t, err, "position %d", pos)

		leftHeight, err := HeightAt(left)
		require.NoError(t, err)
		rightHeight, err := HeightAt(right)
		require.NoError(t, err)
		require.Equal(t, height-1, leftHeight, "left of %d", pos)
		require.Equal(t, height-1, rightHeight, "right of %d", pos)
	}
}

func TestParentOf(t *testing.T) {
	// parentOf must invert GetChildren
	for pos := uint64(1); pos <= 2000; pos++ {
		left, right, err := GetChildren(pos)
		if err != nil {
			continue
		}
		height, _ := HeightAt(left)

		parent, isRight, err := parentOf(left, height)
		require.NoError(t, err)
		assert.Equal(t, pos, parent)
		assert.False(t, isRight)
		assert.Equal(t, right, siblingOf(left, height, isRight))

		parent, isRight, err = parentOf(right, height)
		require.NoError(t, err)
		assert.Equal(t, pos, parent)
		assert.True(t, isRight)
		assert.Equal(t, left, siblingOf(right, height, isRight))
	}
}

func TestIsLeaf(t *testing.T) {
	assert.True(t, IsLeaf(1))
	assert.True(t, IsLeaf(50))
	assert.False(t, IsLeaf(3))
	assert.False(t, IsLeaf(0))
}
