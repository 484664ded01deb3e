package bitvec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wtgraph/bitvec"
)

// fromBits builds a BitVector from a literal string of '0'/'1' characters,
// e.g. fromBits("1011") has bits [1,0,1,1].
func fromBits(s string) *bitvec.BitVector {
	bb := bitvec.NewBuilder(len(s))
	for _, c := range s {
		bb.Append(c == '1')
	}
	return bb.Build()
}

func TestBitVector_RankBasic(t *testing.T) {
	bv := fromBits("1011001")
	require.Equal(t, 7, bv.Len())
	require.Equal(t, 4, bv.Ones())
	require.Equal(t, 3, bv.Zeros())

	assert.Equal(t, 0, bv.Rank1(0))
	assert.Equal(t, 1, bv.Rank1(1))
	assert.Equal(t, 1, bv.Rank1(2))
	assert.Equal(t, 2, bv.Rank1(3))
	assert.Equal(t, 2, bv.Rank1(4))
	assert.Equal(t, 2, bv.Rank1(5))
	assert.Equal(t, 3, bv.Rank1(6))
	assert.Equal(t, 4, bv.Rank1(7))

	assert.Equal(t, 0, bv.Rank0(1))
	assert.Equal(t, 1, bv.Rank0(2))
	assert.Equal(t, 3, bv.Rank0(7))
}

func TestBitVector_At(t *testing.T) {
	bv := fromBits("1011001")
	want := []bool{true, false, true, true, false, false, true}
	for i, w := range want {
		assert.Equal(t, w, bv.At(i), "bit %d", i)
	}
}

func TestBitVector_SelectBasic(t *testing.T) {
	bv := fromBits("1011001")
	// ones at positions 0,2,3,6
	assert.Equal(t, 0, bv.Select1(0))
	assert.Equal(t, 2, bv.Select1(1))
	assert.Equal(t, 3, bv.Select1(2))
	assert.Equal(t, 6, bv.Select1(3))
	// virtual one at the end
	assert.Equal(t, 7, bv.Select1(4))

	// zeros at positions 1,4,5
	assert.Equal(t, 1, bv.Select0(0))
	assert.Equal(t, 4, bv.Select0(1))
	assert.Equal(t, 5, bv.Select0(2))
	assert.Equal(t, 7, bv.Select0(3))
}

func TestBitVector_SelectPanicsOutOfRange(t *testing.T) {
	bv := fromBits("1011001")
	assert.Panics(t, func() { bv.Select1(-1) })
	assert.Panics(t, func() { bv.Select1(5) })
	assert.Panics(t, func() { bv.Select0(-1) })
	assert.Panics(t, func() { bv.Select0(4) })
	assert.Panics(t, func() { bv.At(7) })
	assert.Panics(t, func() { bv.At(-1) })
	assert.Panics(t, func() { bv.Rank1(8) })
}

func TestBitVector_Empty(t *testing.T) {
	bv := bitvec.NewBuilder(0).Build()
	assert.Equal(t, 0, bv.Len())
	assert.Equal(t, 0, bv.Rank1(0))
	assert.Equal(t, 0, bv.Select1(0)) // virtual one at position 0
	assert.Equal(t, 0, bv.Select0(0)) // virtual zero at position 0
}

func TestBitVector_MultiWordBoundary(t *testing.T) {
	// Exercise word boundaries (64 bits) and a partially-filled final word.
	const n = 130
	bb := bitvec.NewBuilder(n)
	var wantOnes []int
	for i := 0; i < n; i++ {
		bit := i%7 == 0 // irregular pattern crossing word boundaries
		bb.Append(bit)
		if bit {
			wantOnes = append(wantOnes, i)
		}
	}
	bv := bb.Build()
	require.Equal(t, n, bv.Len())
	require.Equal(t, len(wantOnes), bv.Ones())

	for k, pos := range wantOnes {
		assert.Equal(t, pos, bv.Select1(k), "select1(%d)", k)
	}
	assert.Equal(t, len(wantOnes), bv.Rank1(n))

	// Cross-check rank1 against a naive scan at several cut points.
	for _, cut := range []int{0, 1, 63, 64, 65, 127, 128, 129, 130} {
		naive := 0
		for i := 0; i < cut; i++ {
			if i%7 == 0 {
				naive++
			}
		}
		assert.Equal(t, naive, bv.Rank1(cut), "rank1(%d)", cut)
	}

	// All zero positions must resolve correctly too, including the ones
	// that live in the last, partially-filled word.
	zeroIdx := 0
	for i := 0; i < n; i++ {
		if i%7 != 0 {
			assert.Equal(t, i, bv.Select0(zeroIdx), "select0(%d)", zeroIdx)
			zeroIdx++
		}
	}
}
