// File: types.go
// Role: BitVector storage layout and the append-only Builder that produces it.

package bitvec

import "math/bits"

const wordBits = 64

// BitVector is an immutable sequence of bits supporting O(1) rank and
// O(log words) select. The zero value is not usable; construct one via
// Builder.Build.
type BitVector struct {
	words      []uint64 // bit i lives in words[i/64], bit (i%64) from the LSB
	length     int      // number of bits
	blockRank1 []int    // blockRank1[w] = Rank1(64*w); len(words)+1 entries
	ones       int      // total number of ones
}

// Len returns the number of bits in the vector.
func (b *BitVector) Len() int { return b.length }

// Ones returns the total number of one-bits.
func (b *BitVector) Ones() int { return b.ones }

// Zeros returns the total number of zero-bits.
func (b *BitVector) Zeros() int { return b.length - b.ones }

// Builder accumulates bits one at a time; call Build to freeze them into
// an immutable BitVector. A Builder must not be reused after Build.
type Builder struct {
	words  []uint64
	length int
}

// NewBuilder returns a Builder with capacity pre-allocated for capacityBits
// bits. capacityBits is a hint; Append grows the buffer as needed regardless.
func NewBuilder(capacityBits int) *Builder {
	if capacityBits < 0 {
		capacityBits = 0
	}
	return &Builder{words: make([]uint64, 0, (capacityBits+wordBits-1)/wordBits)}
}

// Append adds a single bit to the end of the buffer.
func (bb *Builder) Append(bit bool) {
	wordIdx := bb.length / wordBits
	if wordIdx == len(bb.words) {
		bb.words = append(bb.words, 0)
	}
	if bit {
		bb.words[wordIdx] |= uint64(1) << uint(bb.length%wordBits)
	}
	bb.length++
}

// Build freezes the accumulated bits into an immutable BitVector,
// precomputing the word-level rank prefix table.
func (bb *Builder) Build() *BitVector {
	blockRank1 := make([]int, len(bb.words)+1)
	ones := 0
	for i, w := range bb.words {
		blockRank1[i] = ones
		ones += bits.OnesCount64(w)
	}
	blockRank1[len(bb.words)] = ones

	return &BitVector{
		words:      bb.words,
		length:     bb.length,
		blockRank1: blockRank1,
		ones:       ones,
	}
}
