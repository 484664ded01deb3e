// File: types.go
// Role: Sequence and node layout.

package wavelet

import "github.com/katalvlaran/wtgraph/bitvec"

// node covers a symbol range [lo, hi) of the alphabet. bits routes each
// element of the node's own filtered subsequence: 0 means "belongs to
// the lower half [lo, mid)", 1 means "belongs to the upper half
// [mid, hi)". A nil child represents a leaf, reached once hi-lo == 1.
type node struct {
	bits  *bitvec.BitVector
	left  *node
	right *node
}

// Sequence is an immutable wavelet tree over symbols in [0, alphabetSize).
type Sequence struct {
	root         *node
	alphabetSize int
	length       int
}

// Len returns the number of symbols in the sequence.
func (s *Sequence) Len() int { return s.length }

// AlphabetSize returns the exclusive upper bound on symbol values.
func (s *Sequence) AlphabetSize() int { return s.alphabetSize }
