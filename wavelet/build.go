// File: build.go
// Role: Construct a Sequence from a flat symbol slice.

package wavelet

import (
	"fmt"

	"github.com/katalvlaran/wtgraph/bitvec"
)

// Build constructs a Sequence holding symbols, whose alphabet is
// [0, alphabetSize). Panics if any symbol falls outside that range —
// a malformed symbol sequence is a construction-time bug in the caller
// (package adjacency validates its own inputs before reaching here).
func Build(symbols []int, alphabetSize int) *Sequence {
	for _, s := range symbols {
		if s < 0 || s >= alphabetSize {
			panic(fmt.Sprintf("wavelet: symbol %d out of alphabet [0,%d)", s, alphabetSize))
		}
	}

	root := buildNode(symbols, 0, alphabetSize)

	return &Sequence{root: root, alphabetSize: alphabetSize, length: len(symbols)}
}

// buildNode recursively partitions symbols (all known to lie in [lo,hi))
// into a wavelet-tree node, returning nil once the range covers a single
// symbol (a leaf).
func buildNode(symbols []int, lo, hi int) *node {
	if hi-lo <= 1 {
		return nil
	}
	mid := lo + (hi-lo)/2

	bb := bitvec.NewBuilder(len(symbols))
	left := make([]int, 0, len(symbols))
	right := make([]int, 0, len(symbols))
	for _, s := range symbols {
		if s < mid {
			bb.Append(false)
			left = append(left, s)
		} else {
			bb.Append(true)
			right = append(right, s)
		}
	}

	return &node{
		bits:  bb.Build(),
		left:  buildNode(left, lo, mid),
		right: buildNode(right, mid, hi),
	}
}
