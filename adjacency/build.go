// File: build.go
// Role: constructors — from a plain adjacency list (used by
// wtdigraph's New, Commit and Shrink), or from a pre-built
// (marks, symbols) pair.

package adjacency

import (
	"github.com/katalvlaran/wtgraph/bitvec"
	"github.com/katalvlaran/wtgraph/wavelet"
)

// FromAdjacencyList builds an Adjacency from a plain adjacency list:
// adj[v] lists the outgoing neighbors of vertex v, in the order they
// should be returned by Outgoing(v). len(adj) must equal vCount, and
// every neighbor must be in [0, vCount).
func FromAdjacencyList(vCount int, adj [][]int) (*Adjacency, error) {
	if len(adj) != vCount {
		return nil, ErrLengthMismatch
	}

	eCount := 0
	for _, nbrs := range adj {
		eCount += len(nbrs)
	}

	bb := bitvec.NewBuilder(vCount + eCount)
	flat := make([]int, 0, eCount)
	for _, nbrs := range adj {
		bb.Append(true)
		for _, to := range nbrs {
			if to < 0 || to >= vCount {
				return nil, ErrNeighborOutOfRange
			}
			bb.Append(false)
			flat = append(flat, to)
		}
	}

	return &Adjacency{
		marks:   bb.Build(),
		symbols: wavelet.Build(flat, vCount),
		vCount:  vCount,
		eCount:  eCount,
	}, nil
}

// FromParts builds an Adjacency directly from a pre-built marks vector
// and symbols sequence. wtdigraph's commit/shrink rebuild does not use
// it; it goes through FromAdjacencyList. Callers are trusted to have
// maintained the marks/symbols invariants (see doc.go); this is an
// internal-use constructor, not a
// place for re-validating caller input.
func FromParts(marks *bitvec.BitVector, symbols *wavelet.Sequence, vCount, eCount int) *Adjacency {
	return &Adjacency{marks: marks, symbols: symbols, vCount: vCount, eCount: eCount}
}
