// File: types.go
// Role: Adjacency storage layout.

package adjacency

import (
	"github.com/katalvlaran/wtgraph/bitvec"
	"github.com/katalvlaran/wtgraph/wavelet"
)

// Adjacency is an immutable succinct adjacency list for a directed
// graph with vCount vertices and eCount edges. The zero value is not
// usable; build one with FromAdjacencyList or FromParts.
type Adjacency struct {
	marks   *bitvec.BitVector // length vCount+eCount: vCount ones, eCount zeros
	symbols *wavelet.Sequence // length eCount, alphabet [0, vCount)
	vCount  int
	eCount  int
}

// VCount returns the number of vertices.
func (a *Adjacency) VCount() int { return a.vCount }

// ECount returns the number of edges.
func (a *Adjacency) ECount() int { return a.eCount }

// start returns the index into symbols where v's neighbor block begins.
func (a *Adjacency) start(v int) int { return a.marks.Select1(v) - v }

// end returns the index into symbols one past v's neighbor block.
func (a *Adjacency) end(v int) int { return a.marks.Select1(v+1) - (v + 1) }
