// File: types.go
// Role: Graph storage and construction.

package undirected

import "github.com/katalvlaran/wtgraph/wtdigraph"

// Graph is an undirected graph layered over wtdigraph.Digraph: each
// edge {u,v} lives in the underlying digraph once, as min(u,v) →
// max(u,v). The zero value is not usable; construct one with New or
// NewEmpty.
type Graph struct {
	dg *wtdigraph.Digraph
}

// New builds a Graph from a plain undirected adjacency list: adj[v]
// lists v's neighbors, conventionally symmetric (w appears in adj[v]
// and v appears in adj[w]), though listing an edge from only one side
// is also accepted. Duplicate mentions of the same edge collapse to
// one.
func New(vCount int, adj [][]int) (*Graph, error) {
	if len(adj) != vCount {
		return nil, ErrLengthMismatch
	}

	seen := make(map[[2]int]bool)
	digAdj := make([][]int, vCount)
	for v, nbrs := range adj {
		for _, w := range nbrs {
			if w < 0 || w >= vCount {
				return nil, ErrNeighborOutOfRange
			}
			lo, hi := canon(v, w)
			key := [2]int{lo, hi}
			if seen[key] {
				continue
			}
			seen[key] = true
			digAdj[lo] = append(digAdj[lo], hi)
		}
	}

	dg, err := wtdigraph.New(vCount, digAdj)
	if err != nil {
		return nil, err
	}
	return &Graph{dg: dg}, nil
}

// NewEmpty returns a Graph with no vertices and no edges.
func NewEmpty() *Graph {
	return &Graph{dg: wtdigraph.NewEmpty()}
}

// Digraph returns the underlying directed engine, for adapters (such
// as package weighted) that need to share it directly.
func (g *Graph) Digraph() *wtdigraph.Digraph { return g.dg }

func canon(u, v int) (lo, hi int) {
	if u <= v {
		return u, v
	}
	return v, u
}
