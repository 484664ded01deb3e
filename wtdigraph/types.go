// File: types.go
// Role: Digraph storage layout, construction, and the CommittedView it
// exposes to its own overlay.

package wtdigraph

import (
	"github.com/katalvlaran/wtgraph/adjacency"
	"github.com/katalvlaran/wtgraph/overlay"
)

// Digraph is the WT-digraph engine: an immutable succinct adjacency
// structure plus an edit overlay of uncommitted mutations. The zero
// value is not usable; construct one with New or NewEmpty.
type Digraph struct {
	adj *adjacency.Adjacency

	// committedRemoved holds vertices that occupy an addressable slot
	// (index < adj.VCount()) but are logically deleted at the committed
	// layer. It persists across Commit calls and is only cleared by
	// Shrink, mirroring the original deleted_vertices/
	// deleted_vertices_uncommitted split.
	committedRemoved map[int]bool

	ov *overlay.Overlay
}

// New builds a Digraph from a plain adjacency list: adj[v] lists the
// outgoing neighbors of vertex v. See adjacency.FromAdjacencyList for
// the exact contract and error conditions.
func New(vCount int, adj [][]int) (*Digraph, error) {
	a, err := adjacency.FromAdjacencyList(vCount, adj)
	if err != nil {
		return nil, err
	}

	return fromAdjacency(a), nil
}

// NewEmpty returns a Digraph with no vertices and no edges.
func NewEmpty() *Digraph {
	a, _ := adjacency.FromAdjacencyList(0, nil)
	return fromAdjacency(a)
}

func fromAdjacency(a *adjacency.Adjacency) *Digraph {
	d := &Digraph{adj: a, committedRemoved: make(map[int]bool)}
	d.ov = overlay.New(d)
	return d
}

// VCount returns the committed vertex count (addressable slots minus
// committed-removed vertices).
func (d *Digraph) VCount() int { return d.adj.VCount() - len(d.committedRemoved) }

// ECount returns the committed edge count.
func (d *Digraph) ECount() int { return d.adj.ECount() }

// SlotCount returns the total number of addressable committed indices.
func (d *Digraph) SlotCount() int { return d.adj.VCount() }

// VertexExists reports whether v is a logically-present committed
// vertex.
func (d *Digraph) VertexExists(v int) bool {
	return v >= 0 && v < d.adj.VCount() && !d.committedRemoved[v]
}

// Outgoing returns the committed outgoing neighbors of v. Returns
// ErrVertexNotFound if v does not exist in the committed view.
func (d *Digraph) Outgoing(v int) ([]int, error) {
	if !d.VertexExists(v) {
		return nil, ErrVertexNotFound
	}
	return d.adj.Outgoing(v)
}

// Incoming returns the committed incoming neighbors of v. Returns
// ErrVertexNotFound if v does not exist in the committed view.
func (d *Digraph) Incoming(v int) ([]int, error) {
	if !d.VertexExists(v) {
		return nil, ErrVertexNotFound
	}
	return d.adj.Incoming(v)
}

// EdgeExists reports whether (u,v) is a committed edge.
func (d *Digraph) EdgeExists(u, v int) (bool, error) {
	out, err := d.Outgoing(u)
	if err != nil {
		return false, err
	}
	if !d.VertexExists(v) {
		return false, ErrVertexNotFound
	}
	for _, w := range out {
		if w == v {
			return true, nil
		}
	}
	return false, nil
}

// Dirty reports whether any mutator has run since the last Commit,
// Discard, or Shrink.
func (d *Digraph) Dirty() bool { return d.ov.Dirty() }
