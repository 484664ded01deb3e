// File: types.go
// Role: the shared engine interface, label bookkeeping, and Graph[L]
// construction.

package labeled

import (
	"github.com/katalvlaran/wtgraph/undirected"
	"github.com/katalvlaran/wtgraph/wtdigraph"
)

// engine is the surface both wtdigraph.Digraph and undirected.Graph
// provide. Graph[L] talks to it directly so the same label wrapper
// works over either flavor without duplication.
type engine interface {
	VCount() int
	ECount() int
	VCountUpdated() int
	ECountUpdated() int
	VertexExists(v int) bool
	VertexExistsUpdated(v int) bool
	EdgeExists(u, v int) (bool, error)
	EdgeExistsUpdated(u, v int) (bool, error)
	AddVertex(v int) (int, error)
	AppendVertex() int
	DeleteVertex(v int) error
	AddEdge(u, v int) error
	DeleteEdge(u, v int) error
	Commit() error
	Discard()
	Shrink() ([]*int, error)
	Dirty() bool
}

type labelEditKind uint8

const (
	labelSet labelEditKind = iota
	labelDelete
)

type labelEdit[L comparable] struct {
	kind  labelEditKind
	label L
}

// Graph is a label-keyed graph layered over an engine: committed
// index<->label tables (labels, indices) with an overlay of Set/Delete
// edits keyed by index. The zero value is not usable; construct one
// with New, NewEmpty, NewUndirected, or NewUndirectedEmpty.
type Graph[L comparable] struct {
	eng engine

	labels     map[int]L
	indices    map[L]int
	labelEdits map[int]labelEdit[L]
}

func fromEngine[L comparable](eng engine) *Graph[L] {
	return &Graph[L]{
		eng:        eng,
		labels:     make(map[int]L),
		indices:    make(map[L]int),
		labelEdits: make(map[int]labelEdit[L]),
	}
}

// New builds a directed label-keyed graph from a plain adjacency list
// with vertices labeled 0..vCount-1 when L is int; see wtdigraph.New
// for the adj contract. For any other L those vertices carry no label
// and no label-keyed operation reaches them; start from NewEmpty and
// grow with AddVertex to get labeled vertices.
func New[L comparable](vCount int, adj [][]int) (*Graph[L], error) {
	dg, err := wtdigraph.New(vCount, adj)
	if err != nil {
		return nil, err
	}
	g := fromEngine[L](dg)
	g.seedIdentityLabels(vCount)
	return g, nil
}

// NewEmpty returns an empty directed label-keyed graph.
func NewEmpty[L comparable]() *Graph[L] {
	return fromEngine[L](wtdigraph.NewEmpty())
}

// NewUndirected builds an undirected label-keyed graph from a plain
// adjacency list; see undirected.New for the adj contract.
func NewUndirected[L comparable](vCount int, adj [][]int) (*Graph[L], error) {
	g, err := undirected.New(vCount, adj)
	if err != nil {
		return nil, err
	}
	lg := fromEngine[L](g)
	lg.seedIdentityLabels(vCount)
	return lg, nil
}

// NewUndirectedEmpty returns an empty undirected label-keyed graph.
func NewUndirectedEmpty[L comparable]() *Graph[L] {
	return fromEngine[L](undirected.NewEmpty())
}

// seedIdentityLabels is only meaningful for int-labeled graphs built
// from a plain adjacency list; for any other L it is a no-op since the
// index cannot be converted to L. The vertices then stay unlabeled:
// EditLabel looks a vertex up by its current label, so it cannot
// attach a first label to one.
func (g *Graph[L]) seedIdentityLabels(vCount int) {
	for i := 0; i < vCount; i++ {
		label, ok := any(i).(L)
		if !ok {
			return
		}
		g.labels[i] = label
		g.indices[label] = i
	}
}

// VCount returns the committed vertex count.
func (g *Graph[L]) VCount() int { return g.eng.VCount() }

// ECount returns the committed edge count.
func (g *Graph[L]) ECount() int { return g.eng.ECount() }

// VCountUpdated returns the vertex count in the updated view.
func (g *Graph[L]) VCountUpdated() int { return g.eng.VCountUpdated() }

// ECountUpdated returns the edge count in the updated view.
func (g *Graph[L]) ECountUpdated() int { return g.eng.ECountUpdated() }

// Dirty reports whether any mutator has run since the last Commit,
// Discard, or Shrink.
func (g *Graph[L]) Dirty() bool { return g.eng.Dirty() }
