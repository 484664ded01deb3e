// File: types.go
// Role: the shared engine interface, weight bookkeeping, and Graph[W]
// construction.

package weighted

import (
	"github.com/katalvlaran/wtgraph/undirected"
	"github.com/katalvlaran/wtgraph/wtdigraph"
)

// engine is the surface both wtdigraph.Digraph and undirected.Graph
// provide. Graph[W] talks to it directly so the same weighted wrapper
// works over either flavor without duplication.
type engine interface {
	VCount() int
	ECount() int
	VCountUpdated() int
	ECountUpdated() int
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

type weightEditKind uint8

const (
	weightAdd weightEditKind = iota
	weightDelete
)

type weightEdit[W any] struct {
	kind   weightEditKind
	weight W
}

// Graph is a weighted graph layered over an engine: committed weights
// in weights, keyed by canon(from,to), with an Add/Delete overlay in
// weightEdits keyed the same way. The zero value is not usable;
// construct one with New, NewEmpty, NewUndirected, or
// NewUndirectedEmpty.
type Graph[W any] struct {
	eng   engine
	canon func(u, v int) [2]int

	weights     map[[2]int]W
	weightEdits map[[2]int]weightEdit[W]
}

func fromEngine[W any](eng engine, canon func(u, v int) [2]int) *Graph[W] {
	return &Graph[W]{
		eng:         eng,
		canon:       canon,
		weights:     make(map[[2]int]W),
		weightEdits: make(map[[2]int]weightEdit[W]),
	}
}

// directedKey keys a weight by the exact (u,v) the caller named —
// correct for a directed engine, where (u,v) and (v,u) are distinct
// edges.
func directedKey(u, v int) [2]int { return [2]int{u, v} }

// undirectedKey keys a weight by (min,max) — matching undirected.Graph's
// own endpoint canonicalization, so a weight recorded via AddEdge(1,0,w)
// is found again by Weight(0,1).
func undirectedKey(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}
	return [2]int{u, v}
}

// New builds a directed weighted graph from a plain adjacency list;
// see wtdigraph.New for the exact contract. Every edge named by adj
// starts unweighted — use EditWeight to attach a weight (AddEdge
// rejects an edge that already exists, and committed edges built this
// way have no weight until one is recorded).
func New[W any](vCount int, adj [][]int) (*Graph[W], error) {
	dg, err := wtdigraph.New(vCount, adj)
	if err != nil {
		return nil, err
	}
	return fromEngine[W](dg, directedKey), nil
}

// NewEmpty returns an empty directed weighted graph.
func NewEmpty[W any]() *Graph[W] {
	return fromEngine[W](wtdigraph.NewEmpty(), directedKey)
}

// NewUndirected builds an undirected weighted graph from a plain
// adjacency list; see undirected.New for the exact contract.
func NewUndirected[W any](vCount int, adj [][]int) (*Graph[W], error) {
	g, err := undirected.New(vCount, adj)
	if err != nil {
		return nil, err
	}
	return fromEngine[W](g, undirectedKey), nil
}

// NewUndirectedEmpty returns an empty undirected weighted graph.
func NewUndirectedEmpty[W any]() *Graph[W] {
	return fromEngine[W](undirected.NewEmpty(), undirectedKey)
}

// VCount returns the committed vertex count.
func (g *Graph[W]) VCount() int { return g.eng.VCount() }

// ECount returns the committed edge count.
func (g *Graph[W]) ECount() int { return g.eng.ECount() }

// VCountUpdated returns the vertex count in the updated view.
func (g *Graph[W]) VCountUpdated() int { return g.eng.VCountUpdated() }

// ECountUpdated returns the edge count in the updated view.
func (g *Graph[W]) ECountUpdated() int { return g.eng.ECountUpdated() }

// Dirty reports whether any mutator has run since the last Commit,
// Discard, or Shrink.
func (g *Graph[W]) Dirty() bool { return g.eng.Dirty() }

// AddVertex marks v present in the updated view.
func (g *Graph[W]) AddVertex(v int) (int, error) { return g.eng.AddVertex(v) }

// AppendVertex marks the next unused index present and returns it.
func (g *Graph[W]) AppendVertex() int { return g.eng.AppendVertex() }

// DeleteVertex marks v absent in the updated view.
func (g *Graph[W]) DeleteVertex(v int) error { return g.eng.DeleteVertex(v) }
