// File: methods.go
// Role: committed and updated queries/mutators, all canonicalizing
// (u,v) to (min,max) before delegating to the underlying digraph.

package undirected

// VCount returns the committed vertex count.
func (g *Graph) VCount() int { return g.dg.VCount() }

// ECount returns the committed edge count (one per undirected edge).
func (g *Graph) ECount() int { return g.dg.ECount() }

// VertexExists reports whether v is a committed vertex.
func (g *Graph) VertexExists(v int) bool { return g.dg.VertexExists(v) }

// EdgeExists reports whether {u,v} is a committed edge.
func (g *Graph) EdgeExists(u, v int) (bool, error) {
	lo, hi := canon(u, v)
	return g.dg.EdgeExists(lo, hi)
}

// Neighbors returns v's committed undirected neighbors: the digraph's
// outgoing view of v (edges where v is the smaller endpoint) plus its
// incoming view (edges where v is the larger endpoint), with a
// self-loop counted once.
func (g *Graph) Neighbors(v int) ([]int, error) {
	out, err := g.dg.Outgoing(v)
	if err != nil {
		return nil, err
	}
	in, err := g.dg.Incoming(v)
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, len(out)+len(in))
	result = append(result, out...)
	for _, u := range in {
		if u == v {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

// VCountUpdated returns the vertex count in the updated view.
func (g *Graph) VCountUpdated() int { return g.dg.VCountUpdated() }

// ECountUpdated returns the edge count in the updated view.
func (g *Graph) ECountUpdated() int { return g.dg.ECountUpdated() }

// VertexExistsUpdated reports whether v is present in the updated view.
func (g *Graph) VertexExistsUpdated(v int) bool { return g.dg.VertexExistsUpdated(v) }

// EdgeExistsUpdated reports whether {u,v} holds in the updated view.
func (g *Graph) EdgeExistsUpdated(u, v int) (bool, error) {
	lo, hi := canon(u, v)
	return g.dg.EdgeExistsUpdated(lo, hi)
}

// NeighborsUpdated returns v's undirected neighbors in the updated
// view, by the same outgoing+incoming merge as Neighbors.
func (g *Graph) NeighborsUpdated(v int) ([]int, error) {
	out, err := g.dg.OutgoingUpdated(v)
	if err != nil {
		return nil, err
	}
	in, err := g.dg.IncomingUpdated(v)
	if err != nil {
		return nil, err
	}

	result := make([]int, 0, len(out)+len(in))
	result = append(result, out...)
	for _, u := range in {
		if u == v {
			continue
		}
		result = append(result, u)
	}
	return result, nil
}

// AddVertex marks v present in the updated view.
func (g *Graph) AddVertex(v int) (int, error) { return g.dg.AddVertex(v) }

// AppendVertex marks the next unused index present and returns it.
func (g *Graph) AppendVertex() int { return g.dg.AppendVertex() }

// DeleteVertex marks v absent in the updated view.
func (g *Graph) DeleteVertex(v int) error { return g.dg.DeleteVertex(v) }

// AddEdge buffers the addition of {u,v} in the updated view.
func (g *Graph) AddEdge(u, v int) error {
	lo, hi := canon(u, v)
	return g.dg.AddEdge(lo, hi)
}

// DeleteEdge buffers the removal of {u,v} in the updated view.
func (g *Graph) DeleteEdge(u, v int) error {
	lo, hi := canon(u, v)
	return g.dg.DeleteEdge(lo, hi)
}

// Commit rebuilds the committed structure from the updated view.
func (g *Graph) Commit() error { return g.dg.Commit() }

// Discard throws away every buffered edit.
func (g *Graph) Discard() { g.dg.Discard() }

// Shrink commits and additionally drops absent vertices, renumbering
// survivors; see wtdigraph.Digraph.Shrink for the mapping contract.
func (g *Graph) Shrink() ([]*int, error) { return g.dg.Shrink() }

// Dirty reports whether any mutator has run since the last Commit,
// Discard, or Shrink.
func (g *Graph) Dirty() bool { return g.dg.Dirty() }
