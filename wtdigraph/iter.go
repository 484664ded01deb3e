// File: iter.go
// Role: committed-view vertex/edge enumeration. Limited to committed
// edits — callers wanting the updated view must Commit first.

package wtdigraph

// Vertices returns every existing committed vertex index in ascending
// order. The original's recursive skip-over-deleted next() risked
// unbounded stack growth on a long run of deleted indices; this walks
// the slot range with a plain loop instead.
func (d *Digraph) Vertices() []int {
	out := make([]int, 0, d.VCount())
	for v := 0; v < d.SlotCount(); v++ {
		if d.VertexExists(v) {
			out = append(out, v)
		}
	}
	return out
}

// Edge is a committed (from, to) pair, as returned by Edges.
type Edge struct {
	From int
	To   int
}

// Edges returns every committed edge as a (from, to) pair, ordered by
// from then by position within from's outgoing list.
func (d *Digraph) Edges() ([]Edge, error) {
	out := make([]Edge, 0, d.ECount())
	for v := 0; v < d.SlotCount(); v++ {
		if !d.VertexExists(v) {
			continue
		}
		nbrs, err := d.adj.Outgoing(v)
		if err != nil {
			return nil, err
		}
		for _, w := range nbrs {
			out = append(out, Edge{From: v, To: w})
		}
	}
	return out, nil
}
