// File: methods.go
// Role: updated-view queries and mutators, delegating to the overlay
// and translating its sentinels into this package's own.

package wtdigraph

import (
	"errors"

	"github.com/katalvlaran/wtgraph/overlay"
)

// VCountUpdated returns the vertex count in the updated view.
func (d *Digraph) VCountUpdated() int { return d.ov.VCountUpdated() }

// ECountUpdated returns the edge count in the updated view.
func (d *Digraph) ECountUpdated() int { return d.ov.ECountUpdated() }

// VertexExistsUpdated reports whether v is present in the updated view.
func (d *Digraph) VertexExistsUpdated(v int) bool { return d.ov.VertexExistsUpdated(v) }

// OutgoingUpdated returns the outgoing neighbors of v in the updated
// view.
func (d *Digraph) OutgoingUpdated(v int) ([]int, error) {
	out, err := d.ov.OutgoingUpdated(v)
	return out, translate(err)
}

// IncomingUpdated returns the vertices u such that (u,v) holds in the
// updated view. O(total overlay size); prefer Commit then Incoming on
// a hot path.
func (d *Digraph) IncomingUpdated(v int) ([]int, error) {
	in, err := d.ov.IncomingUpdated(v)
	return in, translate(err)
}

// EdgeExistsUpdated reports whether (u,v) holds in the updated view.
func (d *Digraph) EdgeExistsUpdated(u, v int) (bool, error) {
	ok, err := d.ov.EdgeExistsUpdated(u, v)
	return ok, translate(err)
}

// AddVertex marks v present in the updated view. Returns
// ErrVertexExists if v is already present there.
func (d *Digraph) AddVertex(v int) (int, error) {
	got, err := d.ov.AddVertex(v)
	return got, translate(err)
}

// AppendVertex marks the next unused index present and returns it.
func (d *Digraph) AppendVertex() int { return d.ov.AppendVertex() }

// DeleteVertex marks v absent in the updated view. Its incident edges
// are not eagerly removed.
func (d *Digraph) DeleteVertex(v int) error { return translate(d.ov.DeleteVertex(v)) }

// AddEdge buffers the addition of (u,v) in the updated view.
func (d *Digraph) AddEdge(u, v int) error { return translate(d.ov.AddEdge(u, v)) }

// DeleteEdge buffers the removal of (u,v) in the updated view.
func (d *Digraph) DeleteEdge(u, v int) error { return translate(d.ov.DeleteEdge(u, v)) }

// DeleteOutgoingEdges buffers removal of every outgoing edge of v in
// the updated view.
func (d *Digraph) DeleteOutgoingEdges(v int) error {
	out, err := d.ov.OutgoingUpdated(v)
	if err != nil {
		return translate(err)
	}
	for _, to := range out {
		if err := d.ov.DeleteEdge(v, to); err != nil {
			return translate(err)
		}
	}
	return nil
}

// DeleteIncomingEdges buffers removal of every incoming edge of v in
// the updated view. O(total overlay size); see IncomingUpdated.
func (d *Digraph) DeleteIncomingEdges(v int) error {
	in, err := d.ov.IncomingUpdated(v)
	if err != nil {
		return translate(err)
	}
	for _, from := range in {
		if err := d.ov.DeleteEdge(from, v); err != nil {
			return translate(err)
		}
	}
	return nil
}

// translate maps overlay's sentinel errors onto this package's own, so
// callers never need to import package overlay just to check errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, overlay.ErrVertexNotFound):
		return ErrVertexNotFound
	case errors.Is(err, overlay.ErrVertexExists):
		return ErrVertexExists
	case errors.Is(err, overlay.ErrEdgeNotFound):
		return ErrEdgeNotFound
	case errors.Is(err, overlay.ErrDuplicateEdge):
		return ErrDuplicateEdge
	default:
		return err
	}
}
