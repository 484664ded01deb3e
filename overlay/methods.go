// File: methods.go
// Role: mutators and updated-view queries over the buffered edits.

package overlay

// VertexExistsUpdated reports whether v is present in the updated view:
// an explicit overlay mark wins; absent a mark, v is present iff it is
// within the committed slot range and not committed-removed.
func (o *Overlay) VertexExistsUpdated(v int) bool {
	if v < 0 {
		return false
	}
	if removed, ok := o.vertexEdits[v]; ok {
		return !removed
	}
	return v < o.committed.SlotCount() && o.committed.VertexExists(v)
}

// AddVertex marks v present in the updated view. It fails with
// ErrVertexExists if v is already present — overwriting an existing
// vertex's identity is rejected rather than silently dropping its
// incident edges.
func (o *Overlay) AddVertex(v int) (int, error) {
	if v < 0 {
		return 0, ErrVertexNotFound
	}
	if o.VertexExistsUpdated(v) {
		return 0, ErrVertexExists
	}

	o.vertexEdits[v] = false
	if v >= o.slotCountUpdated {
		o.slotCountUpdated = v + 1
	}
	o.vCountUpdated++
	o.dirty = true

	return v, nil
}

// AppendVertex marks the next unused index present and returns it. It
// never fails: the next index is by construction absent.
func (o *Overlay) AppendVertex() int {
	v := o.slotCountUpdated
	_, _ = o.AddVertex(v)
	return v
}

// DeleteVertex marks v absent in the updated view. Incident edges are
// not eagerly removed; OutgoingUpdated/IncomingUpdated simply stop
// being reachable through a deleted endpoint's own Vertex-Exists check.
func (o *Overlay) DeleteVertex(v int) error {
	if !o.VertexExistsUpdated(v) {
		return ErrVertexNotFound
	}

	o.vertexEdits[v] = true
	o.vCountUpdated--
	o.dirty = true

	return nil
}

// AddEdge buffers Add(v) onto u's edit log. Fails if either endpoint is
// absent in the updated view, or if (u,v) already exists there.
func (o *Overlay) AddEdge(u, v int) error {
	if !o.VertexExistsUpdated(u) || !o.VertexExistsUpdated(v) {
		return ErrVertexNotFound
	}

	exists, err := o.EdgeExistsUpdated(u, v)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateEdge
	}

	o.adjEdits[u] = append(o.adjEdits[u], edgeEdit{kind: editAdd, to: v})
	o.eCountUpdated++
	o.dirty = true

	return nil
}

// DeleteEdge buffers the removal of (u,v). If u's edit log has a
// matching Add(v) entry it is swap-removed as a space optimization;
// either way a Delete(v) entry is appended so downstream replay (over
// both outgoing and incoming logs) always sees the removal, regardless
// of whether (u,v) was ever actually committed.
func (o *Overlay) DeleteEdge(u, v int) error {
	if !o.VertexExistsUpdated(u) || !o.VertexExistsUpdated(v) {
		return ErrVertexNotFound
	}

	exists, err := o.EdgeExistsUpdated(u, v)
	if err != nil {
		return err
	}
	if !exists {
		return ErrEdgeNotFound
	}

	edits := o.adjEdits[u]
	for i := range edits {
		if edits[i].kind == editAdd && edits[i].to == v {
			edits[i] = edits[len(edits)-1]
			edits = edits[:len(edits)-1]
			break
		}
	}
	edits = append(edits, edgeEdit{kind: editDelete, to: v})
	o.adjEdits[u] = edits

	o.eCountUpdated--
	o.dirty = true

	return nil
}
