// File: methods.go
// Role: label-keyed vertex/edge operations and index<->label lookup.

package labeled

// Label returns the committed label bound to index idx.
func (g *Graph[L]) Label(idx int) (L, bool) {
	l, ok := g.labels[idx]
	return l, ok
}

// LabelUpdated returns the label bound to index idx in the updated
// view.
func (g *Graph[L]) LabelUpdated(idx int) (L, bool) {
	if e, ok := g.labelEdits[idx]; ok {
		if e.kind == labelDelete {
			var zero L
			return zero, false
		}
		return e.label, true
	}
	return g.Label(idx)
}

// Index returns the committed vertex index bound to label.
func (g *Graph[L]) Index(label L) (int, bool) {
	idx, ok := g.indices[label]
	return idx, ok
}

// IndexUpdated returns the vertex index bound to label in the updated
// view.
func (g *Graph[L]) IndexUpdated(label L) (int, bool) {
	for idx, e := range g.labelEdits {
		if e.kind == labelSet && e.label == label {
			return idx, true
		}
	}
	idx, ok := g.indices[label]
	if !ok {
		return 0, false
	}
	if e, edited := g.labelEdits[idx]; edited && (e.kind == labelDelete || e.label != label) {
		// idx's label was deleted, or rebound to a different label
		// entirely — either way, label no longer resolves to idx.
		return 0, false
	}
	return idx, true
}

// VertexExists reports whether label is bound to a committed vertex.
func (g *Graph[L]) VertexExists(label L) bool {
	idx, ok := g.Index(label)
	return ok && g.eng.VertexExists(idx)
}

// VertexExistsUpdated reports whether label is bound to a vertex in
// the updated view.
func (g *Graph[L]) VertexExistsUpdated(label L) bool {
	idx, ok := g.IndexUpdated(label)
	return ok && g.eng.VertexExistsUpdated(idx)
}

// EdgeExists reports whether the committed graph has an edge between
// the vertices bound to fromLabel and toLabel.
func (g *Graph[L]) EdgeExists(fromLabel, toLabel L) (bool, error) {
	u, ok := g.Index(fromLabel)
	if !ok {
		return false, ErrLabelNotFound
	}
	v, ok := g.Index(toLabel)
	if !ok {
		return false, ErrLabelNotFound
	}
	return g.eng.EdgeExists(u, v)
}

// EdgeExistsUpdated reports whether the updated view has an edge
// between the vertices bound to fromLabel and toLabel.
func (g *Graph[L]) EdgeExistsUpdated(fromLabel, toLabel L) (bool, error) {
	u, ok := g.IndexUpdated(fromLabel)
	if !ok {
		return false, ErrLabelNotFound
	}
	v, ok := g.IndexUpdated(toLabel)
	if !ok {
		return false, ErrLabelNotFound
	}
	return g.eng.EdgeExistsUpdated(u, v)
}

// AddVertex adds a new vertex bound to label, effective once
// committed. Rejects label already bound to another vertex in the
// updated view.
func (g *Graph[L]) AddVertex(label L) (int, error) {
	if _, ok := g.IndexUpdated(label); ok {
		return 0, ErrLabelExists
	}
	idx := g.eng.AppendVertex()
	g.labelEdits[idx] = labelEdit[L]{kind: labelSet, label: label}
	return idx, nil
}

// DeleteVertex removes the vertex bound to label, effective once
// committed.
func (g *Graph[L]) DeleteVertex(label L) error {
	idx, ok := g.IndexUpdated(label)
	if !ok {
		return ErrLabelNotFound
	}
	if err := g.eng.DeleteVertex(idx); err != nil {
		return err
	}
	g.labelEdits[idx] = labelEdit[L]{kind: labelDelete}
	return nil
}

// AddEdge adds an edge between the vertices bound to fromLabel and
// toLabel, effective once committed.
func (g *Graph[L]) AddEdge(fromLabel, toLabel L) error {
	u, ok := g.IndexUpdated(fromLabel)
	if !ok {
		return ErrLabelNotFound
	}
	v, ok := g.IndexUpdated(toLabel)
	if !ok {
		return ErrLabelNotFound
	}
	return g.eng.AddEdge(u, v)
}

// DeleteEdge removes the edge between the vertices bound to fromLabel
// and toLabel, effective once committed.
func (g *Graph[L]) DeleteEdge(fromLabel, toLabel L) error {
	u, ok := g.IndexUpdated(fromLabel)
	if !ok {
		return ErrLabelNotFound
	}
	v, ok := g.IndexUpdated(toLabel)
	if !ok {
		return ErrLabelNotFound
	}
	return g.eng.DeleteEdge(u, v)
}

// EditLabel rebinds the vertex currently labeled oldLabel to
// newLabel, effective once committed. Rejects newLabel already bound
// to a different vertex in the updated view.
func (g *Graph[L]) EditLabel(oldLabel, newLabel L) error {
	idx, ok := g.IndexUpdated(oldLabel)
	if !ok {
		return ErrLabelNotFound
	}
	if other, ok := g.IndexUpdated(newLabel); ok && other != idx {
		return ErrLabelExists
	}
	g.labelEdits[idx] = labelEdit[L]{kind: labelSet, label: newLabel}
	return nil
}
