// File: methods.go
// Role: weighted edge operations — AddEdge, DeleteEdge, EditWeight,
// Weight/WeightUpdated, and the Commit/Discard/Shrink that fold the
// weight overlay alongside the underlying engine's own.

package weighted

// AddEdge adds (u,v) to the underlying engine and records weight as
// its weight, effective once committed.
func (g *Graph[W]) AddEdge(u, v int, weight W) error {
	if err := g.eng.AddEdge(u, v); err != nil {
		return err
	}
	g.weightEdits[g.canon(u, v)] = weightEdit[W]{kind: weightAdd, weight: weight}
	return nil
}

// DeleteEdge removes (u,v) from the underlying engine and buffers the
// removal of its weight.
func (g *Graph[W]) DeleteEdge(u, v int) error {
	old, err := g.WeightUpdated(u, v)
	if err != nil {
		return err
	}
	if err := g.eng.DeleteEdge(u, v); err != nil {
		return err
	}
	g.weightEdits[g.canon(u, v)] = weightEdit[W]{kind: weightDelete, weight: old}
	return nil
}

// EditWeight overwrites the weight of an existing (u,v), effective
// once committed. Returns ErrEdgeNotFound if (u,v) does not hold in
// the updated view.
func (g *Graph[W]) EditWeight(u, v int, weight W) error {
	exists, err := g.eng.EdgeExistsUpdated(u, v)
	if err != nil {
		return err
	}
	if !exists {
		return ErrEdgeNotFound
	}
	g.weightEdits[g.canon(u, v)] = weightEdit[W]{kind: weightAdd, weight: weight}
	return nil
}

// Weight returns the committed weight of (u,v). Returns ErrEdgeNotFound
// if (u,v) is not a committed edge, or if it is one with no recorded
// weight (such as an edge built by New and never given a weight).
func (g *Graph[W]) Weight(u, v int) (W, error) {
	var zero W
	exists, err := g.eng.EdgeExists(u, v)
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, ErrEdgeNotFound
	}
	w, ok := g.weights[g.canon(u, v)]
	if !ok {
		return zero, ErrEdgeNotFound
	}
	return w, nil
}

// WeightUpdated returns the weight of (u,v) in the updated view.
func (g *Graph[W]) WeightUpdated(u, v int) (W, error) {
	var zero W
	exists, err := g.eng.EdgeExistsUpdated(u, v)
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, ErrEdgeNotFound
	}
	if e, ok := g.weightEdits[g.canon(u, v)]; ok {
		if e.kind == weightDelete {
			panic("weighted: edge exists in updated view but its weight is marked deleted")
		}
		return e.weight, nil
	}
	return g.Weight(u, v)
}

// Commit rebuilds the underlying engine from the updated view and
// folds the weight overlay into the committed weight table.
func (g *Graph[W]) Commit() error {
	if err := g.eng.Commit(); err != nil {
		return err
	}
	g.applyWeightEdits()
	return nil
}

// Discard throws away every buffered edit, including weight edits.
func (g *Graph[W]) Discard() {
	g.eng.Discard()
	g.weightEdits = make(map[[2]int]weightEdit[W])
}

// Shrink commits like Commit, then additionally drops absent vertices
// and renumbers survivors; weights are carried over keyed by their
// rewritten (from,to) pair.
func (g *Graph[W]) Shrink() ([]*int, error) {
	g.applyWeightEdits()

	mapping, err := g.eng.Shrink()
	if err != nil {
		return nil, err
	}

	newWeights := make(map[[2]int]W, len(g.weights))
	for key, w := range g.weights {
		from, to := key[0], key[1]
		if from >= len(mapping) || to >= len(mapping) || mapping[from] == nil || mapping[to] == nil {
			continue
		}
		newWeights[g.canon(*mapping[from], *mapping[to])] = w
	}
	g.weights = newWeights

	return mapping, nil
}

func (g *Graph[W]) applyWeightEdits() {
	for key, e := range g.weightEdits {
		switch e.kind {
		case weightAdd:
			g.weights[key] = e.weight
		case weightDelete:
			delete(g.weights, key)
		}
	}
	g.weightEdits = make(map[[2]int]weightEdit[W])
}
