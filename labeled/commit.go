// File: commit.go
// Role: folding the label overlay into the committed index<->label
// tables, alongside the underlying engine's own commit/discard/shrink.

package labeled

// Commit rebuilds the underlying engine from the updated view and
// folds the label overlay into the committed label tables.
func (g *Graph[L]) Commit() error {
	if err := g.eng.Commit(); err != nil {
		return err
	}
	g.applyLabelEdits()
	return nil
}

// Discard throws away every buffered edit, including label edits.
func (g *Graph[L]) Discard() {
	g.eng.Discard()
	g.labelEdits = make(map[int]labelEdit[L])
}

// Shrink commits like Commit, then additionally drops absent vertices
// and renumbers survivors; labels are carried over keyed by their
// rewritten index.
func (g *Graph[L]) Shrink() ([]*int, error) {
	g.applyLabelEdits()

	mapping, err := g.eng.Shrink()
	if err != nil {
		return nil, err
	}

	newLabels := make(map[int]L, len(g.labels))
	newIndices := make(map[L]int, len(g.indices))
	for idx, label := range g.labels {
		if idx >= len(mapping) || mapping[idx] == nil {
			continue
		}
		newLabels[*mapping[idx]] = label
		newIndices[label] = *mapping[idx]
	}
	g.labels = newLabels
	g.indices = newIndices

	return mapping, nil
}

func (g *Graph[L]) applyLabelEdits() {
	for idx, e := range g.labelEdits {
		switch e.kind {
		case labelSet:
			if old, ok := g.labels[idx]; ok && old != e.label {
				delete(g.indices, old)
			}
			g.labels[idx] = e.label
			g.indices[e.label] = idx
		case labelDelete:
			if old, ok := g.labels[idx]; ok {
				delete(g.indices, old)
				delete(g.labels, idx)
			}
		}
	}
	g.labelEdits = make(map[int]labelEdit[L])
}
