// File: commit.go
// Role: the commit / discard / shrink rebuild protocol. Commit and
// Shrink are Θ(V+E): they rebuild the wavelet tree from scratch.
// Discard only resets the overlay.

package wtdigraph

import "github.com/katalvlaran/wtgraph/adjacency"

// Commit rebuilds the committed adjacency structure from the current
// updated view and empties the overlay. Vertex indices are preserved;
// an absent vertex still occupies its slot (VCount drops, SlotCount
// does not).
func (d *Digraph) Commit() error {
	slotCount := d.ov.SlotCountUpdated()

	adjList := make([][]int, slotCount)
	for v := 0; v < slotCount; v++ {
		if !d.ov.VertexExistsUpdated(v) {
			continue
		}
		out, err := d.ov.OutgoingUpdated(v)
		if err != nil {
			return err
		}
		adjList[v] = out
	}

	newAdj, err := adjacency.FromAdjacencyList(slotCount, adjList)
	if err != nil {
		return err
	}

	for v, removed := range d.ov.VertexEdits() {
		if removed {
			d.committedRemoved[v] = true
		} else {
			delete(d.committedRemoved, v)
		}
	}
	// Indices skipped over when AddVertex grew the slot range carry no
	// overlay mark but are absent; they stay absent once committed.
	for v := d.adj.VCount(); v < slotCount; v++ {
		if !d.ov.VertexExistsUpdated(v) {
			d.committedRemoved[v] = true
		}
	}

	d.adj = newAdj
	d.ov.Reset(slotCount, slotCount-len(d.committedRemoved), newAdj.ECount())

	return nil
}

// Discard throws away every buffered edit, reverting the updated view
// to exactly mirror the committed one.
func (d *Digraph) Discard() {
	d.ov.Reset(d.adj.VCount(), d.VCount(), d.adj.ECount())
}

// Shrink commits the updated view like Commit, but additionally drops
// every absent vertex entirely and renumbers the survivors onto a
// dense [0, newVCount) range. It returns the old-index → new-index
// mapping: mapping[v] is nil if v no longer exists, else the new
// index. Every surviving neighbor symbol is rewritten through the same
// mapping; an edge pointing at a dropped vertex is dropped with it.
// After Shrink, the committed removed set is empty.
func (d *Digraph) Shrink() ([]*int, error) {
	slotCount := d.ov.SlotCountUpdated()

	mapping := make([]*int, slotCount)
	newCount := 0
	for v := 0; v < slotCount; v++ {
		if !d.ov.VertexExistsUpdated(v) {
			continue
		}
		idx := newCount
		mapping[v] = &idx
		newCount++
	}

	adjList := make([][]int, newCount)
	for v := 0; v < slotCount; v++ {
		if mapping[v] == nil {
			continue
		}
		out, err := d.ov.OutgoingUpdated(v)
		if err != nil {
			return nil, err
		}
		remapped := make([]int, 0, len(out))
		for _, w := range out {
			if w < 0 || w >= slotCount || mapping[w] == nil {
				continue
			}
			remapped = append(remapped, *mapping[w])
		}
		adjList[*mapping[v]] = remapped
	}

	newAdj, err := adjacency.FromAdjacencyList(newCount, adjList)
	if err != nil {
		return nil, err
	}

	d.adj = newAdj
	d.committedRemoved = make(map[int]bool)
	d.ov.Reset(newCount, newCount, newAdj.ECount())

	return mapping, nil
}
