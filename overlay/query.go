// File: query.go
// Role: updated-view neighbor queries — replay edits over committed data.

package overlay

import "sort"

// OutgoingUpdated returns the outgoing neighbors of v in the updated
// view: committed neighbors (if v is committed-present) with v's edit
// log replayed in order on top.
func (o *Overlay) OutgoingUpdated(v int) ([]int, error) {
	if !o.VertexExistsUpdated(v) {
		return nil, ErrVertexNotFound
	}

	var out []int
	if o.committed.VertexExists(v) {
		committedOut, err := o.committed.Outgoing(v)
		if err != nil {
			return nil, err
		}
		out = append(out, committedOut...)
	}

	for _, e := range o.adjEdits[v] {
		switch e.kind {
		case editAdd:
			out = append(out, e.to)
		case editDelete:
			out = removeFirst(out, e.to)
		}
	}

	return o.filterExistingUpdated(out), nil
}

// IncomingUpdated returns the vertices u such that (u,v) holds in the
// updated view. It scans every vertex's edit log for entries mentioning
// v, which makes it O(total overlay size) — see package doc.
func (o *Overlay) IncomingUpdated(v int) ([]int, error) {
	if !o.VertexExistsUpdated(v) {
		return nil, ErrVertexNotFound
	}

	var in []int
	if o.committed.VertexExists(v) {
		committedIn, err := o.committed.Incoming(v)
		if err != nil {
			return nil, err
		}
		in = append(in, committedIn...)
	}

	for _, u := range o.adjEditKeysSorted() {
		for _, e := range o.adjEdits[u] {
			if e.to != v {
				continue
			}
			switch e.kind {
			case editAdd:
				in = append(in, u)
			case editDelete:
				in = removeFirst(in, u)
			}
		}
	}

	return o.filterExistingUpdated(in), nil
}

// EdgeExistsUpdated reports whether (u,v) holds in the updated view.
func (o *Overlay) EdgeExistsUpdated(u, v int) (bool, error) {
	if !o.VertexExistsUpdated(u) || !o.VertexExistsUpdated(v) {
		return false, ErrVertexNotFound
	}

	out, err := o.OutgoingUpdated(u)
	if err != nil {
		return false, err
	}
	for _, w := range out {
		if w == v {
			return true, nil
		}
	}

	return false, nil
}

// filterExistingUpdated drops any vertex from s that is absent in the
// updated view — a deleted vertex's incident edges stay in the
// committed/overlay accumulators (edges aren't eagerly cleaned up on
// DeleteVertex) but must not surface as neighbors once queried.
func (o *Overlay) filterExistingUpdated(s []int) []int {
	kept := s[:0]
	for _, w := range s {
		if o.VertexExistsUpdated(w) {
			kept = append(kept, w)
		}
	}
	return kept
}

// adjEditKeysSorted returns the vertices with a non-empty edit log, in
// ascending order, so IncomingUpdated's scan is deterministic rather
// than following Go's randomized map iteration.
func (o *Overlay) adjEditKeysSorted() []int {
	keys := make([]int, 0, len(o.adjEdits))
	for u := range o.adjEdits {
		keys = append(keys, u)
	}
	sort.Ints(keys)
	return keys
}

// removeFirst drops the first occurrence of x from s, if present, and
// is a no-op otherwise (a Delete edit may target an edge that was never
// actually present in the accumulator it's replayed against).
func removeFirst(s []int, x int) []int {
	for i, w := range s {
		if w == x {
			return append(s[:i], s[i+1:]...)
		}
	}
	return s
}
