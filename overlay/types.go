// File: types.go
// Role: Overlay storage layout and the CommittedView it reads through.

package overlay

// CommittedView is the read-only surface of the committed graph an
// Overlay consults to compute "updated" answers. It is satisfied by
// package wtdigraph's Digraph, which additionally folds its own
// persistent committed-removed vertex set into VertexExists/VCount
// before handing results to the overlay — Overlay itself knows nothing
// about that bookkeeping.
type CommittedView interface {
	// VCount is the logical committed vertex count (excludes vertices
	// that are addressable but marked removed at the committed layer).
	VCount() int
	// ECount is the committed edge count.
	ECount() int
	// SlotCount is the total number of addressable committed indices,
	// which may exceed VCount when some of those indices are removed.
	SlotCount() int
	// VertexExists reports whether v is a logically-present committed
	// vertex.
	VertexExists(v int) bool
	// Outgoing returns the committed outgoing neighbors of v. Only
	// called when VertexExists(v) is true.
	Outgoing(v int) ([]int, error)
	// Incoming returns the committed incoming neighbors of v. Only
	// called when VertexExists(v) is true.
	Incoming(v int) ([]int, error)
}

type editKind uint8

const (
	editAdd editKind = iota
	editDelete
)

// edgeEdit is one entry in a vertex's outgoing edit log: Add(to) or
// Delete(to), per spec.md's tagged Edit<T> sum type.
type edgeEdit struct {
	kind editKind
	to   int
}

// Overlay buffers uncommitted edits to a committed graph: per-vertex
// outgoing Add/Delete logs, a vertex present/removed map, and the
// running vCountUpdated/eCountUpdated counters. The zero value is not
// usable; construct one with New.
type Overlay struct {
	committed CommittedView

	adjEdits    map[int][]edgeEdit
	vertexEdits map[int]bool // true = removed, false = present (added/re-added)

	slotCountUpdated int // highest addressable index + 1 in the updated view
	vCountUpdated    int
	eCountUpdated    int
	dirty            bool
}

// New returns an Overlay layered on top of committed, initialized to
// mirror the committed state exactly (an empty overlay).
func New(committed CommittedView) *Overlay {
	return &Overlay{
		committed:        committed,
		adjEdits:         make(map[int][]edgeEdit),
		vertexEdits:      make(map[int]bool),
		slotCountUpdated: committed.SlotCount(),
		vCountUpdated:    committed.VCount(),
		eCountUpdated:    committed.ECount(),
	}
}

// Dirty reports whether any mutator has run since the last Reset.
func (o *Overlay) Dirty() bool { return o.dirty }

// SlotCountUpdated returns the highest addressable index + 1 in the
// updated view (spec's wt_adj_len_updated).
func (o *Overlay) SlotCountUpdated() int { return o.slotCountUpdated }

// VCountUpdated returns the logical vertex count in the updated view.
func (o *Overlay) VCountUpdated() int { return o.vCountUpdated }

// ECountUpdated returns the logical edge count in the updated view.
func (o *Overlay) ECountUpdated() int { return o.eCountUpdated }

// VertexEdits returns a snapshot copy of the vertex present/removed
// overlay map (true = removed), for callers (package wtdigraph) folding
// it into their own persistent committed-removed set during Commit.
func (o *Overlay) VertexEdits() map[int]bool {
	out := make(map[int]bool, len(o.vertexEdits))
	for v, removed := range o.vertexEdits {
		out[v] = removed
	}
	return out
}

// Reset clears all buffered edits and reinitializes the updated counters
// to (vCount, eCount), matching both Commit (new committed state) and
// Discard (restored committed state).
func (o *Overlay) Reset(slotCount, vCount, eCount int) {
	o.adjEdits = make(map[int][]edgeEdit)
	o.vertexEdits = make(map[int]bool)
	o.slotCountUpdated = slotCount
	o.vCountUpdated = vCount
	o.eCountUpdated = eCount
	o.dirty = false
}
