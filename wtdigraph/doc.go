// Package wtdigraph implements the WT-digraph engine: a succinct,
// wavelet-tree-backed directed graph (package adjacency) with an edit
// overlay (package overlay) for uncommitted mutations.
//
// Every mutator — AddEdge, DeleteEdge, AddVertex, AppendVertex,
// DeleteVertex, DeleteOutgoingEdges, DeleteIncomingEdges — only touches
// the overlay; the committed adjacency structure never changes except
// through Commit or Shrink. Two parallel query surfaces follow the same
// shape as the overlay/committed split:
//
//	VCount/ECount/VertexExists/Outgoing/Incoming/EdgeExists         committed
//	VCountUpdated/ECountUpdated/VertexExistsUpdated/OutgoingUpdated/
//	IncomingUpdated/EdgeExistsUpdated                               updated
//
// Commit rebuilds the committed adjacency from the updated view and
// clears the overlay; Discard throws the overlay away, reverting to
// the committed view; Shrink additionally renumbers away vertices that
// have been removed since the graph was built, returning the
// old-index → new-index mapping (nil for a vertex that no longer
// exists). Commit and Shrink are O(V+E): they rebuild the whole
// wavelet tree, so batching many edits before a Commit amortizes
// better than committing after each one. Discard only resets the
// overlay.
//
// A deleted vertex's incident edges are not eagerly removed from the
// edit logs or the committed structure; OutgoingUpdated and
// IncomingUpdated leave out any neighbor absent in the updated view,
// and the next Commit or Shrink drops those edges.
package wtdigraph
