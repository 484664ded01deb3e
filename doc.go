// Package wtgraph is a succinct, wavelet-tree-backed directed graph
// engine with a buffered edit overlay.
//
// Adjacency is stored as a rank/select bit vector plus a wavelet
// sequence over neighbor symbols rather than a hash map, so a
// committed graph is compact and its queries run in O(log alphabet)
// instead of O(1)-amortized. Mutations never touch that committed
// representation directly: AddVertex, DeleteVertex, AddEdge, and
// DeleteEdge buffer into an overlay, visible through a parallel
// "updated" query surface (VCountUpdated, OutgoingUpdated, ...) until
// Commit rebuilds the succinct structure from scratch, Discard throws
// the buffer away, or Shrink commits and additionally renumbers out
// deleted vertices.
//
// Subpackages:
//
//	bitvec/     — rank/select bit vector with an append-only builder
//	wavelet/    — wavelet tree over bitvec, Access/Rank/Select
//	adjacency/  — succinct adjacency list built from bitvec + wavelet
//	overlay/    — the buffered Add/Delete edit log shared by every flavor
//	wtdigraph/  — the directed engine: adjacency + overlay + commit protocol
//	undirected/ — direction-canonicalizing adapter over wtdigraph
//	weighted/   — generic edge-weight side table over either flavor
//	labeled/    — generic vertex-label side table over either flavor
package wtgraph
