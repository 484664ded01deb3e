// Package overlay implements EditOverlay: a buffer of uncommitted
// per-vertex edge edits and vertex add/remove marks layered on top of a
// committed graph, letting callers mutate a logically different "updated"
// view without touching the committed data until Commit/Discard runs.
//
// Overlay never imports package adjacency; it talks to the committed
// layer through the small CommittedView interface, so package wtdigraph
// can hand it a live *adjacency.Adjacency without an import cycle.
//
//	AddEdge/DeleteEdge           buffered per-vertex Add/Delete edits
//	AddVertex/AppendVertex       mark a vertex present in the updated view
//	DeleteVertex                 mark a vertex absent in the updated view
//	VertexExistsUpdated          committed state folded with overlay marks
//	OutgoingUpdated/IncomingUpdated/EdgeExistsUpdated
//	VCountUpdated/ECountUpdated  incrementally maintained counters
//	Reset                        used by Commit/Discard to clear the overlay
//
// IncomingUpdated is O(total overlay size): it has to scan every
// vertex's edit log looking for entries that mention the target. Callers
// on a hot path should prefer committing and querying the committed
// layer instead (see package wtdigraph's doc.go).
package overlay
