// Package labeled adapts a directed or undirected WT-digraph engine
// into a label-keyed graph: bidirectional index<->label tables, with
// their own Set/Delete overlay, layered next to whichever engine is
// supplied.
//
// Graph[L] is parameterized only over the label type, same as
// weighted.Graph[W] is parameterized over the weight type — direction
// comes from which constructor built it. Both directed and undirected
// engines satisfy the same small engine interface, so one generic type
// serves both flavors instead of a directed/undirected pair.
//
// Only the label-keyed operations common to both directions are
// exposed here (vertex/edge existence, add/delete vertex and edge,
// label/index lookup, label editing). A caller needing a
// direction-specific operation resolves the index via IndexUpdated and
// calls the underlying engine directly.
package labeled
