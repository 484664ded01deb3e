// Package weighted adapts a directed or undirected WT-digraph engine
// into a weighted graph: a side table of edge weights, with its own
// Add/Delete overlay, layered next to whichever engine is supplied.
//
// Graph[W] is parameterized only over the weight type; direction comes
// from which constructor built it (New wraps a *wtdigraph.Digraph,
// NewUndirected wraps an *undirected.Graph). Both satisfy the same
// small engine interface, so one generic type serves both flavors
// rather than duplicating it — see the package design note against a
// Cartesian product of concrete graph types.
package weighted
