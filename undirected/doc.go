// Package undirected adapts wtdigraph.Digraph into an undirected
// graph: every edge {u,v} is stored exactly once in the underlying
// digraph, in canonical (min,max) orientation, and every operation on
// this package's Graph canonicalizes its endpoints before delegating.
//
// Neighbors(v) (and NeighborsUpdated) merge the digraph's outgoing and
// incoming views of v into the single undirected adjacency list,
// counting a self-loop exactly once rather than twice.
package undirected
