// Package adjacency implements CompactAdjacency: a succinct, read-only
// adjacency list for a directed graph, built from a flat neighbor-symbol
// sequence (package wavelet) addressed through a vertex-boundary bit
// vector (package bitvec).
//
// Layout: symbols holds the outgoing neighbors of vertex 0, then vertex
// 1, and so on, flattened. marks has one '1' per vertex followed by one
// '0' per outgoing edge of that vertex, so marks has length V+E with
// exactly V ones and E zeros. The start of vertex v's neighbor block is
// start(v) = select1(v) - v, and the end is
// end(v) = select1(v+1) - (v+1), with the bitvec "virtual one" making
// select1(V) resolve to V+E, so end(V-1) is E without a special case.
//
//	VCount/ECount         committed vertex/edge counts
//	Outgoing(v)           ordered neighbors of v, insertion order
//	Incoming(v)           vertices u with an edge (u,v), ascending in u
//	EdgeExists(u,v)       v in Outgoing(u)
//
// An Adjacency is immutable once built; package wtdigraph rebuilds a
// fresh one on every Commit/Shrink rather than mutating in place.
package adjacency
