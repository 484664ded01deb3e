// File: errors.go
// Role: sentinel errors for CompactAdjacency construction and queries.

package adjacency

import "errors"

// ErrVertexOutOfRange indicates an operation referenced a vertex index
// outside [0, VCount()).
var ErrVertexOutOfRange = errors.New("adjacency: vertex index out of range")

// ErrLengthMismatch indicates FromAdjacencyList was given an adjacency
// list whose outer length disagrees with the declared vertex count.
var ErrLengthMismatch = errors.New("adjacency: adjacency list length disagrees with vertex count")

// ErrNeighborOutOfRange indicates a neighbor symbol fell outside
// [0, vCount).
var ErrNeighborOutOfRange = errors.New("adjacency: neighbor index out of range")
