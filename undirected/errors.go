// File: errors.go
// Role: sentinel errors for undirected graph construction.

package undirected

import "errors"

// ErrLengthMismatch indicates the adjacency list passed to New did not
// have exactly vCount entries.
var ErrLengthMismatch = errors.New("undirected: adjacency list length does not match vertex count")

// ErrNeighborOutOfRange indicates an adjacency-list entry named a
// neighbor outside [0, vCount).
var ErrNeighborOutOfRange = errors.New("undirected: neighbor index out of range")
