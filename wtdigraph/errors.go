// File: errors.go
// Role: sentinel errors surfaced by the Digraph facade.

package wtdigraph

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex absent
// from the relevant view (committed or updated).
var ErrVertexNotFound = errors.New("wtdigraph: vertex not found")

// ErrVertexExists indicates AddVertex targeted a vertex already
// present in the updated view.
var ErrVertexExists = errors.New("wtdigraph: vertex already exists")

// ErrEdgeNotFound indicates DeleteEdge targeted a pair not connected in
// the updated view.
var ErrEdgeNotFound = errors.New("wtdigraph: edge not found")

// ErrDuplicateEdge indicates AddEdge targeted a pair already connected
// in the updated view.
var ErrDuplicateEdge = errors.New("wtdigraph: edge already exists")
