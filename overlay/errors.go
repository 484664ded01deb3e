// File: errors.go
// Role: sentinel errors for overlay mutators and queries.

package overlay

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex absent
// from the updated view.
var ErrVertexNotFound = errors.New("overlay: vertex not found in updated view")

// ErrVertexExists indicates AddVertex targeted a vertex already present
// (and not overlay-removed) in the updated view. Per the spec's own
// recommendation (see SPEC_FULL.md §9), "overwrite an existing vertex" is
// rejected rather than silently dropping its incoming edges.
var ErrVertexExists = errors.New("overlay: vertex already present in updated view")

// ErrEdgeNotFound indicates DeleteEdge targeted a pair not connected in
// the updated view.
var ErrEdgeNotFound = errors.New("overlay: edge not found in updated view")

// ErrDuplicateEdge indicates AddEdge targeted a pair already connected
// in the updated view.
var ErrDuplicateEdge = errors.New("overlay: edge already exists in updated view")
