// File: errors.go
// Role: sentinel errors for the weighted adapter.

package weighted

import "errors"

// ErrVertexNotFound indicates an operation referenced a vertex absent
// from the relevant view.
var ErrVertexNotFound = errors.New("weighted: vertex not found")

// ErrEdgeNotFound indicates an operation referenced a pair not
// connected in the relevant view, or (from Weight) a committed edge
// with no recorded weight.
var ErrEdgeNotFound = errors.New("weighted: edge not found")
