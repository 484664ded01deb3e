// File: errors.go
// Role: sentinel errors for the labeled adapter.

package labeled

import "errors"

// ErrLabelNotFound indicates a lookup referenced a label not bound to
// any vertex in the relevant view.
var ErrLabelNotFound = errors.New("labeled: label not found")

// ErrLabelExists indicates AddVertex was called with a label already
// bound to another vertex.
var ErrLabelExists = errors.New("labeled: label already in use")

// ErrIndexNotFound indicates a lookup referenced a vertex index with
// no bound label in the relevant view.
var ErrIndexNotFound = errors.New("labeled: index not found")

// ErrEdgeNotFound indicates an operation referenced a label pair not
// connected in the relevant view.
var ErrEdgeNotFound = errors.New("labeled: edge not found")
