package model

import "errors"

// ErrEmptyID is returned when a node is created without an id.
var ErrEmptyID = errors.New("node id must not be empty")

// InvariantError reports an attempt to build a structurally invalid model
// object, such as an edge with a single endpoint.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return "invariant violation: " + e.Message
}
