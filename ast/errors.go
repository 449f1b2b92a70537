package ast

// InvariantError reports an AST value that violates a structural invariant,
// such as an edge with fewer than two targets.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string { return "invariant violation: " + e.Message }
