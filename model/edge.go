package model

import (
	"fmt"
	"slices"

	"github.com/martinemde/dotgraph/attribute"
)

// Edge connects two or more endpoints. Edges have no identity key: two edges
// with the same endpoints are distinct statements.
type Edge struct {
	targets []EdgeTarget
	attrs   *Attributes[EdgeKey]
	comment string
}

// NewEdge returns a detached edge. Targets that are *Node values are stored as
// NodeRefs. It returns an *InvariantError when fewer than two targets are
// given or a group is empty.
func NewEdge(targets []EdgeTarget, opts ...Option) (*Edge, error) {
	if len(targets) < 2 {
		return nil, &InvariantError{Message: fmt.Sprintf("an edge needs at least 2 targets, got %d", len(targets))}
	}
	normalized := make([]EdgeTarget, len(targets))
	for i, t := range targets {
		switch t := t.(type) {
		case *Node:
			normalized[i] = t.Ref()
		case NodeRef:
			normalized[i] = t
		case NodeRefGroup:
			if len(t) == 0 {
				return nil, &InvariantError{Message: fmt.Sprintf("edge target %d is an empty group", i)}
			}
			normalized[i] = slices.Clone(t)
		default:
			return nil, &InvariantError{Message: fmt.Sprintf("edge target %d is %T", i, t)}
		}
	}
	e := &Edge{targets: normalized, attrs: newAttributes[EdgeKey](attribute.Edge)}
	if err := applyOptions(e, opts); err != nil {
		return nil, err
	}
	return e, nil
}

// Targets returns the edge endpoints. Each element is a NodeRef or a
// NodeRefGroup.
func (e *Edge) Targets() []EdgeTarget { return slices.Clone(e.targets) }

// Attributes returns the edge's own attributes.
func (e *Edge) Attributes() *Attributes[EdgeKey] { return e.attrs }

func (e *Edge) Comment() string { return e.comment }

func (e *Edge) SetComment(c string) { e.comment = c }

// SameTargets reports whether e and other have structurally equal endpoint
// tuples.
func (e *Edge) SameTargets(other *Edge) bool {
	return slices.EqualFunc(e.targets, other.targets, func(a, b EdgeTarget) bool {
		switch a := a.(type) {
		case NodeRef:
			b, ok := b.(NodeRef)
			return ok && a == b
		case NodeRefGroup:
			b, ok := b.(NodeRefGroup)
			return ok && slices.Equal(a, b)
		}
		return false
	})
}

// endpointPairs expands groups and returns each consecutive (from, to) node id
// pair the edge connects.
func (e *Edge) endpointPairs() [][2]string {
	ids := func(t EdgeTarget) []string {
		switch t := t.(type) {
		case NodeRef:
			return []string{t.ID}
		case NodeRefGroup:
			out := make([]string, len(t))
			for i, r := range t {
				out[i] = r.ID
			}
			return out
		}
		return nil
	}
	var pairs [][2]string
	for i := 0; i+1 < len(e.targets); i++ {
		for _, from := range ids(e.targets[i]) {
			for _, to := range ids(e.targets[i+1]) {
				pairs = append(pairs, [2]string{from, to})
			}
		}
	}
	return pairs
}
