package attribute

import "fmt"

// Kind is the kind of entity an attribute is attached to.
type Kind int

const (
	Node Kind = iota
	Edge
	RootGraph
	// Subgraph accepts rank plus every cluster key, since a subgraph becomes
	// a cluster only by naming convention.
	Subgraph
	ClusterSubgraph
)

func (k Kind) String() string {
	switch k {
	case Node:
		return "node"
	case Edge:
		return "edge"
	case RootGraph:
		return "graph"
	case Subgraph:
		return "subgraph"
	case ClusterSubgraph:
		return "cluster"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds lists every entity kind.
func Kinds() []Kind {
	return []Kind{Node, Edge, RootGraph, Subgraph, ClusterSubgraph}
}
