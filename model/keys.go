package model

import "github.com/martinemde/dotgraph/attribute"

// NodeKey is an attribute key for nodes and node defaults.
type NodeKey string

// EdgeKey is an attribute key for edges and edge defaults.
type EdgeKey string

// GraphKey is an attribute key for root graphs, subgraphs and their graph
// defaults. Whether a key is valid on a root graph or on a subgraph is
// checked at runtime.
type GraphKey string

// keyFamily reports which entity family a key type belongs to. Plain string
// keys have no family and are checked only at runtime.
func keyFamily[K ~string]() (family string) {
	var k K
	switch any(k).(type) {
	case NodeKey:
		return "node"
	case EdgeKey:
		return "edge"
	case GraphKey:
		return "graph"
	}
	return ""
}

func kindFamily(kind attribute.Kind) string {
	switch kind {
	case attribute.Node:
		return "node"
	case attribute.Edge:
		return "edge"
	default:
		return "graph"
	}
}
