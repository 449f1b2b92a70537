// Package model is the mutable, in-memory object model of a DOT graph.
//
// A RootCluster (a graph or digraph, optionally strict) owns nodes, edges and
// subgraphs in insertion order. Subgraphs own their own children, and
// ownership is a tree: a node created in one cluster is never reparented to
// another. Edges refer to nodes by id through NodeRef values, which are not
// ownership links.
//
// Every entity carries an ordered attribute container. Keys are typed per
// entity (NodeKey, EdgeKey, GraphKey) so that node-only keys cannot be set on
// an edge by accident, and every Set is validated at runtime against the
// attribute knowledge base in package attribute.
//
// The builder methods (CreateNode, CreateEdge, CreateSubgraph) accept Option
// values instead of positional arguments:
//
//	g := model.NewDigraph(model.WithID("G"))
//	a, _ := g.CreateNode("a", model.WithAttributes(model.A(model.NodeKey("shape"), model.Str("box"))))
//	_, _ = g.CreateEdge([]model.EdgeTarget{a, model.Ref("b")})
//
// The model is not safe for concurrent mutation.
package model
