// Package ast defines the syntax tree produced by dotparser and consumed by
// render and convert.
//
// Every node carries only syntax-level data plus its source Position. Bodies
// keep source order: later default-attribute statements may override earlier
// ones, and repeated edges between the same endpoints stay distinct.
//
// The node set is:
//
//   - Dot: the document root, holding graphs and surrounding comments.
//   - Graph, Subgraph: containers with a statement body.
//   - NodeStmt, Edge, Attributes, Attribute, Comment: statements.
//   - Literal, NodeRef, NodeRefGroup: values and edge endpoints.
package ast
