// Package attribute is the knowledge base of Graphviz attributes.
//
// It records which attribute keys each kind of entity (node, edge, root
// graph, subgraph, cluster) accepts, the value shapes each key takes, and a
// surface check for values of those shapes. The checks are syntactic only:
// "1.5" is a valid double and "#ff0000" a valid color, but nothing is
// resolved against a layout engine.
//
// Lint runs the knowledge base over a parsed document and reports
// diagnostics in the same Rule/Severity/Diagnostic shape used elsewhere in
// this module.
package attribute
