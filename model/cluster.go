package model

import (
	"slices"

	"github.com/martinemde/dotgraph/attribute"
)

// Cluster is the behavior shared by RootCluster and Subgraph: a scope that
// owns nodes, edges and subgraphs and holds default attributes for them.
type Cluster interface {
	Entity

	ID() string
	Attributes() *Attributes[GraphKey]

	// Defaults set by graph [...], node [...] and edge [...] statements.
	GraphAttributes() *Attributes[GraphKey]
	NodeAttributes() *Attributes[NodeKey]
	EdgeAttributes() *Attributes[EdgeKey]

	Nodes() []*Node
	Edges() []*Edge
	Subgraphs() []*Subgraph

	AddNode(n *Node)
	AddEdge(e *Edge)
	AddSubgraph(s *Subgraph)
	RemoveNode(id string)
	RemoveEdge(e *Edge)
	RemoveSubgraph(s *Subgraph)
	ExistNode(id string) bool
	ExistEdge(e *Edge) bool
	ExistSubgraph(s *Subgraph) bool
	GetNode(id string) (*Node, bool)
	GetSubgraph(id string) (*Subgraph, bool)

	CreateNode(id string, opts ...Option) (*Node, error)
	CreateEdge(targets []EdgeTarget, opts ...Option) (*Edge, error)
	CreateSubgraph(opts ...Option) (*Subgraph, error)
}

var (
	_ Cluster = (*RootCluster)(nil)
	_ Cluster = (*Subgraph)(nil)
)

// cluster holds the state common to root graphs and subgraphs.
type cluster struct {
	id      string
	comment string

	attrs        *Attributes[GraphKey]
	graphDefault *Attributes[GraphKey]
	nodeDefault  *Attributes[NodeKey]
	edgeDefault  *Attributes[EdgeKey]

	nodes     []*Node
	edges     []*Edge
	subgraphs []*Subgraph
}

func newCluster(kind attribute.Kind) cluster {
	return cluster{
		attrs:        newAttributes[GraphKey](kind),
		graphDefault: newAttributes[GraphKey](kind),
		nodeDefault:  newAttributes[NodeKey](attribute.Node),
		edgeDefault:  newAttributes[EdgeKey](attribute.Edge),
	}
}

func (c *cluster) ID() string { return c.id }

func (c *cluster) Comment() string { return c.comment }

func (c *cluster) SetComment(s string) { c.comment = s }

// Attributes returns the cluster's own attributes, written as key = value
// statements.
func (c *cluster) Attributes() *Attributes[GraphKey] { return c.attrs }

func (c *cluster) GraphAttributes() *Attributes[GraphKey] { return c.graphDefault }
func (c *cluster) NodeAttributes() *Attributes[NodeKey] { return c.nodeDefault }
func (c *cluster) EdgeAttributes() *Attributes[EdgeKey] { return c.edgeDefault }

func (c *cluster) Nodes() []*Node { return slices.Clone(c.nodes) }
func (c *cluster) Edges() []*Edge { return slices.Clone(c.edges) }
func (c *cluster) Subgraphs() []*Subgraph { return slices.Clone(c.subgraphs) }

// AddNode registers n. A node already registered under the same id is
// replaced in place.
func (c *cluster) AddNode(n *Node) {
	if i := slices.IndexFunc(c.nodes, func(x *Node) bool { return x.id == n.id }); i >= 0 {
		c.nodes[i] = n
		return
	}
	c.nodes = append(c.nodes, n)
}

func (c *cluster) AddEdge(e *Edge) { c.edges = append(c.edges, e) }

// AddSubgraph registers s. A named subgraph replaces one with the same id;
// anonymous subgraphs are always appended.
func (c *cluster) AddSubgraph(s *Subgraph) {
	if s.id != "" {
		if i := slices.IndexFunc(c.subgraphs, func(x *Subgraph) bool { return x.id == s.id }); i >= 0 {
			c.subgraphs[i] = s
			return
		}
	}
	c.subgraphs = append(c.subgraphs, s)
}

func (c *cluster) RemoveNode(id string) {
	c.nodes = slices.DeleteFunc(c.nodes, func(n *Node) bool { return n.id == id })
}

func (c *cluster) RemoveEdge(e *Edge) {
	c.edges = slices.DeleteFunc(c.edges, func(x *Edge) bool { return x == e })
}

func (c *cluster) RemoveSubgraph(s *Subgraph) {
	c.subgraphs = slices.DeleteFunc(c.subgraphs, func(x *Subgraph) bool { return x == s })
}

func (c *cluster) ExistNode(id string) bool {
	_, ok := c.GetNode(id)
	return ok
}

// ExistEdge reports whether e, or an edge with structurally equal targets,
// is registered in this cluster.
func (c *cluster) ExistEdge(e *Edge) bool {
	return slices.ContainsFunc(c.edges, func(x *Edge) bool { return x == e || x.SameTargets(e) })
}

func (c *cluster) ExistSubgraph(s *Subgraph) bool {
	return slices.Contains(c.subgraphs, s)
}

func (c *cluster) GetNode(id string) (*Node, bool) {
	i := slices.IndexFunc(c.nodes, func(n *Node) bool { return n.id == id })
	if i < 0 {
		return nil, false
	}
	return c.nodes[i], true
}

func (c *cluster) GetSubgraph(id string) (*Subgraph, bool) {
	if id == "" {
		return nil, false
	}
	i := slices.IndexFunc(c.subgraphs, func(s *Subgraph) bool { return s.id == id })
	if i < 0 {
		return nil, false
	}
	return c.subgraphs[i], true
}

// CreateNode returns the node registered under id, applying opts to it, or
// creates and registers a new one. Attributes are merged: keys not named in
// opts keep their values.
func (c *cluster) CreateNode(id string, opts ...Option) (*Node, error) {
	if n, ok := c.GetNode(id); ok {
		if err := applyOptions(n, opts); err != nil {
			return nil, err
		}
		return n, nil
	}
	n, err := NewNode(id, opts...)
	if err != nil {
		return nil, err
	}
	c.nodes = append(c.nodes, n)
	return n, nil
}

// CreateEdge always creates and appends a new edge, even when an identical
// one exists.
func (c *cluster) CreateEdge(targets []EdgeTarget, opts ...Option) (*Edge, error) {
	e, err := NewEdge(targets, opts...)
	if err != nil {
		return nil, err
	}
	c.edges = append(c.edges, e)
	return e, nil
}

// CreateSubgraph returns the subgraph named by WithID, applying opts to it,
// or creates and registers a new one. Subgraphs without an id are never
// deduplicated.
func (c *cluster) CreateSubgraph(opts ...Option) (*Subgraph, error) {
	if s, ok := c.GetSubgraph(optionID(opts)); ok {
		if err := applyOptions(s, opts); err != nil {
			return nil, err
		}
		return s, nil
	}
	s, err := NewSubgraph(opts...)
	if err != nil {
		return nil, err
	}
	c.subgraphs = append(c.subgraphs, s)
	return s, nil
}
