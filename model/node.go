package model

import (
	"strings"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/attribute"
)

// Node is a graph node, identified by id within its declaring cluster.
type Node struct {
	id      string
	attrs   *Attributes[NodeKey]
	comment string
}

// NewNode returns a detached node. Most callers use Cluster.CreateNode.
func NewNode(id string, opts ...Option) (*Node, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	n := &Node{id: id, attrs: newAttributes[NodeKey](attribute.Node)}
	if err := applyOptions(n, opts); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Node) ID() string { return n.id }

// Attributes returns the node's own attributes.
func (n *Node) Attributes() *Attributes[NodeKey] { return n.attrs }

func (n *Node) Comment() string { return n.comment }

func (n *Node) SetComment(c string) { n.comment = c }

// Port returns a reference to a port on this node.
func (n *Node) Port(port string, compass ast.Compass) NodeRef {
	return NodeRef{ID: n.id, Port: port, Compass: compass}
}

// Ref returns a plain reference to this node.
func (n *Node) Ref() NodeRef { return NodeRef{ID: n.id} }

func (*Node) edgeTarget() {}

// EdgeTarget is one endpoint of an edge: a *Node, a NodeRef, or a
// NodeRefGroup.
type EdgeTarget interface {
	edgeTarget()
}

// NodeRef references a node by id, optionally at a port and compass point.
// A NodeRef never owns the node it names.
type NodeRef struct {
	ID      string
	Port    string
	Compass ast.Compass
}

func (NodeRef) edgeTarget() {}

func (r NodeRef) String() string {
	var b strings.Builder
	b.WriteString(r.ID)
	if r.Port != "" {
		b.WriteByte(':')
		b.WriteString(r.Port)
	}
	if r.Compass != ast.CompassNone {
		b.WriteByte(':')
		b.WriteString(string(r.Compass))
	}
	return b.String()
}

// NodeRefGroup is a set of nodes used as one endpoint, written {a b c}.
type NodeRefGroup []NodeRef

func (NodeRefGroup) edgeTarget() {}

// Ref parses "id", "id:port" or "id:port:compass" into a NodeRef.
func Ref(s string) NodeRef { return ParseNodeRef(s) }

// Group builds a NodeRefGroup from reference strings.
func Group(refs ...string) NodeRefGroup {
	g := make(NodeRefGroup, len(refs))
	for i, s := range refs {
		g[i] = ParseNodeRef(s)
	}
	return g
}

// ParseNodeRef splits s on ':' into id, port and compass. A third part that
// is not a compass point is dropped.
func ParseNodeRef(s string) NodeRef {
	parts := strings.SplitN(s, ":", 3)
	ref := NodeRef{ID: parts[0]}
	if len(parts) > 1 {
		ref.Port = parts[1]
	}
	if len(parts) > 2 {
		if c, ok := ast.ParseCompass(parts[2]); ok {
			ref.Compass = c
		}
	}
	return ref
}
