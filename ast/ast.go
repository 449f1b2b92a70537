package ast

import "fmt"

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// NodeKind identifies the concrete type of an AST node.
type NodeKind string

const (
	KindDot          NodeKind = "Dot"
	KindGraph        NodeKind = "Graph"
	KindSubgraph     NodeKind = "Subgraph"
	KindNode         NodeKind = "Node"
	KindEdge         NodeKind = "Edge"
	KindAttribute    NodeKind = "Attribute"
	KindAttributes   NodeKind = "Attributes"
	KindComment      NodeKind = "Comment"
	KindLiteral      NodeKind = "Literal"
	KindNodeRef      NodeKind = "NodeRef"
	KindNodeRefGroup NodeKind = "NodeRefGroup"
)

// Node is implemented by every AST node type.
type Node interface {
	Kind() NodeKind
	Position() Position
}

// Statement is a node that may appear in the body of a Dot, Graph or Subgraph.
type Statement interface {
	Node
	stmt()
}

// EdgeTarget is one endpoint of an edge: a *NodeRef or a *NodeRefGroup.
type EdgeTarget interface {
	Node
	edgeTarget()
}

// Quoting records how a literal was (or will be) written.
type Quoting int

const (
	Unquoted Quoting = iota
	DoubleQuoted
	HTMLLike
)

func (q Quoting) String() string {
	switch q {
	case Unquoted:
		return "unquoted"
	case DoubleQuoted:
		return "quoted"
	case HTMLLike:
		return "html"
	default:
		return fmt.Sprintf("Quoting(%d)", int(q))
	}
}

// Literal is a syntactic value. For DoubleQuoted literals Value holds the
// string with \" already decoded; for HTMLLike literals it holds the text
// between the outermost angle brackets.
type Literal struct {
	Value  string
	Quoted Quoting
	Pos    Position
}

// ID returns an unquoted literal.
func ID(v string) *Literal { return &Literal{Value: v, Quoted: Unquoted} }

// Quoted returns a double-quoted literal.
func Quoted(v string) *Literal { return &Literal{Value: v, Quoted: DoubleQuoted} }

// HTML returns an HTML-like literal.
func HTML(v string) *Literal { return &Literal{Value: v, Quoted: HTMLLike} }

// NodeRef references a node, optionally at a port and compass point.
type NodeRef struct {
	ID      *Literal
	Port    *Literal // nil when absent
	Compass Compass  // empty when absent
	Pos     Position
}

// NodeRefGroup is a brace-delimited set of node references used as a single
// edge endpoint.
type NodeRefGroup struct {
	Body []*NodeRef
	Pos  Position
}

// Attribute is a key = value pair.
type Attribute struct {
	Key   *Literal
	Value *Literal
	Pos   Position
}

// AttributesKind is the target of a default-attribute statement.
type AttributesKind string

const (
	AttributesGraph AttributesKind = "graph"
	AttributesNode  AttributesKind = "node"
	AttributesEdge  AttributesKind = "edge"
)

// Attributes is a default-attribute statement such as node [color=red].
type Attributes struct {
	Type AttributesKind
	Body []*Attribute
	Pos  Position
}

// CommentKind is the comment syntax a comment was written in.
type CommentKind string

const (
	CommentBlock CommentKind = "Block" // /* ... */
	CommentMacro CommentKind = "Macro" // # ...
	CommentSlash CommentKind = "Slash" // // ...
)

// Comment is a comment attached to the statement that follows it.
// Multi-line comments have their lines joined with "\n".
type Comment struct {
	Type  CommentKind
	Value string
	Pos   Position
}

// NodeStmt is a node statement: an id, an optional port and an optional
// attribute list. Graphviz ignores the port of a node statement; it is kept so
// the statement prints back as written.
type NodeStmt struct {
	ID      *Literal
	Port    *Literal // nil when absent
	Compass Compass  // empty when absent
	Body    []*Attribute
	Pos     Position
}

// Edge is an edge statement. a -> b -> c is one Edge with three targets.
type Edge struct {
	Targets []EdgeTarget
	Body    []*Attribute
	Pos     Position
}

// NewEdge builds an edge statement, rejecting fewer than two targets.
func NewEdge(targets []EdgeTarget, body ...*Attribute) (*Edge, error) {
	if len(targets) < 2 {
		return nil, &InvariantError{Message: fmt.Sprintf("edge requires at least 2 targets, got %d", len(targets))}
	}
	return &Edge{Targets: targets, Body: body}, nil
}

// Subgraph is a subgraph statement; ID is nil for anonymous subgraphs.
type Subgraph struct {
	ID   *Literal
	Body []Statement
	Pos  Position
}

// Graph is a top-level graph or digraph.
type Graph struct {
	Strict   bool
	Directed bool
	ID       *Literal
	Body     []Statement
	Pos      Position
}

// Dot is the root of a parsed document. Its body holds graphs and the
// comments around them.
type Dot struct {
	Body []Node
	Pos  Position
}

// Graphs returns the graphs in the document in source order.
func (d *Dot) Graphs() []*Graph {
	var result []*Graph
	for _, n := range d.Body {
		if g, ok := n.(*Graph); ok {
			result = append(result, g)
		}
	}
	return result
}

func (*Dot) Kind() NodeKind { return KindDot }
func (*Graph) Kind() NodeKind { return KindGraph }
func (*Subgraph) Kind() NodeKind { return KindSubgraph }
func (*NodeStmt) Kind() NodeKind { return KindNode }
func (*Edge) Kind() NodeKind { return KindEdge }
func (*Attribute) Kind() NodeKind { return KindAttribute }
func (*Attributes) Kind() NodeKind { return KindAttributes }
func (*Comment) Kind() NodeKind { return KindComment }
func (*Literal) Kind() NodeKind { return KindLiteral }
func (*NodeRef) Kind() NodeKind { return KindNodeRef }
func (*NodeRefGroup) Kind() NodeKind { return KindNodeRefGroup }

func (n *Dot) Position() Position { return n.Pos }
func (n *Graph) Position() Position { return n.Pos }
func (n *Subgraph) Position() Position { return n.Pos }
func (n *NodeStmt) Position() Position { return n.Pos }
func (n *Edge) Position() Position { return n.Pos }
func (n *Attribute) Position() Position { return n.Pos }
func (n *Attributes) Position() Position { return n.Pos }
func (n *Comment) Position() Position { return n.Pos }
func (n *Literal) Position() Position { return n.Pos }
func (n *NodeRef) Position() Position { return n.Pos }
func (n *NodeRefGroup) Position() Position { return n.Pos }

func (*Subgraph) stmt() {}
func (*NodeStmt) stmt() {}
func (*Edge) stmt() {}
func (*Attribute) stmt() {}
func (*Attributes) stmt() {}
func (*Comment) stmt() {}

func (*NodeRef) edgeTarget() {}
func (*NodeRefGroup) edgeTarget() {}
