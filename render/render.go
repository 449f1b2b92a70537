// Package render prints an AST back to DOT text in a canonical layout.
//
// Output is deterministic: every statement sits on its own line, attribute
// lists are expanded one key per line, and nested bodies are indented by a
// fixed width. Rendering a parsed document and parsing the result yields an
// equivalent AST, and rendering is idempotent on its own output.
package render

import (
	"bytes"
	"strings"

	"github.com/martinemde/dotgraph/ast"
)

// Option configures rendering.
type Option func(*options)

type options struct {
	directed   bool
	indentSize int
}

// WithDirected sets the edge operator used for edges rendered outside of any
// Graph. Inside a Graph the graph's own directedness wins. Defaults to true.
func WithDirected(directed bool) Option {
	return func(o *options) { o.directed = directed }
}

// WithIndentSize sets the number of spaces per nesting level. Defaults to 2.
func WithIndentSize(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.indentSize = n
		}
	}
}

// Render returns the canonical DOT text for n.
func Render(n ast.Node, opts ...Option) string {
	o := options{directed: true, indentSize: 2}
	for _, opt := range opts {
		opt(&o)
	}
	r := &renderer{directed: o.directed, indent: strings.Repeat(" ", o.indentSize)}
	r.node(n, 0)
	return r.buf.String()
}

type renderer struct {
	buf      bytes.Buffer
	directed bool
	indent   string
}

func (r *renderer) pad(depth int) {
	for range depth {
		r.buf.WriteString(r.indent)
	}
}

// node writes n assuming the current line is already padded to depth.
func (r *renderer) node(n ast.Node, depth int) {
	switch n := n.(type) {
	case *ast.Dot:
		for i, s := range n.Body {
			if i > 0 {
				r.buf.WriteByte('\n')
			}
			r.node(s, depth)
		}
	case *ast.Graph:
		r.graph(n, depth)
	case *ast.Subgraph:
		r.buf.WriteString("subgraph")
		if n.ID != nil {
			r.buf.WriteByte(' ')
			r.literal(n.ID)
		}
		r.buf.WriteByte(' ')
		r.body(n.Body, depth)
	case *ast.Attribute:
		r.literal(n.Key)
		r.buf.WriteString(" = ")
		r.literal(n.Value)
		r.buf.WriteByte(';')
	case *ast.Attributes:
		r.buf.WriteString(string(n.Type))
		r.attrList(n.Body, depth)
	case *ast.NodeStmt:
		r.node(&ast.NodeRef{ID: n.ID, Port: n.Port, Compass: n.Compass}, depth)
		r.attrList(n.Body, depth)
	case *ast.Edge:
		op := " -- "
		if r.directed {
			op = " -> "
		}
		for i, t := range n.Targets {
			if i > 0 {
				r.buf.WriteString(op)
			}
			r.node(t, depth)
		}
		r.attrList(n.Body, depth)
	case *ast.Comment:
		r.comment(n, depth)
	case *ast.NodeRef:
		r.literal(n.ID)
		if n.Port != nil {
			r.buf.WriteByte(':')
			r.literal(n.Port)
		}
		if n.Compass != ast.CompassNone {
			r.buf.WriteByte(':')
			r.buf.WriteString(string(n.Compass))
		}
	case *ast.NodeRefGroup:
		r.buf.WriteByte('{')
		for i, ref := range n.Body {
			if i > 0 {
				r.buf.WriteByte(' ')
			}
			r.node(ref, depth)
		}
		r.buf.WriteByte('}')
	case *ast.Literal:
		r.literal(n)
	}
}

func (r *renderer) graph(g *ast.Graph, depth int) {
	saved := r.directed
	r.directed = g.Directed
	defer func() { r.directed = saved }()

	if g.Strict {
		r.buf.WriteString("strict ")
	}
	if g.Directed {
		r.buf.WriteString("digraph")
	} else {
		r.buf.WriteString("graph")
	}
	if g.ID != nil {
		r.buf.WriteByte(' ')
		r.literal(g.ID)
	}
	r.buf.WriteByte(' ')
	r.body(g.Body, depth)
}

func (r *renderer) body(stmts []ast.Statement, depth int) {
	if len(stmts) == 0 {
		r.buf.WriteString("{}")
		return
	}
	r.buf.WriteString("{\n")
	for _, s := range stmts {
		r.pad(depth + 1)
		r.node(s, depth+1)
		r.buf.WriteByte('\n')
	}
	r.pad(depth)
	r.buf.WriteByte('}')
}

func (r *renderer) attrList(attrs []*ast.Attribute, depth int) {
	if len(attrs) == 0 {
		r.buf.WriteByte(';')
		return
	}
	r.buf.WriteString(" [\n")
	for _, a := range attrs {
		r.pad(depth + 1)
		r.node(a, depth+1)
		r.buf.WriteByte('\n')
	}
	r.pad(depth)
	r.buf.WriteString("];")
}

func (r *renderer) comment(c *ast.Comment, depth int) {
	lines := strings.Split(c.Value, "\n")
	switch c.Type {
	case ast.CommentBlock:
		r.buf.WriteString("/**\n")
		for _, line := range lines {
			r.pad(depth)
			r.buf.WriteString(strings.TrimRight(" * "+line, " "))
			r.buf.WriteByte('\n')
		}
		r.pad(depth)
		r.buf.WriteString(" */")
	default:
		prefix := "// "
		if c.Type == ast.CommentMacro {
			prefix = "# "
		}
		for i, line := range lines {
			if i > 0 {
				r.buf.WriteByte('\n')
				r.pad(depth)
			}
			r.buf.WriteString(strings.TrimRight(prefix+line, " "))
		}
	}
}

func (r *renderer) literal(l *ast.Literal) {
	switch l.Quoted {
	case ast.HTMLLike:
		r.buf.WriteByte('<')
		r.buf.WriteString(l.Value)
		r.buf.WriteByte('>')
	case ast.DoubleQuoted:
		r.buf.WriteByte('"')
		r.buf.WriteString(Escape(l.Value))
		r.buf.WriteByte('"')
	default:
		r.buf.WriteString(l.Value)
	}
}

// Escape prepares a string for use between double quotes. A backslash
// before an unescaped '"' is inserted, existing backslash sequences such as
// \n, \l and \\ pass through, and a trailing lone backslash is doubled so it
// cannot swallow the closing quote.
func Escape(s string) string {
	if !strings.ContainsAny(s, `"\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '\\' && i+1 < len(s):
			b.WriteByte(c)
			b.WriteByte(s[i+1])
			i++
		case c == '\\':
			b.WriteString(`\\`)
		case c == '"':
			b.WriteString(`\"`)
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
