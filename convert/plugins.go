package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/attribute"
	"github.com/martinemde/dotgraph/model"
)

// DefaultPlugins returns the plugins for every AST node kind a document
// body can hold.
func DefaultPlugins() []Plugin {
	return []Plugin{
		NewPlugin(matchKind(ast.KindDot), convertDot),
		NewPlugin(matchKind(ast.KindGraph), convertGraph),
		NewPlugin(matchKind(ast.KindSubgraph), convertSubgraph),
		NewPlugin(matchKind(ast.KindNode), convertNode),
		NewPlugin(matchKind(ast.KindEdge), convertEdge),
		NewPlugin(matchKind(ast.KindAttributes), convertDefaults),
		NewPlugin(matchKind(ast.KindAttribute), convertAssignment),
		NewPlugin(matchKind(ast.KindComment), convertComment),
	}
}

// convertDot converts the first graph of a document. Comments that precede
// it become the root graph's comment.
func convertDot(ctx *Context, n ast.Node) (any, error) {
	dot := n.(*ast.Dot)
	graphs := dot.Graphs()
	if len(graphs) == 0 {
		return nil, errors.New("document contains no graph")
	}
	if len(graphs) > 1 {
		ctx.Logger().Warn("converting the first graph only", "graphs", len(graphs))
	}

	var leading []string
	for _, stmt := range dot.Body {
		if stmt == ast.Node(graphs[0]) {
			break
		}
		if c, ok := stmt.(*ast.Comment); ok {
			leading = append(leading, c.Value)
		}
	}

	res, err := ctx.Convert(graphs[0])
	if err != nil {
		return nil, err
	}
	if target, ok := res.(commenter); ok && len(leading) > 0 {
		attachComment(target, strings.Join(leading, "\n"))
	}
	return res, nil
}

func convertGraph(ctx *Context, n ast.Node) (any, error) {
	g := n.(*ast.Graph)
	var opts []model.Option
	if g.ID != nil {
		opts = append(opts, model.WithID(g.ID.Value))
	}
	root, err := ctx.Models.Root(g.Strict, g.Directed, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: graph: %w", g.Pos, err)
	}
	if err := ctx.ConvertBody(root, g.Body); err != nil {
		return nil, err
	}
	return root, nil
}

// convertSubgraph reopens a named subgraph already present in the current
// cluster, so repeated subgraph statements accumulate into one model.
func convertSubgraph(ctx *Context, n ast.Node) (any, error) {
	s := n.(*ast.Subgraph)
	var id string
	if s.ID != nil {
		id = s.ID.Value
	}

	parent := ctx.Cluster()
	var sub *model.Subgraph
	if parent != nil {
		sub, _ = parent.GetSubgraph(id)
	}
	if sub == nil {
		var opts []model.Option
		if id != "" {
			opts = append(opts, model.WithID(id))
		}
		var err error
		sub, err = ctx.Models.Subgraph(opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: subgraph %q: %w", s.Pos, id, err)
		}
		if parent != nil {
			parent.AddSubgraph(sub)
		}
	}
	if err := ctx.ConvertBody(sub, s.Body); err != nil {
		return nil, err
	}
	return sub, nil
}

// convertNode merges into a node already present in the current cluster.
func convertNode(ctx *Context, n ast.Node) (any, error) {
	st := n.(*ast.NodeStmt)
	id := st.ID.Value
	attrs, err := attrsOf[model.NodeKey](attribute.Node, st.Body)
	if err != nil {
		return nil, err
	}
	opts := []model.Option{model.WithAttributes(attrs...)}

	cl := ctx.Cluster()
	if cl != nil && cl.ExistNode(id) {
		node, err := cl.CreateNode(id, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: node %q: %w", st.Pos, id, err)
		}
		return node, nil
	}
	node, err := ctx.Models.Node(id, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: node %q: %w", st.Pos, id, err)
	}
	if cl != nil {
		cl.AddNode(node)
	}
	return node, nil
}

func convertEdge(ctx *Context, n ast.Node) (any, error) {
	e := n.(*ast.Edge)
	targets, err := edgeTargets(e.Targets)
	if err != nil {
		return nil, fmt.Errorf("%s: edge: %w", e.Pos, err)
	}
	attrs, err := attrsOf[model.EdgeKey](attribute.Edge, e.Body)
	if err != nil {
		return nil, err
	}
	edge, err := ctx.Models.Edge(targets, model.WithAttributes(attrs...))
	if err != nil {
		return nil, fmt.Errorf("%s: edge: %w", e.Pos, err)
	}
	if cl := ctx.Cluster(); cl != nil {
		cl.AddEdge(edge)
	}
	return edge, nil
}

// convertDefaults applies a graph, node or edge default statement to the
// current cluster and returns the defaults container it changed.
func convertDefaults(ctx *Context, n ast.Node) (any, error) {
	a := n.(*ast.Attributes)
	cl := ctx.Cluster()
	if cl == nil {
		return nil, fmt.Errorf("%s: %s defaults outside a graph body", a.Pos, a.Type)
	}
	switch a.Type {
	case ast.AttributesGraph:
		return cl.GraphAttributes(), setAll(cl.GraphAttributes(), a.Body)
	case ast.AttributesNode:
		return cl.NodeAttributes(), setAll(cl.NodeAttributes(), a.Body)
	case ast.AttributesEdge:
		return cl.EdgeAttributes(), setAll(cl.EdgeAttributes(), a.Body)
	}
	return nil, fmt.Errorf("%s: unknown defaults kind %q", a.Pos, a.Type)
}

// convertAssignment sets one of the current cluster's own attributes.
func convertAssignment(ctx *Context, n ast.Node) (any, error) {
	a := n.(*ast.Attribute)
	cl := ctx.Cluster()
	if cl == nil {
		return nil, fmt.Errorf("%s: attribute %q outside a graph body", a.Pos, a.Key.Value)
	}
	own := cl.Attributes()
	if err := setAll(own, []*ast.Attribute{a}); err != nil {
		return nil, err
	}
	return own, nil
}

func convertComment(ctx *Context, n ast.Node) (any, error) {
	c := n.(*ast.Comment)
	ctx.HoldComment(c.Value)
	return c.Value, nil
}

// attrsOf converts an attribute list, checking each key against kind so
// errors point at the offending attribute rather than its statement.
func attrsOf[K ~string](kind attribute.Kind, body []*ast.Attribute) ([]model.Attr[K], error) {
	attrs := make([]model.Attr[K], 0, len(body))
	for _, a := range body {
		if err := attribute.ValidateKey(kind, a.Key.Value); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Pos, err)
		}
		attrs = append(attrs, model.A(K(a.Key.Value), model.ValueOf(a.Value)))
	}
	return attrs, nil
}

func setAll[K ~string](dst *model.Attributes[K], body []*ast.Attribute) error {
	for _, a := range body {
		if err := dst.SetString(a.Key.Value, model.ValueOf(a.Value)); err != nil {
			return fmt.Errorf("%s: %w", a.Pos, err)
		}
	}
	return nil
}

func edgeTargets(targets []ast.EdgeTarget) ([]model.EdgeTarget, error) {
	out := make([]model.EdgeTarget, 0, len(targets))
	for _, t := range targets {
		switch t := t.(type) {
		case *ast.NodeRef:
			out = append(out, nodeRef(t))
		case *ast.NodeRefGroup:
			group := make(model.NodeRefGroup, len(t.Body))
			for i, r := range t.Body {
				group[i] = nodeRef(r)
			}
			out = append(out, group)
		default:
			return nil, fmt.Errorf("unsupported edge target %T", t)
		}
	}
	return out, nil
}

func nodeRef(r *ast.NodeRef) model.NodeRef {
	ref := model.NodeRef{ID: r.ID.Value, Compass: r.Compass}
	if r.Port != nil {
		ref.Port = r.Port.Value
	}
	return ref
}
