package convert

import (
	"strings"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/model"
)

// FromModel builds an AST document from a root graph model. Ids are always
// double-quoted; attribute values keep the form their Value records.
//
// Each cluster body is written as: own attributes, graph, node and edge
// defaults, nodes, subgraphs, then edges. Comments become // comments, or a
// block comment when they span several lines.
func FromModel(g *model.RootCluster) *ast.Dot {
	dot := &ast.Dot{}
	if c := comment(g.Comment()); c != nil {
		dot.Body = append(dot.Body, c)
	}
	dot.Body = append(dot.Body, &ast.Graph{
		Strict:   g.Strict,
		Directed: g.Directed,
		ID:       optionalID(g.ID()),
		Body:     clusterBody(g),
	})
	return dot
}

func clusterBody(c model.Cluster) []ast.Statement {
	var body []ast.Statement

	if own := c.Attributes(); own.Size() > 0 {
		body = withComment(body, own.Comment())
		for _, a := range attributeList(own) {
			body = append(body, a)
		}
	}
	body = appendDefaults(body, ast.AttributesGraph, c.GraphAttributes())
	body = appendDefaults(body, ast.AttributesNode, c.NodeAttributes())
	body = appendDefaults(body, ast.AttributesEdge, c.EdgeAttributes())

	for _, n := range c.Nodes() {
		body = withComment(body, n.Comment())
		body = append(body, &ast.NodeStmt{
			ID:   ast.Quoted(n.ID()),
			Body: attributeList(n.Attributes()),
		})
	}
	for _, s := range c.Subgraphs() {
		body = withComment(body, s.Comment())
		body = append(body, &ast.Subgraph{
			ID:   optionalID(s.ID()),
			Body: clusterBody(s),
		})
	}
	for _, e := range c.Edges() {
		body = withComment(body, e.Comment())
		body = append(body, &ast.Edge{
			Targets: targetsOf(e.Targets()),
			Body:    attributeList(e.Attributes()),
		})
	}
	return body
}

func appendDefaults[K ~string](body []ast.Statement, kind ast.AttributesKind, attrs *model.Attributes[K]) []ast.Statement {
	if attrs.Size() == 0 {
		return body
	}
	body = withComment(body, attrs.Comment())
	return append(body, &ast.Attributes{Type: kind, Body: attributeList(attrs)})
}

func attributeList[K ~string](attrs *model.Attributes[K]) []*ast.Attribute {
	var out []*ast.Attribute
	for _, a := range attrs.Values() {
		out = append(out, &ast.Attribute{Key: ast.ID(string(a.Key)), Value: a.Value.Literal()})
	}
	return out
}

func targetsOf(targets []model.EdgeTarget) []ast.EdgeTarget {
	out := make([]ast.EdgeTarget, 0, len(targets))
	for _, t := range targets {
		switch t := t.(type) {
		case model.NodeRef:
			out = append(out, refOf(t))
		case *model.Node:
			out = append(out, refOf(t.Ref()))
		case model.NodeRefGroup:
			group := &ast.NodeRefGroup{}
			for _, r := range t {
				group.Body = append(group.Body, refOf(r))
			}
			out = append(out, group)
		}
	}
	return out
}

func refOf(r model.NodeRef) *ast.NodeRef {
	ref := &ast.NodeRef{ID: ast.Quoted(r.ID), Compass: r.Compass}
	if r.Port != "" {
		ref.Port = ast.Quoted(r.Port)
	}
	return ref
}

func optionalID(id string) *ast.Literal {
	if id == "" {
		return nil
	}
	return ast.Quoted(id)
}

func comment(text string) *ast.Comment {
	if text == "" {
		return nil
	}
	kind := ast.CommentSlash
	if strings.Contains(text, "\n") {
		kind = ast.CommentBlock
	}
	return &ast.Comment{Type: kind, Value: text}
}

func withComment(body []ast.Statement, text string) []ast.Statement {
	if c := comment(text); c != nil {
		return append(body, c)
	}
	return body
}
