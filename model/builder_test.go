package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/dotgraph/ast"
)

func TestBuilderChains(t *testing.T) {
	g := NewDigraph(WithID("G"))
	b := Build(g).
		Set(A(GraphKey("rankdir"), Str("LR"))).
		Graph(A(GraphKey("splines"), Str("ortho"))).
		NodeDefaults(A(NodeKey("shape"), Str("box"))).
		EdgeDefaults(A(EdgeKey("arrowhead"), Str("vee"))).
		Node("a", WithAttributes(A(NodeKey("label"), Quote("A")))).
		Node("a").
		Edge([]string{"a:out:e", "b"}).
		EdgeTo([]EdgeTarget{Ref("b"), Group("c", "d")}).
		Subgraph(func(sb *Builder) {
			sb.Set(A(GraphKey("label"), Str("inner"))).Node("x")
		}, WithID("cluster_inner"))
	require.NoError(t, b.Err())
	assert.Same(t, Cluster(g), b.Cluster())

	rankdir, _ := g.Attributes().Get("rankdir")
	assert.Equal(t, "LR", rankdir.Text)
	splines, _ := g.GraphAttributes().Get("splines")
	assert.Equal(t, "ortho", splines.Text)
	assert.Equal(t, 1, g.NodeAttributes().Size())
	assert.Equal(t, 1, g.EdgeAttributes().Size())

	require.Len(t, g.Nodes(), 1)
	require.Len(t, g.Edges(), 2)
	assert.Equal(t, NodeRef{ID: "a", Port: "out", Compass: ast.CompassEast}, g.Edges()[0].Targets()[0])

	sub, ok := g.GetSubgraph("cluster_inner")
	require.True(t, ok)
	assert.True(t, sub.ExistNode("x"))
	label, _ := sub.Attributes().Get("label")
	assert.Equal(t, "inner", label.Text)
}

func TestBuilderStopsAtFirstError(t *testing.T) {
	g := NewGraph()
	b := Build(g).
		Node("a").
		Edge([]string{"a"}).
		Node("b")

	var inv *InvariantError
	require.ErrorAs(t, b.Err(), &inv)
	assert.True(t, g.ExistNode("a"))
	assert.False(t, g.ExistNode("b"))
}

func TestBuilderReportsNestedErrors(t *testing.T) {
	g := NewGraph()
	b := Build(g).Subgraph(func(sb *Builder) {
		sb.NodeDefaults(A(NodeKey("arrowhead"), Str("dot")))
	})
	assert.ErrorContains(t, b.Err(), `"arrowhead"`)
	assert.ErrorContains(t, Build(g).Node("").Err(), "empty")
}
