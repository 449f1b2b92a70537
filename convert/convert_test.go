package convert

import (
	"bytes"
	"errors"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/attribute"
	"github.com/martinemde/dotgraph/dotparser"
	"github.com/martinemde/dotgraph/model"
	"github.com/martinemde/dotgraph/render"
)

func mustModel(t *testing.T, src string) *model.RootCluster {
	t.Helper()
	dot, err := dotparser.ParseString(src)
	require.NoError(t, err)
	g, err := ToModel(dot)
	require.NoError(t, err)
	return g
}

func TestToModelGraphHeader(t *testing.T) {
	g := mustModel(t, `strict digraph G {}`)
	assert.True(t, g.Strict)
	assert.True(t, g.Directed)
	assert.Equal(t, "G", g.ID())

	g = mustModel(t, `graph {}`)
	assert.False(t, g.Strict)
	assert.False(t, g.Directed)
	assert.Equal(t, "", g.ID())
}

func TestToModelNodesAndEdges(t *testing.T) {
	g := mustModel(t, `digraph { a [label="A"]; a -> b -> c [color=red]; }`)

	require.Len(t, g.Nodes(), 1)
	label, ok := g.Nodes()[0].Attributes().Get("label")
	require.True(t, ok)
	assert.Equal(t, model.Quote("A"), label)

	require.Len(t, g.Edges(), 1)
	e := g.Edges()[0]
	assert.Equal(t, []model.EdgeTarget{model.Ref("a"), model.Ref("b"), model.Ref("c")}, e.Targets())
	color, _ := e.Attributes().Get("color")
	assert.Equal(t, model.Str("red"), color)
}

func TestToModelMergesRepeatedNodes(t *testing.T) {
	g := mustModel(t, `digraph { a [color=red, shape=box]; a [color=blue]; }`)
	require.Len(t, g.Nodes(), 1)

	attrs := g.Nodes()[0].Attributes()
	assert.Equal(t, []model.NodeKey{"color", "shape"}, attrs.Keys())
	color, _ := attrs.Get("color")
	assert.Equal(t, "blue", color.Text)
}

func TestToModelPortsAndGroups(t *testing.T) {
	g := mustModel(t, `digraph { a:p1:ne -> {b c} }`)
	require.Len(t, g.Edges(), 1)
	assert.Equal(t, []model.EdgeTarget{
		model.NodeRef{ID: "a", Port: "p1", Compass: ast.CompassNorthEast},
		model.Group("b", "c"),
	}, g.Edges()[0].Targets())
}

func TestToModelDefaultsAndAssignments(t *testing.T) {
	g := mustModel(t, `digraph {
  rankdir = LR
  graph [splines=ortho]
  node [shape=box]
  edge [arrowhead=none]
}`)
	rankdir, ok := g.Attributes().Get("rankdir")
	require.True(t, ok)
	assert.Equal(t, "LR", rankdir.Text)

	splines, _ := g.GraphAttributes().Get("splines")
	assert.Equal(t, "ortho", splines.Text)
	shape, _ := g.NodeAttributes().Get("shape")
	assert.Equal(t, "box", shape.Text)
	head, _ := g.EdgeAttributes().Get("arrowhead")
	assert.Equal(t, "none", head.Text)
}

func TestToModelSubgraphs(t *testing.T) {
	g := mustModel(t, `digraph {
  subgraph cluster_a { label="A"; x }
  subgraph cluster_a { y }
  subgraph { rank=same; p q }
  { r }
}`)
	subs := g.Subgraphs()
	require.Len(t, subs, 3)

	assert.Equal(t, "cluster_a", subs[0].ID())
	assert.True(t, subs[0].IsCluster())
	assert.Len(t, subs[0].Nodes(), 2)

	assert.Equal(t, "", subs[1].ID())
	rank, ok := subs[1].Attributes().Get("rank")
	require.True(t, ok)
	assert.Equal(t, "same", rank.Text)

	assert.Equal(t, "", subs[2].ID())
	assert.Len(t, subs[2].Nodes(), 1)
	assert.Empty(t, g.Nodes())
}

func TestToModelComments(t *testing.T) {
	g := mustModel(t, `// header
digraph {
  // about a
  a
  /* about
     the edge */
  a -> b
  # about defaults
  node [shape=box]
  // trailing
}`)
	assert.Equal(t, "header", g.Comment())
	assert.Equal(t, "about a", g.Nodes()[0].Comment())
	assert.Equal(t, "about\nthe edge", g.Edges()[0].Comment())
	assert.Equal(t, "about defaults", g.NodeAttributes().Comment())
}

func TestToModelFirstGraphOnly(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel})

	dot, err := dotparser.ParseString(`digraph one { a } graph two { b }`)
	require.NoError(t, err)
	g, err := NewConverter(WithLogger(logger)).ToModel(dot)
	require.NoError(t, err)
	assert.Equal(t, "one", g.ID())
	assert.Contains(t, buf.String(), "first graph only")
}

func TestToModelAcceptsGraphNode(t *testing.T) {
	dot, err := dotparser.ParseString(`graph G { a -- b }`)
	require.NoError(t, err)
	g, err := ToModel(dot.Graphs()[0])
	require.NoError(t, err)
	assert.Equal(t, "G", g.ID())
	assert.Len(t, g.Edges(), 1)
}

func TestToModelRejects(t *testing.T) {
	_, err := ToModel(&ast.Dot{})
	assert.ErrorContains(t, err, "no graph")

	_, err = ToModel(&ast.NodeStmt{ID: ast.ID("a")})
	assert.ErrorContains(t, err, "cannot convert Node node")
}

func TestToModelForbiddenKey(t *testing.T) {
	dot, err := dotparser.ParseString("digraph {\n  a [arrowhead=dot]\n}")
	require.NoError(t, err)
	_, err = ToModel(dot)
	require.Error(t, err)

	var keyErr *attribute.KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "arrowhead", keyErr.Key)
	assert.Equal(t, attribute.Node, keyErr.Kind)
	assert.Contains(t, err.Error(), "2:6")
}

func TestConversionErrorWhenNoPluginMatches(t *testing.T) {
	var buf bytes.Buffer
	c := &Converter{models: DefaultModels(), logger: log.New(&buf)}

	_, err := c.Convert(&ast.Graph{})
	var convErr *ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, ast.KindGraph, convErr.Kind)
	assert.Contains(t, buf.String(), "conversion failed")
}

func TestRegisterOverridesDefault(t *testing.T) {
	c := NewConverter()
	c.Register(NewPlugin(
		func(n ast.Node) bool { return n.Kind() == ast.KindNode },
		func(ctx *Context, n ast.Node) (any, error) {
			st := n.(*ast.NodeStmt)
			node, err := ctx.Models.Node("x_" + st.ID.Value)
			if err != nil {
				return nil, err
			}
			ctx.Cluster().AddNode(node)
			return node, nil
		},
	))

	dot, err := dotparser.ParseString(`digraph { a; b }`)
	require.NoError(t, err)
	g, err := c.ToModel(dot)
	require.NoError(t, err)

	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []string{"x_a", "x_b"}, ids)
}

type edgePlugin struct{ name string }

func (edgePlugin) Match(n ast.Node) bool { return n.Kind() == ast.KindEdge }

func (p edgePlugin) Convert(*Context, ast.Node) (any, error) { return p.name, nil }

func TestWithPluginsOrder(t *testing.T) {
	first, second := edgePlugin{"first"}, edgePlugin{"second"}
	c := NewConverter(WithPlugins(first, second))

	p, err := c.Resolve(&ast.Edge{})
	require.NoError(t, err)
	assert.Equal(t, Plugin(first), p)
	assert.Len(t, c.Plugins(), len(DefaultPlugins())+2)

	res, err := c.Convert(&ast.Edge{})
	require.NoError(t, err)
	assert.Equal(t, "first", res)
}

func TestWithModelsOverridesConstructors(t *testing.T) {
	seen := 0
	c := NewConverter(WithModels(Models{
		Node: func(id string, opts ...model.Option) (*model.Node, error) {
			seen++
			return model.NewNode(id, append(opts, model.WithComment("made by hook"))...)
		},
	}))

	dot, err := dotparser.ParseString(`digraph { a; a; b }`)
	require.NoError(t, err)
	g, err := c.ToModel(dot)
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
	assert.Equal(t, "made by hook", g.Nodes()[0].Comment())
}

func TestModelsErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	c := NewConverter(WithModels(Models{
		Edge: func([]model.EdgeTarget, ...model.Option) (*model.Edge, error) { return nil, boom },
	}))
	dot, err := dotparser.ParseString(`digraph { a -> b }`)
	require.NoError(t, err)
	_, err = c.ToModel(dot)
	assert.ErrorIs(t, err, boom)
}

func TestConvertSingleStatement(t *testing.T) {
	res, err := NewConverter().Convert(&ast.NodeStmt{
		ID:   ast.ID("solo"),
		Body: []*ast.Attribute{{Key: ast.ID("shape"), Value: ast.ID("box")}},
	})
	require.NoError(t, err)
	node, ok := res.(*model.Node)
	require.True(t, ok)
	assert.Equal(t, "solo", node.ID())
}

func TestFromModelQuotesIDs(t *testing.T) {
	g := model.NewDigraph(model.WithID("G"))
	_, err := g.CreateEdge([]model.EdgeTarget{model.Ref("a"), model.Ref("b")},
		model.WithAttributes(model.A(model.EdgeKey("color"), model.Str("red"))))
	require.NoError(t, err)

	assert.Equal(t, "digraph \"G\" {\n  \"a\" -> \"b\" [\n    color = red;\n  ];\n}", render.Render(FromModel(g)))
}

func TestFromModelOrderAndComments(t *testing.T) {
	g := model.NewGraph(model.WithComment("top"))
	g.Attributes().MustSet("label", model.Quote("T"))
	g.NodeAttributes().MustSet("shape", model.Str("box"))
	g.NodeAttributes().SetComment("defaults")

	e, err := g.CreateEdge([]model.EdgeTarget{model.Ref("a:p:n"), model.Group("b", "c")})
	require.NoError(t, err)
	e.SetComment("two\nlines")
	_, err = g.CreateNode("a", model.WithComment("node a"))
	require.NoError(t, err)
	sub, err := g.CreateSubgraph(model.WithID("cluster_x"))
	require.NoError(t, err)
	_, err = sub.CreateNode("b")
	require.NoError(t, err)

	want := `// top
graph {
  label = "T";
  // defaults
  node [
    shape = box;
  ];
  // node a
  "a";
  subgraph "cluster_x" {
    "b";
  }
  /**
   * two
   * lines
   */
  "a":"p":n -- {"b" "c"};
}`
	assert.Equal(t, want, render.Render(FromModel(g)))
}

func TestFromModelHTMLAndQuotedValues(t *testing.T) {
	g := model.NewDigraph()
	_, err := g.CreateNode("n", model.WithAttributes(
		model.A(model.NodeKey("label"), model.HTML("<b>x</b>")),
		model.A(model.NodeKey("tooltip"), model.Str("two words")),
		model.A(model.NodeKey("width"), model.Str("1.5")),
	))
	require.NoError(t, err)

	want := "digraph {\n  \"n\" [\n    label = <<b>x</b>>;\n    tooltip = \"two words\";\n    width = 1.5;\n  ];\n}"
	assert.Equal(t, want, render.Render(FromModel(g)))
}

func TestRoundTripThroughModel(t *testing.T) {
	src := `strict graph "net" {
  node [
    shape = circle;
  ];
  "a" [
    label = "A\lleft";
  ];
  subgraph {
    "b";
  }
  "a" -- "b";
}`
	dot, err := dotparser.ParseString(src)
	require.NoError(t, err)
	g, err := ToModel(dot)
	require.NoError(t, err)
	assert.Equal(t, src, render.Render(FromModel(g)))
}
