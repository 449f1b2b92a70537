package dot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/dotparser"
	"github.com/martinemde/dotgraph/model"
	"github.com/martinemde/dotgraph/render"
)

func TestParseToDotScenario(t *testing.T) {
	g, err := Parse(`digraph G { a -> b [color=red]; }`)
	require.NoError(t, err)
	assert.True(t, g.Directed)
	assert.Equal(t, "G", g.ID())
	require.Len(t, g.Edges(), 1)

	want := "digraph \"G\" {\n  \"a\" -> \"b\" [\n    color = red;\n  ];\n}"
	assert.Equal(t, want, ToDot(g))
}

func TestFormatIsIdempotent(t *testing.T) {
	sources := []string{
		`digraph G { a -> b [color=red]; }`,
		"graph { a -- {b c}; subgraph s { d } }",
		"/* header */\nstrict digraph { node [shape=box] a:n -> b:p:sw }",
		"digraph { label = <<b>hi</b>>; x [label=\"say \\\"hi\\\"\"] }",
		"# macro\ndigraph { a } graph { b }",
	}
	for _, src := range sources {
		once, err := Format(src)
		require.NoError(t, err, src)
		twice, err := Format(once)
		require.NoError(t, err, src)
		assert.Equal(t, once, twice, src)
	}
}

func TestRenderedASTReparsesToSameAST(t *testing.T) {
	src := `digraph G {
  rankdir = LR
  node [shape=box]
  a [label="A"]
  subgraph cluster_x { b; c }
  a -> {b c} [style=dashed]
}`
	doc, err := ParseAST(src)
	require.NoError(t, err)
	again, err := ParseAST(render.Render(doc))
	require.NoError(t, err)
	assert.Equal(t, render.Render(doc), render.Render(again))
	assert.Equal(t, shape(doc), shape(again))
}

// shape summarizes the statement kinds of every graph body, recursively.
func shape(doc *ast.Dot) []ast.NodeKind {
	var kinds []ast.NodeKind
	ast.Walk(doc, func(n ast.Node) bool {
		if n.Kind() != ast.KindLiteral {
			kinds = append(kinds, n.Kind())
		}
		return true
	})
	return kinds
}

func TestDirectednessIsConsistent(t *testing.T) {
	out, err := Format("graph { a -- b -- c }")
	require.NoError(t, err)
	assert.Contains(t, out, "a -- b -- c")
	assert.NotContains(t, out, "->")

	out, err = Format("digraph { a -> b }")
	require.NoError(t, err)
	assert.Contains(t, out, "a -> b")
	assert.NotContains(t, out, "--")

	_, err = Format("graph { a -> b }")
	_, ok := dotparser.IsSyntaxError(err)
	assert.True(t, ok)
}

func TestAnonymousSubgraphRoundTrip(t *testing.T) {
	out, err := Format("digraph { subgraph { a } }")
	require.NoError(t, err)
	assert.Equal(t, "digraph {\n  subgraph {\n    a;\n  }\n}", out)

	g, err := Parse(out)
	require.NoError(t, err)
	require.Len(t, g.Subgraphs(), 1)
	assert.Equal(t, "", g.Subgraphs()[0].ID())
	assert.Contains(t, ToDot(g), "subgraph {\n    \"a\";\n  }")
}

func TestMacroCommentAttachesToNextStatement(t *testing.T) {
	src := "digraph {\n# about a\na\n}"
	doc, err := ParseAST(src)
	require.NoError(t, err)

	body := doc.Graphs()[0].Body
	require.Len(t, body, 2)
	c, ok := body[0].(*ast.Comment)
	require.True(t, ok)
	assert.Equal(t, ast.CommentMacro, c.Type)
	assert.Equal(t, "about a", c.Value)

	out, err := Format(src)
	require.NoError(t, err)
	assert.Equal(t, "digraph {\n  # about a\n  a;\n}", out)

	g, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "about a", g.Nodes()[0].Comment())
}

func TestEmptyDefaultsRoundTrip(t *testing.T) {
	out, err := Format("digraph { edge [] node [] }")
	require.NoError(t, err)
	assert.Equal(t, "digraph {\n  edge;\n  node;\n}", out)

	again, err := Format(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = Parse(out)
	require.NoError(t, err)
}

func TestBlankLineSeparatedCommentsRoundTrip(t *testing.T) {
	src := "digraph {\n// one\n\n// two\na\n}"
	doc, err := ParseAST(src)
	require.NoError(t, err)
	again, err := ParseAST(render.Render(doc))
	require.NoError(t, err)
	assert.Equal(t, shape(doc), shape(again))

	out, err := Format(src)
	require.NoError(t, err)
	assert.Equal(t, "digraph {\n  // one\n  // two\n  a;\n}", out)

	g, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo", g.Nodes()[0].Comment())
}

func TestNodeStatementPortRoundTrip(t *testing.T) {
	src := `digraph { a:p [label=x]; b:q:ne }`
	out, err := Format(src)
	require.NoError(t, err)
	assert.Equal(t, "digraph {\n  a:p [\n    label = x;\n  ];\n  b:q:ne;\n}", out)

	again, err := Format(out)
	require.NoError(t, err)
	assert.Equal(t, out, again)

	g, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, g.Nodes(), 2)
	a := g.Nodes()[0]
	assert.Equal(t, "a", a.ID())
	label, ok := a.Attributes().Get("label")
	require.True(t, ok)
	assert.Equal(t, "x", label.Text)
}

func TestBuilderToDot(t *testing.T) {
	g := model.NewDigraph()
	first, err := g.CreateNode("a")
	require.NoError(t, err)
	second, err := g.CreateNode("a")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Len(t, g.Nodes(), 1)

	_, err = g.CreateEdge([]model.EdgeTarget{first})
	var inv *model.InvariantError
	assert.ErrorAs(t, err, &inv)

	require.NoError(t, model.Build(g).Edge([]string{"a", "b"}).Err())
	assert.Equal(t, "digraph {\n  \"a\";\n  \"a\" -> \"b\";\n}", ToDot(g))
}

func TestToDotIndentOption(t *testing.T) {
	g := model.NewGraph()
	_, err := g.CreateNode("a")
	require.NoError(t, err)
	assert.Equal(t, "graph {\n    \"a\";\n}", ToDot(g, render.WithIndentSize(4)))
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("digraph {")
	pos, ok := dotparser.IsSyntaxError(err)
	require.True(t, ok)
	assert.Equal(t, 1, pos.Line)

	_, err = Parse("digraph { a [arrowhead=dot] }")
	assert.ErrorContains(t, err, "not permitted on node")
}
