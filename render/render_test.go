package render

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/dotparser"
)

type formatCase struct {
	Name  string `toml:"name"`
	Input string `toml:"input"`
	Want  string `toml:"want"`
}

func loadCases(t *testing.T, path string) []formatCase {
	t.Helper()
	var file struct {
		Cases []formatCase `toml:"case"`
	}
	_, err := toml.DecodeFile(path, &file)
	require.NoError(t, err)
	require.NotEmpty(t, file.Cases)
	return file.Cases
}

func TestRenderGolden(t *testing.T) {
	for _, tc := range loadCases(t, "testdata/format.toml") {
		t.Run(tc.Name, func(t *testing.T) {
			dot, err := dotparser.ParseString(tc.Input)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, Render(dot))

			again, err := dotparser.ParseString(tc.Want)
			require.NoError(t, err)
			assert.Equal(t, tc.Want, Render(again), "rendering is not idempotent")
		})
	}
}

func TestRenderStandaloneNodes(t *testing.T) {
	edge := &ast.Edge{
		Targets: []ast.EdgeTarget{
			&ast.NodeRef{ID: ast.ID("a"), Port: ast.Quoted("p 1"), Compass: ast.CompassSouthWest},
			&ast.NodeRefGroup{Body: []*ast.NodeRef{{ID: ast.ID("b")}, {ID: ast.ID("c")}}},
		},
	}
	assert.Equal(t, `a:"p 1":sw -> {b c};`, Render(edge))
	assert.Equal(t, `a:"p 1":sw -- {b c};`, Render(edge, WithDirected(false)))

	assert.Equal(t, "<b>bold</b>", Render(ast.HTML("b>bold</b")))
	assert.Equal(t, `"x"`, Render(ast.Quoted("x")))
	assert.Equal(t, "label = <x>;", Render(&ast.Attribute{Key: ast.ID("label"), Value: ast.HTML("x")}))
	assert.Equal(t, "node;", Render(&ast.Attributes{Type: ast.AttributesNode}))
}

func TestRenderGraphDirectednessOverridesOption(t *testing.T) {
	g := &ast.Graph{
		Directed: false,
		Body: []ast.Statement{
			&ast.Edge{Targets: []ast.EdgeTarget{&ast.NodeRef{ID: ast.ID("a")}, &ast.NodeRef{ID: ast.ID("b")}}},
		},
	}
	assert.Equal(t, "graph {\n  a -- b;\n}", Render(g, WithDirected(true)))

	g.Directed = true
	assert.Equal(t, "digraph {\n  a -> b;\n}", Render(g, WithDirected(false)))
}

func TestRenderDirectednessDoesNotLeakBetweenGraphs(t *testing.T) {
	edge := func() *ast.Edge {
		return &ast.Edge{Targets: []ast.EdgeTarget{&ast.NodeRef{ID: ast.ID("a")}, &ast.NodeRef{ID: ast.ID("b")}}}
	}
	dot := &ast.Dot{Body: []ast.Node{
		&ast.Graph{Body: []ast.Statement{edge()}},
		&ast.Graph{Directed: true, Body: []ast.Statement{edge()}},
	}}
	assert.Equal(t, "graph {\n  a -- b;\n}\ndigraph {\n  a -> b;\n}", Render(dot))
}

func TestRenderIndentSize(t *testing.T) {
	g := &ast.Graph{
		Directed: true,
		ID:       ast.Quoted("G"),
		Body: []ast.Statement{
			&ast.NodeStmt{ID: ast.ID("a"), Body: []*ast.Attribute{{Key: ast.ID("shape"), Value: ast.ID("box")}}},
		},
	}
	want := "digraph \"G\" {\n    a [\n        shape = box;\n    ];\n}"
	assert.Equal(t, want, Render(g, WithIndentSize(4)))
	assert.Equal(t, "digraph \"G\" {\na [\nshape = box;\n];\n}", Render(g, WithIndentSize(0)))
}

func TestRenderComments(t *testing.T) {
	tests := []struct {
		comment *ast.Comment
		want    string
	}{
		{&ast.Comment{Type: ast.CommentSlash, Value: "one\ntwo"}, "// one\n// two"},
		{&ast.Comment{Type: ast.CommentMacro, Value: "m"}, "# m"},
		{&ast.Comment{Type: ast.CommentBlock, Value: "a\n\nb"}, "/**\n * a\n *\n * b\n */"},
		{&ast.Comment{Type: ast.CommentSlash, Value: ""}, "//"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Render(tt.comment))
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{`say "hi"`, `say \"hi\"`},
		{`already \"escaped\"`, `already \"escaped\"`},
		{`left\l`, `left\l`},
		{`double\\`, `double\\`},
		{`trailing\`, `trailing\\`},
		{`\`, `\\`},
		{`"`, `\"`},
		{"new\nline", "new\nline"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Escape(tt.in), "input: %s", tt.in)
	}
}

func TestRenderIsPure(t *testing.T) {
	dot, err := dotparser.ParseString(`graph { a -- b }`)
	require.NoError(t, err)
	first := Render(dot)

	edge := &ast.Edge{Targets: []ast.EdgeTarget{&ast.NodeRef{ID: ast.ID("x")}, &ast.NodeRef{ID: ast.ID("y")}}}
	assert.Equal(t, "x -> y;", Render(edge))
	assert.Equal(t, first, Render(dot))
}
