package attribute

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/dotparser"
)

func parse(t *testing.T, src string) *ast.Dot {
	t.Helper()
	dot, err := dotparser.ParseString(src)
	require.NoError(t, err)
	return dot
}

func diagsForRule(diags []Diagnostic, rule string) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Rule == rule {
			out = append(out, d)
		}
	}
	return out
}

func TestLintCleanDocument(t *testing.T) {
	dot := parse(t, `digraph G {
  rankdir = LR;
  node [shape=box, style="rounded,filled"];
  edge [arrowhead=vee];
  subgraph cluster_0 { label = "zero"; pencolor = blue; a; }
  subgraph { rank = same; b; c; }
  a -> b [color="red:blue", weight=2, label=<<b>x</b>>];
}`)
	assert.Empty(t, Lint(dot))
}

func TestLintUnknownKey(t *testing.T) {
	dot := parse(t, "digraph {\n  a [arrowhead=vee];\n  a -> b [shape=box];\n}")
	diags := diagsForRule(Lint(dot), "unknown_key")
	require.Len(t, diags, 2)

	assert.Equal(t, Warning, diags[0].Severity)
	assert.Equal(t, "arrowhead", diags[0].Key)
	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.Contains(t, diags[0].Message, "not a node attribute")
	assert.Contains(t, diags[0].Message, "valid on: edge")

	assert.Equal(t, "shape", diags[1].Key)
	assert.Equal(t, 3, diags[1].Pos.Line)
}

func TestLintGraphAttributesDependOnScope(t *testing.T) {
	dot := parse(t, `digraph { rank = same; subgraph s { rank = same; graph [rankdir=LR] } }`)
	diags := diagsForRule(Lint(dot), "unknown_key")
	require.Len(t, diags, 2)
	assert.Equal(t, "rank", diags[0].Key)
	assert.Contains(t, diags[0].Message, "not a graph attribute")
	assert.Equal(t, "rankdir", diags[1].Key)
	assert.Contains(t, diags[1].Message, "not a subgraph attribute")
}

func TestLintValueShape(t *testing.T) {
	dot := parse(t, `digraph { a [fontsize=big, color=<red>]; b [label=<<i>ok</i>>, shape=blob] }`)
	diags := diagsForRule(Lint(dot), "value_shape")
	require.Len(t, diags, 3)
	assert.Equal(t, "fontsize", diags[0].Key)
	assert.Equal(t, "color", diags[1].Key)
	assert.Contains(t, diags[1].Message, "HTML-like")
	assert.Equal(t, "shape", diags[2].Key)
}

type failingRule struct{}

func (failingRule) Name() string { return "always" }

func (failingRule) Apply(uses []Use) []Diagnostic {
	var out []Diagnostic
	for _, u := range uses {
		out = append(out, Diagnostic{Rule: "always", Severity: Error, Message: "no", Key: u.Attribute.Key.Value, Pos: u.Attribute.Pos})
	}
	return out
}

func TestLintOrError(t *testing.T) {
	dot := parse(t, `digraph { a [shape=blob] }`)

	diags, err := LintOrError(dot)
	require.NoError(t, err)
	assert.Len(t, diags, 1)

	diags, err = LintOrError(dot, failingRule{})
	require.Error(t, err)
	assert.Len(t, diags, 2)

	var lintErr *LintError
	require.ErrorAs(t, err, &lintErr)
	require.Len(t, lintErr.Diagnostics, 1)
	assert.Contains(t, err.Error(), "lint failed with 1 error(s)")
	assert.Contains(t, err.Error(), "1:14: [ERROR] always: no")
}

func TestCollectTagsKinds(t *testing.T) {
	dot := parse(t, `graph { label=x; node [color=red]; edge [color=blue]; a [shape=box]; a -- b [weight=1]; subgraph { rank=same } }`)
	var kinds []Kind
	for _, u := range Collect(dot) {
		kinds = append(kinds, u.Kind)
	}
	assert.Equal(t, []Kind{RootGraph, Node, Edge, Node, Edge, Subgraph}, kinds)
}
