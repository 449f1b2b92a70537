// Package dot ties the parser, converter and renderer together for the
// common cases: text to model, model to text and text to canonical text.
package dot

import (
	"github.com/martinemde/dotgraph/ast"
	"github.com/martinemde/dotgraph/convert"
	"github.com/martinemde/dotgraph/dotparser"
	"github.com/martinemde/dotgraph/model"
	"github.com/martinemde/dotgraph/render"
)

// ParseAST parses DOT source into a syntax tree.
func ParseAST(src string) (*ast.Dot, error) {
	return dotparser.ParseString(src)
}

// Parse parses DOT source and converts its first graph to a model.
func Parse(src string, opts ...convert.Option) (*model.RootCluster, error) {
	doc, err := ParseAST(src)
	if err != nil {
		return nil, err
	}
	return convert.NewConverter(opts...).ToModel(doc)
}

// ToDot writes a model as DOT text. Ids are always quoted.
func ToDot(g *model.RootCluster, opts ...render.Option) string {
	return render.Render(convert.FromModel(g), opts...)
}

// Format parses src and renders it back in canonical form, keeping every
// graph and comment in the document.
func Format(src string, opts ...render.Option) (string, error) {
	doc, err := ParseAST(src)
	if err != nil {
		return "", err
	}
	return render.Render(doc, opts...), nil
}
