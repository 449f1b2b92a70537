package convert

import "github.com/martinemde/dotgraph/ast"

// Plugin converts one kind of AST node into a model value.
type Plugin interface {
	Match(n ast.Node) bool
	Convert(ctx *Context, n ast.Node) (any, error)
}

type plugin struct {
	match   func(ast.Node) bool
	convert func(*Context, ast.Node) (any, error)
}

func (p plugin) Match(n ast.Node) bool { return p.match(n) }
func (p plugin) Convert(ctx *Context, n ast.Node) (any, error) { return p.convert(ctx, n) }

// NewPlugin builds a Plugin from a predicate and a conversion function.
func NewPlugin(match func(ast.Node) bool, convert func(*Context, ast.Node) (any, error)) Plugin {
	return plugin{match: match, convert: convert}
}

// matchKind returns a predicate matching nodes of the given kind.
func matchKind(kind ast.NodeKind) func(ast.Node) bool {
	return func(n ast.Node) bool { return n.Kind() == kind }
}
