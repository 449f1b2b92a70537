package convert

import (
	"fmt"

	"github.com/martinemde/dotgraph/ast"
)

// ConversionError is returned when no plugin matches an AST node. It
// indicates a misconfigured converter, not bad input.
type ConversionError struct {
	Kind ast.NodeKind
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("no conversion plugin matches %s node", e.Kind)
}
