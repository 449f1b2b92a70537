package dotparser

import (
	"fmt"

	"github.com/martinemde/dotgraph/ast"
)

// ParseLiteral converts an ID token into a Literal, recording how it was quoted.
func ParseLiteral(tok Token) (*ast.Literal, error) {
	switch tok.Kind {
	case TokenIdentifier, TokenNumeral:
		return &ast.Literal{Value: tok.Literal, Quoted: ast.Unquoted, Pos: tok.Pos}, nil

	case TokenString:
		return &ast.Literal{Value: tok.Literal, Quoted: ast.DoubleQuoted, Pos: tok.Pos}, nil

	case TokenHTML:
		return &ast.Literal{Value: tok.Literal, Quoted: ast.HTMLLike, Pos: tok.Pos}, nil

	default:
		return nil, &SyntaxError{
			ParseError: ParseError{
				Message: fmt.Sprintf("unexpected token %s in ID position", tok.Kind),
				Pos:     tok.Pos,
			},
			Expected: "ID",
			Got:      fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
}
