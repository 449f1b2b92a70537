package dotparser

import (
	"errors"
	"fmt"

	"github.com/martinemde/dotgraph/ast"
)

// Position is the source location type shared with the ast package.
type Position = ast.Position

// ParseError is the base error type for all dotparser errors.
type ParseError struct {
	Message string
	Pos     Position
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// LexError represents a lexer-level error (unterminated string, invalid character).
type LexError struct{ ParseError }

// SyntaxError represents a grammar-level error (unexpected token, edge
// operator that does not match the graph kind).
type SyntaxError struct {
	ParseError
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	if e.Expected == "" {
		return e.ParseError.Error()
	}
	if e.Pos.Line > 0 {
		return fmt.Sprintf("line %d, col %d: expected %s, got %s", e.Pos.Line, e.Pos.Column, e.Expected, e.Got)
	}
	return fmt.Sprintf("expected %s, got %s", e.Expected, e.Got)
}

// IsSyntaxError reports whether err is a lexer or grammar error from this
// package, and returns its location.
func IsSyntaxError(err error) (Position, bool) {
	var serr *SyntaxError
	if errors.As(err, &serr) {
		return serr.Pos, true
	}
	var lerr *LexError
	if errors.As(err, &lerr) {
		return lerr.Pos, true
	}
	return Position{}, false
}

func unexpected(tok Token, expected string) *SyntaxError {
	got := tok.Kind.String()
	if tok.Kind != TokenEOF {
		got = fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal)
	}
	return &SyntaxError{
		ParseError: ParseError{Pos: tok.Pos},
		Expected:   expected,
		Got:        got,
	}
}
