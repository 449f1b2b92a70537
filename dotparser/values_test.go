package dotparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinemde/dotgraph/ast"
)

func TestParseLiteral(t *testing.T) {
	tests := []struct {
		tok    Token
		quoted ast.Quoting
	}{
		{Token{Kind: TokenIdentifier, Literal: "box"}, ast.Unquoted},
		{Token{Kind: TokenNumeral, Literal: "-1.5"}, ast.Unquoted},
		{Token{Kind: TokenString, Literal: "two words"}, ast.DoubleQuoted},
		{Token{Kind: TokenHTML, Literal: "<b>x</b>"}, ast.HTMLLike},
	}
	for _, tt := range tests {
		lit, err := ParseLiteral(tt.tok)
		require.NoError(t, err, tt.tok.Literal)
		assert.Equal(t, tt.tok.Literal, lit.Value)
		assert.Equal(t, tt.quoted, lit.Quoted)
	}
}

func TestParseLiteralRejectsPunctuation(t *testing.T) {
	_, err := ParseLiteral(Token{Kind: TokenLBrace, Literal: "{", Pos: Position{Line: 4, Column: 2}})
	var serr *SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "ID", serr.Expected)
	assert.Equal(t, 4, serr.Pos.Line)
}
