package model

import (
	"regexp"

	"github.com/martinemde/dotgraph/ast"
)

// Value is an attribute value. It records the text and how it should be
// written out.
type Value struct {
	Text string
	Form Form
}

// Form selects how a Value is written in DOT text.
type Form int

const (
	// Auto writes the value bare when it is a valid identifier or numeral
	// and double-quoted otherwise.
	Auto Form = iota
	// Quoted always writes the value double-quoted.
	Quoted
	// HTMLLike writes the value between angle brackets, unescaped.
	HTMLLike
)

// Str returns a value that is quoted only when it has to be.
func Str(s string) Value { return Value{Text: s, Form: Auto} }

// Quote returns a value that is always double-quoted.
func Quote(s string) Value { return Value{Text: s, Form: Quoted} }

// HTML returns an HTML-like value, such as an HTML label.
func HTML(s string) Value { return Value{Text: s, Form: HTMLLike} }

func (v Value) String() string { return v.Text }

// IsHTML reports whether the value is HTML-like.
func (v Value) IsHTML() bool { return v.Form == HTMLLike }

var (
	identPattern   = regexp.MustCompile(`^[A-Za-z_\x{80}-\x{10FFFF}][A-Za-z0-9_\x{80}-\x{10FFFF}]*$`)
	numeralPattern = regexp.MustCompile(`^-?(\.[0-9]+|[0-9]+(\.[0-9]*)?)$`)
	keywordPattern = regexp.MustCompile(`(?i)^(strict|graph|digraph|node|edge|subgraph)$`)
)

// IsBareID reports whether s can be written without quotes: an identifier
// that is not a keyword, or a numeral.
func IsBareID(s string) bool {
	if numeralPattern.MatchString(s) {
		return true
	}
	return identPattern.MatchString(s) && !keywordPattern.MatchString(s)
}

// Literal converts the value to an AST literal, resolving Auto to bare or
// quoted.
func (v Value) Literal() *ast.Literal {
	switch v.Form {
	case HTMLLike:
		return ast.HTML(v.Text)
	case Quoted:
		return ast.Quoted(v.Text)
	}
	if IsBareID(v.Text) {
		return ast.ID(v.Text)
	}
	return ast.Quoted(v.Text)
}

// ValueOf converts an AST literal into a Value, keeping its quoting.
func ValueOf(l *ast.Literal) Value {
	switch l.Quoted {
	case ast.HTMLLike:
		return HTML(l.Value)
	case ast.DoubleQuoted:
		return Quote(l.Value)
	}
	return Str(l.Value)
}
