package dotparser

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenIdentifier           // [A-Za-z_\x80-\xff][A-Za-z0-9_\x80-\xff]*
	TokenNumeral              // -?(\.\d+|\d+(\.\d*)?)
	TokenString               // "..." with \" decoded
	TokenHTML                 // <...> with balanced brackets
	TokenDirected             // ->
	TokenUndirected           // --
	TokenLBrace               // {
	TokenRBrace               // }
	TokenLBracket             // [
	TokenRBracket             // ]
	TokenEquals               // =
	TokenComma                // ,
	TokenSemicolon            // ;
	TokenColon                // :
	TokenPlus                 // +

	// Keywords (identifier text checked case-insensitively against keyword map)
	TokenStrict   // strict
	TokenGraph    // graph
	TokenDigraph  // digraph
	TokenNode     // node
	TokenEdge     // edge
	TokenSubgraph // subgraph
)

var tokenNames = map[TokenKind]string{
	TokenEOF:        "EOF",
	TokenIdentifier: "identifier",
	TokenNumeral:    "numeral",
	TokenString:     "string",
	TokenHTML:       "HTML string",
	TokenDirected:   "'->'",
	TokenUndirected: "'--'",
	TokenLBrace:     "'{'",
	TokenRBrace:     "'}'",
	TokenLBracket:   "'['",
	TokenRBracket:   "']'",
	TokenEquals:     "'='",
	TokenComma:      "','",
	TokenSemicolon:  "';'",
	TokenColon:      "':'",
	TokenPlus:       "'+'",
	TokenStrict:     "'strict'",
	TokenGraph:      "'graph'",
	TokenDigraph:    "'digraph'",
	TokenNode:       "'node'",
	TokenEdge:       "'edge'",
	TokenSubgraph:   "'subgraph'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsID reports whether tokens of this kind can be used as an ID.
func (k TokenKind) IsID() bool {
	switch k {
	case TokenIdentifier, TokenNumeral, TokenString, TokenHTML:
		return true
	default:
		return false
	}
}

// IsEdgeOp reports whether the kind is an edge operator.
func (k TokenKind) IsEdgeOp() bool {
	return k == TokenDirected || k == TokenUndirected
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string // text content (decoded for strings, inner text for HTML, raw for others)
	Pos     Position
	End     int // byte offset just past the token
}

// keywords maps lowercased keyword strings to their token kinds.
var keywords = map[string]TokenKind{
	"strict":   TokenStrict,
	"graph":    TokenGraph,
	"digraph":  TokenDigraph,
	"node":     TokenNode,
	"edge":     TokenEdge,
	"subgraph": TokenSubgraph,
}
