// Package dotparser implements a parser for the Graphviz DOT language.
//
// The parser is a hand-rolled recursive-descent parser with two layers:
//
//   - Lexer: converts raw bytes into a token stream. Whitespace is skipped;
//     comments (// line, /* block */, and # lines) are collected so the
//     parser can attach them to the statement that follows.
//   - Parser: consumes tokens according to the DOT grammar and builds an
//     ast.Dot.
//
// The full DOT grammar is supported: strict graphs, directed and undirected
// edges, chained edges, {a b} endpoint groups, ports with compass points,
// named, anonymous and bare {} subgraphs, default attribute statements,
// top-level key=value assignments, and the three literal forms (identifiers
// and numerals, "double quoted" strings with + concatenation, and <HTML>
// strings). Keywords are case-insensitive.
//
// Usage:
//
//	dot, err := dotparser.Parse(src)
//	if err != nil {
//	    var serr *dotparser.SyntaxError
//	    if errors.As(err, &serr) {
//	        fmt.Println(serr.Pos.Line, serr.Pos.Column)
//	    }
//	    return err
//	}
//
// Parsing stops at the first error; no partial result is returned.
package dotparser
