package dotparser

import (
	"fmt"
	"strings"

	"github.com/martinemde/dotgraph/ast"
)

// Lexer tokenizes DOT source text into a stream of tokens.
//
// Comments are not returned as tokens. They are buffered in source order and
// handed to the parser through TakeComments.
type Lexer struct {
	src      []byte
	pos      int // current byte offset
	line     int // current line (1-based)
	col      int // current column (1-based)
	peeked   *Token
	comments []*ast.Comment
	lastEnd  int // end offset of the last buffered line comment
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() (Token, error) {
	if l.peeked != nil {
		return *l.peeked, nil
	}
	tok, err := l.scan()
	if err != nil {
		return Token{}, err
	}
	l.peeked = &tok
	return tok, nil
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() (Token, error) {
	if l.peeked != nil {
		tok := *l.peeked
		l.peeked = nil
		return tok, nil
	}
	return l.scan()
}

// TakeComments returns the comments buffered since the last call and clears
// the buffer.
func (l *Lexer) TakeComments() []*ast.Comment {
	c := l.comments
	l.comments = nil
	return c
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.src) {
		return 0
	}
	return l.src[l.pos+n]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

// atLineStart reports whether only blanks precede the current position on
// its line. Macro comments are only recognized there.
func (l *Lexer) atLineStart() bool {
	for i := l.pos - 1; i >= 0; i-- {
		switch l.src[i] {
		case '\n':
			return true
		case ' ', '\t', '\r':
			continue
		default:
			return false
		}
	}
	return true
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.atEnd() {
		ch := l.peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekAt(1) == '/':
			pos := l.currentPos()
			l.advance()
			l.advance()
			l.addLineComment(ast.CommentSlash, pos, l.readToEOL())
		case ch == '#' && l.atLineStart():
			pos := l.currentPos()
			l.advance()
			l.addLineComment(ast.CommentMacro, pos, l.readToEOL())
		case ch == '/' && l.peekAt(1) == '*':
			startPos := l.currentPos()
			l.advance() // consume /
			l.advance() // consume *
			start := l.pos
			for {
				if l.atEnd() {
					return &LexError{ParseError{
						Message: "unterminated block comment",
						Pos:     startPos,
					}}
				}
				if l.peek() == '*' && l.peekAt(1) == '/' {
					break
				}
				l.advance()
			}
			text := string(l.src[start:l.pos])
			l.advance() // consume *
			l.advance() // consume /
			l.comments = append(l.comments, &ast.Comment{
				Type:  ast.CommentBlock,
				Value: normalizeBlockComment(text),
				Pos:   startPos,
			})
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) readToEOL() string {
	start := l.pos
	for !l.atEnd() && l.peek() != '\n' {
		l.advance()
	}
	return strings.TrimSpace(string(l.src[start:l.pos]))
}

// addLineComment buffers a // or # comment, merging it into the previous
// comment when both are the same kind and only whitespace separates them.
func (l *Lexer) addLineComment(kind ast.CommentKind, pos Position, text string) {
	if n := len(l.comments); n > 0 {
		prev := l.comments[n-1]
		if prev.Type == kind && l.lastEnd <= pos.Offset && isBlank(l.src[l.lastEnd:pos.Offset]) {
			prev.Value += "\n" + text
			l.lastEnd = l.pos
			return
		}
	}
	l.comments = append(l.comments, &ast.Comment{Type: kind, Value: text, Pos: pos})
	l.lastEnd = l.pos
}

// isBlank reports whether gap holds only whitespace. Blank lines inside a run
// of line comments are dropped so the run prints back as a single comment.
func isBlank(gap []byte) bool {
	for _, b := range gap {
		switch b {
		case '\n', ' ', '\t', '\r':
		default:
			return false
		}
	}
	return true
}

// normalizeBlockComment strips the " * " gutter and blank first and last
// lines from the text between /* and */.
func normalizeBlockComment(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "*" {
			line = ""
		} else if strings.HasPrefix(line, "* ") {
			line = strings.TrimSpace(line[2:])
		}
		lines[i] = line
	}
	for len(lines) > 0 && lines[0] == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func (l *Lexer) token(kind TokenKind, literal string, pos Position) Token {
	return Token{Kind: kind, Literal: literal, Pos: pos, End: l.pos}
}

func (l *Lexer) scan() (Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return Token{}, err
	}

	if l.atEnd() {
		return l.token(TokenEOF, "", l.currentPos()), nil
	}

	pos := l.currentPos()
	ch := l.peek()

	// Single-character tokens
	switch ch {
	case '{':
		l.advance()
		return l.token(TokenLBrace, "{", pos), nil
	case '}':
		l.advance()
		return l.token(TokenRBrace, "}", pos), nil
	case '[':
		l.advance()
		return l.token(TokenLBracket, "[", pos), nil
	case ']':
		l.advance()
		return l.token(TokenRBracket, "]", pos), nil
	case '=':
		l.advance()
		return l.token(TokenEquals, "=", pos), nil
	case ',':
		l.advance()
		return l.token(TokenComma, ",", pos), nil
	case ';':
		l.advance()
		return l.token(TokenSemicolon, ";", pos), nil
	case ':':
		l.advance()
		return l.token(TokenColon, ":", pos), nil
	case '+':
		l.advance()
		return l.token(TokenPlus, "+", pos), nil
	case '"':
		return l.scanString()
	case '<':
		return l.scanHTML()
	case '-':
		switch next := l.peekAt(1); {
		case next == '>':
			l.advance()
			l.advance()
			return l.token(TokenDirected, "->", pos), nil
		case next == '-':
			l.advance()
			l.advance()
			return l.token(TokenUndirected, "--", pos), nil
		case isDigit(next) || (next == '.' && isDigit(l.peekAt(2))):
			return l.scanNumeral()
		}
		l.advance()
		return Token{}, &LexError{ParseError{
			Message: "unexpected character '-'",
			Pos:     pos,
		}}
	case '.':
		if isDigit(l.peekAt(1)) {
			return l.scanNumeral()
		}
	}

	if isDigit(ch) {
		return l.scanNumeral()
	}

	if isIdentStart(ch) {
		return l.scanIdentifier()
	}

	l.advance()
	return Token{}, &LexError{ParseError{
		Message: fmt.Sprintf("unexpected character %q", ch),
		Pos:     pos,
	}}
}

// scanString reads a double-quoted string. Only \" is decoded and a
// backslash-newline pair is dropped as a line continuation; every other
// backslash sequence is kept verbatim so escString sequences such as \l and
// \N reach the layout engine untouched.
func (l *Lexer) scanString() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening "

	var sb strings.Builder
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated string",
				Pos:     pos,
			}}
		}
		ch := l.advance()
		if ch == '"' {
			return l.token(TokenString, sb.String(), pos), nil
		}
		if ch == '\\' {
			switch l.peek() {
			case '"':
				l.advance()
				sb.WriteByte('"')
			case '\n':
				l.advance()
			case '\r':
				l.advance()
				if l.peek() == '\n' {
					l.advance()
				}
			case '\\':
				l.advance()
				sb.WriteString(`\\`)
			default:
				sb.WriteByte('\\')
			}
			continue
		}
		sb.WriteByte(ch)
	}
}

// scanHTML reads an HTML string. Angle brackets nest, so the string ends at
// the '>' that balances the opening '<'.
func (l *Lexer) scanHTML() (Token, error) {
	pos := l.currentPos()
	l.advance() // consume opening <
	start := l.pos
	depth := 1
	for {
		if l.atEnd() {
			return Token{}, &LexError{ParseError{
				Message: "unterminated HTML string",
				Pos:     pos,
			}}
		}
		switch l.peek() {
		case '<':
			depth++
		case '>':
			depth--
			if depth == 0 {
				literal := string(l.src[start:l.pos])
				l.advance() // consume closing >
				return l.token(TokenHTML, literal, pos), nil
			}
		}
		l.advance()
	}
}

func (l *Lexer) scanNumeral() (Token, error) {
	pos := l.currentPos()
	start := l.pos

	// Optional negative sign
	if l.peek() == '-' {
		l.advance()
	}

	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}

	if l.peek() == '.' {
		l.advance() // consume '.'
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	return l.token(TokenNumeral, string(l.src[start:l.pos]), pos), nil
}

func (l *Lexer) scanIdentifier() (Token, error) {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peek()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])

	if kind, ok := keywords[strings.ToLower(literal)]; ok {
		return l.token(kind, literal, pos), nil
	}

	return l.token(TokenIdentifier, literal, pos), nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch >= 0x80
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

// lexerState is a snapshot used by the parser to backtrack after trying an
// alternative parse.
type lexerState struct {
	lex      Lexer
	comments []ast.Comment
}

func (l *Lexer) save() lexerState {
	s := lexerState{lex: *l}
	for _, c := range l.comments {
		s.comments = append(s.comments, *c)
	}
	return s
}

func (l *Lexer) restore(s lexerState) {
	*l = s.lex
	l.comments = nil
	for i := range s.comments {
		c := s.comments[i]
		l.comments = append(l.comments, &c)
	}
}
