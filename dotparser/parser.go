package dotparser

import (
	"fmt"

	"github.com/martinemde/dotgraph/ast"
)

// Parse parses DOT source text and returns the document AST.
// Returns a *SyntaxError or *LexError on failure.
func Parse(src []byte) (*ast.Dot, error) {
	p := &parser{lex: NewLexer(src)}
	return p.parseDot()
}

// ParseString is Parse for string input.
func ParseString(src string) (*ast.Dot, error) {
	return Parse([]byte(src))
}

type parser struct {
	lex *Lexer

	// lastEnd is the end offset of the last consumed token; stmtEnd is
	// lastEnd as of the end of the previous statement. Comments that start
	// before stmtEnd were written inside a statement and are dropped.
	lastEnd int
	stmtEnd int
}

func (p *parser) peek() (Token, error) {
	return p.lex.Peek()
}

func (p *parser) next() (Token, error) {
	tok, err := p.lex.Next()
	if err != nil {
		return Token{}, err
	}
	p.lastEnd = tok.End
	return tok, nil
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}
	if tok.Kind != kind {
		return Token{}, unexpected(tok, kind.String())
	}
	return tok, nil
}

func (p *parser) consumeOptional(kind TokenKind) (bool, error) {
	tok, err := p.peek()
	if err != nil {
		return false, err
	}
	if tok.Kind != kind {
		return false, nil
	}
	_, _ = p.next()
	return true, nil
}

// takeComments returns the comments that precede the next statement.
func (p *parser) takeComments() []*ast.Comment {
	var kept []*ast.Comment
	for _, c := range p.lex.TakeComments() {
		if c.Pos.Offset >= p.stmtEnd {
			kept = append(kept, c)
		}
	}
	return kept
}

func (p *parser) endStatement() {
	p.stmtEnd = p.lastEnd
}

func (p *parser) parseDot() (*ast.Dot, error) {
	dot := &ast.Dot{Pos: Position{Line: 1, Column: 1}}
	graphs := 0

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		for _, c := range p.takeComments() {
			dot.Body = append(dot.Body, c)
		}
		if tok.Kind == TokenEOF {
			if graphs == 0 {
				return nil, unexpected(tok, "'graph' or 'digraph'")
			}
			return dot, nil
		}

		g, err := p.parseGraph()
		if err != nil {
			return nil, err
		}
		dot.Body = append(dot.Body, g)
		graphs++
		p.endStatement()
	}
}

func (p *parser) parseGraph() (*ast.Graph, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	g := &ast.Graph{Pos: tok.Pos}

	if tok.Kind == TokenStrict {
		g.Strict = true
		if tok, err = p.next(); err != nil {
			return nil, err
		}
	}

	switch tok.Kind {
	case TokenDigraph:
		g.Directed = true
	case TokenGraph:
		g.Directed = false
	default:
		return nil, unexpected(tok, "'graph' or 'digraph'")
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	if next.Kind.IsID() {
		if g.ID, err = p.parseID(); err != nil {
			return nil, err
		}
	}

	if g.Body, err = p.parseBody(g.Directed); err != nil {
		return nil, err
	}
	return g, nil
}

// parseBody parses '{' stmt_list '}'.
func (p *parser) parseBody(directed bool) ([]ast.Statement, error) {
	if _, err := p.expect(TokenLBrace); err != nil {
		return nil, err
	}
	p.endStatement()

	var body []ast.Statement
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		for _, c := range p.takeComments() {
			body = append(body, c)
		}

		switch tok.Kind {
		case TokenRBrace:
			_, _ = p.next()
			return body, nil
		case TokenEOF:
			return nil, unexpected(tok, "'}'")
		case TokenSemicolon:
			_, _ = p.next()
			p.endStatement()
			continue
		}

		stmt, err := p.parseStatement(directed)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)

		if _, err := p.consumeOptional(TokenSemicolon); err != nil {
			return nil, err
		}
		p.endStatement()
	}
}

func (p *parser) parseStatement(directed bool) (ast.Statement, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case tok.Kind == TokenGraph || tok.Kind == TokenNode || tok.Kind == TokenEdge:
		return p.parseAttributesStmt()

	case tok.Kind == TokenSubgraph:
		return p.parseSubgraphStmt(directed)

	case tok.Kind == TokenLBrace:
		// Either a {a b} endpoint group starting an edge, or a bare subgraph.
		saved, savedEnd := p.lex.save(), p.lastEnd
		if group, err := p.parseNodeRefGroup(); err == nil {
			if op, err := p.peek(); err == nil && op.Kind.IsEdgeOp() {
				return p.parseEdgeRHS(group, directed)
			}
		}
		p.lex.restore(saved)
		p.lastEnd = savedEnd
		return p.parseSubgraphStmt(directed)

	case tok.Kind.IsID():
		return p.parseIDStatement(directed)

	default:
		return nil, unexpected(tok, "statement")
	}
}

// parseAttributesStmt parses (graph|node|edge) attr_list. A keyword directly
// followed by ';' or '}' is a defaults statement with an empty list, the form
// the renderer writes for node [].
func (p *parser) parseAttributesStmt() (*ast.Attributes, error) {
	tok, _ := p.next()

	var kind ast.AttributesKind
	switch tok.Kind {
	case TokenGraph:
		kind = ast.AttributesGraph
	case TokenNode:
		kind = ast.AttributesNode
	default:
		kind = ast.AttributesEdge
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch next.Kind {
	case TokenSemicolon, TokenRBrace:
		return &ast.Attributes{Type: kind, Pos: tok.Pos}, nil
	case TokenLBracket:
	default:
		return nil, unexpected(next, "'[' or ';'")
	}

	body, err := p.parseAttrLists()
	if err != nil {
		return nil, err
	}
	return &ast.Attributes{Type: kind, Body: body, Pos: tok.Pos}, nil
}

// parseSubgraphStmt parses [subgraph [ID]] '{' stmt_list '}'. A subgraph
// used as an edge endpoint is rejected.
func (p *parser) parseSubgraphStmt(directed bool) (*ast.Subgraph, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	sub := &ast.Subgraph{Pos: tok.Pos}

	if tok.Kind == TokenSubgraph {
		_, _ = p.next()
		next, err := p.peek()
		if err != nil {
			return nil, err
		}
		if next.Kind.IsID() {
			if sub.ID, err = p.parseID(); err != nil {
				return nil, err
			}
		}
	}

	if sub.Body, err = p.parseBody(directed); err != nil {
		return nil, err
	}

	op, err := p.peek()
	if err != nil {
		return nil, err
	}
	if op.Kind.IsEdgeOp() {
		return nil, &SyntaxError{ParseError: ParseError{
			Message: "subgraphs cannot be used as edge endpoints; use a {a b} group",
			Pos:     op.Pos,
		}}
	}
	return sub, nil
}

// parseIDStatement handles an ID at the start of a statement: an attribute
// assignment, an edge, or a node.
func (p *parser) parseIDStatement(directed bool) (ast.Statement, error) {
	startTok, _ := p.peek()
	id, err := p.parseID()
	if err != nil {
		return nil, err
	}

	next, err := p.peek()
	if err != nil {
		return nil, err
	}

	if next.Kind == TokenEquals {
		_, _ = p.next()
		value, err := p.parseID()
		if err != nil {
			return nil, err
		}
		return &ast.Attribute{Key: id, Value: value, Pos: startTok.Pos}, nil
	}

	ref, err := p.parsePort(id, startTok.Pos)
	if err != nil {
		return nil, err
	}

	if next, err = p.peek(); err != nil {
		return nil, err
	}
	if next.Kind.IsEdgeOp() {
		return p.parseEdgeRHS(ref, directed)
	}

	node := &ast.NodeStmt{ID: id, Port: ref.Port, Compass: ref.Compass, Pos: startTok.Pos}
	if next.Kind == TokenLBracket {
		if node.Body, err = p.parseAttrLists(); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// parseEdgeRHS parses (edgeop target)+ [attr_list] after the first target.
func (p *parser) parseEdgeRHS(first ast.EdgeTarget, directed bool) (*ast.Edge, error) {
	edge := &ast.Edge{Targets: []ast.EdgeTarget{first}, Pos: first.Position()}

	for {
		op, err := p.peek()
		if err != nil {
			return nil, err
		}
		if !op.Kind.IsEdgeOp() {
			break
		}
		if err := checkEdgeOp(op, directed); err != nil {
			return nil, err
		}
		_, _ = p.next()

		target, err := p.parseEdgeTarget()
		if err != nil {
			return nil, err
		}
		edge.Targets = append(edge.Targets, target)
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == TokenLBracket {
		if edge.Body, err = p.parseAttrLists(); err != nil {
			return nil, err
		}
	}
	return edge, nil
}

func checkEdgeOp(op Token, directed bool) error {
	switch {
	case op.Kind == TokenDirected && !directed:
		return &SyntaxError{
			ParseError: ParseError{Message: "'->' is only valid in a digraph", Pos: op.Pos},
			Expected:   "'--'",
			Got:        "'->'",
		}
	case op.Kind == TokenUndirected && directed:
		return &SyntaxError{
			ParseError: ParseError{Message: "'--' is only valid in an undirected graph", Pos: op.Pos},
			Expected:   "'->'",
			Got:        "'--'",
		}
	}
	return nil
}

func (p *parser) parseEdgeTarget() (ast.EdgeTarget, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Kind == TokenLBrace:
		return p.parseNodeRefGroup()
	case tok.Kind == TokenSubgraph:
		return nil, &SyntaxError{ParseError: ParseError{
			Message: "subgraphs cannot be used as edge endpoints; use a {a b} group",
			Pos:     tok.Pos,
		}}
	case tok.Kind.IsID():
		return p.parseNodeRef()
	default:
		return nil, unexpected(tok, "node ID or '{'")
	}
}

// parseNodeRefGroup parses '{' node_id ([,;] node_id)* '}'.
func (p *parser) parseNodeRefGroup() (*ast.NodeRefGroup, error) {
	open, err := p.expect(TokenLBrace)
	if err != nil {
		return nil, err
	}
	group := &ast.NodeRefGroup{Pos: open.Pos}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenRBrace:
			_, _ = p.next()
			if len(group.Body) == 0 {
				return nil, unexpected(tok, "node ID")
			}
			return group, nil
		case tok.Kind == TokenComma || tok.Kind == TokenSemicolon:
			_, _ = p.next()
		case tok.Kind.IsID():
			ref, err := p.parseNodeRef()
			if err != nil {
				return nil, err
			}
			group.Body = append(group.Body, ref)
		default:
			return nil, unexpected(tok, "node ID or '}'")
		}
	}
}

func (p *parser) parseNodeRef() (*ast.NodeRef, error) {
	tok, _ := p.peek()
	id, err := p.parseID()
	if err != nil {
		return nil, err
	}
	return p.parsePort(id, tok.Pos)
}

// parsePort parses the optional ':' port [':' compass] suffix of a node ID.
func (p *parser) parsePort(id *ast.Literal, pos Position) (*ast.NodeRef, error) {
	ref := &ast.NodeRef{ID: id, Pos: pos}

	ok, err := p.consumeOptional(TokenColon)
	if err != nil || !ok {
		return ref, err
	}
	if ref.Port, err = p.parseID(); err != nil {
		return nil, err
	}

	if ok, err = p.consumeOptional(TokenColon); err != nil || !ok {
		return ref, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	compass, valid := ast.ParseCompass(tok.Literal)
	if tok.Kind != TokenIdentifier || !valid {
		return nil, unexpected(tok, "compass point (n, ne, e, se, s, sw, w, nw, c, _)")
	}
	ref.Compass = compass
	return ref, nil
}

// parseAttrLists parses one or more '[' a_list ']' blocks.
func (p *parser) parseAttrLists() ([]*ast.Attribute, error) {
	var attrs []*ast.Attribute
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != TokenLBracket {
			return attrs, nil
		}
		block, err := p.parseAttrBlock()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, block...)
	}
}

func (p *parser) parseAttrBlock() ([]*ast.Attribute, error) {
	if _, err := p.expect(TokenLBracket); err != nil {
		return nil, err
	}

	var attrs []*ast.Attribute
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.Kind == TokenRBracket:
			_, _ = p.next()
			return attrs, nil
		case tok.Kind == TokenComma || tok.Kind == TokenSemicolon:
			if len(attrs) == 0 {
				return nil, unexpected(tok, "attribute key")
			}
			_, _ = p.next()
		case tok.Kind.IsID():
			attr, err := p.parseAttr()
			if err != nil {
				return nil, err
			}
			attrs = append(attrs, attr)
		default:
			return nil, unexpected(tok, "attribute key or ']'")
		}
	}
}

func (p *parser) parseAttr() (*ast.Attribute, error) {
	tok, _ := p.peek()
	key, err := p.parseID()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenEquals); err != nil {
		return nil, err
	}

	value, err := p.parseID()
	if err != nil {
		return nil, err
	}

	return &ast.Attribute{Key: key, Value: value, Pos: tok.Pos}, nil
}

// parseID parses an ID, joining "a" + "b" concatenations of quoted strings.
func (p *parser) parseID() (*ast.Literal, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	lit, err := ParseLiteral(tok)
	if err != nil {
		return nil, err
	}
	if lit.Quoted != ast.DoubleQuoted {
		return lit, nil
	}

	for {
		ok, err := p.consumeOptional(TokenPlus)
		if err != nil {
			return nil, err
		}
		if !ok {
			return lit, nil
		}
		part, err := p.next()
		if err != nil {
			return nil, err
		}
		if part.Kind != TokenString {
			return nil, &SyntaxError{
				ParseError: ParseError{
					Message: "only double-quoted strings can be concatenated with '+'",
					Pos:     part.Pos,
				},
				Expected: TokenString.String(),
				Got:      fmt.Sprintf("%s (%q)", part.Kind, part.Literal),
			}
		}
		lit.Value += part.Literal
	}
}
