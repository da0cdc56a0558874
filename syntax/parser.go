package syntax

// Parse builds the syntax tree for a token sequence produced by
// Tokenize.
//
// Grammar, lowest to highest precedence:
//
//	union  := concat ('|' concat)*
//	concat := star*
//	star   := atom '*'?
//	atom   := literal | '(' union ')'
//
// The grammar is LL(1): the parser consumes tokens strictly left to
// right with one token of lookahead and never backtracks. An empty
// concat (empty pattern, empty alternative, empty group) yields an
// OpEmpty node.
func Parse(tokens []Token) (*Node, error) {
	p := &parser{tokens: tokens}
	root, err := p.parseUnion()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, &Error{Pos: tok.Pos, Err: ErrUnexpectedToken}
	}
	return root, nil
}

// ParsePattern tokenizes and parses a pattern in one step.
func ParsePattern(pattern string) (*Node, error) {
	tokens, err := Tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

type parser struct {
	tokens []Token
	pos    int
}

// peek returns the current token without consuming it.
// Tokenize guarantees a trailing EOF token, so peek is always valid
// while parsing well-formed token sequences.
func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

// next consumes and returns the current token.
func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseUnion() (*Node, error) {
	left, err := p.parseConcat()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind == TokenUnion {
		p.next()
		right, err := p.parseConcat()
		if err != nil {
			return nil, err
		}
		left = &Node{Op: OpUnion, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseConcat() (*Node, error) {
	// A star here has no atom to repeat: "*a", "a|*b", "(*x)".
	if tok := p.peek(); tok.Kind == TokenStar {
		return nil, &Error{Pos: tok.Pos, Err: ErrDanglingStar}
	}

	var left *Node
	for {
		tok := p.peek()
		if !tok.isLiteral() && tok.Kind != TokenLParen {
			break
		}
		node, err := p.parseStar()
		if err != nil {
			return nil, err
		}
		if left == nil {
			left = node
		} else {
			left = &Node{Op: OpConcat, Left: left, Right: node}
		}
	}

	if left == nil {
		// Empty alternative or group: matches the empty string.
		left = &Node{Op: OpEmpty}
	}
	return left, nil
}

func (p *parser) parseStar() (*Node, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokenStar {
		p.next()
		atom = &Node{Op: OpStar, Left: atom}
	}
	return atom, nil
}

func (p *parser) parseAtom() (*Node, error) {
	tok := p.next()
	switch {
	case tok.isLiteral():
		return &Node{Op: OpLiteral, Char: tok.Char}, nil
	case tok.Kind == TokenLParen:
		inner, err := p.parseUnion()
		if err != nil {
			return nil, err
		}
		switch closing := p.peek(); closing.Kind {
		case TokenRParen:
			p.next()
			return inner, nil
		case TokenEOF:
			return nil, &Error{Pos: tok.Pos, Err: ErrUnclosedGroup}
		default:
			return nil, &Error{Pos: closing.Pos, Err: ErrUnexpectedToken}
		}
	default:
		return nil, &Error{Pos: tok.Pos, Err: ErrUnexpectedToken}
	}
}
