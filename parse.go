package arith

import "strconv"

// The grammar, precedence low to high:
//
//	expr    = term {('+' | '-') term}       left-assoc
//	term    = power {('*' | '/' | '%') power}  left-assoc
//	power   = unary ['^' power]             right-assoc
//	unary   = '-' unary | primary
//	primary = Number | '(' expr ')'

// Parse consumes a token sequence produced by Tokenize and returns the root
// of its syntax tree. Each grammar level is one method: left-associative
// levels loop, folding each operator into a new node with the parsed side on
// the left; power recurses into itself for its right operand so the
// rightmost ^ binds first.
func Parse(toks []Token) (Node, error) {
	p := parser{toks: toks}
	if tok := p.peek(); tok.Kind == EOF {
		return nil, &EmptyExpressionError{Col: tok.Pos}
	}
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != EOF {
		return nil, &TrailingInputError{Col: tok.Pos, Text: tok.Text}
	}
	return n, nil
}

type parser struct {
	toks []Token
	i    int
}

func (p *parser) peek() Token {
	if p.i < len(p.toks) {
		return p.toks[p.i]
	}
	// Tokenize always terminates the sequence with EOF; synthesize one to
	// tolerate token slices built by hand.
	pos := 1
	if n := len(p.toks); n > 0 {
		last := p.toks[n-1]
		pos = last.Pos + len(last.Text)
	}
	return Token{Kind: EOF, Pos: pos}
}

func (p *parser) next() Token {
	tok := p.peek()
	if p.i < len(p.toks) {
		p.i++
	}
	return tok
}

func (p *parser) parseExpr() (Node, error) {
	n, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != Plus && op.Kind != Minus {
			return n, nil
		}
		p.next()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		n = &BinaryExpr{Op: op.Kind, Left: n, Right: rhs}
	}
}

func (p *parser) parseTerm() (Node, error) {
	n, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	for {
		op := p.peek()
		if op.Kind != Star && op.Kind != Slash && op.Kind != Percent {
			return n, nil
		}
		p.next()
		rhs, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		n = &BinaryExpr{Op: op.Kind, Left: n, Right: rhs}
	}
}

func (p *parser) parsePower() (Node, error) {
	n, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != Caret {
		return n, nil
	}
	p.next()
	rhs, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return &BinaryExpr{Op: Caret, Left: n, Right: rhs}, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.peek().Kind != Minus {
		return p.parsePrimary()
	}
	p.next()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Neg{Operand: operand}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	tok := p.peek()
	switch tok.Kind {
	case Number:
		p.next()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			// The lexer only emits literals ParseFloat accepts.
			panic("arith: invalid number " + strconv.Quote(tok.Text) + " (" + err.Error() + ")")
		}
		return NumberLit{Value: v}, nil
	case LParen:
		p.next()
		n, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		end := p.peek()
		if end.Kind != RParen {
			return nil, &BracketError{Col: end.Pos, Got: end.Text}
		}
		p.next()
		return n, nil
	default:
		return nil, &TokenError{Col: tok.Pos, Text: tok.Text}
	}
}
