package arith

import "strconv"

// Tokenize scans src into tokens in left-to-right order. The returned
// sequence always ends with an EOF token; empty or blank input yields just
// EOF. The first rune that cannot begin or continue a token aborts the scan
// with a *LexError.
func Tokenize(src string) ([]Token, error) {
	l := lexer{src: []rune(src)}
	toks := make([]Token, 0, 8)
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
	}
}

type lexer struct {
	src []rune
	i   int
}

func (l *lexer) next() (Token, error) {
	for l.i < len(l.src) && isSpace(l.src[l.i]) {
		l.i++
	}
	if l.i >= len(l.src) {
		return Token{Kind: EOF, Pos: l.i + 1}, nil
	}
	r := l.src[l.i]
	switch {
	case isDigit(r):
		return l.scanNumber()
	case r == '+':
		return l.single(Plus), nil
	case r == '-':
		return l.single(Minus), nil
	case r == '*':
		return l.single(Star), nil
	case r == '/':
		return l.single(Slash), nil
	case r == '%':
		return l.single(Percent), nil
	case r == '^':
		return l.single(Caret), nil
	case r == '(':
		return l.single(LParen), nil
	case r == ')':
		return l.single(RParen), nil
	default:
		return Token{}, l.errorAt(l.i)
	}
}

// single emits a one-rune token of the given kind and advances past it.
func (l *lexer) single(kind TokenKind) Token {
	tok := Token{Kind: kind, Text: string(l.src[l.i]), Pos: l.i + 1}
	l.i++
	return tok
}

// scanNumber scans a maximal digit run with an optional single interior
// decimal point. A point without a digit on both sides is invalid, so ".5"
// and "3." are rejected.
func (l *lexer) scanNumber() (Token, error) {
	start := l.i
	for l.i < len(l.src) && isDigit(l.src[l.i]) {
		l.i++
	}
	if l.i < len(l.src) && l.src[l.i] == '.' {
		if l.i+1 >= len(l.src) || !isDigit(l.src[l.i+1]) {
			return Token{}, l.errorAt(l.i)
		}
		l.i++
		for l.i < len(l.src) && isDigit(l.src[l.i]) {
			l.i++
		}
	}
	return Token{Kind: Number, Text: string(l.src[start:l.i]), Pos: start + 1}, nil
}

func (l *lexer) errorAt(i int) error {
	return &LexError{Col: i + 1, Char: l.src[i]}
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// LexError indicates a rune that cannot form a token. It implements
// InputError.
type LexError struct {
	// Col is the 1-based column of the invalid rune.
	Col int
	// Char is the invalid rune.
	Char rune
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid character "+strconv.QuoteRune(err.Char))
}

func (err *LexError) Pos() int {
	return err.Col
}
