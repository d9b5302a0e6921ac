package arith

import "strconv"

// TokenKind classifies a token.
type TokenKind int8

const (
	tokenNone TokenKind = iota
	// EOF terminates every token sequence produced by Tokenize.
	EOF
	// Number is an integer or decimal literal.
	Number
	Plus
	Minus
	Star
	Slash
	Percent
	Caret
	LParen
	RParen
)

var kindnames = [...]string{
	tokenNone: "None",
	EOF:       "EOF",
	Number:    "Number",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	Percent:   "Percent",
	Caret:     "Caret",
	LParen:    "LParen",
	RParen:    "RParen",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// Token is a classified fragment of input text. Pos is the 1-based rune
// column of the token's first character; for EOF it is one past the input.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + strconv.Quote(t.Text) + "@" + strconv.Itoa(t.Pos)
}
