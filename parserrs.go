package arith

import "strconv"

// TokenError indicates a token where the start of a subexpression was
// expected. It implements InputError.
type TokenError struct {
	// Col is the position of the unexpected token.
	Col int
	// Text is the token text, or "" if the token was EOF.
	Text string
}

func (err *TokenError) Error() string {
	if err.Text == "" {
		return errpos(err.Col, "expected number or ( at end of input")
	}
	return errpos(err.Col, "unexpected token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// BracketError indicates an open parenthesis that was never closed. It
// implements InputError.
type BracketError struct {
	// Col is the position where the closing parenthesis was expected.
	Col int
	// Got is the token found instead, or "" for EOF.
	Got string
}

func (err *BracketError) Error() string {
	if err.Got == "" {
		return errpos(err.Col, "open ( with no close )")
	}
	return errpos(err.Col, "expected ) but found "+strconv.Quote(err.Got))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// TrailingInputError indicates tokens left over after a complete expression.
// It implements InputError.
type TrailingInputError struct {
	// Col is the position of the first leftover token.
	Col int
	// Text is the leftover token text.
	Text string
}

func (err *TrailingInputError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Text)+" after expression")
}

func (err *TrailingInputError) Pos() int {
	return err.Col
}

// EmptyExpressionError indicates input with no expression in it.
type EmptyExpressionError struct {
	// Col is the position of the EOF that ended the empty input.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return "column " + strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based column of the input that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*TrailingInputError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
)
