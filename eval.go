package arith

import (
	"math"
	"strconv"
)

// Evaluate reduces a syntax tree to its numeric value with a post-order
// walk: children first, then the operator.
//
// Division and modulo by exactly zero are errors rather than silent Inf or
// NaN. Modulo follows math.Mod, truncated division with the result taking
// the dividend's sign. Exponentiation follows math.Pow, except that a NaN
// result from non-NaN operands (a negative base with a non-integer
// exponent, where the mathematical result is complex) is a *DomainError.
func Evaluate(n Node) (float64, error) {
	switch n := n.(type) {
	case NumberLit:
		return n.Value, nil
	case *Neg:
		v, err := Evaluate(n.Operand)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case *BinaryExpr:
		l, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		return apply(n.Op, l, r)
	default:
		panic("arith: invalid node")
	}
}

func apply(op TokenKind, l, r float64) (float64, error) {
	switch op {
	case Plus:
		return l + r, nil
	case Minus:
		return l - r, nil
	case Star:
		return l * r, nil
	case Slash:
		if r == 0 {
			return 0, &DivideByZeroError{Op: "/"}
		}
		return l / r, nil
	case Percent:
		if r == 0 {
			return 0, &DivideByZeroError{Op: "%"}
		}
		return math.Mod(l, r), nil
	case Caret:
		v := math.Pow(l, r)
		if math.IsNaN(v) && !math.IsNaN(l) && !math.IsNaN(r) {
			return 0, &DomainError{Base: l, Exponent: r}
		}
		return v, nil
	default:
		panic("arith: invalid binary operator " + op.String())
	}
}

// DivideByZeroError indicates a division or modulo with a zero right
// operand.
type DivideByZeroError struct {
	// Op is the operator, "/" or "%".
	Op string
}

func (err *DivideByZeroError) Error() string {
	if err.Op == "%" {
		return "modulo by zero"
	}
	return "division by zero"
}

// DomainError indicates an exponentiation whose mathematical result is not
// a real number.
type DomainError struct {
	// Base and Exponent are the evaluated operands of ^.
	Base     float64
	Exponent float64
}

func (err *DomainError) Error() string {
	b := strconv.FormatFloat(err.Base, 'g', -1, 64)
	e := strconv.FormatFloat(err.Exponent, 'g', -1, 64)
	return "non-real result: " + b + "^" + e
}
