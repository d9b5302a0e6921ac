package arith

import (
	"strconv"
	"strings"
)

// Node is a node in the abstract syntax tree of an expression. It is one of
// NumberLit, Neg, or BinaryExpr. Nodes are immutable after parsing; each
// node exclusively owns its children.
type Node interface {
	// String renders the subtree as a fully parenthesized expression.
	String() string

	node()
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Value float64
}

// Neg is a unary negation.
type Neg struct {
	Operand Node
}

// BinaryExpr applies a binary operator to two operands. Op is one of Plus,
// Minus, Star, Slash, Percent, or Caret.
type BinaryExpr struct {
	Op    TokenKind
	Left  Node
	Right Node
}

func (NumberLit) node()   {}
func (*Neg) node()        {}
func (*BinaryExpr) node() {}

func (n NumberLit) String() string {
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (n *Neg) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *BinaryExpr) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

// opText maps a binary operator kind to its source form.
func opText(op TokenKind) string {
	switch op {
	case Plus:
		return "+"
	case Minus:
		return "-"
	case Star:
		return "*"
	case Slash:
		return "/"
	case Percent:
		return "%"
	case Caret:
		return "^"
	default:
		panic("arith: invalid binary operator " + op.String())
	}
}

func nodefmt(n Node, b *strings.Builder) {
	switch n := n.(type) {
	case NumberLit:
		b.WriteString(n.String())
	case *Neg:
		n.fmt(b)
	case *BinaryExpr:
		n.fmt(b)
	default:
		panic("arith: invalid node after writing " + b.String())
	}
}

func (n *Neg) fmt(b *strings.Builder) {
	b.WriteString("(-")
	nodefmt(n.Operand, b)
	b.WriteByte(')')
}

func (n *BinaryExpr) fmt(b *strings.Builder) {
	b.WriteByte('(')
	nodefmt(n.Left, b)
	b.WriteByte(' ')
	b.WriteString(opText(n.Op))
	b.WriteByte(' ')
	nodefmt(n.Right, b)
	b.WriteByte(')')
}
