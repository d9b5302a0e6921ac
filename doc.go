// Package arith evaluates infix arithmetic expressions.
//
// An expression is numeric literals (integer or decimal) combined with the
// binary operators + - * / % ^, unary negation, and parenthesized grouping.
// ^ is exponentiation and binds right: "2^3^2" is 2^(3^2). Evaluation is
// double-precision floating point throughout.
//
// The pipeline is three pure stages: Tokenize turns text into tokens, Parse
// turns tokens into a syntax tree, and Evaluate reduces the tree to a number.
// Interpret runs all three; Validate stops after parsing. Each stage reports
// the first error it finds as a typed value carrying the offending column,
// and Interpret tags it with the stage it came from.
//
// The parser and evaluator recurse once per nesting level, so the practical
// depth limit for parentheses and chained negation is the goroutine stack.
package arith
