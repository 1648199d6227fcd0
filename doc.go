// Package rpn converts infix arithmetic expressions to postfix (Reverse Polish)
// notation and evaluates postfix expressions.
//
// Expressions contain integers, the binary operators + - * / ^, parentheses,
// the function sin, and the constant pi. "^" is exponentiation and groups to
// the right, so "2^3^2" converts to "2 3 2 ^ ^". The other operators group to
// the left. A function applies to the parenthesized expression following it:
// "sin(pi/2)" converts to "pi 2 / sin".
//
// Postfix input to EvalString is separated by whitespace. There, unlike in
// infix input, a field like "-5" is a negative number.
//
// Evaluation uses float64 by default. A Context evaluates to any precision
// using big.Float.
//
package rpn
