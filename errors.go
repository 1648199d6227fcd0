package rpn

import (
	"math/big"
	"strconv"
)

// CharError is an error indicating a character that cannot begin any token.
// It implements InputError.
type CharError struct {
	// Col is the position of the character.
	Col int
	// Char is the offending character.
	Char rune
}

func (err *CharError) Error() string {
	return errpos(err.Col, "unknown character "+strconv.QuoteRune(err.Char))
}

func (err *CharError) Pos() int {
	return err.Col
}

// IdentError is an error indicating an alphabetic token that names no known
// function or constant. It implements InputError.
type IdentError struct {
	// Col is the position of the identifier.
	Col int
	// Name is the identifier.
	Name string
}

func (err *IdentError) Error() string {
	return errpos(err.Col, "unknown identifier "+strconv.Quote(err.Name))
}

func (err *IdentError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses, returned only
// when converting with StrictBrackets. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Bracket is the unmatched bracket, either ( or ).
	Bracket string
}

func (err *BracketError) Error() string {
	if err.Bracket == "(" {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket ) with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator or function applied when
// the stack holds fewer operands than it takes. It implements InputError.
type OperandError struct {
	// Col is the position of the operator or function.
	Col int
	// Token is the operator or function.
	Token string
	// Need is the number of operands the token takes.
	Need int
	// Have is the number of operands that were on the stack.
	Have int
}

func (err *OperandError) Error() string {
	s := "operator"
	if err.Need == 1 {
		s = "function"
	}
	return errpos(err.Col, "not enough operands for "+s+" "+strconv.Quote(err.Token)+": need "+strconv.Itoa(err.Need)+", have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ZeroDivisionError is an error indicating a division whose divisor is zero.
// It implements InputError.
type ZeroDivisionError struct {
	// Col is the position of the / operator.
	Col int
}

func (err *ZeroDivisionError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *ZeroDivisionError) Pos() int {
	return err.Col
}

// TokenError is an error indicating a postfix token that is not a number,
// operator, function, or constant. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the token text.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unknown token "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// MalformedError is an error indicating that a postfix expression did not
// reduce to exactly one value.
type MalformedError struct {
	// Depth is the number of values left on the stack.
	Depth int
}

func (err *MalformedError) Error() string {
	if err.Depth == 0 {
		return "malformed expression: no value"
	}
	return "malformed expression: " + strconv.Itoa(err.Depth) + " values left on the stack"
}

// DomainError is an error returned when an operation is applied to arguments
// outside its domain, i.e. when the result would be NaN. DomainError unwraps
// to big.ErrNaN.
type DomainError struct {
	// X is the out-of-domain argument. It is nil when the operation has no
	// single offending argument, as for Inf - Inf.
	X *big.Float
	// Func is a name identifying the operation.
	Func string
}

func (err DomainError) Error() string {
	r := "argument outside domain"
	if err.X != nil {
		r = err.X.String() + " outside domain"
	}
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err DomainError) Unwrap() error {
	return big.ErrNaN{}
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input, except MalformedError and DomainError, implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*CharError)(nil)
	_ InputError = (*IdentError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*ZeroDivisionError)(nil)
	_ InputError = (*TokenError)(nil)
)
