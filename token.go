package rpn

import (
	"strings"
)

// Token is a lexical token of an infix or postfix expression.
type Token struct {
	// Kind is the token's class.
	Kind Kind
	// Text is the token as it appeared in the source.
	Text string
	// Pos is the 1-based rune column of the first rune of the token.
	Pos int
}

func (t Token) String() string {
	return t.Text
}

// Kind is the class of a token.
type Kind int

const (
	KindNone Kind = iota
	// KindNum is a decimal integer literal.
	KindNum
	// KindOp is one of the binary operators in Operators.
	KindOp
	// KindFunc is a function name, e.g. sin.
	KindFunc
	// KindConst is a named constant, e.g. pi.
	KindConst
	// KindIdent is an alphabetic run not yet classified, or an unrecognized
	// postfix field.
	KindIdent
	// KindOpen is (.
	KindOpen
	// KindClose is ).
	KindClose
)

//go:generate go mod edit -require=golang.org/x/tools@v0.1.0
//go:generate go mod download
//go:generate go run golang.org/x/tools/cmd/stringer -type=Kind -trimprefix=Kind
//go:generate go mod tidy

// Operators contains the runes which are considered to be binary operators.
const Operators = "+-*/^"

// Name identifies a function or constant that expressions may mention.
type Name int

const (
	NameUnknown Name = iota
	NameSin
	NamePi
)

var names = [...]struct {
	text string
	kind Kind
}{
	NameUnknown: {"", KindNone},
	NameSin:     {"sin", KindFunc},
	NamePi:      {"pi", KindConst},
}

// LookupName returns the Name spelled s, or NameUnknown.
func LookupName(s string) Name {
	for i, n := range names {
		if i != int(NameUnknown) && n.text == s {
			return Name(i)
		}
	}
	return NameUnknown
}

// Kind returns KindFunc for functions, KindConst for constants, and KindNone
// for NameUnknown.
func (n Name) Kind() Kind {
	if n < 0 || int(n) >= len(names) {
		return KindNone
	}
	return names[n].kind
}

func (n Name) String() string {
	if n <= NameUnknown || int(n) >= len(names) {
		return "unknown"
	}
	return names[n].text
}

// Assoc is the associativity of an operator.
type Assoc int8

const (
	Left Assoc = iota
	Right
)

// funcPrec is the precedence of every function. It is higher than that of any
// operator.
const funcPrec = 4

// Precedence returns the precedence and associativity of an operator or
// function. Unknown symbols have precedence 0.
func Precedence(sym string) (int, Assoc) {
	switch sym {
	case "+", "-":
		return 1, Left
	case "*", "/":
		return 2, Left
	case "^":
		return 3, Right
	}
	if LookupName(sym).Kind() == KindFunc {
		return funcPrec, Left
	}
	return 0, Left
}

// Join renders a token sequence as its texts separated by single spaces. The
// result of joining a postfix sequence can be evaluated with EvalString.
func Join(toks []Token) string {
	var b strings.Builder
	for i, tok := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}
