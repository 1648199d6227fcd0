package rpn

import (
	"errors"
	"math"
	"math/big"
	"strconv"
)

// machine is the operand stack of one evaluation. run checks stack depths
// before calling binary or unary, so implementations may assume they have
// enough operands.
type machine interface {
	depth() int
	// num pushes the value of a number token.
	num(tok Token) error
	// pi pushes π.
	pi()
	// binary pops b, then a, and pushes a op b.
	binary(op Token) error
	// sin replaces the top of the stack with its sine.
	sin(tok Token) error
}

// run executes a postfix token sequence on m.
func run(toks []Token, m machine) error {
	for _, tok := range toks {
		switch tok.Kind {
		case KindNum:
			if err := m.num(tok); err != nil {
				return err
			}
		case KindOp:
			if len(tok.Text) != 1 {
				return &TokenError{Col: tok.Pos, Token: tok.Text}
			}
			if d := m.depth(); d < 2 {
				return &OperandError{Col: tok.Pos, Token: tok.Text, Need: 2, Have: d}
			}
			if err := m.binary(tok); err != nil {
				return err
			}
		case KindFunc, KindConst:
			switch LookupName(tok.Text) {
			case NamePi:
				m.pi()
			case NameSin:
				if d := m.depth(); d < 1 {
					return &OperandError{Col: tok.Pos, Token: tok.Text, Need: 1, Have: d}
				}
				if err := m.sin(tok); err != nil {
					return err
				}
			default:
				return &TokenError{Col: tok.Pos, Token: tok.Text}
			}
		default:
			return &TokenError{Col: tok.Pos, Token: tok.Text}
		}
	}
	if d := m.depth(); d != 1 {
		return &MalformedError{Depth: d}
	}
	return nil
}

// floatStack evaluates in float64.
type floatStack []float64

func (s *floatStack) depth() int {
	return len(*s)
}

func (s *floatStack) push(x float64) {
	*s = append(*s, x)
}

func (s *floatStack) pop() float64 {
	r := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return r
}

func (s *floatStack) num(tok Token) error {
	x, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return &TokenError{Col: tok.Pos, Token: tok.Text}
	}
	// Out of range literals parse as ±Inf.
	s.push(x)
	return nil
}

func (s *floatStack) pi() {
	s.push(math.Pi)
}

func (s *floatStack) binary(op Token) error {
	b := s.pop()
	a := s.pop()
	var r float64
	switch op.Text {
	case "+":
		r = a + b
	case "-":
		r = a - b
	case "*":
		r = a * b
	case "/":
		if b == 0 {
			return &ZeroDivisionError{Col: op.Pos}
		}
		r = a / b
	case "^":
		r = math.Pow(a, b)
	default:
		return &TokenError{Col: op.Pos, Token: op.Text}
	}
	s.push(r)
	return nil
}

func (s *floatStack) sin(tok Token) error {
	r, err := sin64(s.pop())
	if err != nil {
		return err
	}
	s.push(r)
	return nil
}

// Eval evaluates a postfix token sequence in float64 arithmetic. Each operator
// pops its right operand, then its left, and pushes the result; sin replaces
// the top of the stack with its sine in radians, and pi pushes π.
//
// The errors are *OperandError if an operator or function lacks operands,
// *ZeroDivisionError for a division by zero, *TokenError for a token that is
// not a number, operator, function, or constant, and *MalformedError unless
// exactly one value remains at the end. In particular, an empty sequence is
// malformed.
func Eval(toks []Token) (float64, error) {
	s := make(floatStack, 0, len(toks))
	if err := run(toks, &s); err != nil {
		return 0, err
	}
	return s[0], nil
}

// EvalString is a shortcut to split a postfix expression with Fields and
// evaluate it.
func EvalString(src string) (float64, error) {
	return Eval(Fields(src))
}

// Context is a configuration for evaluating postfix expressions to arbitrary
// precision. A Context holds no evaluation state, so it is safe to use
// concurrently.
type Context struct {
	prec uint
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations in bits. A precision of 0 selects
// the default.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// DefaultPrec is the precision of a context when no Prec option is given.
const DefaultPrec = 64

// NewContext creates a new evaluation context. If no precision is given, the
// default is DefaultPrec.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: DefaultPrec}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			if opt != 0 {
				ctx.prec = uint(opt)
			}
		default:
			panic("rpn: unknown option type")
		}
	}
	return &ctx
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates a postfix token sequence to the context's precision. It
// reports the same errors as the package-level Eval. Additionally, operations
// whose result would be NaN, such as subtracting infinities or raising a
// negative number to a non-integer power, return a DomainError.
func (ctx *Context) Eval(toks []Token) (*big.Float, error) {
	s := bigStack{stack: make([]*big.Float, 0, len(toks)), prec: ctx.prec}
	if err := run(toks, &s); err != nil {
		return nil, err
	}
	return s.stack[0], nil
}

// EvalString is a shortcut to split a postfix expression with Fields and
// evaluate it.
func (ctx *Context) EvalString(src string) (*big.Float, error) {
	return ctx.Eval(Fields(src))
}

// bigStack evaluates in *big.Float.
type bigStack struct {
	stack []*big.Float
	prec  uint
}

func (s *bigStack) depth() int {
	return len(s.stack)
}

// push adds a new value to the stack and returns it for setting.
func (s *bigStack) push() *big.Float {
	r := new(big.Float).SetPrec(s.prec)
	s.stack = append(s.stack, r)
	return r
}

// pop removes the top from the stack and returns it.
func (s *bigStack) pop() *big.Float {
	r := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (s *bigStack) top() *big.Float {
	return s.stack[len(s.stack)-1]
}

func (s *bigStack) num(tok Token) error {
	if _, _, err := s.push().Parse(tok.Text, 10); err != nil {
		s.pop()
		return &TokenError{Col: tok.Pos, Token: tok.Text}
	}
	return nil
}

func (s *bigStack) pi() {
	bigPi(s.push())
}

func (s *bigStack) binary(op Token) (err error) {
	r := s.pop()
	l := s.top()
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		if _, ok := p.(big.ErrNaN); !ok {
			panic(p)
		}
		// Both operands share the fault.
		err = DomainError{Func: op.Text}
	}()
	switch op.Text {
	case "+":
		l.Add(l, r)
	case "-":
		l.Sub(l, r)
	case "*":
		l.Mul(l, r)
	case "/":
		if r.Sign() == 0 {
			return &ZeroDivisionError{Col: op.Pos}
		}
		l.Quo(l, r)
	case "^":
		return bigPow(l, l, r)
	default:
		return &TokenError{Col: op.Pos, Token: op.Text}
	}
	return nil
}

func (s *bigStack) sin(tok Token) error {
	x := s.top()
	return bigSin(x, new(big.Float).Copy(x))
}
