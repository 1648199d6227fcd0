package rpn

// ToPostfix reorders an infix token sequence, as produced by Lex, into postfix
// order using the shunting-yard algorithm. Numbers and constants are emitted
// as they are seen; operators wait on a stack until an operator of lower
// precedence, or equal precedence for left-associative operators, arrives. A
// function waits beneath its parenthesized argument and is emitted when the
// argument's close bracket is reached. Matched parentheses never appear in the
// result.
//
// Identifiers which name no function or constant result in an *IdentError, as
// do tokens of any kind Lex does not produce. By default, a ) with no matching
// ( is dropped, and a ( that is never closed is emitted at the end of the
// result, where Eval reports it as an unknown token. With the StrictBrackets
// option, either case is a *BracketError instead.
func ToPostfix(toks []Token, opts ...ConvertOption) ([]Token, error) {
	strict := false
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt.(type) {
		case strictopt:
			strict = true
		default:
			panic("rpn: unknown option type")
		}
	}
	out := make([]Token, 0, len(toks))
	var stack []Token
	for _, tok := range toks {
		switch tok.Kind {
		case KindNum, KindConst:
			out = append(out, tok)
		case KindFunc, KindOpen:
			stack = append(stack, tok)
		case KindIdent:
			switch n := LookupName(tok.Text); n.Kind() {
			case KindConst:
				tok.Kind = KindConst
				out = append(out, tok)
			case KindFunc:
				tok.Kind = KindFunc
				stack = append(stack, tok)
			default:
				return nil, &IdentError{Col: tok.Pos, Name: tok.Text}
			}
		case KindClose:
			for len(stack) > 0 && stack[len(stack)-1].Kind != KindOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				if strict {
					return nil, &BracketError{Col: tok.Pos, Bracket: ")"}
				}
				continue
			}
			stack = stack[:len(stack)-1]
			if len(stack) > 0 && stack[len(stack)-1].Kind == KindFunc {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
		case KindOp:
			for len(stack) > 0 && yields(tok, stack[len(stack)-1]) {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			return nil, &IdentError{Col: tok.Pos, Name: tok.Text}
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.Kind == KindOpen && strict {
			return nil, &BracketError{Col: top.Pos, Bracket: "("}
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}
	return out, nil
}

// yields returns whether the operator top on the stack must be emitted before
// the operator op is pushed. Brackets and functions are never popped by an
// operator.
func yields(op, top Token) bool {
	if top.Kind != KindOp {
		return false
	}
	p, assoc := Precedence(op.Text)
	q, _ := Precedence(top.Text)
	if assoc == Right {
		return q > p
	}
	return q >= p
}

// Convert is a shortcut to tokenize an infix expression and convert it to
// postfix order.
func Convert(src string, opts ...ConvertOption) ([]Token, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return ToPostfix(toks, opts...)
}

// ConvertOption is an option used when converting to postfix.
type ConvertOption interface {
	convertOption()
}

type strictopt struct{}

func (strictopt) convertOption() {}

// StrictBrackets makes unbalanced parentheses a *BracketError.
func StrictBrackets() ConvertOption {
	return strictopt{}
}
