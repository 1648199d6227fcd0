package rpn

import (
	"errors"
	"io"
	"strings"
	"unicode"
)

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var operstrs = byteidcs(Operators)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	tok := Token{Pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		switch {
		case unicode.IsSpace(r):
			tok.Pos++
			continue
		case '0' <= r && r <= '9':
			l.unreadRune()
			if err := l.scan(isDigit); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = KindNum
			return tok, nil
		case unicode.IsLetter(r):
			l.unreadRune()
			if err := l.scan(unicode.IsLetter); err != nil {
				return tok, err
			}
			tok.Text = l.buf.String()
			tok.Kind = KindIdent
			return tok, nil
		case r == '(':
			tok.Text = "("
			tok.Kind = KindOpen
			return tok, nil
		case r == ')':
			tok.Text = ")"
			tok.Kind = KindClose
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.Text = operstrs[k]
				tok.Kind = KindOp
				return tok, nil
			}
			return tok, &CharError{Col: tok.Pos, Char: r}
		}
	}
}

// scan collects the maximal run of runes satisfying ok into the buffer.
func (l *lexer) scan(ok func(rune) bool) error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// next unreads the rune that decides the token kind before
				// calling scan, so we have scanned at least one rune.
				return nil
			}
			return err
		}
		if !ok(r) {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Lex scans an infix expression into tokens. Whitespace separates tokens but
// is otherwise ignored. Each of ( ) + - * / ^ is a token by itself, a maximal
// run of decimal digits is a KindNum token, and a maximal run of letters is a
// KindIdent token. Any other character results in a *CharError.
//
// A leading - is always a separate operator token; Lex never produces
// negative numbers.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

// Tokenize is a shortcut to lex a string.
func Tokenize(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

// Fields splits a postfix expression on whitespace. A field consisting of
// digits, optionally preceded by -, is a KindNum token. A single operator
// rune is KindOp, and function and constant names have their respective
// kinds. Every other field is KindIdent, which Eval rejects.
func Fields(src string) []Token {
	var toks []Token
	col, start := 1, 0
	var b strings.Builder
	flush := func() {
		if b.Len() == 0 {
			return
		}
		toks = append(toks, field(b.String(), start))
		b.Reset()
	}
	for _, r := range src {
		if unicode.IsSpace(r) {
			flush()
		} else {
			if b.Len() == 0 {
				start = col
			}
			b.WriteRune(r)
		}
		col++
	}
	flush()
	return toks
}

// field classifies a single postfix field.
func field(s string, pos int) Token {
	tok := Token{Text: s, Pos: pos}
	switch {
	case isNumber(s):
		tok.Kind = KindNum
	case len(s) == 1 && strings.Contains(Operators, s):
		tok.Kind = KindOp
	default:
		tok.Kind = LookupName(s).Kind()
		if tok.Kind == KindNone {
			tok.Kind = KindIdent
		}
	}
	return tok
}

// isNumber returns whether s is a run of decimal digits, optionally preceded
// by a minus sign.
func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) {
			return false
		}
	}
	return true
}
