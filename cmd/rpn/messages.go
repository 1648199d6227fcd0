package main

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zephyrtronium/rpn"
)

// supported lists the languages with message translations. The first is the
// fallback.
var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

// russian maps English format strings to their translations.
var russian = map[string]string{
	"error: %s":                                         "Ошибка: %s",
	"unknown character %q at column %d":                 "Неизвестный символ: %q (позиция %d)",
	"unknown identifier %q at column %d":                "Неизвестный идентификатор: %q (позиция %d)",
	"unmatched bracket %s at column %d":                 "Непарная скобка %s (позиция %d)",
	"not enough operands for operator %s":               "Недостаточно операндов для операции %s",
	"not enough operands for function %s":               "Недостаточно операндов для функции %s",
	"division by zero":                                  "Деление на ноль",
	"unknown token: %s":                                 "Неизвестный токен: %s",
	"malformed expression: %d values left on the stack": "Некорректное выражение: в стеке остается не один элемент (%d)",
	"%v is outside the domain of %s":                    "%v вне области определения %s",
	"result of %s is undefined":                         "Результат %s не определен",
	"precision (%d) must not be negative":               "точность (%d) не может быть отрицательной",
	"unknown mode %q":                                   "неизвестный режим %q",
}

func init() {
	for k, v := range russian {
		if err := message.SetString(language.Russian, k, v); err != nil {
			panic(err)
		}
	}
}

// printer creates a message printer for the language named by the flag value
// or, if that is empty, by the value of $LANG.
func printer(flag, env string) *message.Printer {
	return message.NewPrinter(pickLang(flag, env))
}

// pickLang chooses the supported language closest to a locale name like
// ru_RU.UTF-8.
func pickLang(flag, env string) language.Tag {
	s := flag
	if s == "" {
		s = env
	}
	if k := strings.IndexAny(s, ".@"); k >= 0 {
		s = s[:k]
	}
	s = strings.ReplaceAll(s, "_", "-")
	switch s {
	case "", "C", "POSIX":
		return supported[0]
	}
	t, err := language.Parse(s)
	if err != nil {
		return supported[0]
	}
	_, i, conf := matcher.Match(t)
	if conf == language.No {
		return supported[0]
	}
	return supported[i]
}

// describe renders an error from package rpn in the printer's language.
func describe(p *message.Printer, err error) string {
	var (
		ce *rpn.CharError
		ie *rpn.IdentError
		be *rpn.BracketError
		oe *rpn.OperandError
		ze *rpn.ZeroDivisionError
		te *rpn.TokenError
		me *rpn.MalformedError
		de rpn.DomainError
	)
	switch {
	case errors.As(err, &ce):
		return p.Sprintf("unknown character %q at column %d", ce.Char, ce.Col)
	case errors.As(err, &ie):
		return p.Sprintf("unknown identifier %q at column %d", ie.Name, ie.Col)
	case errors.As(err, &be):
		return p.Sprintf("unmatched bracket %s at column %d", be.Bracket, be.Col)
	case errors.As(err, &oe):
		if oe.Need == 1 {
			return p.Sprintf("not enough operands for function %s", oe.Token)
		}
		return p.Sprintf("not enough operands for operator %s", oe.Token)
	case errors.As(err, &ze):
		return p.Sprintf("division by zero")
	case errors.As(err, &te):
		return p.Sprintf("unknown token: %s", te.Token)
	case errors.As(err, &me):
		return p.Sprintf("malformed expression: %d values left on the stack", me.Depth)
	case errors.As(err, &de):
		if de.X == nil {
			return p.Sprintf("result of %s is undefined", de.Func)
		}
		return p.Sprintf("%v is outside the domain of %s", de.X, de.Func)
	}
	return err.Error()
}
