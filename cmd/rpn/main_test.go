package main

import (
	"bytes"
	"io/ioutil"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
	gc "gopkg.in/check.v1"
)

func TestPackage(t *testing.T) {
	gc.TestingT(t)
}

type cmdSuite struct{}

var _ = gc.Suite(&cmdSuite{})

// cmd runs the command with the given stdin and returns its outputs.
func cmd(c *gc.C, stdin string, args ...string) (stdout, stderr string, status int) {
	var out, errs bytes.Buffer
	status = run(append([]string{"-lang=en"}, args...), strings.NewReader(stdin), &out, &errs)
	return out.String(), errs.String(), status
}

func (*cmdSuite) TestEvalStdin(c *gc.C) {
	out, errs, status := cmd(c, "3 4 +\n")
	c.Assert(status, gc.Equals, 0)
	c.Assert(errs, gc.Equals, "")
	c.Assert(out, gc.Equals, "7.0\n")
}

func (*cmdSuite) TestEvalArgs(c *gc.C) {
	out, _, status := cmd(c, "", "--", "-5 3 +", "pi 2 / sin", "10 5 2 / -")
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "-2.0\n1.0\n7.5\n")
}

func (*cmdSuite) TestEmptyInput(c *gc.C) {
	for _, in := range []string{"", "\n", "  \t\n  "} {
		out, errs, status := cmd(c, in)
		c.Check(status, gc.Equals, 0)
		c.Check(out, gc.Equals, "")
		c.Check(errs, gc.Equals, "")
	}
}

func (*cmdSuite) TestConvert(c *gc.C) {
	out, _, status := cmd(c, "3 + 4 * 2 / (1 - 5) ^ 2 ^ 3\n", "-mode=convert")
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "3 4 2 * 1 5 - 2 3 ^ ^ / +\n")

	out, _, status = cmd(c, "", "-mode=convert", "sin(pi/2)", "2^3^2")
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "pi 2 / sin\n2 3 2 ^ ^\n")
}

func (*cmdSuite) TestCalc(c *gc.C) {
	out, _, status := cmd(c, "", "-mode=calc", "3 + 4 * 2 / (1 - 5) ^ 2 ^ 3", "2-3-2")
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "3.0001220703125\n-3.0\n")

	out, _, status = cmd(c, "", "-mode=calc", "3+4)")
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "7.0\n")
}

func (*cmdSuite) TestLines(c *gc.C) {
	out, _, status := cmd(c, "3 4 +\n\n10 2 /\n", "-n")
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "7.0\n5.0\n")
}

func (*cmdSuite) TestLinesKeepGoing(c *gc.C) {
	out, errs, status := cmd(c, "3 +\n1 1 +\n", "-n")
	c.Assert(status, gc.Equals, 1)
	c.Assert(out, gc.Equals, "2.0\n")
	c.Assert(errs, gc.Equals, "error: not enough operands for operator +\n")
}

func (*cmdSuite) TestInFile(c *gc.C) {
	name := filepath.Join(c.MkDir(), "expr")
	err := ioutil.WriteFile(name, []byte("2 10 ^\n"), 0o600)
	c.Assert(err, gc.IsNil)
	out, _, status := cmd(c, "", "-in", name)
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "1024.0\n")

	_, errs, status := cmd(c, "", "-in", filepath.Join(c.MkDir(), "missing"))
	c.Assert(status, gc.Equals, 1)
	c.Assert(errs, gc.Not(gc.Equals), "")
}

func (*cmdSuite) TestFormat(c *gc.C) {
	out, _, status := cmd(c, "", "-fmt=%.3f", "pi")
	c.Assert(status, gc.Equals, 0)
	c.Assert(out, gc.Equals, "3.142\n")
}

func (*cmdSuite) TestPrecision(c *gc.C) {
	out, _, status := cmd(c, "", "-p=200", "pi")
	c.Assert(status, gc.Equals, 0)
	c.Assert(strings.HasPrefix(out, "3.14159265358979323846264338327950288"), gc.Equals, true, gc.Commentf("output %q", out))

	out, _, status = cmd(c, "", "-p=100", "-mode=calc", "2^100")
	c.Assert(status, gc.Equals, 0)
	c.Assert(strings.HasPrefix(out, "1.2676506002282294014"), gc.Equals, true, gc.Commentf("output %q", out))
	c.Assert(strings.HasSuffix(out, "e+30\n"), gc.Equals, true, gc.Commentf("output %q", out))

	out, _, status = cmd(c, "", "-p=64", "-2 1 ^", "2 10000 ^")
	c.Assert(status, gc.Equals, 0)
	c.Assert(strings.HasPrefix(out, "-2\n1.9950631168807583"), gc.Equals, true, gc.Commentf("output %q", out))
	c.Assert(strings.HasSuffix(out, "e+3010\n"), gc.Equals, true, gc.Commentf("output %q", out))
}

func (*cmdSuite) TestErrors(c *gc.C) {
	cases := []struct {
		args []string
		msg  string
	}{
		{[]string{"10 0 /"}, "division by zero"},
		{[]string{"3 +"}, "not enough operands for operator +"},
		{[]string{"sin"}, "not enough operands for function sin"},
		{[]string{"3 4 cos"}, "unknown token: cos"},
		{[]string{"3 4 + 5"}, "malformed expression: 2 values left on the stack"},
		{[]string{"-mode=convert", "sin(90)/cos(90)"}, `unknown identifier "cos" at column 9`},
		{[]string{"-mode=convert", "1.5"}, `unknown character '.' at column 2`},
		{[]string{"-mode=calc", "-strict", "(1"}, "unmatched bracket ( at column 1"},
		{[]string{"-mode=calc", "(1"}, "unknown token: ("},
		{[]string{"-p=53", "0 -1 ^ 0 -1 ^ -"}, "result of - is undefined"},
		{[]string{"-p=53", "-8 1 3 / ^"}, "-8 is outside the domain of ^"},
		{[]string{"-mode=calc", "1 / (2 - 2)"}, "division by zero"},
	}
	for _, t := range cases {
		out, errs, status := cmd(c, "", t.args...)
		c.Check(status, gc.Equals, 1, gc.Commentf("args %q", t.args))
		c.Check(out, gc.Equals, "")
		c.Check(errs, gc.Equals, "error: "+t.msg+"\n")
	}
}

func (*cmdSuite) TestRussian(c *gc.C) {
	var out, errs bytes.Buffer
	status := run([]string{"-lang=ru_RU.UTF-8", "10 0 /"}, strings.NewReader(""), &out, &errs)
	c.Assert(status, gc.Equals, 1)
	c.Assert(errs.String(), gc.Equals, "Ошибка: Деление на ноль\n")

	errs.Reset()
	status = run([]string{"-lang=ru", "3 4 + 5"}, strings.NewReader(""), &out, &errs)
	c.Assert(status, gc.Equals, 1)
	c.Assert(errs.String(), gc.Equals, "Ошибка: Некорректное выражение: в стеке остается не один элемент (2)\n")
}

func (*cmdSuite) TestBadFlags(c *gc.C) {
	_, errs, status := cmd(c, "", "-mode=fly", "1")
	c.Assert(status, gc.Equals, 2)
	c.Assert(errs, gc.Equals, "unknown mode \"fly\"\n")

	_, _, status = cmd(c, "", "-p=-1", "1")
	c.Assert(status, gc.Equals, 2)

	_, _, status = cmd(c, "", "-nosuchflag")
	c.Assert(status, gc.Equals, 2)
}

func (*cmdSuite) TestRepr(c *gc.C) {
	cases := []struct {
		f float64
		s string
	}{
		{7, "7.0"},
		{-2, "-2.0"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{7.5, "7.5"},
		{-30.072164948453608, "-30.072164948453608"},
		{1e16, "1e+16"},
		{123456789012345, "123456789012345.0"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "nan"},
	}
	for _, t := range cases {
		c.Check(repr(t.f), gc.Equals, t.s)
	}
}

func (*cmdSuite) TestPickLang(c *gc.C) {
	cases := []struct {
		flag, env string
		want      language.Tag
	}{
		{"", "", language.English},
		{"", "C", language.English},
		{"", "POSIX", language.English},
		{"", "ru_RU.UTF-8", language.Russian},
		{"", "en_US.UTF-8", language.English},
		{"en", "ru_RU.UTF-8", language.English},
		{"ru", "", language.Russian},
		{"de_DE", "", language.English},
		{"!!", "", language.English},
	}
	for _, t := range cases {
		c.Check(pickLang(t.flag, t.env), gc.Equals, t.want, gc.Commentf("flag %q env %q", t.flag, t.env))
	}
}
