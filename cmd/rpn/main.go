// Command rpn converts infix expressions to postfix and evaluates postfix
// expressions.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/zephyrtronium/rpn"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

const (
	modeEval    = "eval"
	modeConvert = "convert"
	modeCalc    = "calc"
)

// run is the whole command. The result is the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	lg := log.New(stderr, "", 0)
	fs := flag.NewFlagSet("rpn", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		inname, verb, mode, lang string
		nl, strict               bool
		prec                     int
	)
	fs.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	fs.StringVar(&verb, "fmt", "", "result formatting string (default like 7.0, or %g with -p)")
	fs.StringVar(&mode, "mode", modeEval, "eval: evaluate postfix; convert: print infix as postfix; calc: evaluate infix")
	fs.StringVar(&lang, "lang", "", "language of error messages (default from $LANG)")
	fs.IntVar(&prec, "p", 0, "precision of calculations in bits (0 uses float64)")
	fs.BoolVar(&nl, "n", false, "evaluate separate input lines as separate expressions")
	fs.BoolVar(&strict, "strict", false, "report unbalanced brackets in infix input")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	p := printer(lang, os.Getenv("LANG"))
	if prec < 0 {
		lg.Print(p.Sprintf("precision (%d) must not be negative", prec))
		return 2
	}
	switch mode {
	case modeEval, modeConvert, modeCalc: // do nothing
	default:
		lg.Print(p.Sprintf("unknown mode %q", mode))
		return 2
	}

	var srcs []string
	f, err := infile(inname, stdin, fs.NArg() == 0)
	if err != nil {
		lg.Print(err)
		return 1
	}
	if f != nil {
		s, err := readExprs(f, nl)
		if err != nil {
			lg.Print(err)
			return 1
		}
		srcs = append(srcs, s...)
	}
	srcs = append(srcs, fs.Args()...)

	var copts []rpn.ConvertOption
	if strict {
		copts = append(copts, rpn.StrictBrackets())
	}
	var ctx *rpn.Context
	if prec > 0 {
		ctx = rpn.NewContext(rpn.Prec(uint(prec)))
		if verb == "" {
			verb = "%g"
		}
	}
	status := 0
	for _, src := range srcs {
		if strings.TrimSpace(src) == "" {
			continue
		}
		r, err := do(mode, src, copts, ctx, verb)
		if err != nil {
			fmt.Fprintln(stderr, p.Sprintf("error: %s", describe(p, err)))
			status = 1
			continue
		}
		fmt.Fprintln(stdout, r)
	}
	return status
}

// do handles one expression and returns the text to print.
func do(mode, src string, copts []rpn.ConvertOption, ctx *rpn.Context, verb string) (string, error) {
	var toks []rpn.Token
	switch mode {
	case modeConvert:
		out, err := rpn.Convert(src, copts...)
		if err != nil {
			return "", err
		}
		return rpn.Join(out), nil
	case modeCalc:
		var err error
		toks, err = rpn.Convert(src, copts...)
		if err != nil {
			return "", err
		}
	default:
		toks = rpn.Fields(src)
	}
	if ctx != nil {
		r, err := ctx.Eval(toks)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(verb, r), nil
	}
	r, err := rpn.Eval(toks)
	if err != nil {
		return "", err
	}
	if verb != "" {
		return fmt.Sprintf(verb, r), nil
	}
	return repr(r), nil
}

// repr formats a float64 with a decimal point or exponent, like 7.0, 2.5, or
// 1e+16. Exponent form is used outside [1e-4, 1e16).
func repr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if a := math.Abs(f); a != 0 && (a < 1e-4 || a >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// readExprs reads either the whole input as one expression or each line as
// its own expression.
func readExprs(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := ioutil.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return []string{string(b)}, nil
	}
	var v []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		v = append(v, sc.Text())
	}
	return v, sc.Err()
}

func infile(inname string, stdin io.Reader, std bool) (io.Reader, error) {
	switch {
	case inname != "" && inname != "-":
		b, err := ioutil.ReadFile(inname)
		if err != nil {
			return nil, err
		}
		return strings.NewReader(string(b)), nil
	case inname == "-", std:
		return stdin, nil
	}
	return nil, nil
}
