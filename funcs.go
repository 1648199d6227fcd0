package rpn

import (
	"math"
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// guardBits is the number of extra bits of precision used for intermediate
// results of arbitrary-precision functions.
const guardBits = 64

// sin64 computes sin(x) for x in radians.
func sin64(x float64) (float64, error) {
	if math.IsInf(x, 0) {
		return 0, DomainError{X: big.NewFloat(x), Func: "sin"}
	}
	return math.Sin(x), nil
}

// bigPi sets z to π to the precision of z and returns z.
func bigPi(z *big.Float) *big.Float {
	return bigfloat.Pi(z)
}

// bigPow sets z to x**y to the precision of z. A negative base is allowed only
// with an integer exponent.
func bigPow(z, x, y *big.Float) error {
	switch {
	case y.Sign() == 0:
		z.SetInt64(1)
	case x.IsInf() || y.IsInf():
		// Every such case is 0, 1, or infinite, so float64 is exact enough.
		fx, _ := x.Float64()
		fy, _ := y.Float64()
		r := math.Pow(fx, fy)
		if math.IsNaN(r) {
			return DomainError{X: new(big.Float).Copy(x), Func: "^"}
		}
		z.SetFloat64(r)
	case x.Sign() == 0:
		if y.Sign() < 0 {
			z.SetInf(false)
		} else {
			z.SetInt64(0)
		}
	case x.Sign() < 0:
		if !y.IsInt() {
			return DomainError{X: new(big.Float).Copy(x), Func: "^"}
		}
		odd := isOdd(y)
		powAt(z, new(big.Float).Abs(x), y)
		if odd {
			z.Neg(z)
		}
	default:
		powAt(z, x, y)
	}
	return nil
}

// powAt sets z to x**y for positive x, computed with guard bits and rounded
// to the precision of z. z may alias x or y.
func powAt(z, x, y *big.Float) {
	// bigfloat.Pow does not always store into its first argument.
	r := bigfloat.Pow(new(big.Float).SetPrec(z.Prec()+guardBits), x, y)
	z.Set(r)
}

// isOdd returns whether the integer y is odd.
func isOdd(y *big.Float) bool {
	i, _ := y.Int(nil)
	return i.Bit(0) == 1
}

// bigSin sets z to sin(x) for x in radians, to the precision of z. The
// argument is reduced modulo 2π, then the Taylor series is summed at the
// working precision.
func bigSin(z, x *big.Float) error {
	if x.IsInf() {
		return DomainError{X: new(big.Float).Copy(x), Func: "sin"}
	}
	prec := z.Prec()
	if x.Sign() == 0 {
		z.Set(x)
		return nil
	}
	w := prec + guardBits
	if exp := x.MantExp(nil); exp > 0 {
		// Reduction loses about exp bits.
		w += uint(exp)
	}
	r := new(big.Float).SetPrec(w).Set(x)
	pi := bigPi(new(big.Float).SetPrec(w))
	if new(big.Float).Abs(r).Cmp(pi) > 0 {
		tau := new(big.Float).SetPrec(w).Add(pi, pi)
		k, _ := new(big.Float).SetPrec(w).Quo(r, tau).Int(nil)
		m := new(big.Float).SetPrec(w).SetInt(k)
		r.Sub(r, m.Mul(m, tau))
		switch {
		case r.Cmp(pi) > 0:
			r.Sub(r, tau)
		case r.Cmp(new(big.Float).Neg(pi)) < 0:
			r.Add(r, tau)
		}
	}
	sum := new(big.Float).SetPrec(w).Set(r)
	term := new(big.Float).SetPrec(w).Set(r)
	r2 := new(big.Float).SetPrec(w).Mul(r, r)
	r2.Neg(r2)
	d := new(big.Float).SetPrec(w)
	for n := int64(1); ; n++ {
		term.Mul(term, r2)
		term.Quo(term, d.SetInt64(2*n*(2*n+1)))
		if term.Sign() == 0 || term.MantExp(nil) < sum.MantExp(nil)-int(w) {
			break
		}
		sum.Add(sum, term)
	}
	z.Set(sum)
	return nil
}
