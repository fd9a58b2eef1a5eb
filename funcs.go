package shuntingyard

import (
	"errors"
	"math"
	"math/big"
	"sort"

	"github.com/zephyrtronium/bigfloat"
)

// bigPrec is the precision in bits of the big.Float computations behind exp,
// ln, log, and PrecisePow. It leaves guard bits beyond float64's 53.
const bigPrec = 64

var globalfuncs = map[string]UnaryFunc{
	"exp": bigfunc(bigfloat.Exp, math.Exp, expDomain),
	"ln":  bigfunc(bigfloat.Log, math.Log, logDomain),
	"log": bigfunc(func(out, in *big.Float) *big.Float {
		out = bigfloat.Log(out, in)
		ten := new(big.Float).SetPrec(out.Prec()).SetFloat64(10)
		ten = bigfloat.Log(ten, ten)
		return out.Quo(out, ten)
	}, math.Log10, logDomain),
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,

	"cos":   math.Cos,
	"sin":   math.Sin,
	"tan":   math.Tan,
	"acos":  math.Acos,
	"asin":  math.Asin,
	"atan":  math.Atan,
	"cosh":  math.Cosh,
	"sinh":  math.Sinh,
	"tanh":  math.Tanh,
	"acosh": math.Acosh,
	"asinh": math.Asinh,
	"atanh": math.Atanh,
}

// FuncNames returns the names of the functions added by Funcs in sorted
// order.
func FuncNames() []string {
	names := make([]string, 0, len(globalfuncs))
	for k := range globalfuncs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Funcs adds the standard named functions at precedence FuncPrec, along with
// the constants pi and e. Existing constants named pi or e are kept.
//
// The functions are exp, ln, log (base 10), sqrt, abs, floor, ceil, and the
// circular and hyperbolic functions and their inverses, e.g. sin, acos, and
// tanh.
func Funcs() ContextOption {
	g := make(optgroup, 0, len(globalfuncs)+2)
	for _, name := range FuncNames() {
		g = append(g, unopt{name, FuncPrec, globalfuncs[name]})
	}
	g = append(g,
		constopt{name: "pi", val: math.Pi, weak: true},
		constopt{name: "e", val: math.E, weak: true},
	)
	return g
}

// Comparisons adds the binary operators > < >= <= == and != at precedence
// CmpPrec. Each produces 1 if the comparison holds and 0 otherwise.
func Comparisons() ContextOption {
	return optgroup{
		Binary(">", CmpPrec, func(l, r float64) float64 { return truth(l > r) }),
		Binary("<", CmpPrec, func(l, r float64) float64 { return truth(l < r) }),
		Binary(">=", CmpPrec, func(l, r float64) float64 { return truth(l >= r) }),
		Binary("<=", CmpPrec, func(l, r float64) float64 { return truth(l <= r) }),
		Binary("==", CmpPrec, func(l, r float64) float64 { return truth(l == r) }),
		Binary("!=", CmpPrec, func(l, r float64) float64 { return truth(l != r) }),
	}
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// PrecisePow replaces ^ with a power function that computes positive bases in
// extended precision before rounding, which gives correctly rounded results
// in more cases than math.Pow. Other bases use math.Pow.
func PrecisePow() ContextOption {
	return Binary("^", PowPrec, precisePow)
}

func precisePow(base, exp float64) float64 {
	// Results that are not normal finite values don't benefit from the extra
	// precision, and their arguments can overflow big.Float exponents.
	r := math.Pow(base, exp)
	if !(base > 0) || r == 0 || math.IsInf(r, 0) || math.IsNaN(r) {
		return r
	}
	x := new(big.Float).SetPrec(bigPrec).SetFloat64(base)
	y := new(big.Float).SetPrec(bigPrec).SetFloat64(exp)
	z := new(big.Float).SetPrec(bigPrec)
	// Pow does not always store its result in z, e.g. for exponents 0 and 1.
	z = bigfloat.Pow(z, x, y)
	r, _ = z.Float64()
	return r
}

// expDomain holds for arguments whose exponential is neither 0 nor +Inf as a
// float64, with some margin.
func expDomain(x float64) bool {
	return math.Abs(x) <= 746
}

func logDomain(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// bigfunc wraps a big.Float function into a UnaryFunc. The result is the
// value f returns, which need not be out. Inputs outside domain
// use std instead, since big.Float cannot represent NaN and bigfloat panics
// or overflows on some extreme arguments.
func bigfunc(f func(out, in *big.Float) *big.Float, std UnaryFunc, domain func(float64) bool) UnaryFunc {
	return func(x float64) (r float64) {
		if !domain(x) {
			return std(x)
		}
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			err, ok := p.(error)
			if !ok || !errors.As(err, &big.ErrNaN{}) {
				panic(p)
			}
			r = math.NaN()
		}()
		in := new(big.Float).SetPrec(bigPrec).SetFloat64(x)
		out := new(big.Float).SetPrec(bigPrec)
		out = f(out, in)
		r, _ = out.Float64()
		return r
	}
}
