package shuntingyard

import "math"

// Precedences of the operators in SimpleContext and the option sets.
// Operators with greater precedence bind more tightly.
const (
	// ParenPrec is the precedence of "(". It is below every real operator, so
	// an open parenthesis is only removed by its matching close parenthesis.
	ParenPrec = math.MinInt
	CmpPrec   = 1
	AddPrec   = 2
	MulPrec   = 3
	PowPrec   = 4
	// FuncPrec is the precedence of the named functions added by Funcs.
	FuncPrec = 4
)

// Context holds the operators, precedences, and constants available to
// expressions. A Context is immutable once created and is safe to use
// concurrently. Use Clone to derive a Context with more definitions.
//
// Every operator that can appear in an expression needs a precedence. Unary
// and binary operators with the same name share one precedence.
type Context struct {
	binary map[string]BinaryFunc
	unary  map[string]UnaryFunc
	prec   map[string]int
	consts map[string]float64
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	binopt struct {
		name string
		prec int
		fn   BinaryFunc
	}
	unopt struct {
		name string
		prec int
		fn   UnaryFunc
	}
	precopt struct {
		name string
		prec int
	}
	constopt struct {
		name string
		val  float64
		// weak constants do not replace existing definitions.
		weak bool
	}
	constsopt map[string]float64
	optgroup  []ContextOption
)

func (binopt) ctxOption()    {}
func (unopt) ctxOption()     {}
func (precopt) ctxOption()   {}
func (constopt) ctxOption()  {}
func (constsopt) ctxOption() {}
func (optgroup) ctxOption()  {}

// Binary defines a binary operator with the given precedence. To remove a
// binary operator, pass nil for fn; the precedence is still set.
func Binary(name string, prec int, fn func(left, right float64) float64) ContextOption {
	return binopt{name, prec, fn}
}

// Unary defines a unary operator or named function with the given
// precedence. Names made of letters and underscores are called like
// functions, e.g. "sin(x)"; other names are prefix operators. To remove a
// unary operator, pass nil for fn; the precedence is still set.
func Unary(name string, prec int, fn func(x float64) float64) ContextOption {
	return unopt{name, prec, fn}
}

// Precedence sets the precedence of an operator without changing its
// functions. The precedence of parentheses cannot be changed.
func Precedence(name string, prec int) ContextOption {
	return precopt{name, prec}
}

// Const defines a named constant.
func Const(name string, val float64) ContextOption {
	return constopt{name: name, val: val}
}

// Consts defines any number of named constants.
func Consts(vals map[string]float64) ContextOption {
	return constsopt(vals)
}

// NewContext creates a context with no operators or constants other than
// those given by opts. Parentheses are always available.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{
		binary: map[string]BinaryFunc{},
		unary:  map[string]UnaryFunc{},
		prec:   map[string]int{"(": ParenPrec},
		consts: map[string]float64{},
	}
	return ctx.Clone(opts...)
}

// SimpleContext creates a context for ordinary arithmetic: binary + - * /
// and ^ (power), unary + and -, followed by opts.
func SimpleContext(opts ...ContextOption) *Context {
	return simple.Clone(opts...)
}

var simple = NewContext(
	Binary("+", AddPrec, func(l, r float64) float64 { return l + r }),
	Binary("-", AddPrec, func(l, r float64) float64 { return l - r }),
	Binary("*", MulPrec, func(l, r float64) float64 { return l * r }),
	Binary("/", MulPrec, func(l, r float64) float64 { return l / r }),
	Binary("^", PowPrec, math.Pow),
	Unary("+", AddPrec, func(x float64) float64 { return x }),
	Unary("-", AddPrec, func(x float64) float64 { return -x }),
)

// Clone creates a copy of a context and applies options to it. Options apply
// in order, so later definitions replace earlier ones. The receiver is not
// modified.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		binary: make(map[string]BinaryFunc, len(ctx.binary)),
		unary:  make(map[string]UnaryFunc, len(ctx.unary)),
		prec:   make(map[string]int, len(ctx.prec)),
		consts: make(map[string]float64, len(ctx.consts)),
	}
	for k, v := range ctx.binary {
		n.binary[k] = v
	}
	for k, v := range ctx.unary {
		n.unary[k] = v
	}
	for k, v := range ctx.prec {
		n.prec[k] = v
	}
	for k, v := range ctx.consts {
		n.consts[k] = v
	}
	for _, opt := range opts {
		n.apply(opt)
	}
	n.prec["("] = ParenPrec
	return &n
}

func (ctx *Context) apply(opt ContextOption) {
	switch opt := opt.(type) {
	case nil: // do nothing
	case binopt:
		if opt.fn == nil {
			delete(ctx.binary, opt.name)
		} else {
			ctx.binary[opt.name] = opt.fn
		}
		ctx.prec[opt.name] = opt.prec
	case unopt:
		if opt.fn == nil {
			delete(ctx.unary, opt.name)
		} else {
			ctx.unary[opt.name] = opt.fn
		}
		ctx.prec[opt.name] = opt.prec
	case precopt:
		ctx.prec[opt.name] = opt.prec
	case constopt:
		if _, ok := ctx.consts[opt.name]; ok && opt.weak {
			return
		}
		ctx.consts[opt.name] = opt.val
	case constsopt:
		for k, v := range opt {
			ctx.consts[k] = v
		}
	case optgroup:
		for _, o := range opt {
			ctx.apply(o)
		}
	default:
		panic("shuntingyard: unknown option type")
	}
}

// Precedence returns the precedence of an operator and whether it has one.
func (ctx *Context) Precedence(name string) (int, bool) {
	p, ok := ctx.prec[name]
	return p, ok
}

// Const returns the value of a named constant and whether it is defined.
func (ctx *Context) Const(name string) (float64, bool) {
	v, ok := ctx.consts[name]
	return v, ok
}

// IsBinary returns whether name is a binary operator.
func (ctx *Context) IsBinary(name string) bool {
	return ctx.binary[name] != nil
}

// IsUnary returns whether name is a unary operator or named function.
func (ctx *Context) IsUnary(name string) bool {
	return ctx.unary[name] != nil
}

// step creates the evaluation step for an operator. Binary definitions take
// priority over unary ones.
func (ctx *Context) step(name string, col int) (step, error) {
	if fn := ctx.binary[name]; fn != nil {
		return step{kind: stepBinary, bin: fn, name: name, col: col}, nil
	}
	if fn := ctx.unary[name]; fn != nil {
		return step{kind: stepUnary, un: fn, name: name, col: col}, nil
	}
	return step{}, &OperatorError{Col: col, Operator: name}
}

// Convert converts an infix expression to reverse Polish notation.
func (ctx *Context) Convert(expr string) (*RPN, error) {
	v := rpnVisitor{ctx: ctx, lastOp: true}
	if err := Scan(expr, &v); err != nil {
		return nil, err
	}
	return v.finish()
}
