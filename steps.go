package shuntingyard

import (
	"strconv"
	"strings"
)

// BinaryFunc is an operator of two operands.
type BinaryFunc func(left, right float64) float64

// UnaryFunc is an operator or named function of one operand.
type UnaryFunc func(x float64) float64

// step is one evaluation step of an expression in reverse Polish notation.
type step struct {
	kind stepKind

	// val is the value pushed by a scalar step.
	val float64
	bin BinaryFunc
	un  UnaryFunc

	// name is the operator name, or for scalars the constant name or literal
	// text. It is only used for formatting and errors.
	name string
	// col is the position of the token that produced the step.
	col int
}

type stepKind int8

const (
	// stepNone is the kind of the zero step, which is invalid to apply.
	stepNone stepKind = iota

	stepScalar // push val
	stepBinary // pop right, pop left, push bin(left, right)
	stepUnary  // pop x, pop and discard the dummy, push un(x)
)

func (k stepKind) String() string {
	switch k {
	case stepNone:
		return "None"
	case stepScalar:
		return "Scalar"
	case stepBinary:
		return "Binary"
	case stepUnary:
		return "Unary"
	default:
		return "stepKind(" + strconv.Itoa(int(k)) + ")"
	}
}

func scalar(val float64, name string, col int) step {
	if name == "" {
		name = strconv.FormatFloat(val, 'g', -1, 64)
	}
	return step{kind: stepScalar, val: val, name: name, col: col}
}

// apply evaluates the step against the value stack and returns the new stack.
func (s *step) apply(stack []float64) ([]float64, error) {
	switch s.kind {
	case stepScalar:
		return append(stack, s.val), nil
	case stepBinary:
		if len(stack) < 2 {
			return stack, &StackError{Col: s.col, Op: s.name, Depth: len(stack)}
		}
		r := stack[len(stack)-1]
		l := stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		return append(stack, s.bin(l, r)), nil
	case stepUnary:
		// The converter pushes a dummy operand before every unary operator so
		// that unary and binary steps both take two values. The dummy is
		// always the second value popped.
		if len(stack) < 2 {
			return stack, &StackError{Col: s.col, Op: s.name, Depth: len(stack)}
		}
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		return append(stack, s.un(x)), nil
	default:
		panic("shuntingyard: invalid step kind " + s.kind.String())
	}
}

// RPN is an expression converted to reverse Polish notation. It is bound to
// the operator functions and constant values of the Context that produced it.
type RPN struct {
	steps []step
}

// Len returns the number of steps in the expression.
func (r *RPN) Len() int {
	return len(r.steps)
}

// String formats the expression in postfix notation with steps separated by
// spaces. Constants appear by name. Dummy operands for unary operators appear
// as 0.
func (r *RPN) String() string {
	var b strings.Builder
	for i, s := range r.steps {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.name)
	}
	return b.String()
}

// Eval evaluates the expression. It fails with a *StackError if any operator
// lacks operands or if the expression does not leave exactly one value.
func (r *RPN) Eval() (float64, error) {
	stack := make([]float64, 0, len(r.steps))
	var err error
	for i := range r.steps {
		stack, err = r.steps[i].apply(stack)
		if err != nil {
			return 0, err
		}
	}
	if len(stack) != 1 {
		return 0, &StackError{Depth: len(stack)}
	}
	return stack[0], nil
}
