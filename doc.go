// Package shuntingyard implements a configurable floating-point calculator
// for infix expressions.
//
// Expressions are scanned into numbers, words, and operators, reordered into
// reverse Polish notation with the shunting-yard algorithm, and evaluated on
// a stack. Which operators exist, how tightly they bind, and which names are
// constants all come from a Context, which is immutable once built and may be
// shared between any number of Calculators and goroutines.
//
// Operators of equal precedence always associate left to right. In
// particular, "2^3^2" is (2^3)^2 = 64.
//
// Unary operators and named functions such as sin are evaluated with the
// "unary trick": the converter emits a dummy 0 operand before the operator so
// that every operator step consumes two values. A unary step discards the
// dummy and applies its function to the real operand. A symbol registered as
// both binary and unary, like -, is always evaluated with its binary function,
// so a leading -x computes 0-x.
package shuntingyard
