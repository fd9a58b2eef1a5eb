package shuntingyard

import (
	"errors"
	"strconv"
)

// Sentinel errors for classifying failures with errors.Is. Every error
// returned by this package matches exactly one of them.
var (
	// ErrUnresolvedIdentifier matches a word that is neither a unary
	// operator nor a constant.
	ErrUnresolvedIdentifier = errors.New("unresolved identifier")
	// ErrUnknownOperator matches an operator with no function or no
	// precedence in the context.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrUnrecognizedUnary matches an operator in unary position that is
	// not registered as a unary operator.
	ErrUnrecognizedUnary = errors.New("unrecognized unary operator")
	// ErrMalformedExpression matches an expression that does not reduce to
	// exactly one value.
	ErrMalformedExpression = errors.New("malformed expression")
	// ErrUnmatchedParenthesis matches a parenthesis without a partner.
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
)

// NameError is an error indicating a word that names neither a unary
// operator nor a constant. It implements InputError.
type NameError struct {
	// Col is the position of the word.
	Col int
	// Name is the unresolved word.
	Name string
}

func (err *NameError) Error() string {
	return errpos(err.Col, "unable to find constant or function called "+strconv.Quote(err.Name))
}

func (err *NameError) Pos() int {
	return err.Col
}

func (err *NameError) Unwrap() error {
	return ErrUnresolvedIdentifier
}

// OperatorError is an error indicating an operator token that the context
// does not define. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the converter expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	if err.Unary {
		return errpos(err.Col, "unrecognized unary operator or function "+strconv.Quote(err.Operator))
	}
	return errpos(err.Col, "unknown operator or function "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	if err.Unary {
		return ErrUnrecognizedUnary
	}
	return ErrUnknownOperator
}

// BracketError is an error indicating a parenthesis with no partner. It
// implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Paren is the unmatched parenthesis.
	Paren string
}

func (err *BracketError) Error() string {
	if err.Paren == "(" {
		return errpos(err.Col, "open bracket ( with no close bracket")
	}
	return errpos(err.Col, "close bracket "+err.Paren+" with no open bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrUnmatchedParenthesis
}

// StackError is an error indicating that evaluation ran out of operands or
// did not finish with exactly one value. It implements InputError.
type StackError struct {
	// Col is the position of the operator that lacked operands, or 0 when the
	// final stack was the problem.
	Col int
	// Op is the operator that lacked operands, or the empty string when the
	// final stack was the problem.
	Op string
	// Depth is the number of values on the stack when the error occurred.
	Depth int
}

func (err *StackError) Error() string {
	if err.Op != "" {
		return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Op))
	}
	if err.Depth == 0 {
		return "no expression"
	}
	return "expression leaves " + strconv.Itoa(err.Depth) + " values instead of one"
}

func (err *StackError) Pos() int {
	return err.Col
}

func (err *StackError) Unwrap() error {
	return ErrMalformedExpression
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the scanner was reading.
	Text string
	// Kind is the type of token the scanner was reading.
	Kind string
	// Col is the position of the token.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) Unwrap() error {
	return ErrMalformedExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the 1-based rune column of the token that caused the
	// error, or 0 if the error concerns the expression as a whole.
	Pos() int
}

var (
	_ InputError = (*NameError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*LexError)(nil)
)
