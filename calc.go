package shuntingyard

import "log/slog"

// Calculator evaluates infix expressions against a Context. A Calculator has
// no mutable state, so it is safe to use concurrently.
type Calculator struct {
	ctx        *Context
	logHandler slog.Handler
	logger     *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogHandler sends the Calculator's debug logs to h. Without this option,
// a Calculator logs nothing.
func WithLogHandler(h slog.Handler) Option {
	return func(c *Calculator) {
		c.logHandler = h
	}
}

// New creates a Calculator that evaluates expressions with ctx. If ctx is
// nil, the Calculator uses SimpleContext().
func New(ctx *Context, opts ...Option) *Calculator {
	if ctx == nil {
		ctx = SimpleContext()
	}
	c := Calculator{ctx: ctx, logHandler: slog.DiscardHandler}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logHandler == nil {
		c.logHandler = slog.DiscardHandler
	}
	c.logger = slog.New(c.logHandler.WithGroup("Calculator"))
	return &c
}

// NewWithConstants is a shortcut to create a Calculator for ordinary
// arithmetic with named constants.
func NewWithConstants(consts map[string]float64, opts ...Option) *Calculator {
	return New(SimpleContext(Consts(consts)), opts...)
}

// Context returns the context the Calculator uses.
func (c *Calculator) Context() *Context {
	return c.ctx
}

// Convert converts an expression to reverse Polish notation without
// evaluating it.
func (c *Calculator) Convert(expr string) (*RPN, error) {
	rpn, err := c.ctx.Convert(expr)
	if err != nil {
		c.logger.Debug("conversion failed", "expr", expr, "error", err)
		return nil, err
	}
	c.logger.Debug("converted", "expr", expr, "rpn", rpn.String())
	return rpn, nil
}

// Calculate evaluates an expression. All errors implement InputError and
// match one of the package's sentinel errors.
func (c *Calculator) Calculate(expr string) (float64, error) {
	rpn, err := c.Convert(expr)
	if err != nil {
		return 0, err
	}
	r, err := rpn.Eval()
	if err != nil {
		c.logger.Debug("evaluation failed", "expr", expr, "error", err)
		return 0, err
	}
	return r, nil
}

// Calculate is a shortcut to evaluate an expression with SimpleContext(opts...).
func Calculate(expr string, opts ...ContextOption) (float64, error) {
	return New(SimpleContext(opts...)).Calculate(expr)
}
