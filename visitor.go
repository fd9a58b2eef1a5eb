package shuntingyard

// pending is an operator waiting on the operator stack during conversion.
type pending struct {
	name string
	col  int
}

// rpnVisitor converts the token stream from Scan into reverse Polish notation
// using the shunting-yard algorithm.
type rpnVisitor struct {
	ctx *Context
	// ops is the operator stack.
	ops []pending
	// out is the output queue.
	out []step
	// lastOp is whether the previous token was an operator. It starts true so
	// that an expression may begin with a unary operator.
	lastOp bool
}

var _ Visitor = (*rpnVisitor)(nil)

func (v *rpnVisitor) OnDigit(value float64, col int) error {
	v.out = append(v.out, scalar(value, "", col))
	v.lastOp = false
	return nil
}

func (v *rpnVisitor) OnWord(name string, col int) error {
	if v.ctx.IsUnary(name) {
		v.dummy(col)
		if err := v.push(name, col); err != nil {
			return err
		}
		v.lastOp = true
		return nil
	}
	val, ok := v.ctx.Const(name)
	if !ok {
		return &NameError{Col: col, Name: name}
	}
	v.out = append(v.out, scalar(val, name, col))
	v.lastOp = false
	return nil
}

func (v *rpnVisitor) OnOperator(symbol string, col int) error {
	switch symbol {
	case "(":
		v.ops = append(v.ops, pending{symbol, col})
		return nil
	case ")":
		return v.close(col)
	}
	if v.lastOp {
		// -x is evaluated as 0-x, +x as 0+x, and so on.
		if !v.ctx.IsUnary(symbol) {
			return &OperatorError{Col: col, Operator: symbol, Unary: true}
		}
		v.dummy(col)
	}
	if err := v.push(symbol, col); err != nil {
		return err
	}
	v.lastOp = true
	return nil
}

// dummy emits the placeholder operand consumed by a unary step.
func (v *rpnVisitor) dummy(col int) {
	v.out = append(v.out, scalar(0, "0", col))
}

// push moves every stacked operator that binds at least as tightly as name
// to the output, then stacks name. Ties go to the stacked operator, so
// operators of equal precedence associate left to right.
func (v *rpnVisitor) push(name string, col int) error {
	p, ok := v.ctx.Precedence(name)
	if !ok {
		return &OperatorError{Col: col, Operator: name}
	}
	for len(v.ops) > 0 {
		top := v.ops[len(v.ops)-1]
		if top.name == "(" {
			break
		}
		// Stacked operators always have a precedence; push checked it.
		if q, _ := v.ctx.Precedence(top.name); p > q {
			break
		}
		if err := v.emit(top); err != nil {
			return err
		}
		v.ops = v.ops[:len(v.ops)-1]
	}
	v.ops = append(v.ops, pending{name, col})
	return nil
}

// close moves operators to the output up to the nearest open parenthesis,
// which it discards.
func (v *rpnVisitor) close(col int) error {
	for len(v.ops) > 0 {
		top := v.ops[len(v.ops)-1]
		v.ops = v.ops[:len(v.ops)-1]
		if top.name == "(" {
			return nil
		}
		if err := v.emit(top); err != nil {
			return err
		}
	}
	return &BracketError{Col: col, Paren: ")"}
}

func (v *rpnVisitor) emit(op pending) error {
	s, err := v.ctx.step(op.name, op.col)
	if err != nil {
		return err
	}
	v.out = append(v.out, s)
	return nil
}

// finish moves the remaining operators to the output and returns the
// converted expression.
func (v *rpnVisitor) finish() (*RPN, error) {
	for len(v.ops) > 0 {
		top := v.ops[len(v.ops)-1]
		v.ops = v.ops[:len(v.ops)-1]
		if top.name == "(" {
			return nil, &BracketError{Col: top.col, Paren: "("}
		}
		if err := v.emit(top); err != nil {
			return nil, err
		}
	}
	return &RPN{steps: v.out}, nil
}
