package shuntingyard_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sy "github.com/zephyrtronium/shuntingyard"
)

func TestSimpleContext(t *testing.T) {
	ctx := sy.SimpleContext()
	for _, c := range []struct {
		name string
		prec int
	}{
		{"+", sy.AddPrec},
		{"-", sy.AddPrec},
		{"*", sy.MulPrec},
		{"/", sy.MulPrec},
		{"^", sy.PowPrec},
		{"(", sy.ParenPrec},
	} {
		p, ok := ctx.Precedence(c.name)
		assert.True(t, ok, c.name)
		assert.Equal(t, c.prec, p, c.name)
	}
	for _, name := range []string{"+", "-", "*", "/", "^"} {
		assert.True(t, ctx.IsBinary(name), name)
	}
	assert.True(t, ctx.IsUnary("+"))
	assert.True(t, ctx.IsUnary("-"))
	assert.False(t, ctx.IsUnary("*"))
	_, ok := ctx.Const("pi")
	assert.False(t, ok)
}

func TestNewContextEmpty(t *testing.T) {
	ctx := sy.NewContext()
	_, err := sy.New(ctx).Calculate("1+2")
	assert.ErrorIs(t, err, sy.ErrUnknownOperator)
	r, err := sy.New(ctx).Calculate("((7))")
	require.NoError(t, err)
	assert.Equal(t, 7.0, r)
}

func TestNewContextCustom(t *testing.T) {
	ctx := sy.NewContext(
		sy.Binary("max", 1, math.Max),
		sy.Binary("<<", 2, func(l, r float64) float64 { return l * math.Pow(2, r) }),
		sy.Unary("!", 3, func(x float64) float64 { return 1 - x }),
		sy.Unary("twice", 3, func(x float64) float64 { return 2 * x }),
		sy.Const("k", 5),
	)
	calc := sy.New(ctx)
	cases := []struct {
		src string
		r   float64
	}{
		{"1 << 3", 8},
		{"k << 1 << 1", 20},
		{"!1", 0},
		{"twice(k)", 10},
		{"twice k", 10},
	}
	for _, c := range cases {
		t.Run(c.src, func(t *testing.T) {
			r, err := calc.Calculate(c.src)
			require.NoError(t, err)
			assert.Equal(t, c.r, r)
		})
	}
	// Words are only operators when they are unary.
	_, err := calc.Calculate("1 max 2")
	assert.ErrorIs(t, err, sy.ErrUnresolvedIdentifier)
}

func TestCloneDoesNotModify(t *testing.T) {
	base := sy.SimpleContext(sy.Const("x", 1))
	ext := base.Clone(
		sy.Const("x", 2),
		sy.Unary("sin", sy.FuncPrec, math.Sin),
		sy.Binary("%", sy.MulPrec, math.Mod),
	)

	v, _ := base.Const("x")
	assert.Equal(t, 1.0, v)
	v, _ = ext.Const("x")
	assert.Equal(t, 2.0, v)
	assert.False(t, base.IsUnary("sin"))
	assert.True(t, ext.IsUnary("sin"))
	_, ok := base.Precedence("%")
	assert.False(t, ok)

	r, err := sy.New(ext).Calculate("7 % 4 + x")
	require.NoError(t, err)
	assert.Equal(t, 5.0, r)
	_, err = sy.New(base).Calculate("7 % 4 + x")
	assert.ErrorIs(t, err, sy.ErrUnknownOperator)
}

func TestContextRemove(t *testing.T) {
	ctx := sy.SimpleContext(sy.Binary("^", sy.PowPrec, nil), sy.Unary("+", sy.AddPrec, nil))
	assert.False(t, ctx.IsBinary("^"))
	assert.False(t, ctx.IsUnary("+"))

	_, err := sy.New(ctx).Calculate("2^2")
	assert.ErrorIs(t, err, sy.ErrUnknownOperator)
	_, err = sy.New(ctx).Calculate("+2")
	assert.ErrorIs(t, err, sy.ErrUnrecognizedUnary)
	r, err := sy.New(ctx).Calculate("-2")
	require.NoError(t, err)
	assert.Equal(t, -2.0, r)
}

func TestContextPrecedence(t *testing.T) {
	// Making + bind tighter than * reverses the usual grouping.
	ctx := sy.SimpleContext(sy.Precedence("+", 5), sy.Precedence("(", 100))
	r, err := sy.New(ctx).Calculate("2*3+4")
	require.NoError(t, err)
	assert.Equal(t, 14.0, r)
	p, _ := ctx.Precedence("(")
	assert.Equal(t, sy.ParenPrec, p)
}

func TestContextOptionsInOrder(t *testing.T) {
	ctx := sy.SimpleContext(
		sy.Consts(map[string]float64{"a": 1, "b": 2}),
		sy.Const("a", 3),
		nil,
	)
	r, err := sy.New(ctx).Calculate("a*10 + b")
	require.NoError(t, err)
	assert.Equal(t, 32.0, r)
}
