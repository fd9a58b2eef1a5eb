package shuntingyard

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scanToken struct {
	kind byte // 'd' digit, 'w' word, 'o' operator
	text string
	val  float64
	col  int
}

// recorder is a Visitor that records every token it receives.
type recorder struct {
	tokens []scanToken
	// failOn makes the visitor return an error upon receiving a matching
	// word or operator.
	failOn string
}

var errStop = errors.New("stop")

func (r *recorder) OnDigit(value float64, col int) error {
	r.tokens = append(r.tokens, scanToken{kind: 'd', val: value, col: col})
	return nil
}

func (r *recorder) OnWord(name string, col int) error {
	r.tokens = append(r.tokens, scanToken{kind: 'w', text: name, col: col})
	if name == r.failOn {
		return errStop
	}
	return nil
}

func (r *recorder) OnOperator(symbol string, col int) error {
	r.tokens = append(r.tokens, scanToken{kind: 'o', text: symbol, col: col})
	if symbol == r.failOn {
		return errStop
	}
	return nil
}

func d(val float64, col int) scanToken  { return scanToken{kind: 'd', val: val, col: col} }
func w(name string, col int) scanToken  { return scanToken{kind: 'w', text: name, col: col} }
func op(name string, col int) scanToken { return scanToken{kind: 'o', text: name, col: col} }

func TestScan(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		tokens []scanToken
	}{
		// spaces
		{"empty", "", nil},
		{"spaces", " \t \r\n ", nil},
		// numbers
		{"int", "9876543210", []scanToken{d(9876543210, 1)}},
		{"ints", "1 0", []scanToken{d(1, 1), d(0, 3)}},
		{"real", "1.5", []scanToken{d(1.5, 1)}},
		{"trailing-dot", "1.", []scanToken{d(1, 1)}},
		{"exp", "1e3", []scanToken{d(1000, 1)}},
		{"exp-plus", "1E+2", []scanToken{d(100, 1)}},
		{"exp-minus", "1e-2", []scanToken{d(0.01, 1)}},
		{"real-exp", "2.5e1", []scanToken{d(25, 1)}},
		{"bare-e", "1e", []scanToken{d(1, 1), w("e", 2)}},
		{"bare-e-sign", "1e+", []scanToken{d(1, 1), w("e", 2), op("+", 3)}},
		{"two-dots", "2.5.1", []scanToken{d(2.5, 1), op(".", 4), d(1, 5)}},
		{"leading-dot", ".5", []scanToken{op(".", 1), d(5, 2)}},
		{"negative", "-1", []scanToken{op("-", 1), d(1, 2)}},
		{"overflow", "1e400", []scanToken{d(math.Inf(1), 1)}},
		// words
		{"word", "abc_d", []scanToken{w("abc_d", 1)}},
		{"underscore", "_x", []scanToken{w("_x", 1)}},
		{"word-digit", "a1", []scanToken{w("a", 1), d(1, 2)}},
		{"unicode", "π*2", []scanToken{w("π", 1), op("*", 2), d(2, 3)}},
		{"call", "sin(x)", []scanToken{w("sin", 1), op("(", 4), w("x", 5), op(")", 6)}},
		// operators
		{"binary", "a + b", []scanToken{w("a", 1), op("+", 3), w("b", 5)}},
		{"multi", "1>=2", []scanToken{d(1, 1), op(">=", 2), d(2, 4)}},
		{"run", "*-3", []scanToken{op("*-", 1), d(3, 3)}},
		{"split-by-space", "+ -", []scanToken{op("+", 1), op("-", 3)}},
		{"parens", "(()", []scanToken{op("(", 1), op("(", 2), op(")", 3)}},
		{"paren-ends-run", "-(-", []scanToken{op("-", 1), op("(", 2), op("-", 3)}},
		{"paren-after-run", "+)", []scanToken{op("+", 1), op(")", 2)}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var r recorder
			require.NoError(t, Scan(c.src, &r))
			assert.Equal(t, c.tokens, r.tokens)
		})
	}
}

func TestScanStops(t *testing.T) {
	cases := []struct {
		name   string
		src    string
		failOn string
		n      int
	}{
		{"word", "a b c", "b", 2},
		{"operator", "1 + 2 * 3", "+", 2},
		{"paren", "(1))", ")", 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := recorder{failOn: c.failOn}
			err := Scan(c.src, &r)
			assert.ErrorIs(t, err, errStop)
			assert.Len(t, r.tokens, c.n)
		})
	}
}
