package shuntingyard

import (
	"errors"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Visitor receives the tokens of an expression from Scan in order. col is the
// 1-based rune column of the start of the token. Returning an error stops the
// scan and Scan returns that error.
type Visitor interface {
	// OnDigit receives a number literal. Literals never include a sign.
	OnDigit(value float64, col int) error
	// OnWord receives a maximal run of letters and underscores.
	OnWord(name string, col int) error
	// OnOperator receives a parenthesis or a run of other symbols.
	OnOperator(symbol string, col int) error
}

// Scan splits expr into tokens and passes each to v, left to right.
// Whitespace separates tokens and is otherwise ignored.
func Scan(expr string, v Visitor) error {
	s := scanner{src: expr, col: 1, v: v}
	for {
		s.skipSpace()
		if s.done() {
			return nil
		}
		if err := s.scanNum(); err != nil {
			return err
		}
		s.skipSpace()
		if err := s.scanWord(); err != nil {
			return err
		}
		s.skipSpace()
		if err := s.scanOp(); err != nil {
			return err
		}
	}
}

// scanner holds the cursor into an expression. off is a byte offset and col
// is the rune column at off.
type scanner struct {
	src string
	off int
	col int
	v   Visitor
}

func (s *scanner) done() bool {
	return s.off >= len(s.src)
}

// peek returns the rune at the cursor and its width, or utf8.RuneError and 0
// at the end of the input.
func (s *scanner) peek() (rune, int) {
	if s.done() {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(s.src[s.off:])
}

// advance moves the cursor to byte offset end.
func (s *scanner) advance(end int) {
	s.col += utf8.RuneCountInString(s.src[s.off:end])
	s.off = end
}

func (s *scanner) skipSpace() {
	for {
		r, sz := s.peek()
		if sz == 0 || !unicode.IsSpace(r) {
			return
		}
		s.off += sz
		s.col++
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isParen(r rune) bool {
	return r == '(' || r == ')'
}

// digitsFrom returns the offset of the first non-digit byte at or after i.
func (s *scanner) digitsFrom(i int) int {
	for i < len(s.src) && isDigit(rune(s.src[i])) {
		i++
	}
	return i
}

// scanNum recognizes the longest number literal at the cursor, if the cursor
// is at a digit.
func (s *scanner) scanNum() error {
	r, _ := s.peek()
	if !isDigit(r) {
		return nil
	}
	end := s.digitsFrom(s.off)
	if end < len(s.src) && s.src[end] == '.' {
		end = s.digitsFrom(end + 1)
	}
	if end < len(s.src) && (s.src[end] == 'e' || s.src[end] == 'E') {
		k := end + 1
		if k < len(s.src) && (s.src[k] == '+' || s.src[k] == '-') {
			k++
		}
		// An exponent marker without digits belongs to the next token.
		if k < len(s.src) && isDigit(rune(s.src[k])) {
			end = s.digitsFrom(k)
		}
	}
	text := s.src[s.off:end]
	f, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// ParseFloat sets f to ±Inf or 0 on range errors, which is what we
		// want. Anything else means the literal itself is bad.
		return &LexError{Text: text, Kind: "number", Col: s.col}
	}
	col := s.col
	s.advance(end)
	return s.v.OnDigit(f, col)
}

// scanWord recognizes an identifier at the cursor.
func (s *scanner) scanWord() error {
	end := s.off
	for end < len(s.src) {
		r, sz := utf8.DecodeRuneInString(s.src[end:])
		if !isWordRune(r) {
			break
		}
		end += sz
	}
	if end == s.off {
		return nil
	}
	col := s.col
	name := s.src[s.off:end]
	s.advance(end)
	return s.v.OnWord(name, col)
}

// scanOp recognizes a parenthesis or an operator symbol at the cursor.
// Operator symbols extend until whitespace, a digit, a word character, or a
// parenthesis.
func (s *scanner) scanOp() error {
	r, sz := s.peek()
	if sz == 0 || isDigit(r) || isWordRune(r) {
		return nil
	}
	col := s.col
	if isParen(r) {
		s.advance(s.off + sz)
		return s.v.OnOperator(string(r), col)
	}
	end := s.off + sz
	for end < len(s.src) {
		r, sz := utf8.DecodeRuneInString(s.src[end:])
		if unicode.IsSpace(r) || isDigit(r) || isWordRune(r) || isParen(r) {
			break
		}
		end += sz
	}
	sym := s.src[s.off:end]
	s.advance(end)
	return s.v.OnOperator(sym, col)
}
