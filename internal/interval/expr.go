package interval

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type operator int

const (
	opUnion operator = iota
	opInter
	opExcept
)

var operators = map[string]operator{
	"+": opUnion,
	"∪": opUnion,
	"*": opInter,
	"∩": opInter,
	"/": opExcept,
	`\`: opExcept,
}

type token struct {
	text   string
	pos    int
	isOp   bool
	op     operator
	invert int
}

// Eval evaluates a set expression such as "[10,96) + [0,3]".
//
// Operands are range literals as accepted by ParseRange. Operators must be
// separated from operands by spaces:
//
//	+ ∪   union
//	* ∩   intersection
//	/ \   difference
//
// Intersection and difference bind tighter than union and all operators are
// left-associative. A leading ~ on an operand inverts it.
func Eval[T Ordered](expr string, parse ValueParser[T]) (Interval[T], error) {
	tokens, err := tokenize(expr)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("empty expression")
	}

	operand := func(tok token) (Interval[T], error) {
		if tok.isOp {
			return nil, fmt.Errorf("unexpected operator %q at position %d", tok.text, tok.pos)
		}
		r, err := ParseRange(tok.text, parse)
		if err != nil {
			return nil, fmt.Errorf("operand at position %d: %w", tok.pos, err)
		}
		var v Interval[T] = r
		for i := 0; i < tok.invert; i++ {
			v = v.Invert()
		}
		return v, nil
	}

	var terms []Interval[T]
	term, err := operand(tokens[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(tokens); i += 2 {
		op := tokens[i]
		if !op.isOp {
			return nil, fmt.Errorf("expected operator at position %d, got %q", op.pos, op.text)
		}
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("missing operand after %q", op.text)
		}
		rhs, err := operand(tokens[i+1])
		if err != nil {
			return nil, err
		}
		switch op.op {
		case opUnion:
			terms = append(terms, term)
			term = rhs
		case opInter:
			term = term.Inter(rhs)
		case opExcept:
			term = term.Except(rhs)
		}
	}
	terms = append(terms, term)
	return Union(terms...), nil
}

func tokenize(expr string) ([]token, error) {
	var tokens []token
	i := 0
	for i < len(expr) {
		r, size := utf8.DecodeRuneInString(expr[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		invert := 0
		for i < len(expr) && expr[i] == '~' {
			invert++
			i++
		}
		if i < len(expr) && strings.ContainsRune("[({", rune(expr[i])) {
			closers := ")]"
			if expr[i] == '{' {
				closers = "}"
			}
			end := strings.IndexAny(expr[i+1:], closers)
			if end < 0 {
				return nil, fmt.Errorf("unterminated range literal at position %d", start)
			}
			literal := expr[i : i+1+end+1]
			i += len(literal)
			tokens = append(tokens, token{text: literal, pos: start, invert: invert})
			continue
		}
		for i < len(expr) {
			r, size := utf8.DecodeRuneInString(expr[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		text := expr[start:i]
		if op, ok := operators[text]; ok {
			tokens = append(tokens, token{text: text, pos: start, isOp: true, op: op})
			continue
		}
		if invert > 0 && i == start+invert {
			return nil, fmt.Errorf("missing operand after ~ at position %d", start)
		}
		tokens = append(tokens, token{text: text[invert:], pos: start, invert: invert})
	}
	return tokens, nil
}
