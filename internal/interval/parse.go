package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValueParser turns a bound literal into a T.
type ValueParser[T Ordered] func(string) (T, error)

// ParseInt parses a decimal int bound.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseFloat parses a finite float64 bound. NaN has no place in the order
// and infinities are written as an empty or ∞ side, so both are rejected.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("not a finite number: %q", s)
	}
	return v, nil
}

// ParseRange parses a single range literal.
//
// Supported formats:
//   - ∅, {}                 the empty set
//   - ℝ, R, all             the whole line
//   - N, =N, {N}            a single point
//   - >N, >=N, <N, <=N      half lines
//   - (min,max), (min,max], [min,max), [min,max]
//   - ( ,max), (min, ), (-∞,max], [min,+∞) etc.
//
// Bounds may be separated by ',' or ';'. Spaces are ignored. An unbounded
// side must be open. A well-formed literal that holds no point, such as
// (1,1), is the empty set rather than an error.
func ParseRange[T Ordered](value string, parse ValueParser[T]) (Range[T], error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return Range[T]{}, fmt.Errorf("empty range")
	}

	parseBound := func(tok string) (T, error) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			var zero T
			return zero, fmt.Errorf("empty bound")
		}
		return parse(tok)
	}

	switch s {
	case "∅", "{}":
		return EmptySet[T](), nil
	case "ℝ", "R", "all":
		return Reals[T](), nil
	}

	// prefix operators
	for _, p := range []struct {
		prefix string
		build  func(T) Range[T]
	}{
		{">=", AtLeast[T]},
		{">", GreaterThan[T]},
		{"<=", AtMost[T]},
		{"<", LessThan[T]},
		{"=", Point[T]},
	} {
		if strings.HasPrefix(s, p.prefix) {
			n, err := parseBound(s[len(p.prefix):])
			if err != nil {
				return Range[T]{}, fmt.Errorf("invalid %sN: %w", p.prefix, err)
			}
			return p.build(n), nil
		}
	}

	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		n, err := parseBound(s[1 : len(s)-1])
		if err != nil {
			return Range[T]{}, fmt.Errorf("invalid point %s: %w", value, err)
		}
		return Point(n), nil
	}

	// interval notation
	if len(s) >= 2 && (s[0] == '(' || s[0] == '[') && (s[len(s)-1] == ')' || s[len(s)-1] == ']') {
		leftInclusive := s[0] == '['
		rightInclusive := s[len(s)-1] == ']'
		inner := s[1 : len(s)-1]
		sep := ","
		if strings.Contains(inner, ";") {
			sep = ";"
		}
		parts := strings.SplitN(inner, sep, 2)
		if len(parts) != 2 {
			return Range[T]{}, fmt.Errorf("invalid interval syntax: %s", value)
		}
		left := strings.TrimSpace(parts[0])
		right := strings.TrimSpace(parts[1])

		var start, end Ordinal[T]
		if isLowerInfinity(left) {
			if leftInclusive {
				return Range[T]{}, fmt.Errorf("infinite side must be open on left: %s", value)
			}
			start = NegativeInfinity[T]()
		} else {
			n, err := parseBound(left)
			if err != nil {
				return Range[T]{}, fmt.Errorf("invalid left bound: %w", err)
			}
			start = At(n)
		}
		if isUpperInfinity(right) {
			if rightInclusive {
				return Range[T]{}, fmt.Errorf("infinite side must be open on right: %s", value)
			}
			end = PositiveInfinity[T]()
		} else {
			n, err := parseBound(right)
			if err != nil {
				return Range[T]{}, fmt.Errorf("invalid right bound: %w", err)
			}
			end = At(n)
		}

		switch {
		case leftInclusive && rightInclusive:
			return CC(start, end), nil
		case leftInclusive:
			return CO(start, end), nil
		case rightInclusive:
			return OC(start, end), nil
		default:
			return OO(start, end), nil
		}
	}

	// plain value
	if n, err := parse(s); err == nil {
		return Point(n), nil
	}

	return Range[T]{}, fmt.Errorf("unrecognized range format: %s", value)
}

func isLowerInfinity(tok string) bool {
	switch tok {
	case "", "-∞", "-inf", "-Inf":
		return true
	}
	return false
}

func isUpperInfinity(tok string) bool {
	switch tok {
	case "", "∞", "+∞", "inf", "+inf", "Inf", "+Inf":
		return true
	}
	return false
}
