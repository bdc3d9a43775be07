package interval

import (
	"fmt"
	"strconv"
	"strings"
)

// NaturalFilter accepts a set of natural numbers (0, 1, 2, ...).
// The zero NaturalFilter accepts nothing.
type NaturalFilter struct {
	set Interval[int]
}

// ParseNaturalFilter parses v and returns a NaturalFilter or an error.
//
// Syntax (tokens are separated by underscore '_' characters):
//
//	"all"    -> matches all natural numbers (unbounded)
//	"N"      -> a single natural number
//	"N-M"    -> closed interval [N, M]
//	"N-"     -> >= N
//	"-M"     -> <= M
//
// Constraint: all numeric values encountered during parsing must be non-decreasing
// (they may be equal) when read left to right. For example, "1_3-5_7-7" is valid
// (1 < 3 < 5 < 7 = 7), whereas "3_1-4" or "1_2_1" are invalid.
func ParseNaturalFilter(v string) (NaturalFilter, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return NaturalFilter{}, nil
	}
	if v == "all" {
		return AllNaturals(), nil
	}

	var ranges []Range[int]
	tokens := strings.Split(v, "_")
	prev := 0
	checkOrder := func(n int) error {
		if n < prev {
			return fmt.Errorf("numbers must be non-decreasing: %d < %d", n, prev)
		}
		prev = n
		return nil
	}
	for i, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return NaturalFilter{}, fmt.Errorf("empty token at position %d", i)
		}

		// "-N-" 覆盖全部自然数
		if strings.Count(tok, "-") > 1 {
			if tok != "--" && strings.HasPrefix(tok, "-") && strings.HasSuffix(tok, "-") {
				if _, err := parseNaturalNumber(tok[1 : len(tok)-1]); err != nil {
					return NaturalFilter{}, fmt.Errorf("invalid token %q: %w", tok, err)
				}
				return AllNaturals(), nil
			}
			return NaturalFilter{}, fmt.Errorf("invalid token %q", tok)
		}

		left, right, isRange := strings.Cut(tok, "-")
		if !isRange {
			n, err := parseNaturalNumber(tok)
			if err != nil {
				return NaturalFilter{}, fmt.Errorf("invalid token %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return NaturalFilter{}, err
			}
			ranges = append(ranges, Point(n))
			continue
		}

		switch {
		case left == "" && right == "":
			return NaturalFilter{}, fmt.Errorf("invalid token %q", tok)
		case left != "" && right != "":
			n1, err := parseNaturalNumber(left)
			if err != nil {
				return NaturalFilter{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
			}
			n2, err := parseNaturalNumber(right)
			if err != nil {
				return NaturalFilter{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
			}
			if n1 > n2 {
				return NaturalFilter{}, fmt.Errorf("invalid range %q: min > max", tok)
			}
			if err := checkOrder(n1); err != nil {
				return NaturalFilter{}, err
			}
			if err := checkOrder(n2); err != nil {
				return NaturalFilter{}, err
			}
			ranges = append(ranges, Closed(n1, n2))
		case left != "": // "N-"
			n, err := parseNaturalNumber(left)
			if err != nil {
				return NaturalFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return NaturalFilter{}, err
			}
			ranges = append(ranges, AtLeast(n))
		default: // "-M"
			n, err := parseNaturalNumber(right)
			if err != nil {
				return NaturalFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			if err := checkOrder(n); err != nil {
				return NaturalFilter{}, err
			}
			ranges = append(ranges, AtMost(n))
		}
	}

	return NewNaturalFilter(Create(ranges...)), nil
}

// NewNaturalFilter restricts set to the natural numbers.
func NewNaturalFilter(set Interval[int]) NaturalFilter {
	return NaturalFilter{set: Discretize(set.Inter(PositiveReals[int]()))}
}

// AllNaturals accepts every natural number.
func AllNaturals() NaturalFilter {
	return NaturalFilter{set: PositiveReals[int]()}
}

// parseNaturalNumber parses s as an natural number and returns that value or an error.
func parseNaturalNumber(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not natural number: %q", s)
	}
	return n, nil
}

// Interval returns the accepted set in canonical integer form.
func (f NaturalFilter) Interval() Interval[int] {
	if f.set == nil {
		return EmptySet[int]()
	}
	return f.set
}

// Test reports whether n is accepted by the filter.
func (f NaturalFilter) Test(n int) bool {
	return n >= 0 && f.Interval().Contains(n)
}

// IsNotEmpty reports whether the filter accepts at least one number.
func (f NaturalFilter) IsNotEmpty() bool {
	return !f.Interval().IsEmpty()
}

// IsAllNatural reports whether the filter accepts all natural numbers.
func (f NaturalFilter) IsAllNatural() bool {
	return f.Interval().ContainsInterval(PositiveReals[int]())
}

// String renders the filter in the syntax accepted by ParseNaturalFilter.
// 规则输出： "all" / "N-" / "N" / "N-M"，用 '_' 连接。
func (f NaturalFilter) String() string {
	if f.IsAllNatural() {
		return "all"
	}
	var parts []string
	for _, r := range f.Interval().Ranges() {
		lo := r.Lower().Value()
		switch {
		case !r.IsUpperBounded():
			parts = append(parts, fmt.Sprintf("%d-", lo))
		case r.IsPoint():
			parts = append(parts, strconv.Itoa(lo))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", lo, r.Upper().Value()))
		}
	}
	return strings.Join(parts, "_")
}

// Discretize rewrites every range of an integer set with closed bounds and
// merges ranges that are adjacent as integers, so (0,3) ∪ [3,5] ∪ {7} ∪ {8}
// becomes [1,5] ∪ [7,8]. Ranges holding no integer are dropped, including
// ranges open at the maximum or minimum value of I.
func Discretize[I Integer](set Interval[I]) Interval[I] {
	var closed []Range[I]
	for _, r := range set.Ranges() {
		start, end := r.start, r.end
		if start.IsReal() {
			v := start.value
			if start.level > 0 {
				// 最大值之后没有整数
				if v+1 < v {
					continue
				}
				v++
			}
			start = At(v)
		}
		if end.IsReal() {
			v := end.value
			if end.level < 0 {
				if v-1 > v {
					continue
				}
				v--
			}
			end = At(v)
		}
		closed = append(closed, newRange(start, end))
	}

	// [a,b] 与 [b+1,c] 在实数上不相邻，这里按整数合并
	var merged []Range[I]
	for _, r := range Create(closed...).Ranges() {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			if last.end.IsReal() && r.start.IsReal() && last.end.value+1 == r.start.value {
				last.end = r.end
				continue
			}
		}
		merged = append(merged, r)
	}
	return Create(merged...)
}

// Integer is the integer subset of Number.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}
