package interval

import (
	"slices"
	"strings"
)

// MultiRange is a union of two or more sorted, disjoint and non-adjacent
// ranges. It is only built by Create.
type MultiRange[T Ordered] struct {
	ranges []Range[T]
}

// Create normalizes ranges into their canonical Interval.
//
// Empty ranges are dropped, the rest is sorted by start and swept left to
// right. A range is merged into the running one unless its start lies far
// after the running end, so ranges touching at a bound such as [0,5) and
// [5,9] become [0,9]. The result is EmptySet, a single Range, or a
// MultiRange.
func Create[T Ordered](ranges ...Range[T]) Interval[T] {
	// 1) 丢弃空区间
	sorted := make([]Range[T], 0, len(ranges))
	for _, r := range ranges {
		if !r.IsEmpty() {
			sorted = append(sorted, r)
		}
	}
	if len(sorted) == 0 {
		return EmptySet[T]()
	}

	// 2) 按左端排序
	slices.SortStableFunc(sorted, func(a, b Range[T]) int {
		return a.start.Compare(b.start)
	})

	// 3) 合并重叠或相接的区间
	merged := make([]Range[T], 0, len(sorted))
	var t Range[T]
	for _, r := range sorted {
		if t.IsEmpty() {
			t = r
			continue
		}
		if r.start.Compare(t.end) != 2 {
			t.end = maxOrdinal(t.end, r.end)
			continue
		}
		merged = append(merged, t)
		t = r
	}
	if !t.IsEmpty() {
		merged = append(merged, t)
	}

	if len(merged) == 1 {
		return merged[0]
	}
	return MultiRange[T]{ranges: merged}
}

func (m MultiRange[T]) IsEmpty() bool { return false }

func (m MultiRange[T]) Ranges() []Range[T] {
	return slices.Clone(m.ranges)
}

func (m MultiRange[T]) Contains(v T) bool {
	return m.ContainsOrdinal(At(v))
}

func (m MultiRange[T]) ContainsOrdinal(o Ordinal[T]) bool {
	for _, r := range m.ranges {
		if r.ContainsOrdinal(o) {
			return true
		}
	}
	return false
}

// ContainsInterval requires each range of other to fit inside one range of
// m. A range straddling a gap of m is not contained.
func (m MultiRange[T]) ContainsInterval(other Interval[T]) bool {
	for _, o := range other.Ranges() {
		inside := false
		for _, r := range m.ranges {
			if r.ContainsInterval(o) {
				inside = true
				break
			}
		}
		if !inside {
			return false
		}
	}
	return true
}

func (m MultiRange[T]) Union(other Interval[T]) Interval[T] {
	return Create(append(other.Ranges(), m.ranges...)...)
}

func (m MultiRange[T]) Inter(other Interval[T]) Interval[T] {
	var out []Range[T]
	for _, o := range other.Ranges() {
		for _, r := range m.ranges {
			out = append(out, r.intersect(o))
		}
	}
	return Create(out...)
}

func (m MultiRange[T]) Except(other Interval[T]) Interval[T] {
	return m.Inter(other.Invert())
}

// Invert intersects the complements of every range.
func (m MultiRange[T]) Invert() Interval[T] {
	var acc Interval[T] = Reals[T]()
	for _, r := range m.ranges {
		acc = acc.Inter(r.Invert())
	}
	return acc
}

func (m MultiRange[T]) Equal(other Interval[T]) bool {
	return equalRanges(m.ranges, other.Ranges())
}

func (m MultiRange[T]) String() string {
	if name, ok := wellKnownName[T](m); ok {
		return name
	}
	var sb strings.Builder
	for i, r := range m.ranges {
		if i > 0 {
			sb.WriteString(" ∪ ")
		}
		r.format(&sb)
	}
	return sb.String()
}

// wellKnownName returns the symbol of the standard sets.
func wellKnownName[T Ordered](i Interval[T]) (string, bool) {
	switch {
	case i.IsEmpty():
		return "", false
	case i.Equal(Reals[T]()):
		return "ℝ", true
	case i.Equal(NegativeReals[T]()):
		return "ℝ₋", true
	case i.Equal(PositiveReals[T]()):
		return "ℝ₊", true
	case i.Equal(NegativeRealsNoZero[T]()):
		return "ℝ₋*", true
	case i.Equal(PositiveRealsNoZero[T]()):
		return "ℝ₊*", true
	case i.Equal(RealsNoZero[T]()):
		return "ℝ*", true
	}
	return "", false
}
