package interval

import "strings"

// Range is one contiguous interval between two Ordinals. The zero Range is
// the empty set.
//
// Bracket style is not stored: a Range is left-open when its start sits above
// a value (level > 0) and right-open when its end sits below one (level < 0).
type Range[T Ordered] struct {
	start Ordinal[T]
	end   Ordinal[T]
}

// newRange returns the range [start, end], or the empty range when end lies
// before start or the span holds no point.
func newRange[T Ordered](start, end Ordinal[T]) Range[T] {
	c := end.Compare(start)
	if c > 0 || (c == 0 && start.IsReal()) {
		return Range[T]{start: start, end: end}
	}
	return Range[T]{}
}

// CC returns the closed range [a, b].
func CC[T Ordered](a, b Ordinal[T]) Range[T] { return newRange(a, b) }

// CO returns the half-open range [a, b).
func CO[T Ordered](a, b Ordinal[T]) Range[T] { return newRange(a, b.Antecedent()) }

// OC returns the half-open range (a, b].
func OC[T Ordered](a, b Ordinal[T]) Range[T] { return newRange(a.Next(), b) }

// OO returns the open range (a, b).
func OO[T Ordered](a, b Ordinal[T]) Range[T] { return newRange(a.Next(), b.Antecedent()) }

// Point returns {v}.
func Point[T Ordered](v T) Range[T] { return CC(At(v), At(v)) }

// Closed returns [lo, hi].
func Closed[T Ordered](lo, hi T) Range[T] { return CC(At(lo), At(hi)) }

// Open returns (lo, hi).
func Open[T Ordered](lo, hi T) Range[T] { return OO(At(lo), At(hi)) }

// AtLeast returns [v, +∞).
func AtLeast[T Ordered](v T) Range[T] { return CO(At(v), PositiveInfinity[T]()) }

// GreaterThan returns (v, +∞).
func GreaterThan[T Ordered](v T) Range[T] { return OO(At(v), PositiveInfinity[T]()) }

// AtMost returns (-∞, v].
func AtMost[T Ordered](v T) Range[T] { return OC(NegativeInfinity[T](), At(v)) }

// LessThan returns (-∞, v).
func LessThan[T Ordered](v T) Range[T] { return OO(NegativeInfinity[T](), At(v)) }

// EmptySet returns ∅.
func EmptySet[T Ordered]() Range[T] { return Range[T]{} }

// Reals returns the whole line (-∞, +∞).
func Reals[T Ordered]() Range[T] { return OO(NegativeInfinity[T](), PositiveInfinity[T]()) }

// NegativeReals returns (-∞, 0].
func NegativeReals[T Ordered]() Range[T] {
	var zero T
	return AtMost(zero)
}

// PositiveReals returns [0, +∞).
func PositiveReals[T Ordered]() Range[T] {
	var zero T
	return AtLeast(zero)
}

// NegativeRealsNoZero returns (-∞, 0).
func NegativeRealsNoZero[T Ordered]() Range[T] {
	var zero T
	return LessThan(zero)
}

// PositiveRealsNoZero returns (0, +∞).
func PositiveRealsNoZero[T Ordered]() Range[T] {
	var zero T
	return GreaterThan(zero)
}

// RealsNoZero returns (-∞, 0) ∪ (0, +∞).
func RealsNoZero[T Ordered]() Interval[T] {
	return Create(NegativeRealsNoZero[T](), PositiveRealsNoZero[T]())
}

func (r Range[T]) Start() Ordinal[T] { return r.start }
func (r Range[T]) End() Ordinal[T]   { return r.end }

// IsLeftOpen reports whether the start value itself is excluded.
func (r Range[T]) IsLeftOpen() bool { return r.start.level > 0 }

// IsRightOpen reports whether the end value itself is excluded.
func (r Range[T]) IsRightOpen() bool { return r.end.level < 0 }

// Lower returns the user-facing start value, undoing the open-bound shift.
func (r Range[T]) Lower() Ordinal[T] {
	if r.IsLeftOpen() {
		return r.start.Antecedent()
	}
	return r.start
}

// Upper returns the user-facing end value, undoing the open-bound shift.
func (r Range[T]) Upper() Ordinal[T] {
	if r.IsRightOpen() {
		return r.end.Next()
	}
	return r.end
}

func (r Range[T]) IsLowerBounded() bool { return r.start.IsReal() }
func (r Range[T]) IsUpperBounded() bool { return r.end.IsReal() }

// IsPoint reports whether r is a single closed point {x}.
func (r Range[T]) IsPoint() bool {
	return r.start.IsReal() && r.start.Equal(r.end)
}

func (r Range[T]) IsEmpty() bool {
	return r.start.IsNaN() || r.end.IsNaN()
}

func (r Range[T]) Ranges() []Range[T] {
	if r.IsEmpty() {
		return nil
	}
	return []Range[T]{r}
}

func (r Range[T]) Contains(v T) bool {
	return r.ContainsOrdinal(At(v))
}

// ContainsOrdinal reports whether start <= o <= end. A NaN point is never
// contained.
func (r Range[T]) ContainsOrdinal(o Ordinal[T]) bool {
	if r.IsEmpty() || o.IsNaN() {
		return false
	}
	return r.start.Compare(o) <= 0 && o.Compare(r.end) <= 0
}

func (r Range[T]) ContainsInterval(other Interval[T]) bool {
	if r.IsEmpty() {
		return false
	}
	for _, o := range other.Ranges() {
		if !r.ContainsOrdinal(o.start) || !r.ContainsOrdinal(o.end) {
			return false
		}
	}
	return true
}

func (r Range[T]) Union(other Interval[T]) Interval[T] {
	return Create(append(other.Ranges(), r)...)
}

func (r Range[T]) Inter(other Interval[T]) Interval[T] {
	if r.IsEmpty() {
		return EmptySet[T]()
	}
	var out []Range[T]
	for _, o := range other.Ranges() {
		out = append(out, r.intersect(o))
	}
	return Create(out...)
}

func (r Range[T]) intersect(o Range[T]) Range[T] {
	return newRange(maxOrdinal(r.start, o.start), minOrdinal(r.end, o.end))
}

func (r Range[T]) Except(other Interval[T]) Interval[T] {
	return r.Inter(other.Invert())
}

// Invert opens the complement at both of r's bounds, so a closed bound of r
// becomes an open bound of the result and the other way round.
func (r Range[T]) Invert() Interval[T] {
	if r.IsEmpty() {
		return Reals[T]()
	}
	return Create(
		OO(NegativeInfinity[T](), r.start),
		OO(r.end, PositiveInfinity[T]()),
	)
}

func (r Range[T]) Equal(other Interval[T]) bool {
	return equalRanges(r.Ranges(), other.Ranges())
}

func (r Range[T]) String() string {
	if name, ok := wellKnownName[T](r); ok {
		return name
	}
	var sb strings.Builder
	r.format(&sb)
	return sb.String()
}

func (r Range[T]) format(sb *strings.Builder) {
	switch {
	case r.IsEmpty():
		sb.WriteString("∅")
		return
	case r.IsPoint():
		sb.WriteString("{")
		sb.WriteString(r.start.String())
		sb.WriteString("}")
		return
	}
	if r.IsLeftOpen() {
		sb.WriteString("(")
	} else {
		sb.WriteString("[")
	}
	sb.WriteString(r.Lower().String())
	sb.WriteString(" ; ")
	sb.WriteString(r.Upper().String())
	if r.IsRightOpen() {
		sb.WriteString(")")
	} else {
		sb.WriteString("]")
	}
}
