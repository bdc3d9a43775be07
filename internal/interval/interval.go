// Package interval implements an open/closed aware interval algebra over
// ordered values: union, intersection, difference, complement and
// containment, with unions normalized into sorted, disjoint ranges.
//
// An Interval is either a single Range or a MultiRange of two or more
// ranges. Values are immutable and every operation allocates new ones, so
// they are safe for concurrent use.
//
// Invalid requests never fail: a range whose end lies before its start is the
// empty set. Check IsEmpty instead of expecting an error.
package interval

import "cmp"

// Ordered is any totally ordered type: numbers and strings. The zero value
// of T is the origin of the half-line sets such as PositiveReals.
type Ordered interface {
	cmp.Ordered
}

// Number is the numeric subset of Ordered, for conversions between element
// types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Interval is a subset of the extended line over T.
type Interval[T Ordered] interface {
	IsEmpty() bool
	// Invert returns the complement of the set.
	Invert() Interval[T]
	// Ranges returns the canonical decomposition: sorted, disjoint and
	// non-adjacent. The empty set has no ranges.
	Ranges() []Range[T]
	Contains(v T) bool
	ContainsOrdinal(o Ordinal[T]) bool
	// ContainsInterval reports whether every range of other fits inside a
	// single range of this set.
	ContainsInterval(other Interval[T]) bool
	Union(other Interval[T]) Interval[T]
	Inter(other Interval[T]) Interval[T]
	Except(other Interval[T]) Interval[T]
	// Equal compares canonical decompositions structurally.
	Equal(other Interval[T]) bool
	String() string
}

// Union folds all sets together. With no arguments it returns the empty set.
func Union[T Ordered](sets ...Interval[T]) Interval[T] {
	var ranges []Range[T]
	for _, s := range sets {
		ranges = append(ranges, s.Ranges()...)
	}
	return Create(ranges...)
}

// Inter intersects all sets. With no arguments it returns Reals.
func Inter[T Ordered](sets ...Interval[T]) Interval[T] {
	var acc Interval[T] = Reals[T]()
	for _, s := range sets {
		acc = acc.Inter(s)
	}
	return acc
}

func equalRanges[T Ordered](a, b []Range[T]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].start.Equal(b[i].start) || !a[i].end.Equal(b[i].end) {
			return false
		}
	}
	return true
}

// Convert maps every bound of i through f, keeping levels and infinities,
// and renormalizes the result.
func Convert[T, U Ordered](i Interval[T], f func(T) U) Interval[U] {
	src := i.Ranges()
	out := make([]Range[U], 0, len(src))
	for _, r := range src {
		out = append(out, newRange(convertOrdinal(r.start, f), convertOrdinal(r.end, f)))
	}
	return Create(out...)
}

// Cast converts i to another numeric type with a plain type conversion.
func Cast[U, T Number](i Interval[T]) Interval[U] {
	return Convert(i, func(v T) U { return U(v) })
}

func convertOrdinal[T, U Ordered](o Ordinal[T], f func(T) U) Ordinal[U] {
	if !o.IsReal() {
		return Ordinal[U]{level: o.level, kind: o.kind}
	}
	return Ordinal[U]{value: f(o.value), level: o.level, kind: KindReal}
}
