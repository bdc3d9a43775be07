package interval

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Ordinal is a point of the extended, thickened line over T.
//
// A real Ordinal at level 0 is exactly its value. Level +1 is the point just
// after the value and level -1 the point just before it, which is how open
// bounds are encoded: the open lower bound of (a, b] is a at level +1.
// Levels are symbolic adjacency counters, T needs no arithmetic for them.
//
// NaN is the empty-set marker. It compares equal to everything.
type Ordinal[T Ordered] struct {
	value T
	level int
	kind  Kind
}

// At returns the real Ordinal standing exactly on v.
func At[T Ordered](v T) Ordinal[T] {
	return Ordinal[T]{value: v, kind: KindReal}
}

// NaN returns the empty-set marker.
func NaN[T Ordered]() Ordinal[T] {
	return Ordinal[T]{kind: KindNaN}
}

// PositiveInfinity returns +∞. Its level is -1 so that it reads as an open
// upper bound.
func PositiveInfinity[T Ordered]() Ordinal[T] {
	return Ordinal[T]{level: -1, kind: KindPositiveInfinity}
}

// NegativeInfinity returns -∞. Its level is +1 so that it reads as an open
// lower bound.
func NegativeInfinity[T Ordered]() Ordinal[T] {
	return Ordinal[T]{level: 1, kind: KindNegativeInfinity}
}

func (o Ordinal[T]) Value() T   { return o.value }
func (o Ordinal[T]) Level() int { return o.level }
func (o Ordinal[T]) Kind() Kind { return o.kind }

func (o Ordinal[T]) IsNaN() bool              { return o.kind == KindNaN }
func (o Ordinal[T]) IsReal() bool             { return o.kind == KindReal }
func (o Ordinal[T]) IsPositiveInfinity() bool { return o.kind == KindPositiveInfinity }
func (o Ordinal[T]) IsNegativeInfinity() bool { return o.kind == KindNegativeInfinity }

// Next returns the point just after o. NaN and infinities are fixed points.
func (o Ordinal[T]) Next() Ordinal[T] {
	if !o.IsReal() {
		return o
	}
	o.level++
	return o
}

// Antecedent returns the point just before o. NaN and infinities are fixed points.
func (o Ordinal[T]) Antecedent() Ordinal[T] {
	if !o.IsReal() {
		return o
	}
	o.level--
	return o
}

// Compare orders o against other on a three-tier scale:
//
//	±2  the points are far apart (different values, or a value against an infinity)
//	±1  same value, adjacent levels (the points touch)
//	 0  order-equal
//
// If either side is NaN the result is 0.
func (o Ordinal[T]) Compare(other Ordinal[T]) int {
	if o.IsNaN() || other.IsNaN() {
		return 0
	}
	switch {
	case o.IsPositiveInfinity():
		if other.IsPositiveInfinity() {
			return 0
		}
		return 2
	case o.IsNegativeInfinity():
		if other.IsNegativeInfinity() {
			return 0
		}
		return -2
	case other.IsPositiveInfinity():
		return -2
	case other.IsNegativeInfinity():
		return 2
	}
	if c := 2 * cmp.Compare(o.value, other.value); c != 0 {
		return c
	}
	return max(-2, min(2, o.level-other.level))
}

// IsFarBefore reports whether o lies strictly before other without touching it.
func (o Ordinal[T]) IsFarBefore(other Ordinal[T]) bool { return o.Compare(other) == -2 }

// IsFarAfter reports whether o lies strictly after other without touching it.
func (o Ordinal[T]) IsFarAfter(other Ordinal[T]) bool { return o.Compare(other) == 2 }

// IsAround reports whether o is order-equal to other or touches it.
func (o Ordinal[T]) IsAround(other Ordinal[T]) bool {
	c := o.Compare(other)
	return c >= -1 && c <= 1
}

// Equal reports structural equality. Two Ordinals may compare as 0 and still
// differ here, e.g. the same value at different levels.
func (o Ordinal[T]) Equal(other Ordinal[T]) bool {
	if o.kind != other.kind {
		return false
	}
	if !o.IsReal() {
		return true
	}
	return o.level == other.level && cmp.Compare(o.value, other.value) == 0
}

func (o Ordinal[T]) String() string {
	switch o.kind {
	case KindNaN:
		return "NaN"
	case KindPositiveInfinity:
		return "+∞"
	case KindNegativeInfinity:
		return "-∞"
	}
	if o.level == 0 {
		return fmt.Sprint(o.value)
	}
	return fmt.Sprint(o.value) + subscript(o.level)
}

var subscriptDigits = []rune("₀₁₂₃₄₅₆₇₈₉")

// subscript renders a signed level like ₊₁ or ₋₂.
func subscript(level int) string {
	var sb strings.Builder
	if level < 0 {
		sb.WriteRune('₋')
		level = -level
	} else {
		sb.WriteRune('₊')
	}
	for _, d := range strconv.Itoa(level) {
		sb.WriteRune(subscriptDigits[d-'0'])
	}
	return sb.String()
}

func maxOrdinal[T Ordered](a, b Ordinal[T]) Ordinal[T] {
	if b.Compare(a) > 0 {
		return b
	}
	return a
}

func minOrdinal[T Ordered](a, b Ordinal[T]) Ordinal[T] {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}
