package interval

import "testing"

func TestOrdinal_Compare_DirectCases(t *testing.T) {
	five := At(5)
	cases := []struct {
		name string
		a, b Ordinal[int]
		exp  int
	}{
		{"values_before", At(1), At(2), -2},
		{"values_after", At(2), At(1), 2},
		{"equal", five, At(5), 0},
		{"closed_vs_next", five, five.Next(), -1},
		{"next_vs_closed", five.Next(), five, 1},
		{"antecedent_vs_next", five.Antecedent(), five.Next(), -2},
		{"level_clamped", five.Next().Next(), five.Antecedent(), 2},
		{"value_dominates_level", At(4).Next().Next(), five.Antecedent(), -2},
		{"nan_left", NaN[int](), five, 0},
		{"nan_right", five, NaN[int](), 0},
		{"pos_inf_equal", PositiveInfinity[int](), PositiveInfinity[int](), 0},
		{"neg_inf_equal", NegativeInfinity[int](), NegativeInfinity[int](), 0},
		{"value_vs_pos_inf", five, PositiveInfinity[int](), -2},
		{"neg_inf_vs_value", NegativeInfinity[int](), five, -2},
		{"neg_inf_vs_pos_inf", NegativeInfinity[int](), PositiveInfinity[int](), -2},
		{"pos_inf_vs_value", PositiveInfinity[int](), five, 2},
		{"value_vs_neg_inf", five, NegativeInfinity[int](), 2},
		{"pos_inf_vs_neg_inf", PositiveInfinity[int](), NegativeInfinity[int](), 2},
	}

	for _, tc := range cases {
		if got := tc.a.Compare(tc.b); got != tc.exp {
			t.Fatalf("%s: %v.Compare(%v) = %d, want %d", tc.name, tc.a, tc.b, got, tc.exp)
		}
	}
}

func TestOrdinal_TierHelpers(t *testing.T) {
	five := At(5)
	if !five.Antecedent().IsAround(five) || !five.IsAround(five) {
		t.Fatalf("adjacent levels of the same value should be around each other")
	}
	if five.Antecedent().IsAround(five.Next()) {
		t.Fatalf("5₋₁ and 5₊₁ are two steps apart and must not be around each other")
	}
	if !At(1).IsFarBefore(five) || !five.IsFarAfter(At(1)) {
		t.Fatalf("different values must be far apart")
	}
}

func TestOrdinal_NextAntecedent_FixedPoints(t *testing.T) {
	for _, o := range []Ordinal[float64]{NaN[float64](), PositiveInfinity[float64](), NegativeInfinity[float64]()} {
		if !o.Next().Equal(o) || !o.Antecedent().Equal(o) {
			t.Fatalf("%v should be a fixed point of Next and Antecedent", o)
		}
	}
	o := At(2.5)
	if got := o.Next().Antecedent(); !got.Equal(o) {
		t.Fatalf("Next then Antecedent = %v, want %v", got, o)
	}
	if got := o.Next().Level(); got != 1 {
		t.Fatalf("Next level = %d, want 1", got)
	}
}

func TestOrdinal_EqualIsStricterThanCompare(t *testing.T) {
	if NaN[int]().Compare(At(3)) != 0 {
		t.Fatalf("NaN should compare equal to everything")
	}
	if NaN[int]().Equal(At(3)) {
		t.Fatalf("NaN must not be structurally equal to a real")
	}
	if At(3).Equal(At(3).Next()) {
		t.Fatalf("levels must take part in structural equality")
	}
	if !PositiveInfinity[int]().Equal(PositiveInfinity[int]()) {
		t.Fatalf("+∞ should equal itself")
	}
}

func TestOrdinal_KindsAreExclusive(t *testing.T) {
	cases := []struct {
		o    Ordinal[int]
		kind Kind
	}{
		{At(0), KindReal},
		{Ordinal[int]{}, KindNaN},
		{NaN[int](), KindNaN},
		{PositiveInfinity[int](), KindPositiveInfinity},
		{NegativeInfinity[int](), KindNegativeInfinity},
	}
	for _, tc := range cases {
		flags := 0
		for _, set := range []bool{tc.o.IsNaN(), tc.o.IsReal(), tc.o.IsPositiveInfinity(), tc.o.IsNegativeInfinity()} {
			if set {
				flags++
			}
		}
		if flags != 1 || tc.o.Kind() != tc.kind {
			t.Fatalf("%v: kind = %v with %d flags, want %v with exactly one", tc.o, tc.o.Kind(), flags, tc.kind)
		}
	}
	if k, err := KindString("positiveinfinity"); err != nil || k != KindPositiveInfinity {
		t.Fatalf("KindString = %v, %v", k, err)
	}
}

func TestOrdinal_String(t *testing.T) {
	cases := []struct {
		o   Ordinal[int]
		exp string
	}{
		{At(5), "5"},
		{At(5).Next(), "5₊₁"},
		{At(-3).Antecedent(), "-3₋₁"},
		{At(7).Next().Next(), "7₊₂"},
		{At(1).Antecedent().Antecedent().Antecedent().Antecedent().Antecedent().Antecedent().Antecedent().Antecedent().Antecedent().Antecedent().Antecedent().Antecedent(), "1₋₁₂"},
		{NaN[int](), "NaN"},
		{PositiveInfinity[int](), "+∞"},
		{NegativeInfinity[int](), "-∞"},
	}
	for _, tc := range cases {
		if got := tc.o.String(); got != tc.exp {
			t.Fatalf("String() = %q, want %q", got, tc.exp)
		}
	}
}
