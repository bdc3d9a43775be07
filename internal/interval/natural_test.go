package interval

import (
	"math"
	"testing"
)

func TestParseNaturalFilter_ValidAndString(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantStr      string
		wantNotEmpty bool
		wantAll      bool
		testTrue     []int
		testFalse    []int
	}{
		{"empty", "", "", false, false, nil, nil},
		{"all", "all", "all", true, true, []int{0, 50, 100}, nil},
		{"single", "3", "3", true, false, []int{3}, []int{-1, 2, 4}},
		{"inclusive", "1-3", "1-3", true, false, []int{1, 2, 3}, []int{-1, 0, 4}},
		{"unbounded", "-5-", "all", true, true, []int{0, 5, 1000}, []int{-1}},
		{"rightOpen", "5-", "5-", true, false, []int{5, 1000}, []int{-1, 4}},
		{"leftOpen", "-4", "0-4", true, false, []int{0, 1, 2, 3, 4}, []int{-1, 5, 6}},
		{"multiple_singles", "1_3_5", "1_3_5", true, false, []int{1, 3, 5}, []int{-1, 0, 2, 4, 6}},
		{"multiple_ranges", "1-2_4-5", "1-2_4-5", true, false, []int{1, 2, 4, 5}, []int{-1, 0, 3, 6}},
		{"adjacent_singles_merge", "1_2", "1-2", true, false, []int{1, 2}, []int{-1, 0, 3}},
		{"adjacent_ranges_no_merge", "1-3_5-7", "1-3_5-7", true, false, []int{1, 2, 3, 5, 6, 7}, []int{-1, 0, 4, 8}},
		{"adjacent_ranges_merge", "1-3_4-6", "1-6", true, false, []int{1, 2, 3, 4, 5, 6}, []int{-1, 0, 7}},
		{"adjacent_range_and_single_merge", "1-3_4", "1-4", true, false, []int{1, 2, 3, 4}, []int{-1, 0, 5}},
		{"with_unbounded", " -3_5- ", "0-3_5-", true, false, []int{0, 1, 2, 3, 5, 10, 100}, []int{-1, 4}},
		{"compound_valid", "1_3-5_7-7", "1_3-5_7", true, false, []int{1, 3, 4, 5, 7}, []int{-1, 0, 2, 6, 8}},
		{"zero_upward", "0-", "all", true, true, []int{0, 1}, []int{-1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f, err := ParseNaturalFilter(tc.in)
			if err != nil {
				t.Fatalf("unexpected error parsing %q: %v", tc.in, err)
			}
			if got := f.String(); got != tc.wantStr {
				t.Fatalf("String(): got %q want %q (input %q)", got, tc.wantStr, tc.in)
			}
			if ne := f.IsNotEmpty(); ne != tc.wantNotEmpty {
				t.Fatalf("IsNotEmpty(): got %v want %v (input %q)", ne, tc.wantNotEmpty, tc.in)
			}
			if ub := f.IsAllNatural(); ub != tc.wantAll {
				t.Fatalf("IsAllNatural(): got %v want %v (input %q)", ub, tc.wantAll, tc.in)
			}
			for _, v := range tc.testTrue {
				if !f.Test(v) {
					t.Fatalf("Test(%d) = false, want true (input %q)", v, tc.in)
				}
			}
			for _, v := range tc.testFalse {
				if f.Test(v) {
					t.Fatalf("Test(%d) = true, want false (input %q)", v, tc.in)
				}
			}
		})
	}
}

func TestParseNaturalFilter_Errors(t *testing.T) {
	errCases := []string{
		"3_1-4", // decreasing
		"1_2_1", // decreasing
		"4-2",   // min > max
		"a",     // not a number
		"1__2",  // empty token
		"-",     // no bounds
		"1-2-3", // too many dashes
		"--",    // too many dashes
		"-x-",   // bad bound
	}
	for _, s := range errCases {
		if _, err := ParseNaturalFilter(s); err == nil {
			t.Fatalf("expected ParseNaturalFilter(%q) to return error, got nil", s)
		}
	}
}

func TestNewNaturalFilter_FromInterval(t *testing.T) {
	set := Create(Open(-5, 2), Closed(2, 3), OC(At(6), At(8)))
	f := NewNaturalFilter(set)
	if got := f.String(); got != "0-3_7-8" {
		t.Fatalf("String() = %q, want 0-3_7-8", got)
	}
	if got := f.Interval().String(); got != "[0 ; 3] ∪ [7 ; 8]" {
		t.Fatalf("Interval() = %q", got)
	}
}

func TestDiscretize(t *testing.T) {
	cases := []struct {
		name string
		in   Interval[int]
		exp  string
	}{
		{"open_bounds_close", Open(0, 5), "[1 ; 4]"},
		{"no_integer_inside", Open(0, 1), "∅"},
		{"points_merge", Create(Point(7), Point(8), Point(10)), "[7 ; 8] ∪ {10}"},
		{"ranges_merge", Create(Closed(1, 3), OC(At(3), At(5)), CO(At(6), At(9))), "[1 ; 8]"},
		{"unbounded_kept", Create(LessThan(0), GreaterThan(0)), "(-∞ ; -1] ∪ [1 ; +∞)"},
		{"unbounded_merge", Create(AtMost(3), AtLeast(4)), "ℝ"},
	}
	for _, tc := range cases {
		if got := Discretize(tc.in).String(); got != tc.exp {
			t.Fatalf("%s: Discretize(%v) = %q, want %q", tc.name, tc.in, got, tc.exp)
		}
	}
}

func TestDiscretize_Limits(t *testing.T) {
	u8 := []struct {
		name string
		in   Interval[uint8]
		exp  string
	}{
		{"open_above_max", GreaterThan[uint8](255), "∅"},
		{"open_below_min", LessThan[uint8](0), "∅"},
		{"open_at_max_right", OO(At[uint8](250), At[uint8](255)), "[251 ; 254]"},
		{"closed_at_limits", Closed[uint8](0, 255), "[0 ; 255]"},
		{"max_point_merges", Create(Closed[uint8](0, 254), Point[uint8](255)), "[0 ; 255]"},
		{"min_point_merges", Create(Point[uint8](0), OC(At[uint8](0), At[uint8](9))), "[0 ; 9]"},
	}
	for _, tc := range u8 {
		if got := Discretize(tc.in).String(); got != tc.exp {
			t.Fatalf("%s: Discretize(%v) = %q, want %q", tc.name, tc.in, got, tc.exp)
		}
	}

	if got := Discretize[int](GreaterThan(math.MaxInt)); !got.IsEmpty() {
		t.Fatalf("Discretize(>MaxInt) = %v, want ∅", got)
	}
	if got := Discretize[int](LessThan(math.MinInt)); !got.IsEmpty() {
		t.Fatalf("Discretize(<MinInt) = %v, want ∅", got)
	}
	if got := Discretize[int](AtLeast(math.MaxInt)); !got.Contains(math.MaxInt) {
		t.Fatalf("Discretize(>=MaxInt) = %v, want MaxInt inside", got)
	}
}

func TestNaturalFilter_MaxInt(t *testing.T) {
	f, err := ParseNaturalFilter("0-9223372036854775806_9223372036854775807")
	if err != nil {
		t.Fatal(err)
	}
	if got := f.String(); got != "0-9223372036854775807" {
		t.Fatalf("String() = %q", got)
	}
	if !f.Test(math.MaxInt) || !f.Test(0) {
		t.Fatalf("filter %s must accept 0 and MaxInt", f)
	}

	above := NewNaturalFilter(GreaterThan(math.MaxInt))
	if above.IsNotEmpty() || above.Test(0) {
		t.Fatalf("NewNaturalFilter(>MaxInt) = %q, want empty", above)
	}
}
