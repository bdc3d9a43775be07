package interval

// LinearEquation is y = Slope*x + Intercept.
type LinearEquation struct {
	Slope     float64
	Intercept float64
}

// LinearThrough returns the equation mapping the bounds of from onto the
// bounds of to. Both ranges must be bounded; a degenerate from maps every x
// to the lower bound of to.
func LinearThrough(from, to Range[float64]) (LinearEquation, bool) {
	if !from.IsLowerBounded() || !from.IsUpperBounded() || !to.IsLowerBounded() || !to.IsUpperBounded() {
		return LinearEquation{}, false
	}
	x0, x1 := from.Lower().Value(), from.Upper().Value()
	y0, y1 := to.Lower().Value(), to.Upper().Value()
	if x1 == x0 {
		return LinearEquation{Intercept: y0}, true
	}
	slope := (y1 - y0) / (x1 - x0)
	return LinearEquation{Slope: slope, Intercept: y0 - slope*x0}, true
}

func (e LinearEquation) Apply(x float64) float64 {
	return e.Slope*x + e.Intercept
}

// SubProgress maps a global progress in [0,1] to the local progress inside
// window: 0 before the window, 1 after it, linear in between. An unbounded or
// empty window yields 0.
func SubProgress(progress float64, window Range[float64]) float64 {
	eq, ok := LinearThrough(window, Closed(0.0, 1.0))
	if !ok {
		return 0
	}
	lo, hi := window.Lower().Value(), window.Upper().Value()
	switch {
	case progress <= lo:
		if progress == lo && lo == hi {
			return 1
		}
		return 0
	case progress >= hi:
		return 1
	}
	return eq.Apply(progress)
}

// SplitProgress cuts [0,1] into n equal consecutive windows, each closed on
// the left and open on the right except the last one.
func SplitProgress(n int) []Range[float64] {
	if n <= 0 {
		return nil
	}
	windows := make([]Range[float64], n)
	for i := 0; i < n; i++ {
		lo := float64(i) / float64(n)
		hi := float64(i+1) / float64(n)
		if i == n-1 {
			windows[i] = Closed(lo, 1.0)
		} else {
			windows[i] = CO(At(lo), At(hi))
		}
	}
	return windows
}
