// Package selection drives progressive feature elimination: it evaluates
// every estimator and metric over a deterministic sequence of shrinking
// feature subsets and recovers the subset that maximized held-out
// performance.
package selection

// Subset is one step of the elimination sweep: the number of consensus-worst
// features dropped and the names that remain, in consensus order.
type Subset struct {
	Dropped  int
	Features []string
}

// Subsets produces the elimination sequence for a consensus feature ordering
// (most important first) and a step size. Drop counts follow 0, step, 2*step
// and so on while they stay below the feature count, so the subsets shrink
// from all features down to at least one and are never empty. The sequence
// length is ceil(F/step).
func Subsets(order []string, step int) []Subset {
	f := len(order)
	if f == 0 || step < 1 {
		return nil
	}
	out := make([]Subset, 0, (f+step-1)/step)
	for i := 0; i < f; i += step {
		out = append(out, Subset{Dropped: i, Features: order[:f-i]})
	}
	return out
}
