// Package rank scores the predictive relevance of features with several
// independent techniques and combines the results into a consensus ordering.
package rank

import "featselect/pkg/dataset"

// Result is one named column of per-feature scores or ranks produced by a
// ranking method. Order preserves the feature insertion order; Values must
// have exactly the names in Order as its domain.
type Result struct {
	Column string
	Order  []string
	Values map[string]float64
}

// Method scores every feature of a table. A method may contribute more than
// one column (the F-score methods emit both an F-value and a p-value column).
type Method interface {
	Score(t *dataset.Table) ([]Result, error)
}

// ranked converts raw scores to 1-based ranks where ties share the maximal
// rank of the tied group. With ascending=false the highest score gets rank 1,
// so lower ranks always convey higher importance for descending columns.
func ranked(order []string, values map[string]float64, ascending bool) map[string]float64 {
	out := make(map[string]float64, len(values))
	for _, name := range order {
		v := values[name]
		r := 0
		for _, other := range order {
			o := values[other]
			if ascending && o <= v {
				r++
			}
			if !ascending && o >= v {
				r++
			}
		}
		out[name] = float64(r)
	}
	return out
}

func newResult(column string, t *dataset.Table, values map[string]float64, rank, ascending bool) Result {
	order := t.FeatureNames()
	if rank {
		values = ranked(order, values, ascending)
	}
	return Result{Column: column, Order: append([]string(nil), order...), Values: values}
}
