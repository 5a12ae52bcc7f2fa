package rank

import (
	"featselect/pkg/dataset"
	"featselect/pkg/stats"
)

// Variance ranks features by their variance; near-constant columns carry
// little signal and sink to the bottom. Contributes one "Variance" column
// (higher is better).
type Variance struct {
	Rank bool
}

func (m Variance) Score(t *dataset.Table) ([]Result, error) {
	values := make(map[string]float64, t.NumFeatures())
	for _, name := range t.FeatureNames() {
		col, _ := t.Column(name)
		values[name] = stats.Variance(col)
	}
	return []Result{newResult("Variance", t, values, m.Rank, false)}, nil
}
