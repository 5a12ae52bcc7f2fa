package rank

import (
	"math"

	"featselect/pkg/dataset"
	"featselect/pkg/stats"
)

// TargetCorrelation ranks features by the absolute Pearson correlation with
// the target. Contributes one "TargetCorrelation" column (higher is better).
type TargetCorrelation struct {
	Rank bool
}

func (m TargetCorrelation) Score(t *dataset.Table) ([]Result, error) {
	values := make(map[string]float64, t.NumFeatures())
	y := t.Target()
	for _, name := range t.FeatureNames() {
		col, _ := t.Column(name)
		values[name] = math.Abs(stats.Correlation(col, y))
	}
	return []Result{newResult("TargetCorrelation", t, values, m.Rank, false)}, nil
}
