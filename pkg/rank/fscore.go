package rank

import (
	"errors"

	"gonum.org/v1/gonum/stat/distuv"

	"featselect/pkg/dataset"
	"featselect/pkg/stats"
)

// FScore ranks features by univariate F-statistics against the target:
// one-way ANOVA grouped by class label for classification, the squared
// correlation F-test for regression. It contributes two columns, "F-value"
// (higher is better) and "p-value" (lower is better).
type FScore struct {
	Classification bool
	Rank           bool
}

func (m FScore) Score(t *dataset.Table) ([]Result, error) {
	fvals := make(map[string]float64, t.NumFeatures())
	pvals := make(map[string]float64, t.NumFeatures())

	y := t.Target()
	var labels []int
	if m.Classification {
		labels = make([]int, len(y))
		for i, v := range y {
			labels[i] = int(v)
		}
	}

	for _, name := range t.FeatureNames() {
		col, _ := t.Column(name)
		var f float64
		var d1, d2 int
		if m.Classification {
			f, d1, d2 = stats.FOneWay(stats.GroupBy(col, labels))
		} else {
			f, d1, d2 = fRegression(col, y)
		}
		fvals[name] = f
		pvals[name] = fPValue(f, d1, d2)
	}
	if len(fvals) == 0 {
		return nil, errors.New("rank: no features to score")
	}
	return []Result{
		newResult("F-value", t, fvals, m.Rank, false),
		newResult("p-value", t, pvals, m.Rank, true),
	}, nil
}

// fRegression computes the univariate regression F-statistic
// r^2 / (1 - r^2) * (n - 2) with 1 and n-2 degrees of freedom.
func fRegression(x, y []float64) (f float64, d1, d2 int) {
	n := len(x)
	d1, d2 = 1, n-2
	if d2 <= 0 {
		return 0, d1, d2
	}
	r := stats.Correlation(x, y)
	r2 := r * r
	if r2 >= 1 {
		return 0, d1, d2
	}
	return r2 / (1 - r2) * float64(d2), d1, d2
}

// fPValue is the upper-tail probability of the F distribution.
func fPValue(f float64, d1, d2 int) float64 {
	if d1 <= 0 || d2 <= 0 {
		return 1
	}
	dist := distuv.F{D1: float64(d1), D2: float64(d2)}
	return 1 - dist.CDF(f)
}
