package rank

import (
	"featselect/pkg/dataset"
	"featselect/pkg/model"
)

// RFE ranks features by recursive elimination: fit, drop the least-important
// remaining feature, repeat until one survives. The survivor gets rank 1; a
// feature eliminated while r features remained gets rank r, so features cut
// early carry the highest ranks. One "RFE <estimator>" column per estimator
// (lower is better).
type RFE struct {
	Estimators []model.Estimator
	Rank       bool
}

func (m RFE) Score(t *dataset.Table) ([]Result, error) {
	results := make([]Result, 0, len(m.Estimators))
	for _, est := range m.Estimators {
		values, err := m.eliminate(est, t)
		if err != nil {
			return nil, err
		}
		results = append(results, newResult("RFE "+est.Name, t, values, m.Rank, true))
	}
	return results, nil
}

func (m RFE) eliminate(est model.Estimator, t *dataset.Table) (map[string]float64, error) {
	remaining := append([]string(nil), t.FeatureNames()...)
	values := make(map[string]float64, len(remaining))

	for len(remaining) > 1 {
		X, err := t.Matrix(remaining)
		if err != nil {
			return nil, err
		}
		imps, err := fitImportances(est, X, t.Target())
		if err != nil {
			return nil, err
		}
		weakest := 0
		for i, v := range imps {
			if v < imps[weakest] {
				weakest = i
			}
		}
		values[remaining[weakest]] = float64(len(remaining))
		remaining = append(remaining[:weakest], remaining[weakest+1:]...)
	}
	values[remaining[0]] = 1
	return values, nil
}
