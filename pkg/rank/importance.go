package rank

import (
	"errors"
	"fmt"

	"featselect/pkg/dataset"
	"featselect/pkg/model"
)

// ErrNoImportances is returned when an estimator's model cannot attribute
// importance to its features.
var ErrNoImportances = errors.New("rank: estimator does not expose feature importances")

// Importance ranks features by the importance a fitted estimator assigns
// them. One "FeatureImportance <estimator>" column per estimator (higher is
// better).
type Importance struct {
	Estimators []model.Estimator
	Rank       bool
}

func (m Importance) Score(t *dataset.Table) ([]Result, error) {
	names := t.FeatureNames()
	X, err := t.Matrix(names)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(m.Estimators))
	for _, est := range m.Estimators {
		imps, err := fitImportances(est, X, t.Target())
		if err != nil {
			return nil, err
		}
		values := make(map[string]float64, len(names))
		for i, name := range names {
			values[name] = imps[i]
		}
		results = append(results, newResult("FeatureImportance "+est.Name, t, values, m.Rank, false))
	}
	return results, nil
}

func fitImportances(est model.Estimator, X [][]float64, y []float64) ([]float64, error) {
	mdl := est.Build(len(X[0]))
	imp, ok := mdl.(model.FeatureImporter)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoImportances, est.Name)
	}
	if err := mdl.Fit(X, y); err != nil {
		return nil, fmt.Errorf("rank: fitting %s: %w", est.Name, err)
	}
	return imp.FeatureImportances(), nil
}
