package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"featselect/pkg/model"
	"featselect/pkg/stats"
)

// varImp attributes importance to each column by its variance. Deterministic
// and sensitive to which columns are present, which is what RFE exercises.
type varImp struct {
	imps []float64
}

func (m *varImp) Fit(X [][]float64, y []float64) error {
	cols := len(X[0])
	m.imps = make([]float64, cols)
	for j := 0; j < cols; j++ {
		col := make([]float64, len(X))
		for i := range X {
			col[i] = X[i][j]
		}
		m.imps[j] = stats.Variance(col)
	}
	return nil
}

func (m *varImp) Predict(X [][]float64) []float64 { return make([]float64, len(X)) }

func (m *varImp) FeatureImportances() []float64 { return m.imps }

// plainModel has no importances at all.
type plainModel struct{}

func (plainModel) Fit(X [][]float64, y []float64) error { return nil }
func (plainModel) Predict(X [][]float64) []float64      { return make([]float64, len(X)) }

func varImpEstimator(name string) model.Estimator {
	return model.Estimator{
		Name:  name,
		Task:  model.TaskClassification,
		Build: func(n int) model.Model { return &varImp{} },
	}
}

func TestImportanceRanking(t *testing.T) {
	results, err := Importance{Estimators: []model.Estimator{varImpEstimator("Stub")}, Rank: true}.Score(rankTable(t))
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, "FeatureImportance Stub", res.Column)
	assert.Equal(t, 1.0, res.Values["x1"])
	assert.Equal(t, 3.0, res.Values["x3"])
}

func TestImportanceRequiresImporter(t *testing.T) {
	est := model.Estimator{
		Name:  "Plain",
		Task:  model.TaskClassification,
		Build: func(n int) model.Model { return plainModel{} },
	}
	_, err := Importance{Estimators: []model.Estimator{est}}.Score(rankTable(t))
	assert.ErrorIs(t, err, ErrNoImportances)
}

func TestRFEEliminationOrder(t *testing.T) {
	results, err := RFE{Estimators: []model.Estimator{varImpEstimator("Stub")}, Rank: false}.Score(rankTable(t))
	require.NoError(t, err)
	require.Len(t, results, 1)

	res := results[0]
	assert.Equal(t, "RFE Stub", res.Column)
	// x3 is constant and goes first (three features remained), x2 next, the
	// high-variance x1 survives with rank 1.
	assert.Equal(t, 3.0, res.Values["x3"])
	assert.Equal(t, 2.0, res.Values["x2"])
	assert.Equal(t, 1.0, res.Values["x1"])
}
