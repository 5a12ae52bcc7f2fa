package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegressionLearnsSlope(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {3}, {4}}
	y := []float64{0, 2, 4, 6, 8}

	m := NewLinearRegression(1, 0.05, 500)
	require.NoError(t, m.Fit(X, y))

	pred := m.Predict([][]float64{{5}})
	assert.InDelta(t, 10.0, pred[0], 0.2)
	assert.InDelta(t, 2.0, m.W[0], 0.1)
}

func TestLinearRegressionDeterministic(t *testing.T) {
	X := [][]float64{{0, 1}, {1, 0}, {2, 2}, {3, 1}}
	y := []float64{1, 2, 6, 7}

	a := NewLinearRegression(2, 0.05, 100)
	require.NoError(t, a.Fit(X, y))
	b := NewLinearRegression(2, 0.05, 100)
	require.NoError(t, b.Fit(X, y))
	assert.Empty(t, cmp.Diff(a.W, b.W))
}

func TestLinearRegressionFitValidation(t *testing.T) {
	m := NewLinearRegression(2, 0.1, 10)
	assert.Error(t, m.Fit(nil, nil))
	assert.Error(t, m.Fit([][]float64{{1}}, []float64{1}))
	assert.Error(t, m.Fit([][]float64{{1, 2}}, []float64{1, 2}))
}

func TestLogisticRegressionSeparable(t *testing.T) {
	X := [][]float64{{-3}, {-2}, {-1}, {1}, {2}, {3}}
	y := []float64{0, 0, 0, 1, 1, 1}

	m := NewLogisticRegression(1, 0.5, 500)
	require.NoError(t, m.Fit(X, y))

	pred := m.Predict(X)
	assert.Equal(t, y, pred)

	proba := m.PredictProba([][]float64{{-5}, {5}})
	assert.Less(t, proba[0], 0.5)
	assert.Greater(t, proba[1], 0.5)
}

func TestFeatureImportancesAreAbsolute(t *testing.T) {
	m := NewLinearRegression(2, 0.1, 0)
	m.W = []float64{-3, 2}
	assert.Equal(t, []float64{3, 2}, m.FeatureImportances())

	lg := NewLogisticRegression(2, 0.1, 0)
	lg.W = []float64{-1, 0.5}
	assert.Equal(t, []float64{1, 0.5}, lg.FeatureImportances())
}

func TestKNNClassification(t *testing.T) {
	X := [][]float64{{0, 0}, {0, 1}, {1, 0}, {5, 5}, {5, 6}, {6, 5}}
	y := []float64{0, 0, 0, 1, 1, 1}

	m := NewKNN(3, TaskClassification)
	require.NoError(t, m.Fit(X, y))

	pred := m.Predict([][]float64{{0.5, 0.5}, {5.5, 5.5}})
	assert.Equal(t, []float64{0, 1}, pred)
}

func TestKNNRegressionAveragesNeighbors(t *testing.T) {
	X := [][]float64{{0}, {1}, {2}, {10}}
	y := []float64{0, 1, 2, 10}

	m := NewKNN(3, TaskRegression)
	require.NoError(t, m.Fit(X, y))

	pred := m.Predict([][]float64{{1}})
	assert.InDelta(t, 1.0, pred[0], 1e-12)
}

func TestKNNRejectsTooFewRows(t *testing.T) {
	m := NewKNN(5, TaskClassification)
	assert.Error(t, m.Fit([][]float64{{1}}, []float64{0}))
}
