package crossval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"featselect/pkg/model"
)

func TestKFoldSplitContiguousAndComplete(t *testing.T) {
	folds := KFoldSplit(10, 3)
	require.Len(t, folds, 3)

	seen := make(map[int]int)
	for _, fold := range folds {
		for _, i := range fold {
			seen[i]++
		}
	}
	// Every row lands in exactly one test fold.
	require.Len(t, seen, 10)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 1, seen[i])
	}

	// Fold sizes differ by at most one.
	assert.Equal(t, []int{0, 1, 2}, folds[0])
	assert.Equal(t, []int{3, 4, 5}, folds[1])
	assert.Equal(t, []int{6, 7, 8, 9}, folds[2])
}

func TestKFoldSplitStable(t *testing.T) {
	assert.Empty(t, cmp.Diff(KFoldSplit(17, 4), KFoldSplit(17, 4)))
}

// fixedModel predicts the mean of its training targets.
type fixedModel struct {
	mean float64
}

func (m *fixedModel) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("empty training set")
	}
	sum := 0.0
	for _, v := range y {
		sum += v
	}
	m.mean = sum / float64(len(y))
	return nil
}

func (m *fixedModel) Predict(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range out {
		out[i] = m.mean
	}
	return out
}

func testData(n int) ([][]float64, []float64) {
	X := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		X[i] = []float64{float64(i), float64(i * i)}
		y[i] = float64(i)
	}
	return X, y
}

func TestCrossValidateFoldScores(t *testing.T) {
	X, y := testData(9)
	est := model.Estimator{
		Name:  "mean",
		Task:  model.TaskRegression,
		Build: func(n int) model.Model { return &fixedModel{} },
	}
	scorer, err := model.LookupScorer("neg_mean_absolute_error")
	require.NoError(t, err)

	scores, err := CrossValidate(est, X, y, 3, scorer)
	require.NoError(t, err)
	require.Len(t, scores.Train, 3)
	require.Len(t, scores.Test, 3)

	// Identical inputs give identical scores.
	again, err := CrossValidate(est, X, y, 3, scorer)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(scores, again))

	// The mean predictor is worse on the held-out block than in sample.
	assert.Less(t, scores.MeanTest(), scores.MeanTrain())
}

func TestCrossValidateBadFoldCount(t *testing.T) {
	X, y := testData(5)
	est := model.Estimator{
		Name:  "mean",
		Task:  model.TaskRegression,
		Build: func(n int) model.Model { return &fixedModel{} },
	}
	scorer, _ := model.LookupScorer("r2")

	_, err := CrossValidate(est, X, y, 1, scorer)
	assert.ErrorIs(t, err, ErrBadFoldCount)
	_, err = CrossValidate(est, X, y, 6, scorer)
	assert.ErrorIs(t, err, ErrBadFoldCount)
}

func TestCrossValidatePropagatesFitErrors(t *testing.T) {
	est := model.Estimator{
		Name:  "failing",
		Task:  model.TaskRegression,
		Build: func(n int) model.Model { return failingModel{} },
	}
	X, y := testData(6)
	scorer, _ := model.LookupScorer("r2")
	_, err := CrossValidate(est, X, y, 2, scorer)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failing")
}

type failingModel struct{}

func (failingModel) Fit(X [][]float64, y []float64) error { return errors.New("cannot fit") }
func (failingModel) Predict(X [][]float64) []float64      { return nil }
