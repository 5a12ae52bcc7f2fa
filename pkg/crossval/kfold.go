package crossval

import (
	"errors"
	"fmt"

	"featselect/pkg/model"
)

// ErrBadFoldCount is returned when k is below 2 or exceeds the row count.
var ErrBadFoldCount = errors.New("crossval: fold count must satisfy 2 <= k <= rows")

// KFoldSplit partitions n row indices into k contiguous test folds. Fold f
// holds rows [f*n/k, (f+1)*n/k). No shuffling: a fixed n and k always produce
// the same partition, which keeps repeated runs bit-identical.
func KFoldSplit(n, k int) [][]int {
	folds := make([][]int, k)
	for f := 0; f < k; f++ {
		lo := f * n / k
		hi := (f + 1) * n / k
		fold := make([]int, 0, hi-lo)
		for i := lo; i < hi; i++ {
			fold = append(fold, i)
		}
		folds[f] = fold
	}
	return folds
}

// Scores holds per-fold training and held-out scores from one
// cross-validation run.
type Scores struct {
	Train []float64
	Test  []float64
}

// MeanTrain averages the per-fold training scores.
func (s Scores) MeanTrain() float64 { return mean(s.Train) }

// MeanTest averages the per-fold held-out scores.
func (s Scores) MeanTest() float64 { return mean(s.Test) }

func mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// CrossValidate runs k-fold cross-validation of a fresh model per fold, built
// by est.Build for the width of X, scored on both the training rows and the
// held-out rows. X is only ever read.
func CrossValidate(est model.Estimator, X [][]float64, y []float64, k int, scorer model.Scorer) (Scores, error) {
	n := len(X)
	if k < 2 || k > n {
		return Scores{}, fmt.Errorf("%w: k=%d rows=%d", ErrBadFoldCount, k, n)
	}
	if len(y) != n {
		return Scores{}, errors.New("crossval: X and y length mismatch")
	}

	out := Scores{Train: make([]float64, 0, k), Test: make([]float64, 0, k)}
	for _, testIdx := range KFoldSplit(n, k) {
		inTest := make([]bool, n)
		for _, i := range testIdx {
			inTest[i] = true
		}
		XTrain := make([][]float64, 0, n-len(testIdx))
		yTrain := make([]float64, 0, n-len(testIdx))
		XTest := make([][]float64, 0, len(testIdx))
		yTest := make([]float64, 0, len(testIdx))
		for i := 0; i < n; i++ {
			if inTest[i] {
				XTest = append(XTest, X[i])
				yTest = append(yTest, y[i])
			} else {
				XTrain = append(XTrain, X[i])
				yTrain = append(yTrain, y[i])
			}
		}

		m := est.Build(len(X[0]))
		if err := m.Fit(XTrain, yTrain); err != nil {
			return Scores{}, fmt.Errorf("crossval: fitting %s: %w", est.Name, err)
		}
		out.Train = append(out.Train, scorer.Score(yTrain, m.Predict(XTrain)))
		out.Test = append(out.Test, scorer.Score(yTest, m.Predict(XTest)))
	}
	return out, nil
}
