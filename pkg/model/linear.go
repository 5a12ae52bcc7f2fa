package model

import (
	"errors"
	"runtime"
	"sync"
)

// LinearRegression via full-batch gradient descent. Weights start at zero so
// repeated fits on identical data give identical models.
type LinearRegression struct {
	W      []float64 // weights
	b      float64   // bias
	Lr     float64
	Epochs int
}

// NewLinearRegression initializes a new Linear Regression model with the
// specified parameters.
func NewLinearRegression(nFeatures int, lr float64, epochs int) *LinearRegression {
	return &LinearRegression{W: make([]float64, nFeatures), b: 0, Lr: lr, Epochs: epochs}
}

// Predict returns predictions for rows in X (rows of features).
// Rows are sharded across CPU cores.
func (m *LinearRegression) Predict(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	pred := make([]float64, len(X))
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		s := w * rowsPerWorker
		e := min(s+rowsPerWorker, len(X))
		if s >= e {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				row := X[i]
				sum := m.b
				for j, v := range row {
					sum += m.W[j] * v
				}
				pred[i] = sum
			}
		}(s, e)
	}
	wg.Wait()
	return pred
}

// Fit trains the model via full-batch gradient descent on the MSE loss.
func (m *LinearRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("linear: empty X")
	}
	if len(X) != len(y) {
		return errors.New("linear: X and y length mismatch")
	}
	if len(m.W) != len(X[0]) {
		return errors.New("linear: feature count mismatch between model and data")
	}
	n := float64(len(X))
	for ep := 0; ep < m.Epochs; ep++ {
		yhat := m.Predict(X)
		gW := make([]float64, len(m.W))
		gb := 0.0
		for i, row := range X {
			d := 2 * (yhat[i] - y[i]) / n
			for j, xij := range row {
				gW[j] += d * xij
			}
			gb += d
		}
		for j := range m.W {
			m.W[j] -= m.Lr * gW[j]
		}
		m.b -= m.Lr * gb
	}
	return nil
}

// FeatureImportances returns the absolute weight per feature.
func (m *LinearRegression) FeatureImportances() []float64 {
	out := make([]float64, len(m.W))
	for i, w := range m.W {
		if w < 0 {
			w = -w
		}
		out[i] = w
	}
	return out
}

// Bias returns the current bias value of the model.
func (m *LinearRegression) Bias() float64 {
	return m.b
}
