package model

import (
	"errors"
	"math"
	"runtime"
	"sync"
)

// LogisticRegression (binary, labels 0/1) with sigmoid. Like
// LinearRegression, weights start at zero for reproducible fits.
type LogisticRegression struct {
	W      []float64 // weights
	b      float64   // bias
	Lr     float64
	Epochs int
}

// NewLogisticRegression initializes a new Logistic Regression model.
func NewLogisticRegression(nFeatures int, lr float64, epochs int) *LogisticRegression {
	return &LogisticRegression{W: make([]float64, nFeatures), b: 0, Lr: lr, Epochs: epochs}
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}

// PredictProba returns the probability scores (between 0 and 1) for each input
// row in X. Rows are sharded across CPU cores.
func (m *LogisticRegression) PredictProba(X [][]float64) []float64 {
	if len(X) == 0 {
		return nil
	}
	out := make([]float64, len(X))
	var wg sync.WaitGroup

	workers := runtime.GOMAXPROCS(0)
	rowsPerWorker := (len(X) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		start := w * rowsPerWorker
		end := min(start+rowsPerWorker, len(X))
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				row := X[i]
				sum := m.b
				for j, v := range row {
					sum += m.W[j] * v
				}
				out[i] = sigmoid(sum)
			}
		}(start, end)
	}
	wg.Wait()
	return out
}

// Predict returns the class labels (0 or 1) based on a 0.5 probability
// threshold.
func (m *LogisticRegression) Predict(X [][]float64) []float64 {
	proba := m.PredictProba(X)
	out := make([]float64, len(proba))
	for i, p := range proba {
		if p >= 0.5 {
			out[i] = 1
		} else {
			out[i] = 0
		}
	}
	return out
}

// Fit trains the model using full-batch gradient descent on the binary
// cross-entropy loss.
func (m *LogisticRegression) Fit(X [][]float64, y []float64) error {
	if len(X) == 0 {
		return errors.New("logistic: empty X")
	}
	if len(X) != len(y) {
		return errors.New("logistic: X and y length mismatch")
	}
	if len(m.W) != len(X[0]) {
		return errors.New("logistic: feature count mismatch between model and data")
	}
	n := float64(len(X))
	for ep := 0; ep < m.Epochs; ep++ {
		p := m.PredictProba(X)
		gW := make([]float64, len(m.W))
		gb := 0.0
		for i, row := range X {
			d := (p[i] - y[i]) / n
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
func (m *LogisticRegression) FeatureImportances() []float64 {
	out := make([]float64, len(m.W))
	for i, w := range m.W {
		if w < 0 {
			w = -w
		}
		out[i] = w
	}
	return out
}
