package model

import (
	"errors"
	"runtime"
	"sort"
	"sync"
)

// KNN supports binary classification (y holds 0/1 labels) or regression,
// depending on the task it is constructed for.
type KNN struct {
	K    int
	Task Task
	X    [][]float64
	y    []float64
}

// NewKNN creates and returns a new KNN model.
func NewKNN(k int, task Task) *KNN {
	return &KNN{K: k, Task: task}
}

// Fit trains the model by simply storing the training data and labels.
// This is the "lazy" part of a KNN model.
func (m *KNN) Fit(X [][]float64, y []float64) error {
	if len(X) != len(y) {
		return errors.New("knn: the number of feature vectors must match the number of labels")
	}
	if len(X) < m.K {
		return errors.New("knn: fewer training rows than neighbors")
	}
	m.X = X
	m.y = y
	return nil
}

// Predict finds the K-nearest neighbors for each test point and returns a
// prediction. Rows are sharded across CPU cores.
func (m *KNN) Predict(X [][]float64) []float64 {
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
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				out[i] = m.predictSingle(X[i])
			}
		}(start, end)
	}

	wg.Wait()
	return out
}

// predictSingle finds the K-nearest neighbors for a single test point.
func (m *KNN) predictSingle(xi []float64) float64 {
	// A neighbor's squared distance and its label.
	type pair struct {
		d float64
		v float64
	}

	// Maintain a small sorted slice of the K-nearest neighbors found so far.
	nbrs := make([]pair, 0, m.K+1)

	for j, xj := range m.X {
		distSquared := euclidSquared(xi, xj)
		neighbor := pair{d: distSquared, v: m.y[j]}

		if len(nbrs) < m.K {
			nbrs = append(nbrs, neighbor)
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		} else if distSquared < nbrs[len(nbrs)-1].d {
			nbrs[len(nbrs)-1] = neighbor
			sort.Slice(nbrs, func(a, b int) bool { return nbrs[a].d < nbrs[b].d })
		}
	}

	sum := 0.0
	for _, p := range nbrs {
		sum += p.v
	}
	mean := sum / float64(len(nbrs))

	if m.Task == TaskRegression {
		return mean
	}
	// For binary labels (0/1), a simple majority vote determines the prediction.
	if mean >= 0.5 {
		return 1.0
	}
	return 0.0
}

// euclidSquared computes the squared Euclidean distance between two vectors.
// Squared distance avoids square roots during comparisons.
func euclidSquared(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
