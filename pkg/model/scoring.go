package model

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownMetric is returned when a metric name has no registered scorer.
var ErrUnknownMetric = errors.New("model: unknown metric")

// ErrTaskMismatch is returned when a metric cannot score an estimator's task,
// e.g. f1 on a regression model.
var ErrTaskMismatch = errors.New("model: metric does not match estimator task")

// Scorer computes a named performance metric over true and predicted values.
// Score is oriented so that higher is always better; loss metrics are negated
// (neg_mean_squared_error and friends).
type Scorer struct {
	Name  string
	Task  Task
	Score func(yTrue, yPred []float64) float64
}

func MSE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		s += d * d
	}
	return s / n
}

func MAE(yTrue, yPred []float64) float64 {
	n := float64(len(yTrue))
	s := 0.0
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		if d < 0 {
			d = -d
		}
		s += d
	}
	return s / n
}

func RMSE(yTrue, yPred []float64) float64 { return math.Sqrt(MSE(yTrue, yPred)) }

func R2(yTrue, yPred []float64) float64 {
	m := 0.0
	for _, v := range yTrue {
		m += v
	}
	m /= float64(len(yTrue))
	ssTot := 0.0
	ssRes := 0.0
	for i := range yTrue {
		d := yTrue[i] - m
		ssTot += d * d
		r := yTrue[i] - yPred[i]
		ssRes += r * r
	}
	if ssTot == 0 {
		return 0
	}
	return 1 - ssRes/ssTot
}

// Accuracy treats labels as 0/1 encoded in float64.
func Accuracy(yTrue, yPred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue))
}

// PrecisionRecallF1 computes binary classification metrics for 0/1 labels.
func PrecisionRecallF1(yTrue, yPred []float64) (prec, rec, f1 float64) {
	tp, fp, fn := 0, 0, 0
	for i := range yTrue {
		if yPred[i] == 1 && yTrue[i] == 1 {
			tp++
		}
		if yPred[i] == 1 && yTrue[i] == 0 {
			fp++
		}
		if yPred[i] == 0 && yTrue[i] == 1 {
			fn++
		}
	}
	if tp+fp > 0 {
		prec = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		rec = float64(tp) / float64(tp+fn)
	}
	if prec+rec > 0 {
		f1 = 2 * prec * rec / (prec + rec)
	}
	return
}

var scorers = map[string]Scorer{
	"accuracy": {Name: "accuracy", Task: TaskClassification, Score: Accuracy},
	"precision": {Name: "precision", Task: TaskClassification, Score: func(yt, yp []float64) float64 {
		p, _, _ := PrecisionRecallF1(yt, yp)
		return p
	}},
	"recall": {Name: "recall", Task: TaskClassification, Score: func(yt, yp []float64) float64 {
		_, r, _ := PrecisionRecallF1(yt, yp)
		return r
	}},
	"f1": {Name: "f1", Task: TaskClassification, Score: func(yt, yp []float64) float64 {
		_, _, f := PrecisionRecallF1(yt, yp)
		return f
	}},
	"r2": {Name: "r2", Task: TaskRegression, Score: R2},
	"neg_mean_squared_error": {Name: "neg_mean_squared_error", Task: TaskRegression, Score: func(yt, yp []float64) float64 {
		return -MSE(yt, yp)
	}},
	"neg_root_mean_squared_error": {Name: "neg_root_mean_squared_error", Task: TaskRegression, Score: func(yt, yp []float64) float64 {
		return -RMSE(yt, yp)
	}},
	"neg_mean_absolute_error": {Name: "neg_mean_absolute_error", Task: TaskRegression, Score: func(yt, yp []float64) float64 {
		return -MAE(yt, yp)
	}},
}

// LookupScorer resolves a metric name to its scorer.
func LookupScorer(name string) (Scorer, error) {
	s, ok := scorers[name]
	if !ok {
		return Scorer{}, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
	return s, nil
}

// ValidateMetrics checks that every metric name resolves and is computable for
// the given task. Meant to run at configuration time, before any fitting.
func ValidateMetrics(names []string, task Task) error {
	for _, name := range names {
		s, err := LookupScorer(name)
		if err != nil {
			return err
		}
		if s.Task != task {
			return fmt.Errorf("%w: %q on a %s estimator", ErrTaskMismatch, name, task)
		}
	}
	return nil
}
