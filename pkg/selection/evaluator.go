package selection

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"featselect/pkg/crossval"
	"featselect/pkg/dataset"
	"featselect/pkg/model"
	"featselect/pkg/rank"
)

// ErrNoEstimators is returned when an evaluator is configured without
// estimators.
var ErrNoEstimators = errors.New("selection: no estimators")

// ErrNoMetrics is returned when an evaluator is configured without metrics.
var ErrNoMetrics = errors.New("selection: no metrics")

// Evaluator sweeps every estimator and metric over the elimination subsets of
// a consensus ordering, cross-validating each combination.
type Evaluator struct {
	Estimators []model.Estimator
	Metrics    []string
	Folds      int // cross-validation folds, >= 2
	Step       int // features removed per elimination step, >= 1
	Workers    int // concurrent (estimator, metric) sweeps; <= 0 means serial
	Logger     *zap.Logger
}

// validate runs the cheap configuration checks before any fitting starts.
func (e *Evaluator) validate() error {
	if len(e.Estimators) == 0 {
		return ErrNoEstimators
	}
	if len(e.Metrics) == 0 {
		return ErrNoMetrics
	}
	if e.Folds < 2 {
		return fmt.Errorf("selection: fold count %d, need at least 2", e.Folds)
	}
	if e.Step < 1 {
		return fmt.Errorf("selection: step %d, need at least 1", e.Step)
	}
	for _, est := range e.Estimators {
		if err := model.ValidateMetrics(e.Metrics, est.Task); err != nil {
			return fmt.Errorf("estimator %s: %w", est.Name, err)
		}
	}
	return nil
}

// Run evaluates every (estimator, metric, subset) combination with k-fold
// cross-validation and returns the canonically sorted log. A combination
// whose fit fails is recorded with its error and the sweep continues. The
// context is checked between subset evaluations, so cancellation takes
// effect without leaving a half-written record.
func (e *Evaluator) Run(ctx context.Context, t *dataset.Table, consensus *rank.Summary) (*Log, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	subsets := Subsets(consensus.Features(), e.Step)
	if len(subsets) == 0 {
		return nil, errors.New("selection: consensus table has no features")
	}

	type task struct {
		est    model.Estimator
		scorer model.Scorer
	}
	var tasks []task
	for _, est := range e.Estimators {
		for _, name := range e.Metrics {
			scorer, err := model.LookupScorer(name)
			if err != nil {
				return nil, err
			}
			tasks = append(tasks, task{est: est, scorer: scorer})
		}
	}

	results := make([][]Record, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	if e.Workers > 0 {
		g.SetLimit(e.Workers)
	}
	for i, tk := range tasks {
		i, tk := i, tk
		g.Go(func() error {
			logger.Info("cross-validating",
				zap.String("estimator", tk.est.Name),
				zap.String("metric", tk.scorer.Name))
			recs, err := e.sweep(ctx, t, tk.est, tk.scorer, subsets, logger)
			if err != nil {
				return err
			}
			results[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log := &Log{}
	for _, recs := range results {
		log.Records = append(log.Records, recs...)
	}
	log.sortCanonical()
	return log, nil
}

// sweep runs one estimator and metric over every subset.
func (e *Evaluator) sweep(ctx context.Context, t *dataset.Table, est model.Estimator, scorer model.Scorer, subsets []Subset, logger *zap.Logger) ([]Record, error) {
	recs := make([]Record, 0, len(subsets))
	for _, sub := range subsets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec := Record{Estimator: est.Name, Metric: scorer.Name, Dropped: sub.Dropped}

		X, err := t.Matrix(sub.Features)
		if err != nil {
			return nil, err
		}
		scores, err := crossval.CrossValidate(est, X, t.Target(), e.Folds, scorer)
		if err != nil {
			// A degenerate subset for one estimator must not abort the sweep.
			rec.Err = err.Error()
			logger.Warn("subset evaluation failed",
				zap.String("estimator", est.Name),
				zap.String("metric", scorer.Name),
				zap.Int("dropped", sub.Dropped),
				zap.Error(err))
		} else {
			rec.TrainScore = scores.MeanTrain()
			rec.ValidationScore = scores.MeanTest()
		}
		recs = append(recs, rec)
	}
	return recs, nil
}
