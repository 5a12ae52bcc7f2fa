package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"featselect/pkg/config"
	"featselect/pkg/dataset"
	"featselect/pkg/model"
	"featselect/pkg/rank"
	"featselect/pkg/report"
	"featselect/pkg/selection"
)

func main() {
	var (
		dataPath   = flag.String("data", "", "path to the input CSV (headered, numeric)")
		configPath = flag.String("config", "", "optional YAML run configuration")
		plots      = flag.Bool("plots", true, "write per-estimator performance curves")
	)
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *dataPath == "" {
		logger.Fatal("missing required --data flag")
	}

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			logger.Fatal("loading config", zap.Error(err))
		}
	}

	if err := run(cfg, *dataPath, *plots, logger); err != nil {
		logger.Fatal("feature selection failed", zap.Error(err))
	}
}

func run(cfg config.Config, dataPath string, plots bool, logger *zap.Logger) error {
	table, skipped, err := dataset.LoadCSV(dataPath, cfg.Target)
	if err != nil {
		return err
	}
	if skipped > 0 {
		logger.Warn("skipped unparseable rows", zap.Int("rows", skipped))
	}
	logger.Info("loaded dataset",
		zap.Int("rows", table.Rows()),
		zap.Int("features", table.NumFeatures()))

	estimators := buildEstimators(cfg)
	importable := importableOf(estimators)

	methods := []rank.Method{
		rank.FScore{Classification: cfg.Classification, Rank: cfg.Rank},
		rank.Variance{Rank: cfg.Rank},
		rank.TargetCorrelation{Rank: cfg.Rank},
		rank.Importance{Estimators: importable, Rank: cfg.Rank},
		rank.RFE{Estimators: importable, Rank: cfg.Rank},
	}

	var results []rank.Result
	for _, m := range methods {
		rs, err := m.Score(table)
		if err != nil {
			return err
		}
		results = append(results, rs...)
	}

	consensus, err := rank.Aggregate(results, rank.Options{Strict: cfg.Strict, Logger: logger})
	if err != nil {
		return err
	}
	if cfg.SaveCSV {
		path, err := consensus.SaveCSV(cfg.OutputDir)
		if err != nil {
			return err
		}
		logger.Info("wrote consensus summary", zap.String("path", path))
	}

	evaluator := &selection.Evaluator{
		Estimators: estimators,
		Metrics:    cfg.Metrics,
		Folds:      cfg.Folds,
		Step:       cfg.Step,
		Workers:    cfg.Workers,
		Logger:     logger,
	}
	log, err := evaluator.Run(context.Background(), table, consensus)
	if err != nil {
		return err
	}
	if cfg.SaveCSV {
		path, err := log.SaveCSV(cfg.OutputDir)
		if err != nil {
			return err
		}
		logger.Info("wrote evaluation log", zap.String("path", path))
	}

	best := selection.BestSubsets(log, consensus)
	for _, b := range best {
		logger.Info("best subset",
			zap.String("estimator", b.Estimator),
			zap.String("metric", b.Metric),
			zap.Int("dropped", b.Dropped),
			zap.Float64("validation", b.ValidationScore))
	}

	for _, metric := range cfg.Metrics {
		usage := selection.UsageSummary(best, metric, consensus)
		fmt.Printf("\nFeatures used (%s):\n", metric)
		if err := usage.WriteCSV(os.Stdout); err != nil {
			return err
		}
		if plots {
			paths, err := report.PlotCurves(log, best, metric, cfg.OutputDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				logger.Info("wrote plot", zap.String("path", p))
			}
		}
	}
	return nil
}

// buildEstimators assembles the estimator roster for the configured task.
func buildEstimators(cfg config.Config) []model.Estimator {
	if cfg.Classification {
		return []model.Estimator{
			{
				Name: "LogisticRegression",
				Task: model.TaskClassification,
				Build: func(n int) model.Model {
					return model.NewLogisticRegression(n, 0.1, 200)
				},
			},
			{
				Name: "KNeighborsClassifier",
				Task: model.TaskClassification,
				Build: func(n int) model.Model {
					return model.NewKNN(5, model.TaskClassification)
				},
			},
		}
	}
	return []model.Estimator{
		{
			Name: "LinearRegression",
			Task: model.TaskRegression,
			Build: func(n int) model.Model {
				return model.NewLinearRegression(n, 0.01, 200)
			},
		},
		{
			Name: "KNeighborsRegressor",
			Task: model.TaskRegression,
			Build: func(n int) model.Model {
				return model.NewKNN(5, model.TaskRegression)
			},
		},
	}
}

// importableOf filters the roster down to estimators whose models can rank
// features by importance.
func importableOf(estimators []model.Estimator) []model.Estimator {
	var out []model.Estimator
	for _, est := range estimators {
		if _, ok := est.Build(1).(model.FeatureImporter); ok {
			out = append(out, est)
		}
	}
	return out
}
