// Package config holds the run configuration for a feature-selection sweep.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config captures every knob of a sweep. The cross-product
// estimators x metrics x subsets x folds has no hidden constants: fold count,
// step and worker count are always explicit here.
type Config struct {
	// Target is the name of the target column in the input CSV.
	Target string `yaml:"target"`
	// Classification tells the pipeline whether the task is classification
	// or regression; it selects the F-score variant and the valid metrics.
	Classification bool `yaml:"classification"`
	// Rank converts raw method scores to 1-based ranks before aggregation.
	Rank bool `yaml:"rank"`
	// Strict fails the run when ranking methods disagree on the feature
	// domain instead of dropping the mismatched features with a warning.
	Strict bool `yaml:"strict"`
	// Metrics are the scoring metrics to sweep (e.g. accuracy, f1, r2).
	Metrics []string `yaml:"metrics"`
	// Folds is the cross-validation fold count.
	Folds int `yaml:"folds"`
	// Step is the number of features removed per elimination step.
	Step int `yaml:"step"`
	// Workers bounds the concurrent (estimator, metric) sweeps.
	Workers int `yaml:"workers"`
	// OutputDir receives the timestamped CSV dumps and plots.
	OutputDir string `yaml:"output_dir"`
	// SaveCSV controls whether the summary and log are persisted.
	SaveCSV bool `yaml:"save_csv"`
}

// Default returns the documented defaults: 3 folds, step 1, 4 workers,
// ranked lenient classification scoring accuracy.
func Default() Config {
	return Config{
		Target:         "target",
		Classification: true,
		Rank:           true,
		Metrics:        []string{"accuracy"},
		Folds:          3,
		Step:           1,
		Workers:        4,
		OutputDir:      ".",
		SaveCSV:        true,
	}
}

// Load reads a YAML file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate fails fast on configuration that would otherwise surface
// mid-sweep.
func (c Config) Validate() error {
	if c.Target == "" {
		return fmt.Errorf("config: target column name is required")
	}
	if len(c.Metrics) == 0 {
		return fmt.Errorf("config: at least one metric is required")
	}
	if c.Folds < 2 {
		return fmt.Errorf("config: folds %d, need at least 2", c.Folds)
	}
	if c.Step < 1 {
		return fmt.Errorf("config: step %d, need at least 1", c.Step)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers %d, must not be negative", c.Workers)
	}
	return nil
}
