package selection

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"
)

// Record is one evaluated (estimator, metric, subset) cell: the mean training
// and validation scores across all folds. Err is non-empty when the cell
// could not be evaluated; such records carry no scores and are skipped by the
// best-subset selector.
type Record struct {
	Estimator       string
	Metric          string
	Dropped         int
	TrainScore      float64
	ValidationScore float64
	Err             string
}

// Log is the ordered sequence of evaluation records for one sweep.
type Log struct {
	Records []Record
}

// sortCanonical orders records by estimator, then metric, then drop count, so
// output is stable regardless of parallel completion order.
func (l *Log) sortCanonical() {
	sort.SliceStable(l.Records, func(i, j int) bool {
		a, b := l.Records[i], l.Records[j]
		if a.Estimator != b.Estimator {
			return a.Estimator < b.Estimator
		}
		if a.Metric != b.Metric {
			return a.Metric < b.Metric
		}
		return a.Dropped < b.Dropped
	})
}

// Estimators returns the distinct estimator names in record order.
func (l *Log) Estimators() []string {
	seen := make(map[string]bool)
	var out []string
	for _, r := range l.Records {
		if !seen[r.Estimator] {
			seen[r.Estimator] = true
			out = append(out, r.Estimator)
		}
	}
	return out
}

// ForEstimatorMetric returns the records for one estimator and metric,
// ordered by drop count.
func (l *Log) ForEstimatorMetric(estimator, metric string) []Record {
	var out []Record
	for _, r := range l.Records {
		if r.Estimator == estimator && r.Metric == metric {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Dropped < out[j].Dropped })
	return out
}

// WriteCSV writes the log with the column layout the reporting layer expects:
// index, Estimator, Training score, Validation score, Scoring.
func (l *Log) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "Estimator", "Training score", "Validation score", "Scoring"}); err != nil {
		return err
	}
	for i, r := range l.Records {
		rec := []string{
			strconv.Itoa(i),
			r.Estimator,
			strconv.FormatFloat(r.TrainScore, 'g', -1, 64),
			strconv.FormatFloat(r.ValidationScore, 'g', -1, 64),
			r.Metric,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the log to cvSelectionSummary_<UTC timestamp>.csv in dir and
// returns the path.
func (l *Log) SaveCSV(dir string) (string, error) {
	path := fmt.Sprintf("%s/cvSelectionSummary_%s.csv", dir, time.Now().UTC().Format("20060102_150405"))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := l.WriteCSV(f); err != nil {
		return "", err
	}
	return path, nil
}
