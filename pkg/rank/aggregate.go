package rank

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrSchemaMismatch is returned in strict mode when the ranking methods do
// not agree on the feature-name domain.
var ErrSchemaMismatch = errors.New("rank: feature domains disagree across ranking methods")

// ErrNoResults is returned when Aggregate is given nothing to combine.
var ErrNoResults = errors.New("rank: no ranking results to aggregate")

// SummaryRow is one feature's consensus record: summary statistics over the
// per-method columns, plus the raw per-method values in column order.
type SummaryRow struct {
	Feature string
	Average float64
	Stdev   float64
	Low     float64
	High    float64
	Values  []float64
}

// Summary is the consensus table: one row per feature surviving the join,
// sorted ascending by average (rank 1 is best, so lowest average first).
type Summary struct {
	Columns []string
	Rows    []SummaryRow
}

// Features returns the feature names in consensus order.
func (s *Summary) Features() []string {
	out := make([]string, len(s.Rows))
	for i, r := range s.Rows {
		out[i] = r.Feature
	}
	return out
}

// Options controls how Aggregate treats feature-domain disagreement between
// methods. Lenient (the default) drops mismatched features with a warning;
// Strict fails instead.
type Options struct {
	Strict bool
	Logger *zap.Logger
}

// Aggregate inner-joins ranking results on feature name and computes, per
// surviving feature, the average, sample standard deviation, minimum and
// maximum across the method columns. Rows come out sorted ascending by
// average; ties keep the insertion order of the first result.
func Aggregate(results []Result, opts Options) (*Summary, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	// Intersection of all feature domains, in first-result order.
	kept := make([]string, 0, len(results[0].Order))
	for _, name := range results[0].Order {
		inAll := true
		for _, r := range results[1:] {
			if _, ok := r.Values[name]; !ok {
				inAll = false
				break
			}
		}
		if inAll {
			kept = append(kept, name)
		}
	}

	dropped := mismatched(results, kept)
	if len(dropped) > 0 {
		if opts.Strict {
			return nil, fmt.Errorf("%w: %v", ErrSchemaMismatch, dropped)
		}
		for _, name := range dropped {
			logger.Warn("feature dropped from consensus: not scored by every ranking method",
				zap.String("feature", name))
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: empty intersection", ErrSchemaMismatch)
	}

	s := &Summary{Columns: make([]string, len(results))}
	for i, r := range results {
		s.Columns[i] = r.Column
	}
	for _, name := range kept {
		vals := make([]float64, len(results))
		for i, r := range results {
			vals[i] = r.Values[name]
		}
		s.Rows = append(s.Rows, SummaryRow{
			Feature: name,
			Average: stat.Mean(vals, nil),
			Stdev:   sampleStdDev(vals),
			Low:     floats.Min(vals),
			High:    floats.Max(vals),
			Values:  vals,
		})
	}
	sort.SliceStable(s.Rows, func(i, j int) bool { return s.Rows[i].Average < s.Rows[j].Average })
	return s, nil
}

// mismatched collects, in deterministic order, every feature name that
// appears in some result but not in all of them.
func mismatched(results []Result, kept []string) []string {
	inKept := make(map[string]bool, len(kept))
	for _, name := range kept {
		inKept[name] = true
	}
	seen := make(map[string]bool)
	var out []string
	for _, r := range results {
		for _, name := range r.Order {
			if !inKept[name] && !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	return out
}

func sampleStdDev(vals []float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	return stat.StdDev(vals, nil)
}

// WriteCSV writes the summary with columns
// feature, average, stdev, low, high, then one column per ranking method.
func (s *Summary) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append([]string{"feature", "average", "stdev", "low", "high"}, s.Columns...)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range s.Rows {
		rec := []string{row.Feature, fmtFloat(row.Average), fmtFloat(row.Stdev), fmtFloat(row.Low), fmtFloat(row.High)}
		for _, v := range row.Values {
			rec = append(rec, fmtFloat(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the summary to featureSelectionSummary_<UTC timestamp>.csv
// in dir and returns the path.
func (s *Summary) SaveCSV(dir string) (string, error) {
	path := fmt.Sprintf("%s/featureSelectionSummary_%s.csv", dir, time.Now().UTC().Format("20060102_150405"))
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := s.WriteCSV(f); err != nil {
		return "", err
	}
	return path, nil
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
