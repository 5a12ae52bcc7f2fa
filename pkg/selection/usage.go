package selection

import (
	"encoding/csv"
	"io"
	"strconv"

	"featselect/pkg/rank"
)

// UsageRow records which estimators kept a feature in their winning subset,
// and how many did.
type UsageRow struct {
	Feature string
	Used    []bool // aligned with Usage.Estimators
	Count   int
}

// Usage cross-tabulates feature retention across estimators for one metric.
// Rows follow the consensus ordering, most important feature first.
type Usage struct {
	Metric     string
	Estimators []string
	Rows       []UsageRow
}

// UsageSummary builds the presence table for one metric from the best-subset
// records. Estimator columns appear in the order the records were produced.
func UsageSummary(best []BestSubset, metric string, consensus *rank.Summary) *Usage {
	u := &Usage{Metric: metric}

	kept := make(map[string]map[string]bool) // estimator -> feature set
	for _, b := range best {
		if b.Metric != metric {
			continue
		}
		set := make(map[string]bool, len(b.Features))
		for _, f := range b.Features {
			set[f] = true
		}
		kept[b.Estimator] = set
		u.Estimators = append(u.Estimators, b.Estimator)
	}

	for _, feature := range consensus.Features() {
		row := UsageRow{Feature: feature, Used: make([]bool, len(u.Estimators))}
		for i, est := range u.Estimators {
			if kept[est][feature] {
				row.Used[i] = true
				row.Count++
			}
		}
		u.Rows = append(u.Rows, row)
	}
	return u
}

// WriteCSV writes the presence table: one "X"-marked column per estimator
// plus a trailing count column.
func (u *Usage) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	header := append(append([]string{"feature"}, u.Estimators...), "count")
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range u.Rows {
		rec := make([]string, 0, len(row.Used)+2)
		rec = append(rec, row.Feature)
		for _, used := range row.Used {
			if used {
				rec = append(rec, "X")
			} else {
				rec = append(rec, "")
			}
		}
		rec = append(rec, strconv.Itoa(row.Count))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
