package selection

import (
	"featselect/pkg/rank"
)

// BestSubset names, for one estimator and metric, the drop count that
// maximized the mean validation score and the features that subset kept.
type BestSubset struct {
	Estimator       string
	Metric          string
	Dropped         int
	ValidationScore float64
	Features        []string
}

// BestSubsets finds the winning record per (estimator, metric) pair. Equal
// validation scores resolve toward the smaller drop count, keeping the larger
// feature set. Records that failed to evaluate never win. Pairs whose every
// record failed are omitted.
func BestSubsets(log *Log, consensus *rank.Summary) []BestSubset {
	order := consensus.Features()

	var out []BestSubset
	type key struct{ est, metric string }
	seen := make(map[key]bool)
	for _, r := range log.Records {
		k := key{r.Estimator, r.Metric}
		if seen[k] {
			continue
		}
		seen[k] = true

		var best *Record
		for _, cand := range log.ForEstimatorMetric(r.Estimator, r.Metric) {
			if cand.Err != "" {
				continue
			}
			if best == nil ||
				cand.ValidationScore > best.ValidationScore ||
				(cand.ValidationScore == best.ValidationScore && cand.Dropped < best.Dropped) {
				c := cand
				best = &c
			}
		}
		if best == nil {
			continue
		}
		out = append(out, BestSubset{
			Estimator:       best.Estimator,
			Metric:          best.Metric,
			Dropped:         best.Dropped,
			ValidationScore: best.ValidationScore,
			Features:        append([]string(nil), order[:len(order)-best.Dropped]...),
		})
	}
	return out
}
