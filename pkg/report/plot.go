// Package report renders the elimination sweep as charts.
package report

import (
	"fmt"
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"featselect/pkg/selection"
)

// PlotCurves saves, for each estimator in the log, a PNG charting mean
// training and validation score against the number of features removed for
// the given metric. Failed cells are left out of the lines. Returns the
// written file paths.
func PlotCurves(log *selection.Log, best []selection.BestSubset, metric, dir string) ([]string, error) {
	bestFor := make(map[string]selection.BestSubset)
	for _, b := range best {
		if b.Metric == metric {
			bestFor[b.Estimator] = b
		}
	}

	var paths []string
	for _, estimator := range log.Estimators() {
		records := log.ForEstimatorMetric(estimator, metric)
		if len(records) == 0 {
			continue
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s (%s)", estimator, metric)
		if b, ok := bestFor[estimator]; ok {
			p.Title.Text = fmt.Sprintf("%s\nBest validation %s = %.5f, features dropped = %d",
				estimator, metric, b.ValidationScore, b.Dropped)
		}
		p.X.Label.Text = "Features removed"
		p.Y.Label.Text = metric
		p.Legend.Top = true

		train := make(plotter.XYs, 0, len(records))
		valid := make(plotter.XYs, 0, len(records))
		for _, r := range records {
			if r.Err != "" {
				continue
			}
			train = append(train, plotter.XY{X: float64(r.Dropped), Y: r.TrainScore})
			valid = append(valid, plotter.XY{X: float64(r.Dropped), Y: r.ValidationScore})
		}

		trainLine, trainPts, err := plotter.NewLinePoints(train)
		if err != nil {
			return paths, err
		}
		trainLine.Color = color.RGBA{B: 255, A: 255}
		trainPts.Color = trainLine.Color
		validLine, validPts, err := plotter.NewLinePoints(valid)
		if err != nil {
			return paths, err
		}
		validLine.Color = color.RGBA{R: 255, A: 255}
		validPts.Color = validLine.Color

		p.Add(trainLine, trainPts, validLine, validPts)
		p.Legend.Add("Training score", trainLine)
		p.Legend.Add("Validation score", validLine)

		path := filepath.Join(dir, fmt.Sprintf("featureSelection_%s_%s.png", slug(estimator), slug(metric)))
		if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func slug(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
