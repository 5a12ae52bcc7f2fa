package stats

import "math"

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(n)
}

// Variance computes the population variance of a slice in a single pass.
func Variance(x []float64) float64 {
	n := float64(len(x))
	if n == 0 {
		return 0
	}
	sum, sumSq := 0.0, 0.0
	for _, v := range x {
		sum += v
		sumSq += v * v
	}
	mean := sum / n
	return (sumSq / n) - (mean * mean)
}

// Std computes the population standard deviation of a slice.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Correlation computes the Pearson correlation coefficient between two slices
// in a single pass.
func Correlation(x, y []float64) float64 {
	n := float64(len(x))
	if n == 0 || len(y) != len(x) {
		return 0
	}
	var sumX, sumY, sumXY, sumX2, sumY2 float64
	for i := range x {
		xi, yi := x[i], y[i]
		sumX += xi
		sumY += yi
		sumXY += xi * yi
		sumX2 += xi * xi
		sumY2 += yi * yi
	}
	numerator := n*sumXY - sumX*sumY
	denominator := math.Sqrt((n*sumX2 - sumX*sumX) * (n*sumY2 - sumY*sumY))
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// GroupStats accumulates per-group count, sum and sum of squares for values
// keyed by an integer group label.
type GroupStats struct {
	Count map[int]int
	Sum   map[int]float64
	SumSq map[int]float64
	Total int
}

// GroupBy accumulates x grouped by the labels in g.
func GroupBy(x []float64, g []int) GroupStats {
	gs := GroupStats{
		Count: make(map[int]int),
		Sum:   make(map[int]float64),
		SumSq: make(map[int]float64),
	}
	for i, v := range x {
		k := g[i]
		gs.Count[k]++
		gs.Sum[k] += v
		gs.SumSq[k] += v * v
		gs.Total++
	}
	return gs
}

// FOneWay computes the one-way ANOVA F-statistic from grouped sums:
// between-group mean square over within-group mean square. It returns F and
// the two degrees of freedom. F is zero when either mean square degenerates.
func FOneWay(gs GroupStats) (f float64, dfBetween, dfWithin int) {
	k := len(gs.Count)
	n := gs.Total
	dfBetween = k - 1
	dfWithin = n - k
	if dfBetween <= 0 || dfWithin <= 0 {
		return 0, dfBetween, dfWithin
	}
	grand := 0.0
	for _, s := range gs.Sum {
		grand += s
	}
	grandMean := grand / float64(n)

	ssBetween, ssWithin := 0.0, 0.0
	for g, c := range gs.Count {
		mean := gs.Sum[g] / float64(c)
		d := mean - grandMean
		ssBetween += float64(c) * d * d
		ssWithin += gs.SumSq[g] - float64(c)*mean*mean
	}
	if ssWithin <= 0 {
		return 0, dfBetween, dfWithin
	}
	return (ssBetween / float64(dfBetween)) / (ssWithin / float64(dfWithin)), dfBetween, dfWithin
}
