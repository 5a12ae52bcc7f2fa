package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeanVarianceStd(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 5.0, Mean(x), 1e-12)
	assert.InDelta(t, 4.0, Variance(x), 1e-12)
	assert.InDelta(t, 2.0, Std(x), 1e-12)
	assert.Equal(t, 0.0, Mean(nil))
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 6, 8, 10}
	assert.InDelta(t, 1.0, Correlation(x, y), 1e-12)

	inv := []float64{10, 8, 6, 4, 2}
	assert.InDelta(t, -1.0, Correlation(x, inv), 1e-12)

	constant := []float64{3, 3, 3, 3, 3}
	assert.Equal(t, 0.0, Correlation(x, constant))
}

func TestFOneWaySeparatedGroups(t *testing.T) {
	// Two well-separated groups give a large F; overlapping groups a small one.
	x := []float64{0.1, 0.2, 0.15, 5.0, 5.1, 4.9}
	g := []int{0, 0, 0, 1, 1, 1}
	f, d1, d2 := FOneWay(GroupBy(x, g))
	assert.Equal(t, 1, d1)
	assert.Equal(t, 4, d2)
	assert.Greater(t, f, 100.0)

	mixed := []float64{0.1, 5.0, 0.15, 5.1, 0.2, 4.9}
	gMixed := []int{0, 0, 0, 1, 1, 1}
	fMixed, _, _ := FOneWay(GroupBy(mixed, gMixed))
	assert.Less(t, fMixed, f)
}

func TestFOneWayDegenerate(t *testing.T) {
	// A single group has no between-group variance to measure.
	f, d1, _ := FOneWay(GroupBy([]float64{1, 2, 3}, []int{0, 0, 0}))
	assert.Equal(t, 0.0, f)
	assert.Equal(t, 0, d1)
}
