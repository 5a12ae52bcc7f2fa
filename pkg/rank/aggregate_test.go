package rank

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultOf(column string, order []string, vals ...float64) Result {
	values := make(map[string]float64, len(order))
	for i, name := range order {
		values[name] = vals[i]
	}
	return Result{Column: column, Order: order, Values: values}
}

func TestAggregateConsensusMeanAndOrder(t *testing.T) {
	features := []string{"a", "b", "c", "d", "e"}
	// Three permutation-ranks over the same five features.
	results := []Result{
		resultOf("m1", features, 1, 2, 3, 4, 5),
		resultOf("m2", features, 2, 1, 4, 3, 5),
		resultOf("m3", features, 3, 3, 2, 2, 5),
	}

	s, err := Aggregate(results, Options{})
	require.NoError(t, err)
	require.Len(t, s.Rows, 5)
	assert.Equal(t, []string{"m1", "m2", "m3"}, s.Columns)

	byFeature := make(map[string]SummaryRow)
	for _, r := range s.Rows {
		byFeature[r.Feature] = r
	}
	assert.InDelta(t, 2.0, byFeature["a"].Average, 1e-12)
	assert.InDelta(t, 2.0, byFeature["b"].Average, 1e-12)
	assert.InDelta(t, 3.0, byFeature["c"].Average, 1e-12)
	assert.InDelta(t, 3.0, byFeature["d"].Average, 1e-12)
	assert.InDelta(t, 5.0, byFeature["e"].Average, 1e-12)

	// Ascending by average; ties keep first-result insertion order.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, s.Features())
}

func TestAggregateSummaryStatistics(t *testing.T) {
	features := []string{"a"}
	results := []Result{
		resultOf("m1", features, 1),
		resultOf("m2", features, 3),
		resultOf("m3", features, 5),
	}
	s, err := Aggregate(results, Options{})
	require.NoError(t, err)
	row := s.Rows[0]
	assert.InDelta(t, 3.0, row.Average, 1e-12)
	assert.InDelta(t, 2.0, row.Stdev, 1e-12) // sample stdev of {1,3,5}
	assert.Equal(t, 1.0, row.Low)
	assert.Equal(t, 5.0, row.High)
	assert.Equal(t, []float64{1, 3, 5}, row.Values)
}

func TestAggregateInnerJoinDropsMismatched(t *testing.T) {
	full := []string{"A", "B", "C"}
	partial := []string{"A", "C"}
	results := []Result{
		resultOf("m1", full, 1, 2, 3),
		resultOf("m2", partial, 2, 1),
	}
	s, err := Aggregate(results, Options{})
	require.NoError(t, err)

	// Consensus feature set is the intersection of all result domains.
	assert.Equal(t, []string{"A", "C"}, s.Features())
	for _, r := range s.Rows {
		assert.NotEqual(t, "B", r.Feature)
	}
}

func TestAggregateStrictModeFailsOnMismatch(t *testing.T) {
	results := []Result{
		resultOf("m1", []string{"A", "B"}, 1, 2),
		resultOf("m2", []string{"A"}, 1),
	}
	_, err := Aggregate(results, Options{Strict: true})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestAggregateEmptyInputs(t *testing.T) {
	_, err := Aggregate(nil, Options{})
	assert.ErrorIs(t, err, ErrNoResults)

	// Disjoint domains leave nothing to rank.
	results := []Result{
		resultOf("m1", []string{"A"}, 1),
		resultOf("m2", []string{"B"}, 1),
	}
	_, err = Aggregate(results, Options{})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestSummaryWriteCSV(t *testing.T) {
	results := []Result{
		resultOf("m1", []string{"a", "b"}, 2, 1),
		resultOf("m2", []string{"a", "b"}, 2, 1),
	}
	s, err := Aggregate(results, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WriteCSV(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "feature,average,stdev,low,high,m1,m2", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "b,1,"), "most important feature first: %s", lines[1])
}
