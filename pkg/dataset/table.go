package dataset

import (
	"errors"
	"fmt"
)

// Table holds an ordered set of named numeric feature columns, row-aligned
// with a target column. Feature names are unique and never collide with the
// target name; every column has the same row count.
type Table struct {
	featureNames []string
	columns      map[string][]float64
	targetName   string
	target       []float64
}

// New builds a Table from named columns and a target. The featureNames slice
// fixes the column ordering.
func New(featureNames []string, columns map[string][]float64, targetName string, target []float64) (*Table, error) {
	if len(featureNames) == 0 {
		return nil, errors.New("dataset: no features")
	}
	if targetName == "" {
		return nil, errors.New("dataset: empty target name")
	}
	seen := make(map[string]bool, len(featureNames))
	for _, name := range featureNames {
		if seen[name] {
			return nil, fmt.Errorf("dataset: duplicate feature %q", name)
		}
		if name == targetName {
			return nil, fmt.Errorf("dataset: feature %q collides with target name", name)
		}
		seen[name] = true
		col, ok := columns[name]
		if !ok {
			return nil, fmt.Errorf("dataset: missing column %q", name)
		}
		if len(col) != len(target) {
			return nil, fmt.Errorf("dataset: column %q has %d rows, target has %d", name, len(col), len(target))
		}
	}
	if len(columns) != len(featureNames) {
		return nil, fmt.Errorf("dataset: %d columns supplied for %d features", len(columns), len(featureNames))
	}
	t := &Table{
		featureNames: append([]string(nil), featureNames...),
		columns:      make(map[string][]float64, len(columns)),
		targetName:   targetName,
		target:       target,
	}
	for name, col := range columns {
		t.columns[name] = col
	}
	return t, nil
}

// FeatureNames returns the feature ordering. The caller must not modify it.
func (t *Table) FeatureNames() []string { return t.featureNames }

// TargetName returns the name of the target column.
func (t *Table) TargetName() string { return t.targetName }

// Target returns the target column. The caller must not modify it.
func (t *Table) Target() []float64 { return t.target }

// Rows returns the row count.
func (t *Table) Rows() int { return len(t.target) }

// NumFeatures returns the feature count.
func (t *Table) NumFeatures() int { return len(t.featureNames) }

// Column returns one feature column by name.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Matrix materializes the named features as rows of values, in the given
// order. It always allocates fresh rows, so callers can hand the result to a
// model without the table ever being written to.
func (t *Table) Matrix(names []string) ([][]float64, error) {
	cols := make([][]float64, len(names))
	for j, name := range names {
		col, ok := t.columns[name]
		if !ok {
			return nil, fmt.Errorf("dataset: unknown feature %q", name)
		}
		cols[j] = col
	}
	X := make([][]float64, t.Rows())
	for i := range X {
		row := make([]float64, len(cols))
		for j := range cols {
			row[j] = cols[j][i]
		}
		X[i] = row
	}
	return X, nil
}
