package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadCSV reads a headered CSV file into a Table. The column named targetName
// becomes the target; every other column becomes a feature, in header order.
// Rows with unparseable values are skipped; the skipped count is returned so
// callers can decide whether the loss matters.
func LoadCSV(path, targetName string) (*Table, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer file.Close()
	return ReadCSV(file, targetName)
}

// ReadCSV is LoadCSV over an already-open reader.
func ReadCSV(r io.Reader, targetName string) (*Table, int, error) {
	reader := csv.NewReader(r)
	header, err := reader.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("dataset: reading header: %w", err)
	}

	targetCol := -1
	featureNames := make([]string, 0, len(header)-1)
	for i, name := range header {
		if name == targetName {
			targetCol = i
			continue
		}
		featureNames = append(featureNames, name)
	}
	if targetCol < 0 {
		return nil, 0, fmt.Errorf("dataset: target column %q not in header", targetName)
	}

	columns := make(map[string][]float64, len(featureNames))
	var target []float64
	skipped := 0

	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		vals := make([]float64, len(rec))
		ok := true
		for i, s := range rec {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			skipped++
			continue
		}
		target = append(target, vals[targetCol])
		j := 0
		for i, v := range vals {
			if i == targetCol {
				continue
			}
			columns[featureNames[j]] = append(columns[featureNames[j]], v)
			j++
		}
	}

	t, err := New(featureNames, columns, targetName, target)
	if err != nil {
		return nil, skipped, err
	}
	return t, skipped, nil
}
