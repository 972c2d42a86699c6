package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

type csvOptions struct {
	columns []string
}

// CSVOption configures ReadCSV behavior.
type CSVOption func(*csvOptions)

// WithColumns restricts parsing to the named header columns, in the given
// order. Columns not listed are ignored, which is how non-numeric columns
// (labels, identifiers) are skipped.
func WithColumns(names ...string) CSVOption {
	return func(o *csvOptions) {
		o.columns = names
	}
}

// ReadCSV parses a CSV stream with a header row into a Table.
//
// Empty cells and the sentinels "NA" and "NaN" are parsed as NaN so that
// incomplete records survive loading and can be removed explicitly with
// DropIncomplete. Any other unparsable cell is an error.
func ReadCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	var o csvOptions
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	selected := o.columns
	if len(selected) == 0 {
		selected = append([]string(nil), header...)
	}

	idx := make([]int, len(selected))
	for j, name := range selected {
		idx[j] = -1
		for hj, h := range header {
			if h == name {
				idx[j] = hj
				break
			}
		}
		if idx[j] < 0 {
			return nil, fmt.Errorf("dataset: column %q not found in header", name)
		}
	}

	var (
		data []float64
		rows int
		line = 1
	)

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read row: %w", err)
		}
		line++

		for _, hj := range idx {
			if hj >= len(rec) {
				return nil, fmt.Errorf("dataset: line %d: short record", line)
			}
			v, err := parseCell(rec[hj])
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d: %w", line, err)
			}
			data = append(data, v)
		}
		rows++
	}

	names := make([]string, len(selected))
	copy(names, selected)

	return &Table{data: data, cols: names, rows: rows}, nil
}

func parseCell(s string) (float64, error) {
	switch s {
	case "", "NA", "NaN":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return v, nil
}
