package dataset

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// Table is an immutable numeric matrix with named columns.
// Rows are observations, columns are features. The backing storage is a
// single row-major float64 slice, so row access is allocation free.
type Table struct {
	data []float64
	cols []string
	rows int
}

// FromRecords builds a Table from row records. All records must have the
// same length as cols.
func FromRecords(records [][]float64, cols []string) (*Table, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("dataset: no columns")
	}

	data := make([]float64, 0, len(records)*len(cols))
	for i, rec := range records {
		if len(rec) != len(cols) {
			return nil, fmt.Errorf("dataset: row %d has %d values, want %d", i, len(rec), len(cols))
		}
		data = append(data, rec...)
	}

	names := make([]string, len(cols))
	copy(names, cols)

	return &Table{data: data, cols: names, rows: len(records)}, nil
}

// Rows returns the number of observations.
func (t *Table) Rows() int { return t.rows }

// Cols returns the number of features.
func (t *Table) Cols() int { return len(t.cols) }

// ColumnNames returns a copy of the column names.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	copy(names, t.cols)
	return names
}

// Row returns the i-th observation as a view into the backing storage.
// Callers must not modify the returned slice.
func (t *Table) Row(i int) []float64 {
	p := len(t.cols)
	return t.data[i*p : (i+1)*p : (i+1)*p]
}

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 {
	return t.data[i*len(t.cols)+j]
}

// Column returns a copy of the j-th feature column.
func (t *Table) Column(j int) []float64 {
	out := make([]float64, t.rows)
	for i := range out {
		out[i] = t.At(i, j)
	}
	return out
}

// ColumnMeans returns the coordinate-wise arithmetic mean of all rows.
func (t *Table) ColumnMeans() []float64 {
	p := len(t.cols)
	means := make([]float64, p)
	for i := 0; i < t.rows; i++ {
		row := t.Row(i)
		for j := 0; j < p; j++ {
			means[j] += row[j]
		}
	}
	if t.rows > 0 {
		inv := 1.0 / float64(t.rows)
		for j := range means {
			means[j] *= inv
		}
	}
	return means
}

// IsComplete reports whether the table contains no NaN or infinite values.
func (t *Table) IsComplete() bool {
	for _, v := range t.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// DropIncomplete returns a table containing only the rows with no NaN or
// infinite values, together with a bitmap of the surviving original row
// indices.
func (t *Table) DropIncomplete() (*Table, *roaring.Bitmap) {
	kept := roaring.New()

	data := make([]float64, 0, len(t.data))
	rows := 0

	for i := 0; i < t.rows; i++ {
		row := t.Row(i)
		ok := true
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		data = append(data, row...)
		kept.Add(uint32(i))
		rows++
	}

	return &Table{data: data, cols: t.ColumnNames(), rows: rows}, kept
}

// Select materializes the subset of rows whose indices are set in the bitmap,
// in ascending row order.
func (t *Table) Select(rows *roaring.Bitmap) *Table {
	data := make([]float64, 0, int(rows.GetCardinality())*len(t.cols))
	n := 0

	it := rows.Iterator()
	for it.HasNext() {
		i := int(it.Next())
		data = append(data, t.Row(i)...)
		n++
	}

	return &Table{data: data, cols: t.ColumnNames(), rows: n}
}
