// Package table provides an in-memory model for tabular confounds data:
// ordered, named float64 columns with a fixed row count, plus TSV
// reading/writing in the format produced by fMRIprep.
package table

import (
	"fmt"
	"math"
)

// Table holds named numeric columns in insertion order with a shared row
// count. Columns are read-only once added; selection operations return new
// tables referencing fresh copies of the data.
type Table struct {
	names []string
	cols  map[string][]float64
	rows  int
}

// New creates an empty table. The row count is fixed by the first column
// added.
func New() *Table {
	return &Table{cols: make(map[string][]float64)}
}

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// NumCols returns the number of columns.
func (t *Table) NumCols() int { return len(t.names) }

// Columns returns the column names in order. The returned slice is a copy.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

// Column returns a copy of the named column's values.
func (t *Table) Column(name string) ([]float64, bool) {
	col, ok := t.cols[name]
	if !ok {
		return nil, false
	}
	out := make([]float64, len(col))
	copy(out, col)
	return out, true
}

// AddColumn appends a named column. The first column fixes the row count;
// later columns must match it. Duplicate names are rejected so that no two
// column groups can silently clobber each other.
func (t *Table) AddColumn(name string, values []float64) error {
	if _, ok := t.cols[name]; ok {
		return fmt.Errorf("table: duplicate column %q", name)
	}
	if len(t.names) > 0 && len(values) != t.rows {
		return fmt.Errorf("table: column %q has %d rows, table has %d", name, len(values), t.rows)
	}

	col := make([]float64, len(values))
	copy(col, values)

	t.names = append(t.names, name)
	t.cols[name] = col
	t.rows = len(col)
	return nil
}

// Select returns a new table containing the named columns, in the order
// given. Requested names may repeat; the model keys columns by name, so
// repeats collapse to the first occurrence. A missing name is an error.
func (t *Table) Select(names []string) (*Table, error) {
	out := New()
	for _, name := range names {
		col, ok := t.cols[name]
		if !ok {
			return nil, fmt.Errorf("table: no column %q", name)
		}
		if out.Has(name) {
			continue
		}
		if err := out.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Concat appends other's columns after t's columns and returns the combined
// table. Both tables must have the same row count; an empty table on either
// side adopts the other's rows.
func Concat(a, b *Table) (*Table, error) {
	if a.NumCols() == 0 {
		return b.clone(), nil
	}
	if b.NumCols() == 0 {
		return a.clone(), nil
	}
	if a.rows != b.rows {
		return nil, fmt.Errorf("table: row count mismatch %d vs %d", a.rows, b.rows)
	}

	out := New()
	for _, name := range a.names {
		if err := out.AddColumn(name, a.cols[name]); err != nil {
			return nil, err
		}
	}
	for _, name := range b.names {
		if err := out.AddColumn(name, b.cols[name]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (t *Table) clone() *Table {
	out := New()
	for _, name := range t.names {
		// AddColumn copies; an error is impossible on a well-formed source.
		_ = out.AddColumn(name, t.cols[name])
	}
	return out
}

// DropNaNRows returns a new table containing only rows with no NaN in any
// column, plus the original indices of the kept rows.
func (t *Table) DropNaNRows() (*Table, []int) {
	kept := make([]int, 0, t.rows)
	for i := 0; i < t.rows; i++ {
		ok := true
		for _, name := range t.names {
			if math.IsNaN(t.cols[name][i]) {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, i)
		}
	}

	out := New()
	for _, name := range t.names {
		src := t.cols[name]
		col := make([]float64, len(kept))
		for j, i := range kept {
			col[j] = src[i]
		}
		_ = out.AddColumn(name, col)
	}
	out.rows = len(kept)
	return out, kept
}
