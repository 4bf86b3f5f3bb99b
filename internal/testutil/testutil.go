// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/banshee-data/confounds/internal/table"
)

// NewTable builds a table from ordered name/column pairs, failing the test
// on any construction error.
func NewTable(t *testing.T, names []string, cols [][]float64) *table.Table {
	t.Helper()
	if len(names) != len(cols) {
		t.Fatalf("NewTable: %d names for %d columns", len(names), len(cols))
	}

	tb := table.New()
	for i, name := range names {
		if err := tb.AddColumn(name, cols[i]); err != nil {
			t.Fatalf("NewTable: add %q: %v", name, err)
		}
	}
	return tb
}

// MotionTable builds a table holding the six basic rigid-body parameters
// with deterministic values and the given row count.
func MotionTable(t *testing.T, rows int) *table.Table {
	t.Helper()

	names := []string{"trans_x", "trans_y", "trans_z", "rot_x", "rot_y", "rot_z"}
	cols := make([][]float64, len(names))
	for j := range cols {
		col := make([]float64, rows)
		for i := range col {
			col[i] = float64(i)*0.01 + float64(j)
		}
		cols[j] = col
	}
	return NewTable(t, names, cols)
}

// AssertTablesEqual compares two tables column-for-column and
// value-for-value, treating NaNs as equal.
func AssertTablesEqual(t *testing.T, want, got *table.Table) {
	t.Helper()

	if diff := cmp.Diff(want.Columns(), got.Columns()); diff != "" {
		t.Fatalf("column names mismatch (-want +got):\n%s", diff)
	}
	if want.Rows() != got.Rows() {
		t.Fatalf("row count = %d, want %d", got.Rows(), want.Rows())
	}

	opt := cmpopts.EquateNaNs()
	for _, name := range want.Columns() {
		wantCol, _ := want.Column(name)
		gotCol, _ := got.Column(name)
		if diff := cmp.Diff(wantCol, gotCol, opt); diff != "" {
			t.Errorf("column %q mismatch (-want +got):\n%s", name, diff)
		}
	}
}

// NaNs returns a column of n NaN values.
func NaNs(n int) []float64 {
	col := make([]float64, n)
	for i := range col {
		col[i] = math.NaN()
	}
	return col
}
