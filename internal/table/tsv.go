package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/banshee-data/confounds/internal/fsutil"
)

// confoundsSuffix is the filename suffix fMRIprep gives confounds tables.
const confoundsSuffix = "_desc-confounds_regressors.tsv"

// ResolveConfoundsPath maps a path to its confounds TSV. Paths that look
// like preprocessed image files (the last six characters contain "nii")
// are rewritten by replacing everything from the "_space-" entity onward
// with the confounds suffix. Other paths pass through unchanged.
func ResolveConfoundsPath(path string) string {
	tail := path
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	if !strings.Contains(tail, "nii") {
		return path
	}

	i := strings.Index(path, "space-")
	if i < 1 || path[i-1] != '_' {
		return path
	}
	return path[:i-1] + confoundsSuffix
}

// ReadTSV loads a tab-separated confounds file through the given
// filesystem. The first line is the header; cells holding "n/a", "NA" or
// nothing parse as NaN, matching what fMRIprep writes for undefined values
// (e.g. the first sample of a derivative column).
func ReadTSV(fsys fsutil.FileSystem, path string) (*Table, error) {
	path = ResolveConfoundsPath(path)

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read confounds file: %w", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = '\t'
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parse %s: empty file", path)
	}

	header := records[0]
	cols := make([][]float64, len(header))
	for i := range cols {
		cols[i] = make([]float64, 0, len(records)-1)
	}

	for line, rec := range records[1:] {
		for i, cell := range rec {
			v, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("parse %s line %d column %q: %w", path, line+2, header[i], err)
			}
			cols[i] = append(cols[i], v)
		}
	}

	t := New()
	for i, name := range header {
		if err := t.AddColumn(name, cols[i]); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return t, nil
}

// WriteTSV serializes the table as tab-separated text with a header row.
// NaN cells are written as "n/a" so output round-trips through ReadTSV.
func WriteTSV(fsys fsutil.FileSystem, path string, t *Table) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'

	names := t.Columns()
	if err := w.Write(names); err != nil {
		return err
	}

	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i], _ = t.Column(name)
	}

	record := make([]string, len(names))
	for row := 0; row < t.Rows(); row++ {
		for i := range names {
			record[i] = formatCell(cols[i][row])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return fsys.WriteFile(path, buf.Bytes(), 0644)
}

func parseCell(cell string) (float64, error) {
	switch strings.TrimSpace(cell) {
	case "", "n/a", "NA":
		return math.NaN(), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(cell), 64)
}

func formatCell(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
