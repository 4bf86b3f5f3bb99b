package confounds

import (
	"strings"

	"github.com/banshee-data/confounds/internal/table"
)

// CheckColumns verifies every required column exists in the table before
// any column is read, so a wrong expansion mode fails with the first
// missing parameter named rather than returning partial work.
func CheckColumns(t *table.Table, required []string) error {
	for _, name := range required {
		if !t.Has(name) {
			return &MissingConfoundError{Param: name}
		}
	}
	return nil
}

// FindColumns collects every column whose name contains any of the
// keywords as a substring. The scan loops keywords in the given order and
// table columns in table order; a column matching two keywords appears
// twice (overlapping matches are deliberately not de-duplicated). A keyword
// matching no column is an error.
func FindColumns(t *table.Table, keywords []string) ([]string, error) {
	if keywords == nil {
		return nil, ErrInvalidKeywords
	}

	cols := t.Columns()
	var matches []string
	for _, key := range keywords {
		found := false
		for _, col := range cols {
			if strings.Contains(col, key) {
				matches = append(matches, col)
				found = true
			}
		}
		if !found {
			return nil, &NoMatchingConfoundError{Keyword: key}
		}
	}
	return matches, nil
}
