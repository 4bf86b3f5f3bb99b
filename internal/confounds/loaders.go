package confounds

import (
	"fmt"
	"math"

	"github.com/banshee-data/confounds/internal/table"
)

// Base signal names produced by fMRIprep for each confound family.
var (
	motionParams = []string{"trans_x", "trans_y", "trans_z", "rot_x", "rot_y", "rot_z"}
	tissueParams = []string{"csf", "white_matter"}
	globalParams = []string{"global_signal"}
)

// highPassKeyword matches the discrete-cosine regressors (cosine00,
// cosine01, ...) in whatever cardinality preprocessing produced.
const highPassKeyword = "cosine"

// loadMotion selects the rigid-body motion columns expanded per mode. When
// pcaFraction lies strictly in (0, 1) the sub-table is compressed through
// the reducer; otherwise the expanded raw columns are returned unchanged.
func loadMotion(raw *table.Table, mode Expansion, pcaFraction float64, r Reducer) (*table.Table, error) {
	params := ExpandNames(motionParams, mode)
	if err := CheckColumns(raw, params); err != nil {
		return nil, err
	}
	sub, err := raw.Select(params)
	if err != nil {
		return nil, err
	}

	if pcaFraction <= 0 || pcaFraction >= 1 {
		return sub, nil
	}
	return reduceMotion(sub, pcaFraction, r)
}

// reduceMotion drops rows with missing values, decomposes the remainder,
// and names the components motion_pca_1..K. Component values for the
// dropped rows are re-inserted as NaN so the sub-table keeps the source row
// count and stays row-aligned with the other category sub-tables.
func reduceMotion(sub *table.Table, fraction float64, r Reducer) (*table.Table, error) {
	clean, kept := sub.DropNaNRows()
	if clean.Rows() == 0 {
		return nil, fmt.Errorf("motion reduction: no rows without missing values")
	}

	comps, k, err := r.Reduce(denseFromTable(clean), fraction)
	if err != nil {
		return nil, fmt.Errorf("motion reduction: %w", err)
	}

	out := table.New()
	total := sub.Rows()
	for j := 0; j < k; j++ {
		col := make([]float64, total)
		for i := range col {
			col[i] = math.NaN()
		}
		for ci, ri := range kept {
			col[ri] = comps.At(ci, j)
		}
		if err := out.AddColumn(fmt.Sprintf("motion_pca_%d", j+1), col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// loadHighPass selects every discrete-cosine regressor present.
func loadHighPass(raw *table.Table) (*table.Table, error) {
	names, err := FindColumns(raw, []string{highPassKeyword})
	if err != nil {
		return nil, err
	}
	return raw.Select(names)
}

// loadWMCSF selects the white matter and CSF averages expanded per mode.
func loadWMCSF(raw *table.Table, mode Expansion) (*table.Table, error) {
	params := ExpandNames(tissueParams, mode)
	if err := CheckColumns(raw, params); err != nil {
		return nil, err
	}
	return raw.Select(params)
}

// loadGlobal selects the global signal expanded per mode.
func loadGlobal(raw *table.Table, mode Expansion) (*table.Table, error) {
	params := ExpandNames(globalParams, mode)
	if err := CheckColumns(raw, params); err != nil {
		return nil, err
	}
	return raw.Select(params)
}
