package confounds

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/banshee-data/confounds/internal/table"
)

// Reducer compresses a correlated column set into fewer orthogonal
// component columns. Implementations are injected into the motion loader so
// tests can substitute a deterministic stub for the decomposition.
type Reducer interface {
	// Reduce decomposes the matrix (rows are time points) and returns the
	// component scores for the smallest component count whose cumulative
	// explained-variance ratio reaches targetFraction, which must lie in
	// the open interval (0, 1).
	Reduce(m *mat.Dense, targetFraction float64) (*mat.Dense, int, error)
}

// PCAReducer implements Reducer with principal-component analysis over the
// column-centered data.
type PCAReducer struct{}

// Reduce runs the decomposition and projects the centered input onto the
// retained principal directions.
func (PCAReducer) Reduce(m *mat.Dense, targetFraction float64) (*mat.Dense, int, error) {
	if targetFraction <= 0 || targetFraction >= 1 {
		return nil, 0, fmt.Errorf("pca: target fraction %v outside (0, 1)", targetFraction)
	}

	rows, cols := m.Dims()
	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, 0, errors.New("pca: decomposition failed")
	}

	vars := pc.VarsTo(nil)
	k := componentsForVariance(vars, targetFraction)

	centered := mat.NewDense(rows, cols, nil)
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		mean := stat.Mean(col, nil)
		for i := range col {
			centered.Set(i, j, col[i]-mean)
		}
	}

	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	var proj mat.Dense
	proj.Mul(centered, vecs.Slice(0, cols, 0, k))
	return &proj, k, nil
}

// componentsForVariance returns the smallest K whose cumulative explained
// variance ratio meets the target.
func componentsForVariance(vars []float64, target float64) int {
	total := floats.Sum(vars)
	if total <= 0 {
		return 1
	}

	cum := 0.0
	for i, v := range vars {
		cum += v
		if cum/total >= target {
			return i + 1
		}
	}
	return len(vars)
}

// MotionVarianceRatios reports the explained-variance spectrum of the
// motion family without reducing it, for scree diagnostics. Rows with
// missing values are dropped the same way reduction drops them.
func MotionVarianceRatios(raw *table.Table, mode Expansion) ([]float64, error) {
	params := ExpandNames(motionParams, mode)
	if err := CheckColumns(raw, params); err != nil {
		return nil, err
	}
	sub, err := raw.Select(params)
	if err != nil {
		return nil, err
	}

	clean, _ := sub.DropNaNRows()
	if clean.Rows() == 0 {
		return nil, errors.New("motion variance: no rows without missing values")
	}
	return ExplainedVarianceRatios(denseFromTable(clean))
}

// denseFromTable copies a table into a gonum matrix, columns in table order.
func denseFromTable(t *table.Table) *mat.Dense {
	rows, cols := t.Rows(), t.NumCols()
	m := mat.NewDense(rows, cols, nil)
	for j, name := range t.Columns() {
		col, _ := t.Column(name)
		for i, v := range col {
			m.Set(i, j, v)
		}
	}
	return m
}

// ExplainedVarianceRatios returns each principal component's share of the
// total variance, in component order. Used for scree diagnostics.
func ExplainedVarianceRatios(m *mat.Dense) ([]float64, error) {
	var pc stat.PC
	if ok := pc.PrincipalComponents(m, nil); !ok {
		return nil, errors.New("pca: decomposition failed")
	}

	vars := pc.VarsTo(nil)
	total := floats.Sum(vars)
	if total <= 0 {
		return nil, errors.New("pca: no variance in input")
	}
	ratios := make([]float64, len(vars))
	for i, v := range vars {
		ratios[i] = v / total
	}
	return ratios, nil
}
