package confounds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/banshee-data/confounds/internal/testutil"
)

func TestComponentsForVariance(t *testing.T) {
	t.Parallel()

	vars := []float64{4, 3, 2, 1} // ratios 0.4, 0.3, 0.2, 0.1

	tests := []struct {
		target float64
		want   int
	}{
		{target: 0.3, want: 1},
		{target: 0.4, want: 1},
		{target: 0.5, want: 2},
		{target: 0.7, want: 2},
		{target: 0.75, want: 3},
		{target: 0.95, want: 4},
		{target: 0.999, want: 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, componentsForVariance(vars, tt.target), "target %v", tt.target)
	}

	t.Run("zero variance falls back to one component", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1, componentsForVariance([]float64{0, 0}, 0.5))
	})
}

// dominantVarianceMatrix builds a 100x6 matrix where the first column holds
// nearly all the variance, so one principal component suffices for any
// target below 1.
func dominantVarianceMatrix() *mat.Dense {
	m := mat.NewDense(100, 6, nil)
	for i := 0; i < 100; i++ {
		m.Set(i, 0, float64(i))
		for j := 1; j < 6; j++ {
			m.Set(i, j, 0.5) // constant: zero variance
		}
	}
	return m
}

func TestPCAReducer(t *testing.T) {
	t.Parallel()

	t.Run("retains one component when it explains the target", func(t *testing.T) {
		t.Parallel()
		comps, k, err := PCAReducer{}.Reduce(dominantVarianceMatrix(), 0.5)
		require.NoError(t, err)
		assert.Equal(t, 1, k)

		rows, cols := comps.Dims()
		assert.Equal(t, 100, rows)
		assert.Equal(t, 1, cols)

		// The only varying direction is the first column, so the component
		// scores span the same range as the centered input (up to sign).
		span := math.Abs(comps.At(99, 0) - comps.At(0, 0))
		assert.InDelta(t, 99, span, 1e-6)
	})

	t.Run("rejects fractions outside the open interval", func(t *testing.T) {
		t.Parallel()
		for _, fraction := range []float64{0, 1, -0.1, 1.1} {
			_, _, err := PCAReducer{}.Reduce(dominantVarianceMatrix(), fraction)
			assert.Error(t, err, "fraction %v", fraction)
		}
	})
}

func TestMotionVarianceRatios(t *testing.T) {
	t.Parallel()

	t.Run("sums to one for a complete motion table", func(t *testing.T) {
		t.Parallel()
		raw := testutil.MotionTable(t, 50)

		ratios, err := MotionVarianceRatios(raw, ExpandBasic)
		require.NoError(t, err)
		require.NotEmpty(t, ratios)

		sum := 0.0
		for _, r := range ratios {
			sum += r
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	})

	t.Run("missing derived columns fail", func(t *testing.T) {
		t.Parallel()
		raw := testutil.MotionTable(t, 10)

		_, err := MotionVarianceRatios(raw, ExpandFull)
		var mcErr *MissingConfoundError
		assert.ErrorAs(t, err, &mcErr)
	})
}

func TestExplainedVarianceRatios(t *testing.T) {
	t.Parallel()

	ratios, err := ExplainedVarianceRatios(dominantVarianceMatrix())
	require.NoError(t, err)
	require.NotEmpty(t, ratios)
	assert.InDelta(t, 1.0, ratios[0], 1e-9)

	sum := 0.0
	for _, r := range ratios {
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}
