package confounds

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePresets(t *testing.T) {
	t.Parallel()

	t.Run("minimal", func(t *testing.T) {
		t.Parallel()
		cats, err := Resolve(Preset("minimal"))
		require.NoError(t, err)
		assert.Equal(t, []Category{Motion, HighPass, WMCSF}, cats)
	})

	t.Run("minimal_glob", func(t *testing.T) {
		t.Parallel()
		cats, err := Resolve(Preset("minimal_glob"))
		require.NoError(t, err)
		assert.Equal(t, []Category{Motion, HighPass, WMCSF, GlobalSignal}, cats)
	})

	t.Run("unknown preset", func(t *testing.T) {
		t.Parallel()
		_, err := Resolve(Preset("bogus"))

		var usErr *UnsupportedStrategyError
		require.ErrorAs(t, err, &usErr)
		assert.Equal(t, "bogus", usErr.Strategy)
	})
}

func TestResolveCustom(t *testing.T) {
	t.Parallel()

	t.Run("single category", func(t *testing.T) {
		t.Parallel()
		cats, err := Resolve(Categories("global"))
		require.NoError(t, err)
		assert.Equal(t, []Category{GlobalSignal}, cats)
	})

	t.Run("caller order preserved", func(t *testing.T) {
		t.Parallel()
		cats, err := Resolve(Categories("wm_csf", "motion"))
		require.NoError(t, err)
		assert.Equal(t, []Category{WMCSF, Motion}, cats)
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()
		_, err := Resolve(Categories("motion", "bogus"))

		var ucErr *UnsupportedConfoundTypeError
		require.ErrorAs(t, err, &ucErr)
		assert.Equal(t, "bogus", ucErr.Confound)
	})

	t.Run("empty custom list is valid and selects nothing", func(t *testing.T) {
		t.Parallel()
		cats, err := Resolve(Categories())
		require.NoError(t, err)
		assert.Empty(t, cats)
	})
}

func TestResolveZeroValue(t *testing.T) {
	t.Parallel()

	_, err := Resolve(Strategy{})
	assert.True(t, errors.Is(err, ErrInvalidStrategy))
}

func TestCategoryString(t *testing.T) {
	t.Parallel()

	want := map[Category]string{
		Motion:       "motion",
		HighPass:     "high_pass",
		WMCSF:        "wm_csf",
		GlobalSignal: "global",
	}
	for cat, name := range want {
		assert.Equal(t, name, cat.String())
	}
}
