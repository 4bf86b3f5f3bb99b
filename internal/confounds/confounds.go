// Package confounds selects, derives, and assembles reduced sets of
// nuisance-regressor columns from fMRIprep confounds tables.
//
// A denoising strategy — a named preset like "minimal", or an explicit list
// of confound categories — resolves to a set of category loaders. Each
// loader expands its base signal names into the requested derivative and
// quadratic variants, validates they exist in the raw table, and selects
// them; the motion loader can additionally compress its columns to a few
// principal components. Sub-tables are concatenated column-wise in a fixed
// canonical order, preserving row alignment with the input.
package confounds

import (
	"fmt"

	"github.com/banshee-data/confounds/internal/fsutil"
	"github.com/banshee-data/confounds/internal/table"
)

// Input is one raw confounds source: either an already-materialized table
// or a path to a TSV (or preprocessed image, see table.ResolveConfoundsPath).
// The zero value is invalid.
type Input struct {
	path string
	tab  *table.Table
}

// FromPath builds an Input that reads the confounds file at path.
func FromPath(path string) Input {
	return Input{path: path}
}

// FromTable builds an Input around an already-loaded table.
func FromTable(t *table.Table) Input {
	return Input{tab: t}
}

// Options configures strategy resolution and per-family expansion.
type Options struct {
	// Strategy selects which confound categories to load.
	Strategy Strategy

	// Motion, WMCSF and GlobalSignal set the expansion mode for their
	// signal families. GlobalSignal is unused unless the strategy includes
	// the global category.
	Motion       Expansion
	WMCSF        Expansion
	GlobalSignal Expansion

	// PCAMotion enables motion reduction when strictly inside (0, 1),
	// interpreted as the minimum cumulative explained-variance ratio the
	// retained components must reach. Values at or outside the boundaries
	// disable reduction.
	PCAMotion float64

	// Reducer overrides the decomposition used for motion reduction.
	// Defaults to PCAReducer.
	Reducer Reducer

	// FS overrides the filesystem paths are read through. Defaults to the
	// operating system.
	FS fsutil.FileSystem
}

// DefaultOptions mirrors the library's documented defaults: the minimal
// strategy with full motion expansion, no reduction (PCAMotion sits on the
// closed boundary 1), and basic tissue and global-signal expansion.
func DefaultOptions() Options {
	return Options{
		Strategy:     Preset("minimal"),
		Motion:       ExpandFull,
		WMCSF:        ExpandBasic,
		GlobalSignal: ExpandBasic,
		PCAMotion:    1,
	}
}

func (o Options) reducer() Reducer {
	if o.Reducer != nil {
		return o.Reducer
	}
	return PCAReducer{}
}

func (o Options) fs() fsutil.FileSystem {
	if o.FS != nil {
		return o.FS
	}
	return fsutil.OSFileSystem{}
}

// Load selects confounds from a single input and returns a single table.
func Load(in Input, opts Options) (*table.Table, error) {
	raw, err := materialize(in, opts.fs())
	if err != nil {
		return nil, err
	}

	cats, err := Resolve(opts.Strategy)
	if err != nil {
		return nil, err
	}

	selected := make(map[Category]bool, len(cats))
	for _, c := range cats {
		selected[c] = true
	}

	out := table.New()
	// Loaders run in canonical order regardless of custom-list order, so
	// output column groups are deterministic.
	for _, cat := range canonicalOrder {
		if !selected[cat] {
			continue
		}

		var sub *table.Table
		switch cat {
		case Motion:
			sub, err = loadMotion(raw, opts.Motion, opts.PCAMotion, opts.reducer())
		case HighPass:
			sub, err = loadHighPass(raw)
		case WMCSF:
			sub, err = loadWMCSF(raw, opts.WMCSF)
		case GlobalSignal:
			sub, err = loadGlobal(raw, opts.GlobalSignal)
		}
		if err != nil {
			return nil, err
		}

		out, err = table.Concat(out, sub)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// LoadAll selects confounds from each input independently, preserving the
// caller's order and cardinality. The batch fails fast on the first input
// error.
func LoadAll(ins []Input, opts Options) ([]*table.Table, error) {
	out := make([]*table.Table, 0, len(ins))
	for i, in := range ins {
		t, err := Load(in, opts)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func materialize(in Input, fsys fsutil.FileSystem) (*table.Table, error) {
	switch {
	case in.tab != nil:
		return in.tab, nil
	case in.path != "":
		return table.ReadTSV(fsys, in.path)
	default:
		return nil, ErrInvalidInput
	}
}
