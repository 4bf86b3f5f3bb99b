package confounds

import "fmt"

// Category identifies one of the four confound families.
type Category int

const (
	// Motion covers the six rigid-body head motion parameters.
	Motion Category = iota
	// HighPass covers the discrete-cosine high-pass regressors.
	HighPass
	// WMCSF covers the white matter and cerebrospinal fluid averages.
	WMCSF
	// GlobalSignal covers the whole-brain average signal.
	GlobalSignal
)

// canonicalOrder is the fixed order category loaders run in, regardless of
// the order categories appear in a custom strategy list.
var canonicalOrder = [...]Category{Motion, HighPass, WMCSF, GlobalSignal}

// String returns the category's wire form.
func (c Category) String() string {
	switch c {
	case Motion:
		return "motion"
	case HighPass:
		return "high_pass"
	case WMCSF:
		return "wm_csf"
	case GlobalSignal:
		return "global"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

var categoriesByName = map[string]Category{
	"motion":    Motion,
	"high_pass": HighPass,
	"wm_csf":    WMCSF,
	"global":    GlobalSignal,
}

// presets maps the named denoising strategies to their category lists.
var presets = map[string][]Category{
	"minimal":      {Motion, HighPass, WMCSF},
	"minimal_glob": {Motion, HighPass, WMCSF, GlobalSignal},
}

// Strategy specifies which confound categories to select: either a named
// preset or an explicit category list. The zero value is invalid.
type Strategy struct {
	preset string
	names  []string
	custom bool
}

// Preset names a predefined strategy ("minimal" or "minimal_glob").
func Preset(name string) Strategy {
	return Strategy{preset: name}
}

// Categories lists confound categories explicitly by their wire names
// ("motion", "high_pass", "wm_csf", "global"). Caller order is preserved
// through resolution.
func Categories(names ...string) Strategy {
	return Strategy{names: names, custom: true}
}

// Resolve normalizes a strategy into its category list. Preset strategies
// expand to their fixed canonical order; custom lists keep the caller's
// order. Unknown presets and unknown category names fail before any
// loading begins.
func Resolve(s Strategy) ([]Category, error) {
	switch {
	case s.custom:
		cats := make([]Category, 0, len(s.names))
		for _, name := range s.names {
			cat, ok := categoriesByName[name]
			if !ok {
				return nil, &UnsupportedConfoundTypeError{Confound: name}
			}
			cats = append(cats, cat)
		}
		return cats, nil

	case s.preset != "":
		cats, ok := presets[s.preset]
		if !ok {
			return nil, &UnsupportedStrategyError{Strategy: s.preset}
		}
		out := make([]Category, len(cats))
		copy(out, cats)
		return out, nil

	default:
		return nil, ErrInvalidStrategy
	}
}
