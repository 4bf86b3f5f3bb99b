package confounds

import "fmt"

// Expansion selects which derived variants of a base confound are included
// alongside the base signal. Expansion is purely name-based: the derived
// columns must already exist in the raw table (fMRIprep precomputes them);
// nothing is differentiated or squared here.
type Expansion int

const (
	// ExpandBasic selects only the base signals.
	ExpandBasic Expansion = iota
	// ExpandDerivatives adds the first temporal derivative of each base.
	ExpandDerivatives
	// ExpandPower2 adds the quadratic term of each base.
	ExpandPower2
	// ExpandFull adds derivatives, quadratic terms, and the quadratic of
	// each derivative.
	ExpandFull
)

// String returns the mode's wire form as used in fMRIprep tooling.
func (e Expansion) String() string {
	switch e {
	case ExpandBasic:
		return "basic"
	case ExpandDerivatives:
		return "derivatives"
	case ExpandPower2:
		return "power2"
	case ExpandFull:
		return "full"
	}
	return fmt.Sprintf("Expansion(%d)", int(e))
}

// ParseExpansion maps a mode name to its Expansion value.
func ParseExpansion(s string) (Expansion, error) {
	switch s {
	case "basic":
		return ExpandBasic, nil
	case "derivatives":
		return ExpandDerivatives, nil
	case "power2":
		return ExpandPower2, nil
	case "full":
		return ExpandFull, nil
	}
	return 0, fmt.Errorf("unknown expansion mode %q (want basic, derivatives, power2 or full)", s)
}

// ExpandNames returns the full set of column names implied by the base
// names and mode. The bases come first in their original order, followed by
// the derivative1 names for all bases, then power2 for all bases, then
// derivative1_power2 for all bases. Grouping is by suffix, never
// interleaved per base, so the output order is stable across modes.
func ExpandNames(bases []string, mode Expansion) []string {
	out := make([]string, 0, 4*len(bases))
	out = append(out, bases...)

	if mode == ExpandDerivatives || mode == ExpandFull {
		for _, base := range bases {
			out = append(out, base+"_derivative1")
		}
	}
	if mode == ExpandPower2 || mode == ExpandFull {
		for _, base := range bases {
			out = append(out, base+"_power2")
		}
	}
	if mode == ExpandFull {
		for _, base := range bases {
			out = append(out, base+"_derivative1_power2")
		}
	}
	return out
}
