package confounds

import (
	"errors"
	"fmt"
)

// ErrInvalidStrategy reports a zero-value Strategy (neither a preset name
// nor a category list).
var ErrInvalidStrategy = errors.New("strategy must be a preset name or a list of confound categories")

// ErrInvalidKeywords reports a nil keyword list passed to FindColumns.
var ErrInvalidKeywords = errors.New("keywords must be a non-nil list")

// ErrInvalidInput reports a zero-value Input (neither a table nor a path).
var ErrInvalidInput = errors.New("input must be a confounds table or a path to one")

// UnsupportedStrategyError reports a preset name outside the supported set.
type UnsupportedStrategyError struct {
	Strategy string
}

func (e *UnsupportedStrategyError) Error() string {
	return fmt.Sprintf("strategy %q is not supported", e.Strategy)
}

// UnsupportedConfoundTypeError reports a custom strategy entry outside the
// closed category set.
type UnsupportedConfoundTypeError struct {
	Confound string
}

func (e *UnsupportedConfoundTypeError) Error() string {
	return fmt.Sprintf("%q is not a supported type of confounds", e.Confound)
}

// MissingConfoundError reports a required column absent from the loaded
// table. This usually means the requested expansion mode asks for derived
// columns the preprocessing run did not produce.
type MissingConfoundError struct {
	Param string
}

func (e *MissingConfoundError) Error() string {
	return fmt.Sprintf("the parameter %q cannot be found in the available confounds; a different denoising strategy may be needed", e.Param)
}

// NoMatchingConfoundError reports a keyword that matched no column name.
type NoMatchingConfoundError struct {
	Keyword string
}

func (e *NoMatchingConfoundError) Error() string {
	return fmt.Sprintf("could not find any confound with the key %q", e.Keyword)
}
