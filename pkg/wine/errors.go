package wine

import (
	"errors"
	"fmt"
)

var (
	ErrNoImageProvided      = errors.New("no image provided")
	ErrInferenceUnavailable = errors.New("inference unavailable")
	ErrMalformedModelOutput = errors.New("malformed model output")
	// ErrCuratedLookup means the curated notes store could not be queried.
	// It is never returned for a plain "no match".
	ErrCuratedLookup = errors.New("curated notes lookup failed")
)

// MalformedOutputError carries the raw model text that could not be turned into a candidate.
type MalformedOutputError struct {
	Raw string
	Err error
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMalformedModelOutput, e.Err)
}

func (e *MalformedOutputError) Unwrap() []error {
	return []error{ErrMalformedModelOutput, e.Err}
}
