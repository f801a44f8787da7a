/*
errors.go - Centralized error types for the compensation core

PURPOSE:
  All core error types in one place. The core is total over its
  documented input domain; errors exist only for malformed input handed
  in from outside (unrecognized shift variant tags, unknown rate
  profiles, unparsable dates). Callers must not construct a result when
  a MalformedInput condition is signaled.

USAGE:
  Callers branch with errors.Is / errors.As:

    if errors.Is(err, standby.ErrMalformedInput) {
        // 400, not 500
    }
*/
package standby

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrMalformedInput is the umbrella condition for any input the core
	// cannot interpret. Structured errors below unwrap to it.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownShiftVariant is returned for a shift assignment whose
	// variant tag is not one of the four known variants.
	ErrUnknownShiftVariant = errors.New("unknown shift variant")

	// ErrUnknownRateProfile is returned for an unrecognized rate profile.
	ErrUnknownRateProfile = errors.New("unknown rate profile")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// MalformedInputError reports which field carried the unusable value.
type MalformedInputError struct {
	Field string
	Value string
	Cause error
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed %s: %q", e.Field, e.Value)
}

func (e *MalformedInputError) Unwrap() []error {
	if e.Cause != nil {
		return []error{ErrMalformedInput, e.Cause}
	}
	return []error{ErrMalformedInput}
}

// IsClientError returns true if the error is due to invalid caller input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
