// ABOUTME: Error taxonomy for the insights engine.
// ABOUTME: Missing-patient sentinel plus a typed wrapper for storage failures.
package insights

import (
	"errors"
	"fmt"
)

// ErrMissingPatient indicates the caller supplied no patient identifier.
// Recoverable: the user must select or load a patient first.
var ErrMissingPatient = errors.New("no patient selected")

// DataAccessError wraps a failure from the underlying store. The engine never
// retries; callers decide whether to surface a retry affordance.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}
