package domain

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by all layers. Package-specific errors wrap one of these,
// so callers may test either the precise error or its category with errors.Is.
var (
	// ErrValidation malformed input: bad time range, unknown zone, mode incompatible with zone
	ErrValidation = errors.New("validation error")

	// ErrCapacity the half-day physical appointment limit is reached
	ErrCapacity = errors.New("capacity violation")

	// ErrSpacing a minimum gap between appointments would be broken
	ErrSpacing = errors.New("spacing violation")

	// ErrConflict the slot was taken concurrently or a lock could not be obtained; retryable
	ErrConflict = errors.New("conflict")

	// ErrNotFound the referenced entity does not exist
	ErrNotFound = errors.New("not found")
)

// Violation describes why a booking request was rejected by a business rule.
// Kind is ErrCapacity or ErrSpacing.
type Violation struct {
	Kind    error
	StaffID int64
	Reason  string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%v: staff=%d: %s", v.Kind, v.StaffID, v.Reason)
}

func (v *Violation) Unwrap() error {
	return v.Kind
}

// IsRetryable reports whether the caller may retry the same request
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConflict)
}
