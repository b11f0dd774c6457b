package vehicle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidVIN is wrapped by every ValidationError raised for a malformed identifier.
	ErrInvalidVIN = errors.New("invalid vehicle identification number")
	// ErrUnknownField is wrapped when an override names a field that does not exist.
	ErrUnknownField = errors.New("unknown canonical field")
	// ErrInvalidValue is wrapped when an override value cannot be coerced to the field's kind.
	ErrInvalidValue = errors.New("invalid field value")
	// ErrNotFound is returned when no stored record exists for a VIN.
	ErrNotFound = errors.New("vehicle not found")
)

// ValidationError reports a caller contract violation.
// It is the only error the reconciliation engine returns.
type ValidationError struct {
	Op     string // Operation that failed
	Field  string // Offending input, e.g. "vin" or a canonical field name
	Value  string
	Reason string
	Err    error // One of the sentinel errors above
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

// Unwrap returns the sentinel error for errors.Is support.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
