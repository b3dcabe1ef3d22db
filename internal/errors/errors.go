// Package apperrors defines structured application error types,
// allowing for a clear distinction between error classes (configuration,
// registration, computation, validation) and for carrying the underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// All error types implement the Unwrap() method to support errors.Is() and errors.As().
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess        = 0   // Indicates successful execution.
	ExitErrorGeneric   = 1   // Indicates a generic error.
	ExitErrorRunFailed = 2   // Indicates at least one technique run failed.
	ExitErrorMismatch  = 3   // Indicates a technique produced an incorrect value.
	ExitErrorConfig    = 4   // Indicates a configuration error.
	ExitErrorCanceled  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrOverflow is the sentinel cause for fixed-width techniques whose next
// value no longer fits their numeric domain. Techniques wrap it in a
// ComputationError so callers can detect overflow with errors.Is.
var ErrOverflow = errors.New("fixed-width overflow")

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// RegistrationError indicates that a technique could not be instantiated:
// either the name is unknown to the registry, or its backing implementation
// is unavailable in this build (e.g., compiled without the gmp tag).
// A RegistrationError is recorded per technique and never aborts the sweep,
// so the report shows "unavailable" rather than silently omitting the entry.
type RegistrationError struct {
	// Technique is the name the registry was asked for.
	Technique string
	// Cause is the underlying reason, if any.
	Cause error
}

// Error returns the error message for a RegistrationError.
func (e RegistrationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("technique %q unavailable: %v", e.Technique, e.Cause)
	}
	return fmt.Sprintf("unknown technique %q", e.Technique)
}

// Unwrap returns the underlying cause, allowing for error chain inspection.
func (e RegistrationError) Unwrap() error { return e.Cause }

// NewRegistrationError creates a RegistrationError for the named technique.
//
// Parameters:
//   - technique: The technique name that failed to instantiate.
//   - cause: The underlying error (nil for plain unknown-name failures).
//
// Returns:
//   - error: A new RegistrationError instance.
func NewRegistrationError(technique string, cause error) error {
	return RegistrationError{Technique: technique, Cause: cause}
}

// ComputationError indicates that a technique's Step() could not produce a
// valid next value (numeric overflow, internal precondition violated, panic
// in technique code). It preserves the index at which the step failed along
// with the original cause.
type ComputationError struct {
	// Index is the Fibonacci index the failing step was asked to produce.
	Index uint64
	// Cause is the underlying error that triggered this computation error.
	Cause error
}

// Error returns the error message from the underlying cause, annotated with
// the failing index.
func (e ComputationError) Error() string {
	return fmt.Sprintf("computation failed at n=%d: %v", e.Index, e.Cause)
}

// Unwrap returns the original wrapped error, allowing inspection with
// errors.Is or errors.As (e.g., errors.Is(err, ErrOverflow)).
func (e ComputationError) Unwrap() error { return e.Cause }

// NewComputationError creates a ComputationError at the given index.
func NewComputationError(index uint64, cause error) error {
	return ComputationError{Index: index, Cause: cause}
}

// InvalidResultError indicates that a computed value mismatched a known
// reference value. It is treated as more severe than a plain computation
// error because it implies silent wrongness that was caught by the validator.
type InvalidResultError struct {
	// Index is the Fibonacci index whose value failed validation.
	Index uint64
	// Got is the decimal representation of the incorrect value.
	Got string
	// Want is the decimal representation of the reference value.
	Want string
}

// Error returns the error message for an InvalidResultError. Long values are
// elided so a single bad record cannot flood the report.
func (e InvalidResultError) Error() string {
	return fmt.Sprintf("invalid result at n=%d: got %s, want %s",
		e.Index, elide(e.Got), elide(e.Want))
}

// elide shortens decimal strings, keeping both edges visible.
func elide(s string) string {
	const keep = 18
	if len(s) <= 2*keep+3 {
		return s
	}
	return s[:keep] + "..." + s[len(s)-keep:]
}

// NewInvalidResultError creates an InvalidResultError for the given index.
func NewInvalidResultError(index uint64, got, want string) error {
	return InvalidResultError{Index: index, Got: got, Want: want}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// It returns nil when err is nil so call sites can wrap unconditionally.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
