// Package errors provides the typed error values returned by lens operations.
// Every failure carries a code, the lens operation (view or set) and the
// constructor that produced the failing lens.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents lens failure categories.
type ErrorCode string

// Error codes for all lens failure categories.
const (
	// Focus resolution
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	ErrCodeMissingKey ErrorCode = "MISSING_KEY"

	// Replacement values
	ErrCodeCardinality  ErrorCode = "CARDINALITY_MISMATCH"
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	ErrCodeInvalidNames ErrorCode = "INVALID_NAMES"

	// Constructor arguments
	ErrCodeInvalidSpec ErrorCode = "INVALID_SPEC"

	// Failures raised by caller-supplied view, set or update functions
	ErrCodeCallback ErrorCode = "CALLBACK_ERROR"
)

// Op names the lens operation that failed.
type Op string

const (
	OpView Op = "view"
	OpSet  Op = "set"
)

// Sentinels for errors.Is. A sentinel matches any LensError with its code.
var (
	ErrOutOfRange   = &LensError{Code: ErrCodeOutOfRange}
	ErrMissingKey   = &LensError{Code: ErrCodeMissingKey}
	ErrCardinality  = &LensError{Code: ErrCodeCardinality}
	ErrTypeMismatch = &LensError{Code: ErrCodeTypeMismatch}
	ErrInvalidNames = &LensError{Code: ErrCodeInvalidNames}
	ErrInvalidSpec  = &LensError{Code: ErrCodeInvalidSpec}
)

// LensError is the error type returned by every lens in this module.
type LensError struct {
	Code    ErrorCode      `json:"code"`
	Op      Op             `json:"op,omitempty"`
	Lens    string         `json:"lens,omitempty"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *LensError) Error() string {
	prefix := fmt.Sprintf("[%s]", e.Code)
	if e.Lens != "" {
		prefix += " " + e.Lens
		if e.Op != "" {
			prefix += "." + string(e.Op)
		}
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *LensError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *LensError) WithCause(cause error) *LensError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *LensError) WithDetail(key string, value any) *LensError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// At records which lens constructor and operation produced the error.
func (e *LensError) At(lens string, op Op) *LensError {
	e.Lens = lens
	e.Op = op
	return e
}

// Is checks if the error matches a target error code.
func (e *LensError) Is(target error) bool {
	if t, ok := target.(*LensError); ok {
		return e.Code == t.Code
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (e *LensError) MarshalJSON() ([]byte, error) {
	type Alias LensError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}
