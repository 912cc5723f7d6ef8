package errors

import "fmt"

// New creates a new LensError with the given code and message.
func New(code ErrorCode, message string) *LensError {
	return &LensError{
		Code:    code,
		Message: message,
	}
}

// OutOfRange creates an error for a position outside a sequence.
func OutOfRange(index, length int) *LensError {
	return New(ErrCodeOutOfRange, fmt.Sprintf("index %d out of range [0, %d)", index, length)).
		WithDetail("index", index).
		WithDetail("length", length)
}

// MissingKey creates an error for an absent field or key.
func MissingKey(key any) *LensError {
	return New(ErrCodeMissingKey, fmt.Sprintf("key %v not found", key)).
		WithDetail("key", key)
}

// Cardinality creates an error for a replacement whose size does not match
// the number of foci.
func Cardinality(expected, actual int) *LensError {
	return New(ErrCodeCardinality, fmt.Sprintf("expected %d values, got %d", expected, actual)).
		WithDetail("expected", expected).
		WithDetail("actual", actual)
}

// TypeMismatch creates an error for a structure of an unexpected shape.
func TypeMismatch(expected string, actual any) *LensError {
	return New(ErrCodeTypeMismatch, fmt.Sprintf("expected %s, got %T", expected, actual)).
		WithDetail("expected", expected).
		WithDetail("actual", fmt.Sprintf("%T", actual))
}

// InvalidNames creates an error for a rejected field name sequence.
func InvalidNames(message string) *LensError {
	return New(ErrCodeInvalidNames, message)
}

// InvalidSpec creates an error for a selection spec that cannot be resolved.
func InvalidSpec(message string) *LensError {
	return New(ErrCodeInvalidSpec, message)
}
