package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Wrap wraps an error with additional context.
// A wrapped LensError keeps its code and origin.
func Wrap(err error, message string) *LensError {
	if err == nil {
		return nil
	}
	var lensErr *LensError
	if errors.As(err, &lensErr) {
		return &LensError{
			Code:    lensErr.Code,
			Op:      lensErr.Op,
			Lens:    lensErr.Lens,
			Message: message,
			Details: maps.Clone(lensErr.Details),
			cause:   err,
		}
	}
	return New(ErrCodeCallback, message).WithCause(err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *LensError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsCode checks if the error has the specified error code.
func IsCode(err error, code ErrorCode) bool {
	var lensErr *LensError
	if errors.As(err, &lensErr) {
		return lensErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error.
// Errors that did not come from a lens report an empty code.
func GetCode(err error) ErrorCode {
	var lensErr *LensError
	if errors.As(err, &lensErr) {
		return lensErr.Code
	}
	return ""
}
