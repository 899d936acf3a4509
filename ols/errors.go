package ols

import "fmt"

// ValidationError reports an invalid argument or an unsupported operation.
// Errors from the regression engine and the plot renderer are not wrapped;
// they propagate to the caller unmodified.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}
