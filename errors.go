package funcall

import (
	"errors"
	"fmt"
)

// ErrInvalidArguments is wrapped by every validation failure (schema or
// Validatable). Check with errors.Is.
var ErrInvalidArguments = errors.New("invalid arguments")

// ArgumentError reports that a function was called with arguments that failed
// validation. Its message names the function and tells the model to call it
// again with corrected parameters, so the message can be returned verbatim as
// the tool's error output for self-correction. Do not put stack traces or
// internal details in the wrapped error. Err wraps ErrInvalidArguments.
type ArgumentError struct {
	Function string
	Err      error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("function %q was called with invalid arguments: %v; call %s again with corrected parameters",
		e.Function, e.Err, e.Function)
}

// Unwrap supports errors.Is/errors.As on the wrapped chain
// (e.g. errors.Is(err, ErrInvalidArguments)).
func (e *ArgumentError) Unwrap() error { return e.Err }

// IsArgumentError returns true if err is or wraps an ArgumentError.
func IsArgumentError(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}
