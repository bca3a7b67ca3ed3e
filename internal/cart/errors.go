package cart

import (
	"fmt"
	"strings"

	"github.com/go-faster/errors"
)

// ErrValidationFailed is matched by every *ValidationFailedError.
var ErrValidationFailed = errors.New("Validation failed!")

// ValidationFailedError is returned by Parse when the content has at least
// one validation error. Its message is always "Validation failed!"; the
// detailed list is in Errors.
type ValidationFailedError struct {
	Source string
	Errors []ValidationError
}

func (e *ValidationFailedError) Error() string {
	return ErrValidationFailed.Error()
}

// Is reports whether target is ErrValidationFailed.
func (e *ValidationFailedError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ReadError wraps a failure of the ContentReader. It is not part of the
// validation taxonomy.
type ReadError struct {
	Source string
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// CreateError builds a ValidationError. Every detected problem goes through
// this function exactly once.
func CreateError(errType ErrorType, row, column int, message string) ValidationError {
	return ValidationError{
		Type:    errType,
		Row:     row,
		Column:  column,
		Message: message,
	}
}

// FormatErrors renders validation errors for display or logging.
func FormatErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return "No validation errors."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Validation completed with %d error(s):\n\n", len(errs))
	for i, e := range errs {
		if e.Column < 0 {
			fmt.Fprintf(&b, "%d. [%s] row %d: %s\n", i+1, e.Type, e.Row, e.Message)
			continue
		}
		fmt.Fprintf(&b, "%d. [%s] row %d, column %d: %s\n", i+1, e.Type, e.Row, e.Column, e.Message)
	}

	return b.String()
}
