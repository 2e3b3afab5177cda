package validate

import "fmt"

// FieldError is a row-level validation failure. It names the offending
// field and carries a human-readable reason. A FieldError rejects one
// input row; it never aborts the batch that contains it.
type FieldError struct {
	// Field is the logical column that failed validation.
	Field string

	// Reason is the human-readable explanation written to the error sink.
	Reason string
}

func (e *FieldError) Error() string {
	return e.Reason
}

// Failf builds a FieldError with a formatted reason.
func Failf(field, format string, args ...any) *FieldError {
	return &FieldError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// LineMessage renders a rejected row's diagnostic for the error sink,
// prefixed with the 1-based line position in the source file.
func LineMessage(line int, err error) string {
	return fmt.Sprintf("Error on line %d: %s", line, err)
}
