package component

import "fmt"

// ValidationError reports a value that violates one of the fixed numeric or
// length bounds. It is returned synchronously from constructors and setters;
// the target field is left unchanged.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// TypeError reports a value whose shape does not match what the field
// expects, such as a TextInputStyle that is not a member of the enumeration.
type TypeError struct {
	Field   string
	Message string
}

func (e *TypeError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func validationErrorf(field, format string, args ...any) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
