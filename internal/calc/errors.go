package calc

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a field validation failure.
type ErrorKind int

const (
	EmptyField ErrorKind = iota
	NotANumber
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyField:
		return "empty_field"
	case NotANumber:
		return "not_a_number"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// FieldError is a validation failure scoped to one field.
type FieldError struct {
	Field Field
	Kind  ErrorKind
}

// Message returns the fixed inline message shown next to the field.
func (e *FieldError) Message() string {
	if e == nil {
		return ""
	}
	if e.Kind == EmptyField {
		return fmt.Sprintf("%s cannot be empty", e.Field)
	}
	return "Please enter a valid number"
}

func (e *FieldError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message())
}

// SumError aggregates the field errors of a failed computation. At least one
// of A and B is set.
type SumError struct {
	A *FieldError
	B *FieldError
}

// For returns the error recorded for field, or nil.
func (e *SumError) For(field Field) *FieldError {
	if e == nil {
		return nil
	}
	if field == FieldA {
		return e.A
	}
	return e.B
}

func (e *SumError) Error() string {
	if e == nil {
		return ""
	}

	parts := make([]string, 0, 2)
	if e.A != nil {
		parts = append(parts, e.A.Error())
	}
	if e.B != nil {
		parts = append(parts, e.B.Error())
	}
	return "invalid input: " + strings.Join(parts, "; ")
}
