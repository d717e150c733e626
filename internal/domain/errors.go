package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrWorkoutNotFound  = fmt.Errorf("workout: %w", ErrNotFound)
	ErrExerciseNotFound = fmt.Errorf("exercise: %w", ErrNotFound)
)

// FieldError is a single (field, message) validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates one or more field failures raised by either
// boundary or invariant validation.
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates a ValidationError holding a single field failure
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return strings.Join(parts, "; ")
}

// Add appends a field failure
func (e *ValidationError) Add(field, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Message: message})
}

// Merge appends the failures carried by err when it is a *ValidationError.
// Any other non-nil error is recorded against the given field.
func (e *ValidationError) Merge(field string, err error) {
	if err == nil {
		return
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		e.Errors = append(e.Errors, verr.Errors...)
		return
	}
	e.Add(field, err.Error())
}

// Fields returns the failing field names in order
func (e *ValidationError) Fields() []string {
	fields := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		fields[i] = fe.Field
	}
	return fields
}

// ErrOrNil returns e as an error when it holds failures, nil otherwise
func (e *ValidationError) ErrOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// ConstraintViolation is a storage-level uniqueness or check failure that
// validation did not catch (for example two creates racing on one name).
type ConstraintViolation struct {
	Constraint string
	Fields     []string
	Message    string
}

func (e *ConstraintViolation) Error() string {
	return e.Message
}

// FieldErrors expands the violation into one FieldError per offending field
func (e *ConstraintViolation) FieldErrors() []FieldError {
	out := make([]FieldError, len(e.Fields))
	for i, f := range e.Fields {
		out[i] = FieldError{Field: f, Message: e.Message}
	}
	return out
}
