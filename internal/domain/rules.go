package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// Validation constants
const (
	MaxExerciseNameLength     = 120
	MaxExerciseCategoryLength = 80
	DateLayout                = "2006-01-02"
)

const untrimmedMessage = "must not have leading or trailing whitespace"

// The rules below are shared by boundary validation (service layer, raw
// request payloads) and invariant validation (entity setters).

// RequireText trims value and rejects it when blank or longer than maxLen runes
func RequireText(field, value string, maxLen int) (string, *FieldError) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", &FieldError{Field: field, Message: "is required and cannot be blank"}
	}
	if maxLen > 0 && utf8.RuneCountInString(trimmed) > maxLen {
		return "", &FieldError{Field: field, Message: fmt.Sprintf("must be %d characters or less", maxLen)}
	}
	return trimmed, nil
}

// RequirePositive rejects values below 1
func RequirePositive(field string, value int32) *FieldError {
	if value < 1 {
		return &FieldError{Field: field, Message: "must be >= 1"}
	}
	return nil
}

// OptionalPositive accepts nil and rejects present values below 1
func OptionalPositive(field string, value *int32) *FieldError {
	if value == nil {
		return nil
	}
	if *value < 1 {
		return &FieldError{Field: field, Message: "must be >= 1 when provided"}
	}
	return nil
}

// RequireID rejects missing (zero) or negative identifiers
func RequireID(field string, id int32) *FieldError {
	if id < 1 {
		return &FieldError{Field: field, Message: "is required"}
	}
	return nil
}

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD)
func ParseDate(field, value string) (time.Time, *FieldError) {
	parsed, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Message: "must be a valid ISO date (YYYY-MM-DD)"}
	}
	return parsed, nil
}

// CalendarDate truncates t to midnight UTC of its own calendar day
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func asError(fe *FieldError) error {
	if fe == nil {
		return nil
	}
	return &ValidationError{Errors: []FieldError{*fe}}
}
