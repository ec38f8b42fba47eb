package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("opportunity not found")
	ErrInvalidID     = errors.New("invalid opportunity id")
	ErrBatchEmpty    = errors.New("opportunities must be a non-empty array")
	ErrBatchTooLarge = errors.New("too many opportunities in one batch")
)

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is returned for client input that cannot be accepted.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
