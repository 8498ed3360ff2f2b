package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// DuplicateError is a uniqueness violation that knows which existing record
// caused the conflict. ConflictingID is empty when the conflicting record
// was not resolved (e.g. the violation surfaced from a unique index).
type DuplicateError struct {
	Entity        string
	ConflictingID string
	Message       string
}

func (e *DuplicateError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.ConflictingID != "" {
		return fmt.Sprintf("%s already exists (id %s)", e.Entity, e.ConflictingID)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

func (e *DuplicateError) Unwrap() error { return ErrAlreadyExists }

// NewDuplicateError creates a DuplicateError carrying the conflicting id.
func NewDuplicateError(entity, conflictingID string) *DuplicateError {
	return &DuplicateError{Entity: entity, ConflictingID: conflictingID}
}
