package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain error types for consistent error handling across the application.

var (
	// ErrNotFound is returned when a requested joke does not exist, or when a
	// random joke is requested from an empty store.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStorage is returned when the underlying persistence fails.
	ErrStorage = errors.New("storage failure")
)

// DomainError wraps a base error with additional context.
type DomainError struct {
	// Base is the underlying error type (e.g., ErrNotFound)
	Base error

	// Message provides human-readable context
	Message string

	// Field indicates which field caused the error (for validation errors)
	Field string

	// Fields holds every field failure of a validation error, in field order.
	Fields []FieldError

	// Cause is the wrapped lower-level error, kept for server-side logging.
	Cause error
}

// FieldError describes one failed constraint on one input field.
type FieldError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Location string `json:"location"`
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	var b strings.Builder
	b.WriteString(e.Base.Error())
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " (field: %s)", e.Field)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the base error and the cause for errors.Is/As support.
func (e *DomainError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Base}
	}
	return []error{e.Base, e.Cause}
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Base:    ErrNotFound,
		Message: resource,
	}
}

// NewValidationError creates a validation error for a specific field.
func NewValidationError(field, message string) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: message,
		Field:   field,
		Fields:  []FieldError{{Field: field, Message: message, Location: LocationBody}},
	}
}

// NewValidationErrors merges field failures into a single validation error.
func NewValidationErrors(fields []FieldError) *DomainError {
	return &DomainError{
		Base:    ErrInvalidInput,
		Message: "request validation failed",
		Fields:  fields,
	}
}

// NewStorageError wraps a driver error raised while running op.
func NewStorageError(op string, cause error) *DomainError {
	return &DomainError{
		Base:    ErrStorage,
		Message: op,
		Cause:   cause,
	}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsStorageError checks if an error is a storage error.
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}

// FieldErrors returns the field failures carried by a validation error.
func FieldErrors(err error) []FieldError {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Fields
	}
	return nil
}
