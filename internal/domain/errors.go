// Package domain holds the error taxonomy shared by all services. Handlers map
// these to HTTP statuses in one place; services never touch status codes.
package domain

import "fmt"

// NotFoundError signals that a referenced entity does not exist, or that the
// caller is not allowed to see it. Authorization failures are reported as
// not-found on purpose so an unauthorized caller cannot probe for existence.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewNotFoundError creates a NotFoundError for an entity with a numeric id.
func NewNotFoundError(entity string, id int64) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("%s with id = %d not found", entity, id)}
}

// NewNotFoundMessage creates a NotFoundError with a custom message.
func NewNotFoundMessage(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// NotAvailableError signals a failed domain precondition: an unavailable item,
// an invalid time range, or a booking outside a transitionable status.
type NotAvailableError struct {
	Message string
}

func (e *NotAvailableError) Error() string {
	return e.Message
}

// NewNotAvailableError creates a NotAvailableError.
func NewNotAvailableError(format string, args ...any) *NotAvailableError {
	return &NotAvailableError{Message: fmt.Sprintf(format, args...)}
}

// StateError signals a listing state filter outside the recognized vocabulary.
type StateError struct {
	State string
}

func (e *StateError) Error() string {
	return "Unknown state: " + e.State
}

// NewStateError creates a StateError for the given raw filter value.
func NewStateError(state string) *StateError {
	return &StateError{State: state}
}

// ConflictError signals a uniqueness violation such as a duplicate email.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError creates a ConflictError.
func NewConflictError(format string, args ...any) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

// ValidationError signals malformed or missing request data.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
