package shared

import (
	"errors"
	"fmt"
)

// Error codes for the four outcome kinds a mutation can end in besides success.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidationRejected = "VALIDATION_REJECTED"
	CodeConstraintConflict = "CONSTRAINT_CONFLICT"
	CodeUnexpected         = "UNEXPECTED"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Field is the canonical name of the offending field, if any
	Field string `json:"field,omitempty"`
	// ConflictID is the id of the row that caused a uniqueness or cascade rejection
	ConflictID int64 `json:"conflict_id,omitempty"`

	cause error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying store error for Unexpected and ConstraintConflict
func (e *DomainError) Unwrap() error {
	return e.cause
}

// Is matches domain errors by code so that errors.Is(err, ErrNotFound) works
// for any not-found error regardless of its message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithField returns a copy of the error annotated with a field name
func (e *DomainError) WithField(field string) *DomainError {
	cp := *e
	cp.Field = field
	return &cp
}

// WithConflict returns a copy of the error annotated with the conflicting id
func (e *DomainError) WithConflict(id int64) *DomainError {
	cp := *e
	cp.ConflictID = id
	return &cp
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewNotFound reports that an entity of the given kind does not exist
func NewNotFound(kind string, id int64) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s %d not found", kind, id),
	}
}

// NewRejected reports a failed business rule on the given field
func NewRejected(field, message string) *DomainError {
	return &DomainError{
		Code:    CodeValidationRejected,
		Message: message,
		Field:   field,
	}
}

// NewConstraintConflict reports that the store refused a write the checks admitted
func NewConstraintConflict(message string, cause error) *DomainError {
	return &DomainError{
		Code:    CodeConstraintConflict,
		Message: message,
		cause:   cause,
	}
}

// NewUnexpected wraps a store failure that is not a business outcome
func NewUnexpected(op string, cause error) *DomainError {
	return &DomainError{
		Code:    CodeUnexpected,
		Message: fmt.Sprintf("%s: unexpected failure", op),
		cause:   cause,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError(CodeNotFound, "Resource not found")
	ErrRejected           = NewDomainError(CodeValidationRejected, "Mutation rejected")
	ErrConstraintConflict = NewDomainError(CodeConstraintConflict, "Stored data conflicts with the request")
	ErrUnexpected         = NewDomainError(CodeUnexpected, "Unexpected failure")
)

// IsNotFound reports whether err is a NotFound outcome
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsRejected reports whether err is a ValidationRejected or ConstraintConflict outcome.
// Both are handled identically at the boundary.
func IsRejected(err error) bool {
	return errors.Is(err, ErrRejected) || errors.Is(err, ErrConstraintConflict)
}

// AsDomainError returns err as a *DomainError, wrapping anything else as Unexpected.
func AsDomainError(op string, err error) *DomainError {
	if err == nil {
		return nil
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}
	return NewUnexpected(op, err)
}
