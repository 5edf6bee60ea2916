package shared

import "strings"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound   = NewDomainError("NOT_FOUND", "Resource not found")
	ErrBadRequest = NewDomainError("BAD_REQUEST", "Bad request")
)

// FieldViolation describes a single violated field constraint
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated constraint of an input,
// not just the first one encountered.
type ValidationError struct {
	Violations []FieldViolation `json:"violations"`
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field violation
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// HasViolations reports whether any constraint was violated
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// NewValidationError creates an empty validation error to be filled via Add
func NewValidationError() *ValidationError {
	return &ValidationError{Violations: make([]FieldViolation, 0)}
}
