package shared

import "fmt"

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

// NewValidationError creates a validation error with a caller-facing message
func NewValidationError(message string) *DomainError {
	return NewDomainError("VALIDATION_FAILED", message)
}

// NewNotFoundError creates a not-found error with a caller-facing message
func NewNotFoundError(format string, args ...any) *DomainError {
	return NewDomainError("NOT_FOUND", fmt.Sprintf(format, args...))
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrUnauthorized      = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrExternalService   = NewDomainError("EXTERNAL_SERVICE", "External service request failed")
	ErrNotConfigured     = NewDomainError("NOT_CONFIGURED", "Integration is not configured")
	ErrUnsupportedUpload = NewDomainError("UNSUPPORTED_UPLOAD", "File type is not allowed")
)
