package source

import "fmt"

// ErrorType categorizes source management errors.
type ErrorType int

const (
	// ErrTypeValidation indicates invalid source data.
	ErrTypeValidation ErrorType = iota
	// ErrTypeConflict indicates a collection invariant violation (duplicate id).
	ErrTypeConflict
	// ErrTypeNotFound indicates a lookup for an id that is not in the collection.
	ErrTypeNotFound
	// ErrTypeStorage indicates a persistence failure reported by the registry.
	ErrTypeStorage
)

// String returns a human-readable name for the error type.
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeConflict:
		return "Conflict"
	case ErrTypeNotFound:
		return "Not Found"
	case ErrTypeStorage:
		return "Storage Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// SourceError is a categorized error for source management operations.
type SourceError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a validation error.
func NewValidationError(message string) *SourceError {
	return &SourceError{Type: ErrTypeValidation, Message: message}
}

// NewConflictError creates a conflict error.
func NewConflictError(message string) *SourceError {
	return &SourceError{Type: ErrTypeConflict, Message: message}
}

// NewNotFoundError creates a not-found error.
func NewNotFoundError(message string) *SourceError {
	return &SourceError{Type: ErrTypeNotFound, Message: message}
}

// NewStorageError creates a storage error wrapping the underlying cause.
func NewStorageError(message string, err error) *SourceError {
	return &SourceError{Type: ErrTypeStorage, Message: message, Err: err}
}

// IsValidationError checks if an error is a validation error.
func IsValidationError(err error) bool {
	if srcErr, ok := err.(*SourceError); ok {
		return srcErr.Type == ErrTypeValidation
	}
	return false
}

// IsNotFoundError checks if an error is a not-found error.
func IsNotFoundError(err error) bool {
	if srcErr, ok := err.(*SourceError); ok {
		return srcErr.Type == ErrTypeNotFound
	}
	return false
}
