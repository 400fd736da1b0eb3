// Package domain contains domain entities, shared constants, and the closed
// failure taxonomy. This package should have no external dependencies except
// the standard library.
package domain

import (
	"errors"
	"fmt"
)

// The closed set of failure kinds a repository operation may resolve to.
// Every error crossing the repository boundary wraps exactly one of these,
// so the response layer has a single total mapping to transport statuses.
var (
	// ErrInvalidInput is returned when input validation fails before any I/O.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when creating a resource that already exists.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrTimeout is returned when an operation exceeds its deadline.
	ErrTimeout = errors.New("operation timed out")

	// ErrOverloaded is returned when admission control rejects a call.
	ErrOverloaded = errors.New("service overloaded")

	// ErrStorageUnavailable is returned when the backing store is unreachable.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageFault is returned when the store rejected an otherwise valid
	// operation.
	ErrStorageFault = errors.New("storage fault")

	// ErrUnknown covers anything that could not be classified. The original
	// message is preserved for diagnostics.
	ErrUnknown = errors.New("unknown error")
)

// DomainError pairs a taxonomy kind with a human-readable message.
type DomainError struct {
	Kind    error
	Message string
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Kind.Error()
}

// Unwrap returns the kind for errors.Is support.
func (e *DomainError) Unwrap() error {
	return e.Kind
}

// NewInvalidInputError creates a validation failure with context.
func NewInvalidInputError(message string) *DomainError {
	return &DomainError{Kind: ErrInvalidInput, Message: message}
}

// NewNotFoundError creates a not found failure with context.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Kind: ErrNotFound, Message: message}
}

// NewAlreadyExistsError creates an already-exists failure with context.
func NewAlreadyExistsError(message string) *DomainError {
	return &DomainError{Kind: ErrAlreadyExists, Message: message}
}

// NewTimeoutError creates a timeout failure.
func NewTimeoutError() *DomainError {
	return &DomainError{Kind: ErrTimeout, Message: "Request timeout. Try again later."}
}

// NewOverloadedError creates an admission-rejected failure.
func NewOverloadedError() *DomainError {
	return &DomainError{Kind: ErrOverloaded, Message: "Service experience high loads. Try again later."}
}

// NewStorageUnavailableError creates an unreachable-store failure.
func NewStorageUnavailableError() *DomainError {
	return &DomainError{Kind: ErrStorageUnavailable, Message: "SqlServer Exception occurred: Unable to connect to database"}
}

// NewStorageFaultError creates a store-rejected failure with the driver message.
func NewStorageFaultError(detail string) *DomainError {
	return &DomainError{Kind: ErrStorageFault, Message: "SqlServer Exception occurred: " + detail}
}

// NewUnknownError wraps an unclassified failure, preserving its message.
func NewUnknownError(err error) *DomainError {
	return &DomainError{Kind: ErrUnknown, Message: fmt.Sprintf("Unknown error: %v", err)}
}

// IsInvalidInput checks whether err is a validation failure.
func IsInvalidInput(err error) bool { return errors.Is(err, ErrInvalidInput) }

// IsNotFound checks whether err is a not found failure.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsAlreadyExists checks whether err is an already-exists failure.
func IsAlreadyExists(err error) bool { return errors.Is(err, ErrAlreadyExists) }

// IsTimeout checks whether err is a timeout failure.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }

// IsOverloaded checks whether err is an admission rejection.
func IsOverloaded(err error) bool { return errors.Is(err, ErrOverloaded) }

// IsStorageUnavailable checks whether err is an unreachable-store failure.
func IsStorageUnavailable(err error) bool { return errors.Is(err, ErrStorageUnavailable) }

// IsStorageFault checks whether err is a store-rejected failure.
func IsStorageFault(err error) bool { return errors.Is(err, ErrStorageFault) }

// IsUnknown checks whether err is an unclassified failure.
func IsUnknown(err error) bool { return errors.Is(err, ErrUnknown) }
