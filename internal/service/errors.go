package service

import (
	"errors"
	"fmt"
)

// Common sentinel errors shared by the command and query services.
var (
	// ErrNilCommand indicates a command service was invoked with a nil command
	ErrNilCommand = errors.New("command cannot be nil")

	// ErrOfficeNotFound indicates that the office does not exist or is inactive
	ErrOfficeNotFound = errors.New("office not found")

	// ErrUserNotFound indicates that the user does not exist
	ErrUserNotFound = errors.New("user not found")

	// ErrRatingNotFound indicates that the rating does not exist
	ErrRatingNotFound = errors.New("rating not found")

	// ErrOfficeTooNew indicates an office cannot be edited within two days
	// of its creation
	ErrOfficeTooNew = errors.New("office was created less than 2 days ago and cannot be modified yet")

	// ErrLocationChangeCooldown indicates the office location was changed
	// less than six months ago
	ErrLocationChangeCooldown = errors.New("office location can only be changed once every 6 months")

	// ErrNameChangeCooldown indicates the user's name cannot change within
	// seven days of account creation
	ErrNameChangeCooldown = errors.New("user names can only be changed 7 days after registration")

	// ErrInvalidRole indicates the requested role is not a defined enum value
	ErrInvalidRole = errors.New("role must be Seeker (1) or Lessor (2)")
)

// ServiceError wraps errors from the services with operation context.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "create_office")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
