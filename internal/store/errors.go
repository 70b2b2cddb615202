package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g. an office at the same location).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors

	// ErrOfficeNotFound indicates that the requested office does not exist.
	ErrOfficeNotFound = fmt.Errorf("%w: office", ErrNotFound)

	// ErrRatingNotFound indicates that the requested rating does not exist.
	ErrRatingNotFound = fmt.Errorf("%w: rating", ErrNotFound)

	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// Entity-specific "duplicate" errors. The service layer pre-checks
	// these for friendlier messages; the unique indexes in the database
	// are the authoritative defense and surface the same sentinels.

	// ErrLocationExists indicates an office already exists at the location.
	ErrLocationExists = fmt.Errorf("%w: location", ErrDuplicate)

	// ErrDniExists indicates a user with the DNI already exists.
	ErrDniExists = fmt.Errorf("%w: dni", ErrDuplicate)

	// ErrEmailExists indicates a user with the email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)

	// ErrPhoneNumberExists indicates a user with the phone number already exists.
	ErrPhoneNumberExists = fmt.Errorf("%w: phone number", ErrDuplicate)
)

// IsNotFoundError reports whether the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
