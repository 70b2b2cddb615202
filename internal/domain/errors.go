package domain

import "errors"

// Common validation errors shared by the entity constructors.
var (
	ErrEmptyOfficeID       = errors.New("office ID cannot be empty")
	ErrEmptyLocation       = errors.New("office location cannot be empty")
	ErrLocationTooLong     = errors.New("office location cannot exceed 200 characters")
	ErrInvalidCapacity     = errors.New("office capacity must be greater than zero")
	ErrCapacityTooLarge    = errors.New("office capacity cannot exceed 1000")
	ErrInvalidCostPerDay   = errors.New("office cost per day must be greater than zero")
	ErrCostPerDayTooLarge  = errors.New("office cost per day must be less than 100000")
	ErrEmptyServiceName    = errors.New("service name cannot be empty")
	ErrServiceNameTooLong  = errors.New("service name cannot exceed 100 characters")
	ErrNegativeServiceCost = errors.New("service cost cannot be negative")

	ErrEmptyRatingOfficeID = errors.New("rating office ID cannot be empty")
	ErrInvalidScore        = errors.New("rating score must be between 0 and 5")
	ErrCommentTooLong      = errors.New("rating comment cannot exceed 500 characters")

	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrEmptyFirstName      = errors.New("first name cannot be empty")
	ErrEmptyLastName       = errors.New("last name cannot be empty")
	ErrNameTooLong         = errors.New("name cannot exceed 100 characters")
	ErrInvalidDni          = errors.New("DNI must be exactly 8 characters")
	ErrInvalidPhoneNumber  = errors.New("phone number must have 9 digits")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidRole         = errors.New("invalid user role value")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)
