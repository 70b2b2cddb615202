package domain

import "github.com/google/uuid"

// Commands carry the caller-supplied payload for the command services.
// Validation tags mirror the field constraints; the cross-field cost
// rules are registered as struct-level validations by the validation
// package.

// CreateOfficeCommand requests creation of an office with its add-on
// services.
type CreateOfficeCommand struct {
	Location    string                 `json:"location"     validate:"required,max=200"`
	Description string                 `json:"description"  validate:"required,max=500"`
	ImageURL    string                 `json:"image_url"    validate:"required,image_url,max=300"`
	Capacity    int                    `json:"capacity"     validate:"gt=0,lte=1000"`
	CostPerDay  int                    `json:"cost_per_day" validate:"gt=0,lt=100000"`
	Available   bool                   `json:"available"`
	Services    []OfficeServiceCommand `json:"services"     validate:"required,min=1,dive"`
}

// OfficeServiceCommand is one requested add-on inside a CreateOfficeCommand.
type OfficeServiceCommand struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"max=250"`
	Cost        int    `json:"cost"        validate:"gte=20,lte=100"`
}

// UpdateOfficeCommand overwrites the mutable fields of an existing office.
type UpdateOfficeCommand struct {
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Capacity    int    `json:"capacity"`
	CostPerDay  int    `json:"cost_per_day"`
	Available   bool   `json:"available"`
}

// CreateRatingCommand requests a new rating for an office.
type CreateRatingCommand struct {
	OfficeID uuid.UUID `json:"office_id"`
	Score    int       `json:"score"`
	Comment  string    `json:"comment"`
}

// CreateUserCommand requests a new user account. Password is the
// plaintext credential; it is hashed before anything is persisted.
type CreateUserCommand struct {
	FirstName   string   `json:"first_name"   validate:"required,max=100"`
	LastName    string   `json:"last_name"    validate:"required,max=100"`
	Dni         string   `json:"dni"          validate:"required,len=8"`
	PhoneNumber string   `json:"phone_number" validate:"required,numeric,len=9"`
	Email       string   `json:"email"        validate:"required,email"`
	Role        UserRole `json:"role"`
	Password    string   `json:"password"     validate:"required"`
}

// UpdateUserCommand overwrites the mutable fields of an existing user.
type UpdateUserCommand struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
}
