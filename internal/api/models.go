package api

import (
	"github.com/google/uuid"
)

// Common request/response structures. Mutation payloads decode straight
// into the domain command types; the structures here cover auth and the
// responses that are not plain entities.

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID uuid.UUID `json:"user_id,omitempty"`

	// Token is the JWT used for API authorization
	Token string `json:"token"`
}

// RefreshTokenRequest defines the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

// DeleteOfficeResponse reports whether a delete request deactivated
// anything.
type DeleteOfficeResponse struct {
	Deleted bool `json:"deleted"`
}

// AverageRatingResponse carries the aggregated score for one office.
type AverageRatingResponse struct {
	OfficeID uuid.UUID `json:"office_id"`
	Average  float64   `json:"average"`
}
