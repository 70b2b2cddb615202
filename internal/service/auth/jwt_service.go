package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
)

// JWTService defines operations for managing JWT authentication tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT containing the user's identity
	// claims. Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, user *domain.User) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns an error if validation fails (expired, invalid
	// signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// IsExpired reports whether the token's expiry has passed. A token
	// that cannot be parsed at all is reported as expired; this method
	// never returns an error.
	IsExpired(ctx context.Context, tokenString string) bool

	// RefreshToken issues a fresh token carrying the same identity claims
	// as the given one. The input token must have a valid signature but
	// may already be expired.
	RefreshToken(ctx context.Context, tokenString string) (string, error)
}

// Claims carries the identity fields embedded in issued tokens.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// FullName is the user's display name at issue time.
	FullName string `json:"name,omitempty"`

	// Email is the user's email address at issue time.
	Email string `json:"email,omitempty"`

	// Dni is the user's national identity document.
	Dni string `json:"dni,omitempty"`

	// PhoneNumber is the user's phone number at issue time.
	PhoneNumber string `json:"phone,omitempty"`

	// Role names the user's platform role ("Seeker" or "Lessor").
	Role string `json:"role,omitempty"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
