package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/config"
	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/platform/logger"
)

// hmacJWTService is an implementation of JWTService using HMAC-SHA signing.
type hmacJWTService struct {
	signingKey    []byte
	tokenLifetime time.Duration
	timeFunc      func() time.Time // Injectable for testing
	clockSkew     time.Duration    // Allowed time difference for validation to handle clock drift
}

// jwtCustomClaims defines the structure of JWT claims we issue.
type jwtCustomClaims struct {
	UserID      uuid.UUID `json:"uid"`
	FullName    string    `json:"name"`
	Email       string    `json:"email"`
	Dni         string    `json:"dni"`
	PhoneNumber string    `json:"phone"`
	Role        string    `json:"role"`
	jwt.RegisteredClaims
}

// Ensure hmacJWTService implements JWTService interface
var _ JWTService = (*hmacJWTService)(nil)

// NewJWTService creates a new JWT service using HMAC-SHA signing.
func NewJWTService(cfg config.AuthConfig) (JWTService, error) {
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 characters")
	}

	return &hmacJWTService{
		signingKey:    []byte(cfg.JWTSecret),
		tokenLifetime: time.Duration(cfg.TokenLifetimeMinutes) * time.Minute,
		timeFunc:      time.Now,
		clockSkew:     2 * time.Minute,
	}, nil
}

// GenerateToken creates a signed JWT carrying the user's identity claims.
func (s *hmacJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	log := logger.FromContext(ctx)
	now := s.timeFunc()

	claims := jwtCustomClaims{
		UserID:      user.ID,
		FullName:    user.FullName(),
		Email:       user.Email,
		Dni:         user.Dni,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign JWT token",
			"error", err,
			"user_id", user.ID,
			"signing_method", jwt.SigningMethodHS256.Name)
		return "", fmt.Errorf("failed to sign token with HMAC-SHA256: %w", err)
	}

	return signedToken, nil
}

// ValidateToken validates a JWT and returns the claims if valid.
func (s *hmacJWTService) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	log := logger.FromContext(ctx)

	claims, err := s.parse(tokenString, false)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			log.Debug("token validation failed: token expired", "error", err)
			return nil, ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			log.Debug("token validation failed: token not yet valid", "error", err)
			return nil, ErrTokenNotYetValid
		default:
			log.Debug("token validation failed", "error", err)
			return nil, ErrInvalidToken
		}
	}

	log.Debug("token validated successfully",
		"user_id", claims.UserID,
		"token_id", claims.ID,
		"expiry", claims.ExpiresAt)
	return claims, nil
}

// IsExpired reports whether the token has expired. Tokens that cannot be
// parsed or whose signature does not verify are reported expired as well.
func (s *hmacJWTService) IsExpired(ctx context.Context, tokenString string) bool {
	_, err := s.parse(tokenString, false)
	return err != nil
}

// RefreshToken re-issues a token with the same identity claims and a new
// expiry. The signature of the old token must verify; an expired token is
// accepted, anything else invalid is not.
func (s *hmacJWTService) RefreshToken(ctx context.Context, tokenString string) (string, error) {
	log := logger.FromContext(ctx)

	claims, err := s.parse(tokenString, true)
	if err != nil {
		log.Debug("token refresh rejected", "error", err)
		return "", ErrInvalidToken
	}

	now := s.timeFunc()
	fresh := jwtCustomClaims{
		UserID:      claims.UserID,
		FullName:    claims.FullName,
		Email:       claims.Email,
		Dni:         claims.Dni,
		PhoneNumber: claims.PhoneNumber,
		Role:        claims.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.Subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, fresh)
	signedToken, err := token.SignedString(s.signingKey)
	if err != nil {
		log.Error("failed to sign refreshed JWT token",
			"error", err,
			"user_id", claims.UserID)
		return "", fmt.Errorf("failed to sign refreshed token: %w", err)
	}

	log.Debug("token refreshed", "user_id", claims.UserID)
	return signedToken, nil
}

// parse verifies the signature and time claims of a token and converts
// its claims. With allowExpired set, an expired token with a valid
// signature still parses.
func (s *hmacJWTService) parse(tokenString string, allowExpired bool) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	now := s.timeFunc()
	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithLeeway(s.clockSkew),
		jwt.WithTimeFunc(func() time.Time { return now }),
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&jwtCustomClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return s.signingKey, nil
		},
		parserOpts...)
	if err != nil {
		// An expired token still parses with a verified signature; the
		// refresh path accepts it.
		if !(allowExpired && errors.Is(err, jwt.ErrTokenExpired)) {
			return nil, err
		}
	}

	claims, ok := token.Claims.(*jwtCustomClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	out := &Claims{
		UserID:      claims.UserID,
		FullName:    claims.FullName,
		Email:       claims.Email,
		Dni:         claims.Dni,
		PhoneNumber: claims.PhoneNumber,
		Role:        claims.Role,
		Subject:     claims.Subject,
		ID:          claims.ID,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
