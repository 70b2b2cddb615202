package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
)

// RatingStore defines the persistence contract for office ratings.
type RatingStore interface {
	Repository[domain.Rating]

	// GetByOfficeID retrieves all ratings submitted for the given office.
	// Returns an empty slice when the office has no ratings.
	GetByOfficeID(ctx context.Context, officeID uuid.UUID) ([]*domain.Rating, error)

	// WithTx returns a RatingStore that runs its operations on the
	// provided transaction.
	WithTx(tx *sql.Tx) RatingStore
}
