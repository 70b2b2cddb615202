package store

import (
	"context"
	"database/sql"

	"github.com/workstation/workstation-api/internal/domain"
)

// OfficeStore defines the persistence contract for offices and their
// owned services. Creating an office persists its attached services in
// the same operation; deleting one cascades to services and ratings.
type OfficeStore interface {
	Repository[domain.Office]

	// GetByLocation retrieves an office by its exact location string.
	// Returns ErrOfficeNotFound if no office exists at the location.
	GetByLocation(ctx context.Context, location string) (*domain.Office, error)

	// WithTx returns an OfficeStore that runs its operations on the
	// provided transaction. The transaction is created and managed by
	// the caller, typically a command service.
	WithTx(tx *sql.Tx) OfficeStore
}
