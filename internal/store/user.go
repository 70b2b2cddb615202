package store

import (
	"context"
	"database/sql"

	"github.com/workstation/workstation-api/internal/domain"
)

// UserStore defines the persistence contract for user accounts.
// DNI, email, and phone number each carry a unique index; violations
// surface as the matching duplicate sentinel.
type UserStore interface {
	Repository[domain.User]

	// GetByDni retrieves a user by their national identity document.
	// Returns ErrUserNotFound if no user has the DNI.
	GetByDni(ctx context.Context, dni string) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if no user has the email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByPhoneNumber retrieves a user by their phone number.
	// Returns ErrUserNotFound if no user has the phone number.
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error)

	// WithTx returns a UserStore that runs its operations on the
	// provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
