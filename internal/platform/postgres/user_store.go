package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/platform/logger"
	"github.com/workstation/workstation-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
// It returns a new store instance using the provided transaction.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.UserStore.Create
// It saves a new user to the database. Unique violations surface as the
// matching duplicate sentinel: store.ErrDniExists, store.ErrEmailExists,
// or store.ErrPhoneNumberExists.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, first_name, last_name, dni, phone_number, email,
			role, hashed_password, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Dni,
		user.PhoneNumber,
		user.Email,
		user.Role,
		user.HashedPassword,
		user.CreatedAt,
		user.ModifiedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if IsUniqueViolation(err) {
			log.Warn("duplicate field during user creation",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
			return mapped
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return mapped
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("role", user.Role.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getBy(ctx, "id", id)
}

// GetByDni implements store.UserStore.GetByDni
// Returns store.ErrUserNotFound if no user has the DNI.
func (s *PostgresUserStore) GetByDni(ctx context.Context, dni string) (*domain.User, error) {
	return s.getBy(ctx, "dni", dni)
}

// GetByEmail implements store.UserStore.GetByEmail
// Returns store.ErrUserNotFound if no user has the email.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getBy(ctx, "email", email)
}

// GetByPhoneNumber implements store.UserStore.GetByPhoneNumber
// Returns store.ErrUserNotFound if no user has the phone number.
func (s *PostgresUserStore) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error) {
	return s.getBy(ctx, "phone_number", phoneNumber)
}

// getBy retrieves a single user by one of the indexed columns. The
// column name is always one of the fixed literals above, never input.
func (s *PostgresUserStore) getBy(ctx context.Context, column string, value any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`
		SELECT id, first_name, last_name, dni, phone_number, email,
			role, hashed_password, created_at, modified_at
		FROM users
		WHERE %s = $1
	`, column)

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Dni,
		&user.PhoneNumber,
		&user.Email,
		&user.Role,
		&user.HashedPassword,
		&user.CreatedAt,
		&user.ModifiedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("user not found", slog.String("lookup_column", column))
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()),
			slog.String("lookup_column", column))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Update implements store.UserStore.Update
// It saves changes to an existing user row.
// Returns store.ErrUserNotFound if the user does not exist, or the
// matching duplicate sentinel on a unique violation.
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, dni = $3, phone_number = $4,
			email = $5, role = $6, hashed_password = $7, modified_at = $8
		WHERE id = $9
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.Dni,
		user.PhoneNumber,
		user.Email,
		user.Role,
		user.HashedPassword,
		user.ModifiedAt,
		user.ID,
	)
	if err != nil {
		mapped := MapError(err)
		if IsUniqueViolation(err) {
			log.Warn("duplicate field during user update",
				slog.String("user_id", user.ID.String()),
				slog.String("error", err.Error()))
			return mapped
		}

		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrUserNotFound
		}
		return err
	}

	log.Info("user updated successfully", slog.String("user_id", user.ID.String()))
	return nil
}

// Delete implements store.UserStore.Delete
// It permanently removes a user account.
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "user"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("user not found for deletion", slog.String("user_id", id.String()))
			return store.ErrUserNotFound
		}
		return err
	}

	log.Info("user deleted successfully", slog.String("user_id", id.String()))
	return nil
}

// List implements store.UserStore.List
// It retrieves all registered users.
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, first_name, last_name, dni, phone_number, email,
			role, hashed_password, created_at, modified_at
		FROM users
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer func() { _ = rows.Close() }()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Dni,
			&user.PhoneNumber,
			&user.Email,
			&user.Role,
			&user.HashedPassword,
			&user.CreatedAt,
			&user.ModifiedAt,
		); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}
