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

// PostgresRatingStore implements the store.RatingStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRatingStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRatingStore creates a new PostgreSQL implementation of the
// RatingStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresRatingStore(db store.DBTX, logger *slog.Logger) *PostgresRatingStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRatingStore{
		db:     db,
		logger: logger.With(slog.String("component", "rating_store")),
	}
}

// Ensure PostgresRatingStore implements store.RatingStore interface
var _ store.RatingStore = (*PostgresRatingStore)(nil)

// WithTx implements store.RatingStore.WithTx
// It returns a new store instance using the provided transaction.
func (s *PostgresRatingStore) WithTx(tx *sql.Tx) store.RatingStore {
	return &PostgresRatingStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.RatingStore.Create
// It saves a new rating to the database.
// Returns store.ErrInvalidEntity if the office does not exist.
func (s *PostgresRatingStore) Create(ctx context.Context, rating *domain.Rating) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rating.Validate(); err != nil {
		log.Warn("rating validation failed during create",
			slog.String("error", err.Error()),
			slog.String("rating_id", rating.ID.String()))
		return err
	}

	query := `
		INSERT INTO ratings (id, office_id, score, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		rating.ID,
		rating.OfficeID,
		rating.Score,
		rating.Comment,
		rating.CreatedAt,
	)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during rating creation",
				slog.String("rating_id", rating.ID.String()),
				slog.String("office_id", rating.OfficeID.String()))
			return fmt.Errorf("%w: office with ID %s not found",
				store.ErrInvalidEntity, rating.OfficeID)
		}

		log.Error("failed to create rating",
			slog.String("error", err.Error()),
			slog.String("rating_id", rating.ID.String()))
		return MapError(err)
	}

	log.Info("rating created successfully",
		slog.String("rating_id", rating.ID.String()),
		slog.String("office_id", rating.OfficeID.String()),
		slog.Int("score", rating.Score))
	return nil
}

// GetByID implements store.RatingStore.GetByID
// Returns store.ErrRatingNotFound if the rating does not exist.
func (s *PostgresRatingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, office_id, score, comment, created_at
		FROM ratings
		WHERE id = $1
	`
	var rating domain.Rating
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&rating.ID,
		&rating.OfficeID,
		&rating.Score,
		&rating.Comment,
		&rating.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("rating not found", slog.String("rating_id", id.String()))
			return nil, store.ErrRatingNotFound
		}
		log.Error("failed to get rating by ID",
			slog.String("error", err.Error()),
			slog.String("rating_id", id.String()))
		return nil, fmt.Errorf("failed to get rating: %w", err)
	}

	return &rating, nil
}

// GetByOfficeID implements store.RatingStore.GetByOfficeID
// It retrieves all ratings for the given office, oldest first.
// Returns an empty slice when the office has no ratings.
func (s *PostgresRatingStore) GetByOfficeID(ctx context.Context, officeID uuid.UUID) ([]*domain.Rating, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, office_id, score, comment, created_at
		FROM ratings
		WHERE office_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, officeID)
	if err != nil {
		log.Error("failed to get ratings by office ID",
			slog.String("error", err.Error()),
			slog.String("office_id", officeID.String()))
		return nil, fmt.Errorf("failed to get ratings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ratings := make([]*domain.Rating, 0)
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.OfficeID,
			&rating.Score,
			&rating.Comment,
			&rating.CreatedAt,
		); err != nil {
			log.Error("failed to scan rating row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating rating rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}

	return ratings, nil
}

// Update implements store.RatingStore.Update
// Returns store.ErrRatingNotFound if the rating does not exist.
func (s *PostgresRatingStore) Update(ctx context.Context, rating *domain.Rating) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := rating.Validate(); err != nil {
		log.Warn("rating validation failed during update",
			slog.String("error", err.Error()),
			slog.String("rating_id", rating.ID.String()))
		return err
	}

	query := `
		UPDATE ratings
		SET score = $1, comment = $2
		WHERE id = $3
	`
	result, err := s.db.ExecContext(ctx, query, rating.Score, rating.Comment, rating.ID)
	if err != nil {
		log.Error("failed to update rating",
			slog.String("error", err.Error()),
			slog.String("rating_id", rating.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "rating"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrRatingNotFound
		}
		return err
	}

	log.Info("rating updated successfully", slog.String("rating_id", rating.ID.String()))
	return nil
}

// Delete implements store.RatingStore.Delete
// Returns store.ErrRatingNotFound if the rating does not exist.
func (s *PostgresRatingStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete rating",
			slog.String("error", err.Error()),
			slog.String("rating_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "rating"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("rating not found for deletion", slog.String("rating_id", id.String()))
			return store.ErrRatingNotFound
		}
		return err
	}

	log.Info("rating deleted successfully", slog.String("rating_id", id.String()))
	return nil
}

// List implements store.RatingStore.List
// It retrieves all ratings across all offices.
func (s *PostgresRatingStore) List(ctx context.Context) ([]*domain.Rating, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, office_id, score, comment, created_at
		FROM ratings
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list ratings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ratings := make([]*domain.Rating, 0)
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(
			&rating.ID,
			&rating.OfficeID,
			&rating.Score,
			&rating.Comment,
			&rating.CreatedAt,
		); err != nil {
			log.Error("failed to scan rating row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan rating: %w", err)
		}
		ratings = append(ratings, &rating)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating rating rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating ratings: %w", err)
	}

	return ratings, nil
}
