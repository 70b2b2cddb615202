package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/store"
)

// RatingService provides rating submission and aggregation.
type RatingService interface {
	// CreateRating records a new rating for an existing office.
	CreateRating(ctx context.Context, cmd *domain.CreateRatingCommand) (*domain.Rating, error)

	// ListRatingsByOffice returns all ratings for an office, oldest first.
	ListRatingsByOffice(ctx context.Context, officeID uuid.UUID) ([]*domain.Rating, error)

	// AverageRating returns the mean score for an office rounded to two
	// decimals, or 0 when the office has no ratings.
	AverageRating(ctx context.Context, officeID uuid.UUID) (float64, error)
}

// ratingServiceImpl implements the RatingService interface
type ratingServiceImpl struct {
	ratingStore store.RatingStore
	officeStore store.OfficeStore
	db          *sql.DB
	logger      *slog.Logger
}

// NewRatingService creates a new RatingService.
// It returns an error if any of the required dependencies are nil.
func NewRatingService(
	ratingStore store.RatingStore,
	officeStore store.OfficeStore,
	db *sql.DB,
	logger *slog.Logger,
) (RatingService, error) {
	if ratingStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "ratingStore cannot be nil"}
	}
	if officeStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "officeStore cannot be nil"}
	}
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ratingServiceImpl{
		ratingStore: ratingStore,
		officeStore: officeStore,
		db:          db,
		logger:      logger.With("component", "rating_service"),
	}, nil
}

// CreateRating implements RatingService.CreateRating
func (s *ratingServiceImpl) CreateRating(
	ctx context.Context,
	cmd *domain.CreateRatingCommand,
) (*domain.Rating, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	if _, err := s.officeStore.GetByID(ctx, cmd.OfficeID); err != nil {
		if errors.Is(err, store.ErrOfficeNotFound) {
			return nil, ErrOfficeNotFound
		}
		return nil, &ServiceError{Operation: "create_rating", Message: "failed to load office", Err: err}
	}

	rating, err := domain.NewRating(cmd.OfficeID, cmd.Score, cmd.Comment)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.ratingStore.WithTx(tx).Create(ctx, rating)
	})
	if err != nil {
		return nil, &ServiceError{Operation: "create_rating", Message: "failed to save rating", Err: err}
	}

	s.logger.Info("rating created",
		"rating_id", rating.ID,
		"office_id", rating.OfficeID,
		"score", rating.Score)
	return rating, nil
}

// ListRatingsByOffice implements RatingService.ListRatingsByOffice
func (s *ratingServiceImpl) ListRatingsByOffice(
	ctx context.Context,
	officeID uuid.UUID,
) ([]*domain.Rating, error) {
	ratings, err := s.ratingStore.GetByOfficeID(ctx, officeID)
	if err != nil {
		return nil, &ServiceError{Operation: "list_ratings", Message: "failed to load ratings", Err: err}
	}
	return ratings, nil
}

// AverageRating implements RatingService.AverageRating
func (s *ratingServiceImpl) AverageRating(ctx context.Context, officeID uuid.UUID) (float64, error) {
	ratings, err := s.ratingStore.GetByOfficeID(ctx, officeID)
	if err != nil {
		return 0, &ServiceError{Operation: "average_rating", Message: "failed to load ratings", Err: err}
	}
	if len(ratings) == 0 {
		return 0, nil
	}

	var sum int
	for _, r := range ratings {
		sum += r.Score
	}
	avg := float64(sum) / float64(len(ratings))
	return math.Round(avg*100) / 100, nil
}
