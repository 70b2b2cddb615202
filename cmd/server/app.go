package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/workstation/workstation-api/internal/config"
	"github.com/workstation/workstation-api/internal/platform/postgres"
	"github.com/workstation/workstation-api/internal/service"
	"github.com/workstation/workstation-api/internal/service/auth"
	"github.com/workstation/workstation-api/internal/store"
	"github.com/workstation/workstation-api/internal/validation"
)

// application holds the fully wired dependency graph of the server.
type application struct {
	config *config.Config

	logger *slog.Logger
	db     *sql.DB

	// Stores
	officeStore store.OfficeStore
	ratingStore store.RatingStore
	userStore   store.UserStore

	// Service interfaces
	jwtService    auth.JWTService
	officeService service.OfficeService
	officeQueries service.OfficeQueryService
	ratingService service.RatingService
	userService   service.UserService
	userQueries   service.UserQueryService
}

// newApplication wires stores, auth components, and services together.
// All construction happens here so main stays a thin shell and tests
// can build alternate graphs.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	officeStore := postgres.NewPostgresOfficeStore(db, logger)
	ratingStore := postgres.NewPostgresRatingStore(db, logger)
	userStore := postgres.NewPostgresUserStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}
	hasher := auth.NewBcryptHasher(0)

	officeService, err := service.NewOfficeService(
		officeStore,
		validation.NewOfficeCommandValidator(),
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create office service: %w", err)
	}

	officeQueries, err := service.NewOfficeQueryService(officeStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create office query service: %w", err)
	}

	ratingService, err := service.NewRatingService(ratingStore, officeStore, db, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create rating service: %w", err)
	}

	userService, err := service.NewUserService(
		userStore,
		validation.NewUserCommandValidator(),
		hasher,
		jwtService,
		db,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	userQueries, err := service.NewUserQueryService(userStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user query service: %w", err)
	}

	return &application{
		config:        cfg,
		logger:        logger,
		db:            db,
		officeStore:   officeStore,
		ratingStore:   ratingStore,
		userStore:     userStore,
		jwtService:    jwtService,
		officeService: officeService,
		officeQueries: officeQueries,
		ratingService: ratingService,
		userService:   userService,
		userQueries:   userQueries,
	}, nil
}

// cleanup releases resources owned by the application. Called after
// the HTTP server has finished shutting down.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
