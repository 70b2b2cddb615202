package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/store"
	"github.com/workstation/workstation-api/internal/validation"
)

// Temporal edit rules for offices. Months are counted as elapsed days
// divided by 30.
const (
	officeEditFreezeDays        = 2
	locationChangeCooldownMonth = 6
	daysPerMonth                = 30.0
)

// OfficeService provides office-mutating operations. Reads live on
// OfficeQueryService.
type OfficeService interface {
	// CreateOffice validates the command, enforces location uniqueness,
	// and persists the office together with its add-on services in one
	// transaction.
	CreateOffice(ctx context.Context, cmd *domain.CreateOfficeCommand, actorID uuid.UUID) (*domain.Office, error)

	// UpdateOffice overwrites the mutable fields of an existing office,
	// subject to the temporal edit rules.
	UpdateOffice(ctx context.Context, id uuid.UUID, cmd *domain.UpdateOfficeCommand, actorID uuid.UUID) (*domain.Office, error)

	// DeleteOffice soft-deletes an office. It reports false with no error
	// when the office does not exist.
	DeleteOffice(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (bool, error)
}

// officeServiceImpl implements the OfficeService interface
type officeServiceImpl struct {
	officeStore store.OfficeStore
	validator   *validation.OfficeCommandValidator
	db          *sql.DB
	logger      *slog.Logger
}

// NewOfficeService creates a new OfficeService.
// It returns an error if any of the required dependencies are nil.
func NewOfficeService(
	officeStore store.OfficeStore,
	validator *validation.OfficeCommandValidator,
	db *sql.DB,
	logger *slog.Logger,
) (OfficeService, error) {
	if officeStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "officeStore cannot be nil"}
	}
	if validator == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "validator cannot be nil"}
	}
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &officeServiceImpl{
		officeStore: officeStore,
		validator:   validator,
		db:          db,
		logger:      logger.With("component", "office_service"),
	}, nil
}

// CreateOffice implements OfficeService.CreateOffice
func (s *officeServiceImpl) CreateOffice(
	ctx context.Context,
	cmd *domain.CreateOfficeCommand,
	actorID uuid.UUID,
) (*domain.Office, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	if fieldErrs := s.validator.Validate(cmd); fieldErrs != nil {
		s.logger.Warn("office command validation failed",
			"error", fieldErrs.Error(),
			"location", cmd.Location)
		return nil, fieldErrs
	}

	// Location uniqueness is checked up front for a clear error; the
	// unique index still backstops races.
	_, err := s.officeStore.GetByLocation(ctx, cmd.Location)
	if err == nil {
		s.logger.Warn("duplicate location on office creation", "location", cmd.Location)
		return nil, store.ErrLocationExists
	}
	if !errors.Is(err, store.ErrOfficeNotFound) {
		return nil, &ServiceError{Operation: "create_office", Message: "failed to check location", Err: err}
	}

	office, err := domain.NewOffice(
		cmd.Location, cmd.Description, cmd.ImageURL,
		cmd.Capacity, cmd.CostPerDay, cmd.Available, actorID,
	)
	if err != nil {
		return nil, err
	}
	for _, svc := range cmd.Services {
		if err := office.AttachService(svc.Name, svc.Description, svc.Cost); err != nil {
			return nil, err
		}
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.officeStore.WithTx(tx).Create(ctx, office)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			return nil, err
		}
		return nil, &ServiceError{Operation: "create_office", Message: "failed to save office", Err: err}
	}

	s.logger.Info("office created",
		"office_id", office.ID,
		"location", office.Location,
		"actor_id", actorID)
	return office, nil
}

// UpdateOffice implements OfficeService.UpdateOffice
func (s *officeServiceImpl) UpdateOffice(
	ctx context.Context,
	id uuid.UUID,
	cmd *domain.UpdateOfficeCommand,
	actorID uuid.UUID,
) (*domain.Office, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	office, err := s.officeStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrOfficeNotFound) {
			return nil, ErrOfficeNotFound
		}
		return nil, &ServiceError{Operation: "update_office", Message: "failed to load office", Err: err}
	}

	now := time.Now().UTC()
	if now.Sub(office.CreatedAt) <= officeEditFreezeDays*24*time.Hour {
		s.logger.Warn("office too new to edit",
			"office_id", id,
			"created_at", office.CreatedAt)
		return nil, ErrOfficeTooNew
	}

	if !strings.EqualFold(office.Location, cmd.Location) {
		elapsedMonths := now.Sub(office.LastTouchedAt()).Hours() / 24 / daysPerMonth
		if elapsedMonths < locationChangeCooldownMonth {
			s.logger.Warn("location change within cooldown",
				"office_id", id,
				"last_touched_at", office.LastTouchedAt())
			return nil, ErrLocationChangeCooldown
		}
	}

	if err := office.ApplyUpdate(
		cmd.Location, cmd.Description, cmd.ImageURL,
		cmd.Capacity, cmd.CostPerDay, cmd.Available, actorID,
	); err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.officeStore.WithTx(tx).Update(ctx, office)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			return nil, err
		}
		return nil, &ServiceError{Operation: "update_office", Message: "failed to save office", Err: err}
	}

	s.logger.Info("office updated", "office_id", id, "actor_id", actorID)
	return office, nil
}

// DeleteOffice implements OfficeService.DeleteOffice
// A missing office is not an error here: the result simply reports
// whether anything was deactivated.
func (s *officeServiceImpl) DeleteOffice(
	ctx context.Context,
	id uuid.UUID,
	actorID uuid.UUID,
) (bool, error) {
	office, err := s.officeStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrOfficeNotFound) {
			return false, nil
		}
		return false, &ServiceError{Operation: "delete_office", Message: "failed to load office", Err: err}
	}

	office.Deactivate(actorID)

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.officeStore.WithTx(tx).Update(ctx, office)
	})
	if err != nil {
		return false, &ServiceError{Operation: "delete_office", Message: "failed to save office", Err: err}
	}

	s.logger.Info("office deactivated", "office_id", id, "actor_id", actorID)
	return true, nil
}
