package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/store"
)

// OfficeQueryService provides read-only access to offices. Inactive
// offices are invisible here: they are excluded from listings and
// reported as not found on direct lookup.
type OfficeQueryService interface {
	// ListOffices returns all active offices with their services.
	ListOffices(ctx context.Context) ([]*domain.Office, error)

	// GetOfficeByID returns an active office by ID.
	GetOfficeByID(ctx context.Context, id uuid.UUID) (*domain.Office, error)

	// GetOfficeByLocation returns an active office by its exact location.
	GetOfficeByLocation(ctx context.Context, location string) (*domain.Office, error)
}

// officeQueryServiceImpl implements the OfficeQueryService interface
type officeQueryServiceImpl struct {
	officeStore store.OfficeStore
	logger      *slog.Logger
}

// NewOfficeQueryService creates a new OfficeQueryService.
func NewOfficeQueryService(officeStore store.OfficeStore, logger *slog.Logger) (OfficeQueryService, error) {
	if officeStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "officeStore cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &officeQueryServiceImpl{
		officeStore: officeStore,
		logger:      logger.With("component", "office_query_service"),
	}, nil
}

// ListOffices implements OfficeQueryService.ListOffices
func (s *officeQueryServiceImpl) ListOffices(ctx context.Context) ([]*domain.Office, error) {
	offices, err := s.officeStore.List(ctx)
	if err != nil {
		return nil, &ServiceError{Operation: "list_offices", Message: "failed to list offices", Err: err}
	}

	active := make([]*domain.Office, 0, len(offices))
	for _, office := range offices {
		if office.IsActive {
			active = append(active, office)
		}
	}
	return active, nil
}

// GetOfficeByID implements OfficeQueryService.GetOfficeByID
func (s *officeQueryServiceImpl) GetOfficeByID(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
	office, err := s.officeStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrOfficeNotFound) {
			return nil, ErrOfficeNotFound
		}
		return nil, &ServiceError{Operation: "get_office", Message: "failed to load office", Err: err}
	}
	if !office.IsActive {
		return nil, ErrOfficeNotFound
	}
	return office, nil
}

// GetOfficeByLocation implements OfficeQueryService.GetOfficeByLocation
func (s *officeQueryServiceImpl) GetOfficeByLocation(ctx context.Context, location string) (*domain.Office, error) {
	office, err := s.officeStore.GetByLocation(ctx, location)
	if err != nil {
		if errors.Is(err, store.ErrOfficeNotFound) {
			return nil, ErrOfficeNotFound
		}
		return nil, &ServiceError{Operation: "get_office", Message: "failed to load office", Err: err}
	}
	if !office.IsActive {
		return nil, ErrOfficeNotFound
	}
	return office, nil
}
