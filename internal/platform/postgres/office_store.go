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

// PostgresOfficeStore implements the store.OfficeStore interface
// using a PostgreSQL database as the storage backend. Offices and
// their services are persisted together.
type PostgresOfficeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresOfficeStore creates a new PostgreSQL implementation of the
// OfficeStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresOfficeStore(db store.DBTX, logger *slog.Logger) *PostgresOfficeStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOfficeStore{
		db:     db,
		logger: logger.With(slog.String("component", "office_store")),
	}
}

// Ensure PostgresOfficeStore implements store.OfficeStore interface
var _ store.OfficeStore = (*PostgresOfficeStore)(nil)

// WithTx implements store.OfficeStore.WithTx
// It returns a new store instance using the provided transaction.
func (s *PostgresOfficeStore) WithTx(tx *sql.Tx) store.OfficeStore {
	return &PostgresOfficeStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.OfficeStore.Create
// It saves a new office together with its attached services.
// Returns store.ErrLocationExists if the location is already taken.
func (s *PostgresOfficeStore) Create(ctx context.Context, office *domain.Office) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := office.Validate(); err != nil {
		log.Warn("office validation failed during create",
			slog.String("error", err.Error()),
			slog.String("office_id", office.ID.String()))
		return err
	}

	query := `
		INSERT INTO offices (id, location, description, image_url, capacity,
			cost_per_day, available, is_active, created_at, modified_at,
			created_by, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		office.ID,
		office.Location,
		office.Description,
		office.ImageURL,
		office.Capacity,
		office.CostPerDay,
		office.Available,
		office.IsActive,
		office.CreatedAt,
		office.ModifiedAt,
		office.CreatedBy,
		office.UpdatedBy,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrLocationExists) {
			log.Warn("duplicate location during office creation",
				slog.String("office_id", office.ID.String()),
				slog.String("location", office.Location))
			return mapped
		}

		log.Error("failed to create office",
			slog.String("error", err.Error()),
			slog.String("office_id", office.ID.String()))
		return mapped
	}

	for i := range office.Services {
		if err := s.insertService(ctx, &office.Services[i]); err != nil {
			log.Error("failed to create office service",
				slog.String("error", err.Error()),
				slog.String("office_id", office.ID.String()),
				slog.String("service_name", office.Services[i].Name))
			return err
		}
	}

	log.Info("office created successfully",
		slog.String("office_id", office.ID.String()),
		slog.String("location", office.Location),
		slog.Int("service_count", len(office.Services)))
	return nil
}

func (s *PostgresOfficeStore) insertService(ctx context.Context, svc *domain.OfficeService) error {
	if err := svc.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO office_services (id, office_id, name, description, cost,
			is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		svc.ID,
		svc.OfficeID,
		svc.Name,
		svc.Description,
		svc.Cost,
		svc.IsActive,
		svc.CreatedAt,
	)
	if err != nil {
		return MapError(err)
	}
	return nil
}

// GetByID implements store.OfficeStore.GetByID
// It retrieves an office and its services by the office ID.
// Returns store.ErrOfficeNotFound if the office does not exist.
func (s *PostgresOfficeStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, location, description, image_url, capacity, cost_per_day,
			available, is_active, created_at, modified_at, created_by, updated_by
		FROM offices
		WHERE id = $1
	`
	office, err := s.scanOffice(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("office not found", slog.String("office_id", id.String()))
			return nil, store.ErrOfficeNotFound
		}
		log.Error("failed to get office by ID",
			slog.String("error", err.Error()),
			slog.String("office_id", id.String()))
		return nil, fmt.Errorf("failed to get office: %w", err)
	}

	if err := s.loadServices(ctx, office); err != nil {
		log.Error("failed to load office services",
			slog.String("error", err.Error()),
			slog.String("office_id", id.String()))
		return nil, err
	}

	return office, nil
}

// GetByLocation implements store.OfficeStore.GetByLocation
// It retrieves an office and its services by the exact location string.
// Returns store.ErrOfficeNotFound if no office exists at the location.
func (s *PostgresOfficeStore) GetByLocation(ctx context.Context, location string) (*domain.Office, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, location, description, image_url, capacity, cost_per_day,
			available, is_active, created_at, modified_at, created_by, updated_by
		FROM offices
		WHERE location = $1
	`
	office, err := s.scanOffice(s.db.QueryRowContext(ctx, query, location))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("office not found by location", slog.String("location", location))
			return nil, store.ErrOfficeNotFound
		}
		log.Error("failed to get office by location",
			slog.String("error", err.Error()),
			slog.String("location", location))
		return nil, fmt.Errorf("failed to get office: %w", err)
	}

	if err := s.loadServices(ctx, office); err != nil {
		log.Error("failed to load office services",
			slog.String("error", err.Error()),
			slog.String("office_id", office.ID.String()))
		return nil, err
	}

	return office, nil
}

// Update implements store.OfficeStore.Update
// It saves changes to an existing office row. Services are immutable
// after creation and are not touched.
// Returns store.ErrOfficeNotFound if the office does not exist.
func (s *PostgresOfficeStore) Update(ctx context.Context, office *domain.Office) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := office.Validate(); err != nil {
		log.Warn("office validation failed during update",
			slog.String("error", err.Error()),
			slog.String("office_id", office.ID.String()))
		return err
	}

	query := `
		UPDATE offices
		SET location = $1, description = $2, image_url = $3, capacity = $4,
			cost_per_day = $5, available = $6, is_active = $7,
			modified_at = $8, updated_by = $9
		WHERE id = $10
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		office.Location,
		office.Description,
		office.ImageURL,
		office.Capacity,
		office.CostPerDay,
		office.Available,
		office.IsActive,
		office.ModifiedAt,
		office.UpdatedBy,
		office.ID,
	)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrLocationExists) {
			log.Warn("duplicate location during office update",
				slog.String("office_id", office.ID.String()),
				slog.String("location", office.Location))
			return mapped
		}

		log.Error("failed to update office",
			slog.String("error", err.Error()),
			slog.String("office_id", office.ID.String()))
		return mapped
	}

	if err := CheckRowsAffected(result, "office"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ErrOfficeNotFound
		}
		return err
	}

	log.Info("office updated successfully",
		slog.String("office_id", office.ID.String()))
	return nil
}

// Delete implements store.OfficeStore.Delete
// It permanently removes an office; services and ratings cascade.
// Returns store.ErrOfficeNotFound if the office does not exist.
func (s *PostgresOfficeStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM offices WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete office",
			slog.String("error", err.Error()),
			slog.String("office_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "office"); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Debug("office not found for deletion", slog.String("office_id", id.String()))
			return store.ErrOfficeNotFound
		}
		return err
	}

	log.Info("office deleted successfully", slog.String("office_id", id.String()))
	return nil
}

// List implements store.OfficeStore.List
// It retrieves all offices, active and inactive, with their services.
func (s *PostgresOfficeStore) List(ctx context.Context) ([]*domain.Office, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, location, description, image_url, capacity, cost_per_day,
			available, is_active, created_at, modified_at, created_by, updated_by
		FROM offices
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list offices", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list offices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var offices []*domain.Office
	byID := make(map[uuid.UUID]*domain.Office)
	for rows.Next() {
		office, err := s.scanOffice(rows)
		if err != nil {
			log.Error("failed to scan office row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan office: %w", err)
		}
		offices = append(offices, office)
		byID[office.ID] = office
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating office rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating offices: %w", err)
	}

	if len(offices) == 0 {
		return offices, nil
	}

	svcQuery := `
		SELECT id, office_id, name, description, cost, is_active, created_at
		FROM office_services
		ORDER BY office_id, created_at, id
	`
	svcRows, err := s.db.QueryContext(ctx, svcQuery)
	if err != nil {
		log.Error("failed to list office services", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list office services: %w", err)
	}
	defer func() { _ = svcRows.Close() }()

	for svcRows.Next() {
		var svc domain.OfficeService
		if err := svcRows.Scan(
			&svc.ID,
			&svc.OfficeID,
			&svc.Name,
			&svc.Description,
			&svc.Cost,
			&svc.IsActive,
			&svc.CreatedAt,
		); err != nil {
			log.Error("failed to scan office service row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan office service: %w", err)
		}
		if office, ok := byID[svc.OfficeID]; ok {
			office.Services = append(office.Services, svc)
		}
	}
	if err := svcRows.Err(); err != nil {
		log.Error("error iterating office service rows", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error iterating office services: %w", err)
	}

	return offices, nil
}

func (s *PostgresOfficeStore) loadServices(ctx context.Context, office *domain.Office) error {
	query := `
		SELECT id, office_id, name, description, cost, is_active, created_at
		FROM office_services
		WHERE office_id = $1
		ORDER BY created_at, id
	`
	rows, err := s.db.QueryContext(ctx, query, office.ID)
	if err != nil {
		return fmt.Errorf("failed to load office services: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var svc domain.OfficeService
		if err := rows.Scan(
			&svc.ID,
			&svc.OfficeID,
			&svc.Name,
			&svc.Description,
			&svc.Cost,
			&svc.IsActive,
			&svc.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan office service: %w", err)
		}
		office.Services = append(office.Services, svc)
	}
	return rows.Err()
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scan logic.
type rowScanner interface {
	Scan(dest ...any) error
}

func (s *PostgresOfficeStore) scanOffice(row rowScanner) (*domain.Office, error) {
	var office domain.Office
	err := row.Scan(
		&office.ID,
		&office.Location,
		&office.Description,
		&office.ImageURL,
		&office.Capacity,
		&office.CostPerDay,
		&office.Available,
		&office.IsActive,
		&office.CreatedAt,
		&office.ModifiedAt,
		&office.CreatedBy,
		&office.UpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &office, nil
}
