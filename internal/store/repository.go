package store

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the generic CRUD contract shared by every entity store.
// Entity-specific lookups are composed on top of it by narrow per-entity
// interfaces rather than inheritance.
type Repository[T any] interface {
	// Create saves a new entity to the store.
	Create(ctx context.Context, entity *T) error

	// GetByID retrieves an entity by its unique ID.
	// Returns the entity-specific not-found error when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)

	// Update saves changes to an existing entity.
	Update(ctx context.Context, entity *T) error

	// Delete removes an entity from the store by its ID.
	// Returns the entity-specific not-found error when absent.
	Delete(ctx context.Context, id uuid.UUID) error

	// List retrieves all entities.
	List(ctx context.Context) ([]*T, error)
}
