package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/store"
)

// UserQueryService provides read-only access to user accounts.
type UserQueryService interface {
	// GetUserByID returns a user by ID.
	// Returns ErrUserNotFound when absent.
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// ListUsers returns all registered users.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}

// userQueryServiceImpl implements the UserQueryService interface
type userQueryServiceImpl struct {
	userStore store.UserStore
	logger    *slog.Logger
}

// NewUserQueryService creates a new UserQueryService.
func NewUserQueryService(userStore store.UserStore, logger *slog.Logger) (UserQueryService, error) {
	if userStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userQueryServiceImpl{
		userStore: userStore,
		logger:    logger.With("component", "user_query_service"),
	}, nil
}

// GetUserByID implements UserQueryService.GetUserByID
func (s *userQueryServiceImpl) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, &ServiceError{Operation: "get_user", Message: "failed to load user", Err: err}
	}
	return user, nil
}

// ListUsers implements UserQueryService.ListUsers
func (s *userQueryServiceImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, &ServiceError{Operation: "list_users", Message: "failed to list users", Err: err}
	}
	return users, nil
}
