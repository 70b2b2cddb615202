package api

import (
	"context"

	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/service/auth"
)

// Function-field stubs for the service interfaces the handlers depend on.

type stubOfficeService struct {
	createFn func(ctx context.Context, cmd *domain.CreateOfficeCommand, actorID uuid.UUID) (*domain.Office, error)
	updateFn func(ctx context.Context, id uuid.UUID, cmd *domain.UpdateOfficeCommand, actorID uuid.UUID) (*domain.Office, error)
	deleteFn func(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (bool, error)
}

func (s *stubOfficeService) CreateOffice(ctx context.Context, cmd *domain.CreateOfficeCommand, actorID uuid.UUID) (*domain.Office, error) {
	return s.createFn(ctx, cmd, actorID)
}

func (s *stubOfficeService) UpdateOffice(ctx context.Context, id uuid.UUID, cmd *domain.UpdateOfficeCommand, actorID uuid.UUID) (*domain.Office, error) {
	return s.updateFn(ctx, id, cmd, actorID)
}

func (s *stubOfficeService) DeleteOffice(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (bool, error) {
	return s.deleteFn(ctx, id, actorID)
}

type stubOfficeQueryService struct {
	listFn          func(ctx context.Context) ([]*domain.Office, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.Office, error)
	getByLocationFn func(ctx context.Context, location string) (*domain.Office, error)
}

func (s *stubOfficeQueryService) ListOffices(ctx context.Context) ([]*domain.Office, error) {
	return s.listFn(ctx)
}

func (s *stubOfficeQueryService) GetOfficeByID(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubOfficeQueryService) GetOfficeByLocation(ctx context.Context, location string) (*domain.Office, error) {
	return s.getByLocationFn(ctx, location)
}

type stubRatingService struct {
	createFn  func(ctx context.Context, cmd *domain.CreateRatingCommand) (*domain.Rating, error)
	listFn    func(ctx context.Context, officeID uuid.UUID) ([]*domain.Rating, error)
	averageFn func(ctx context.Context, officeID uuid.UUID) (float64, error)
}

func (s *stubRatingService) CreateRating(ctx context.Context, cmd *domain.CreateRatingCommand) (*domain.Rating, error) {
	return s.createFn(ctx, cmd)
}

func (s *stubRatingService) ListRatingsByOffice(ctx context.Context, officeID uuid.UUID) ([]*domain.Rating, error) {
	return s.listFn(ctx, officeID)
}

func (s *stubRatingService) AverageRating(ctx context.Context, officeID uuid.UUID) (float64, error) {
	return s.averageFn(ctx, officeID)
}

type stubUserService struct {
	createFn func(ctx context.Context, cmd *domain.CreateUserCommand) (*domain.User, error)
	updateFn func(ctx context.Context, id uuid.UUID, cmd *domain.UpdateUserCommand) (*domain.User, error)
	deleteFn func(ctx context.Context, id uuid.UUID) error
	loginFn  func(ctx context.Context, email, password string) (string, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, cmd *domain.CreateUserCommand) (*domain.User, error) {
	return s.createFn(ctx, cmd)
}

func (s *stubUserService) UpdateUser(ctx context.Context, id uuid.UUID, cmd *domain.UpdateUserCommand) (*domain.User, error) {
	return s.updateFn(ctx, id, cmd)
}

func (s *stubUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return s.deleteFn(ctx, id)
}

func (s *stubUserService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

type stubUserQueryService struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	listFn    func(ctx context.Context) ([]*domain.User, error)
}

func (s *stubUserQueryService) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getByIDFn(ctx, id)
}

func (s *stubUserQueryService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.listFn(ctx)
}

type stubJWTService struct {
	generateFn func(ctx context.Context, user *domain.User) (string, error)
	validateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
	refreshFn  func(ctx context.Context, tokenString string) (string, error)
}

func (s *stubJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if s.generateFn == nil {
		return "stub-token", nil
	}
	return s.generateFn(ctx, user)
}

func (s *stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return s.validateFn(ctx, tokenString)
}

func (s *stubJWTService) IsExpired(ctx context.Context, tokenString string) bool {
	return false
}

func (s *stubJWTService) RefreshToken(ctx context.Context, tokenString string) (string, error) {
	return s.refreshFn(ctx, tokenString)
}
