package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/service/auth"
	"github.com/workstation/workstation-api/internal/store"
)

// mockOfficeStore is a testify mock of store.OfficeStore. WithTx returns
// the mock itself so transactional paths exercise the same expectations.
type mockOfficeStore struct {
	mock.Mock
}

func (m *mockOfficeStore) Create(ctx context.Context, office *domain.Office) error {
	args := m.Called(ctx, office)
	return args.Error(0)
}

func (m *mockOfficeStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}

func (m *mockOfficeStore) GetByLocation(ctx context.Context, location string) (*domain.Office, error) {
	args := m.Called(ctx, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Office), args.Error(1)
}

func (m *mockOfficeStore) Update(ctx context.Context, office *domain.Office) error {
	args := m.Called(ctx, office)
	return args.Error(0)
}

func (m *mockOfficeStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockOfficeStore) List(ctx context.Context) ([]*domain.Office, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Office), args.Error(1)
}

func (m *mockOfficeStore) WithTx(tx *sql.Tx) store.OfficeStore {
	return m
}

// mockRatingStore is a testify mock of store.RatingStore.
type mockRatingStore struct {
	mock.Mock
}

func (m *mockRatingStore) Create(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Rating, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rating), args.Error(1)
}

func (m *mockRatingStore) GetByOfficeID(ctx context.Context, officeID uuid.UUID) ([]*domain.Rating, error) {
	args := m.Called(ctx, officeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Rating), args.Error(1)
}

func (m *mockRatingStore) Update(ctx context.Context, rating *domain.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockRatingStore) List(ctx context.Context) ([]*domain.Rating, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Rating), args.Error(1)
}

func (m *mockRatingStore) WithTx(tx *sql.Tx) store.RatingStore {
	return m
}

// mockUserStore is a testify mock of store.UserStore.
type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByDni(ctx context.Context, dni string) (*domain.User, error) {
	args := m.Called(ctx, dni)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error) {
	args := m.Called(ctx, phoneNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserStore) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// mockHasher implements auth.PasswordHasher with canned behavior.
type mockHasher struct {
	hashResult string
	hashErr    error
	compareErr error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.hashResult == "" && m.hashErr == nil {
		return "hashed:" + password, nil
	}
	return m.hashResult, m.hashErr
}

func (m *mockHasher) Compare(hashedPassword, password string) error {
	return m.compareErr
}

// mockJWTService implements auth.JWTService with canned behavior.
type mockJWTService struct {
	token       string
	generateErr error
}

func (m *mockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if m.generateErr != nil {
		return "", m.generateErr
	}
	if m.token == "" {
		return "test-token", nil
	}
	return m.token, nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return nil, auth.ErrInvalidToken
}

func (m *mockJWTService) IsExpired(ctx context.Context, tokenString string) bool {
	return false
}

func (m *mockJWTService) RefreshToken(ctx context.Context, tokenString string) (string, error) {
	return "", auth.ErrInvalidToken
}
