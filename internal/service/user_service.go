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
	"github.com/workstation/workstation-api/internal/service/auth"
	"github.com/workstation/workstation-api/internal/store"
	"github.com/workstation/workstation-api/internal/validation"
)

// Users may not rename their account within this many days of signing up.
const nameChangeFreezeDays = 7

// UserService provides account registration, maintenance, and login.
type UserService interface {
	// CreateUser validates the command, enforces DNI, email, and phone
	// uniqueness, hashes the password, and persists the account.
	CreateUser(ctx context.Context, cmd *domain.CreateUserCommand) (*domain.User, error)

	// UpdateUser overwrites the mutable fields of an existing account,
	// subject to the rename freeze and uniqueness rules.
	UpdateUser(ctx context.Context, id uuid.UUID, cmd *domain.UpdateUserCommand) (*domain.User, error)

	// DeleteUser permanently removes an account.
	// Returns ErrUserNotFound if the user does not exist.
	DeleteUser(ctx context.Context, id uuid.UUID) error

	// Login verifies the credentials and returns a signed token. Unknown
	// email and wrong password both yield auth.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userStore  store.UserStore
	validator  *validation.UserCommandValidator
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	db         *sql.DB
	logger     *slog.Logger
}

// NewUserService creates a new UserService.
// It returns an error if any of the required dependencies are nil.
func NewUserService(
	userStore store.UserStore,
	validator *validation.UserCommandValidator,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	db *sql.DB,
	logger *slog.Logger,
) (UserService, error) {
	if userStore == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "userStore cannot be nil"}
	}
	if validator == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "validator cannot be nil"}
	}
	if hasher == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "hasher cannot be nil"}
	}
	if jwtService == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "jwtService cannot be nil"}
	}
	if db == nil {
		return nil, &ServiceError{Operation: "create_service", Message: "db cannot be nil"}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &userServiceImpl{
		userStore:  userStore,
		validator:  validator,
		hasher:     hasher,
		jwtService: jwtService,
		db:         db,
		logger:     logger.With("component", "user_service"),
	}, nil
}

// CreateUser implements UserService.CreateUser
func (s *userServiceImpl) CreateUser(
	ctx context.Context,
	cmd *domain.CreateUserCommand,
) (*domain.User, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	if fieldErrs := s.validator.Validate(cmd); fieldErrs != nil {
		s.logger.Warn("user command validation failed", "error", fieldErrs.Error())
		return nil, fieldErrs
	}

	if !cmd.Role.IsValid() {
		return nil, ErrInvalidRole
	}

	// Each uniqueness rule is checked independently so the caller learns
	// which field conflicts.
	if err := s.checkNotTaken(ctx, s.userStore.GetByDni, cmd.Dni, store.ErrDniExists); err != nil {
		return nil, err
	}
	if err := s.checkNotTaken(ctx, s.userStore.GetByEmail, cmd.Email, store.ErrEmailExists); err != nil {
		return nil, err
	}
	if err := s.checkNotTaken(ctx, s.userStore.GetByPhoneNumber, cmd.PhoneNumber, store.ErrPhoneNumberExists); err != nil {
		return nil, err
	}

	hashedPassword, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, &ServiceError{Operation: "create_user", Message: "failed to hash password", Err: err}
	}

	user, err := domain.NewUser(
		cmd.FirstName, cmd.LastName, cmd.Dni, cmd.PhoneNumber,
		cmd.Email, cmd.Role, hashedPassword,
	)
	if err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			return nil, err
		}
		return nil, &ServiceError{Operation: "create_user", Message: "failed to save user", Err: err}
	}

	s.logger.Info("user created", "user_id", user.ID, "role", user.Role.String())
	return user, nil
}

// checkNotTaken runs one uniqueness lookup and converts a hit into the
// given duplicate sentinel.
func (s *userServiceImpl) checkNotTaken(
	ctx context.Context,
	lookup func(context.Context, string) (*domain.User, error),
	value string,
	conflict error,
) error {
	_, err := lookup(ctx, value)
	if err == nil {
		return conflict
	}
	if errors.Is(err, store.ErrUserNotFound) {
		return nil
	}
	return &ServiceError{Operation: "create_user", Message: "failed to check uniqueness", Err: err}
}

// UpdateUser implements UserService.UpdateUser
func (s *userServiceImpl) UpdateUser(
	ctx context.Context,
	id uuid.UUID,
	cmd *domain.UpdateUserCommand,
) (*domain.User, error) {
	if cmd == nil {
		return nil, ErrNilCommand
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, &ServiceError{Operation: "update_user", Message: "failed to load user", Err: err}
	}

	nameChanging := !strings.EqualFold(user.FirstName, cmd.FirstName) ||
		!strings.EqualFold(user.LastName, cmd.LastName)
	if nameChanging && time.Now().UTC().Sub(user.CreatedAt) < nameChangeFreezeDays*24*time.Hour {
		s.logger.Warn("name change within freeze window",
			"user_id", id,
			"created_at", user.CreatedAt)
		return nil, ErrNameChangeCooldown
	}

	if user.PhoneNumber != cmd.PhoneNumber {
		if err := s.checkOwnedByOther(ctx, id, s.userStore.GetByPhoneNumber, cmd.PhoneNumber, store.ErrPhoneNumberExists); err != nil {
			return nil, err
		}
	}
	if user.Email != cmd.Email {
		if err := s.checkOwnedByOther(ctx, id, s.userStore.GetByEmail, cmd.Email, store.ErrEmailExists); err != nil {
			return nil, err
		}
	}

	if err := user.ApplyUpdate(cmd.FirstName, cmd.LastName, cmd.PhoneNumber, cmd.Email); err != nil {
		return nil, err
	}

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Update(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			return nil, err
		}
		return nil, &ServiceError{Operation: "update_user", Message: "failed to save user", Err: err}
	}

	s.logger.Info("user updated", "user_id", id)
	return user, nil
}

// checkOwnedByOther reports a conflict when the value belongs to a user
// other than the one being updated.
func (s *userServiceImpl) checkOwnedByOther(
	ctx context.Context,
	selfID uuid.UUID,
	lookup func(context.Context, string) (*domain.User, error),
	value string,
	conflict error,
) error {
	owner, err := lookup(ctx, value)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil
		}
		return &ServiceError{Operation: "update_user", Message: "failed to check uniqueness", Err: err}
	}
	if owner.ID != selfID {
		return conflict
	}
	return nil
}

// DeleteUser implements UserService.DeleteUser
// Unlike offices, user accounts are removed outright.
func (s *userServiceImpl) DeleteUser(ctx context.Context, id uuid.UUID) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return &ServiceError{Operation: "delete_user", Message: "failed to delete user", Err: err}
	}

	s.logger.Info("user deleted", "user_id", id)
	return nil
}

// Login implements UserService.Login
// The same generic error covers an unknown email and a wrong password so
// responses do not reveal which accounts exist.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email")
			return "", auth.ErrInvalidCredentials
		}
		return "", &ServiceError{Operation: "login", Message: "failed to load user", Err: err}
	}

	if err := s.hasher.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password", "user_id", user.ID)
		return "", auth.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(ctx, user)
	if err != nil {
		return "", &ServiceError{Operation: "login", Message: "failed to issue token", Err: err}
	}

	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}
