package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/store"
)

func validUser(t *testing.T) *domain.User {
	t.Helper()

	user, err := domain.NewUser(
		"Ana", "Torres", "12345678", "987654321", "ana.torres@example.com",
		domain.RoleSeeker, "$2a$10$notarealhashbutlongenough1234567890",
	)
	require.NoError(t, err)
	return user
}

func userColumns() []string {
	return []string{
		"id", "first_name", "last_name", "dni", "phone_number", "email",
		"role", "hashed_password", "created_at", "modified_at",
	}
}

func TestPostgresUserStoreCreate(t *testing.T) {
	t.Parallel()

	t.Run("inserts user row", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		user := validUser(t)
		mock.ExpectExec("INSERT INTO users").
			WithArgs(
				user.ID, user.FirstName, user.LastName, user.Dni,
				user.PhoneNumber, user.Email, user.Role, user.HashedPassword,
				user.CreatedAt, user.ModifiedAt,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		userStore := NewPostgresUserStore(db, nil)
		err = userStore.Create(context.Background(), user)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps dni unique violation", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_dni_key"})

		userStore := NewPostgresUserStore(db, nil)
		err = userStore.Create(context.Background(), validUser(t))

		assert.ErrorIs(t, err, store.ErrDniExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid user before hitting the database", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		user := validUser(t)
		user.Email = "not-an-email"

		userStore := NewPostgresUserStore(db, nil)
		err = userStore.Create(context.Background(), user)

		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserStoreGetByEmail(t *testing.T) {
	t.Parallel()

	t.Run("returns user", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.New()
		created := time.Now().UTC()
		rows := sqlmock.NewRows(userColumns()).AddRow(
			id, "Ana", "Torres", "12345678", "987654321",
			"ana.torres@example.com", domain.RoleSeeker, "hash", created, nil,
		)
		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("ana.torres@example.com").
			WillReturnRows(rows)

		userStore := NewPostgresUserStore(db, nil)
		user, err := userStore.GetByEmail(context.Background(), "ana.torres@example.com")

		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
		assert.Equal(t, "12345678", user.Dni)
		assert.Nil(t, user.ModifiedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrUserNotFound when absent", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		mock.ExpectQuery("SELECT (.+) FROM users").
			WithArgs("missing@example.com").
			WillReturnRows(sqlmock.NewRows(userColumns()))

		userStore := NewPostgresUserStore(db, nil)
		_, err = userStore.GetByEmail(context.Background(), "missing@example.com")

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPostgresUserStoreDelete(t *testing.T) {
	t.Parallel()

	t.Run("deletes existing user", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.New()
		mock.ExpectExec("DELETE FROM users").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		userStore := NewPostgresUserStore(db, nil)
		err = userStore.Delete(context.Background(), id)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrUserNotFound when nothing deleted", func(t *testing.T) {
		t.Parallel()

		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()

		id := uuid.New()
		mock.ExpectExec("DELETE FROM users").
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		userStore := NewPostgresUserStore(db, nil)
		err = userStore.Delete(context.Background(), id)

		assert.ErrorIs(t, err, store.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
