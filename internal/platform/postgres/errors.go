package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/workstation/workstation-api/internal/store"
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
	pgErrNotNullViolation    = "23502"
)

// Constraint names declared by the migrations. MapError uses them to
// translate unique violations into field-specific duplicate errors.
const (
	constraintOfficeLocation  = "offices_location_key"
	constraintUserDni         = "users_dni_key"
	constraintUserEmail       = "users_email_key"
	constraintUserPhoneNumber = "users_phone_number_key"
)

// MapError translates database/sql and PostgreSQL driver errors into the
// store package's sentinel errors, preserving the original error in the
// chain for debugging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUniqueViolation:
			switch pgErr.ConstraintName {
			case constraintOfficeLocation:
				return fmt.Errorf("%w: %v", store.ErrLocationExists, err)
			case constraintUserDni:
				return fmt.Errorf("%w: %v", store.ErrDniExists, err)
			case constraintUserEmail:
				return fmt.Errorf("%w: %v", store.ErrEmailExists, err)
			case constraintUserPhoneNumber:
				return fmt.Errorf("%w: %v", store.ErrPhoneNumberExists, err)
			}
			return fmt.Errorf("%w: constraint %s: %v", store.ErrDuplicate, pgErr.ConstraintName, err)
		case pgErrForeignKeyViolation:
			return fmt.Errorf("%w: foreign key constraint %s: %v", store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case pgErrCheckViolation:
			return fmt.Errorf("%w: check constraint %s: %v", store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case pgErrNotNullViolation:
			return fmt.Errorf("%w: column %s cannot be null: %v", store.ErrInvalidEntity, pgErr.ColumnName, err)
		}
	}

	return err
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key
// constraint violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation
}

// CheckRowsAffected returns store.ErrNotFound when an UPDATE or DELETE
// touched no rows.
func CheckRowsAffected(result sql.Result, entityName string) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected for %s: %w", entityName, err)
	}
	if rows == 0 {
		return store.ErrNotFound
	}
	return nil
}
