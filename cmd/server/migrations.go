package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

// migrationsDir is the path to the goose SQL migrations, relative to
// the server's working directory.
const migrationsDir = "migrations"

// runMigrations applies any pending goose migrations against the
// connected database. It is safe to call on every startup; goose skips
// versions that are already applied.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	before, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	after, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	if after != before {
		logger.Info("migrations applied",
			"from_version", before,
			"to_version", after)
	} else {
		logger.Info("database schema up to date", "version", after)
	}
	return nil
}
