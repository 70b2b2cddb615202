// Package postgres implements the store contracts on PostgreSQL using
// database/sql with the pgx stdlib driver. Constraint violations are
// mapped to the store sentinel errors so callers never see raw driver
// errors.
package postgres
