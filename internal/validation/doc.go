// Package validation evaluates creation commands against their full rule
// set and reports every failure at once, grouped by field. It wraps
// go-playground/validator with the office/user rule registrations and
// translates the raw tag failures into the messages surfaced to callers.
package validation
