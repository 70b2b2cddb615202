package api

import (
	"errors"
	"net/http"

	"github.com/workstation/workstation-api/internal/api/shared"
	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/service"
	"github.com/workstation/workstation-api/internal/service/auth"
	"github.com/workstation/workstation-api/internal/store"
	"github.com/workstation/workstation-api/internal/validation"
)

// domainValidationErrors are entity invariant failures surfaced to the
// caller as bad requests. Their messages are user-facing.
var domainValidationErrors = []error{
	domain.ErrEmptyOfficeID,
	domain.ErrEmptyLocation,
	domain.ErrLocationTooLong,
	domain.ErrInvalidCapacity,
	domain.ErrCapacityTooLarge,
	domain.ErrInvalidCostPerDay,
	domain.ErrCostPerDayTooLarge,
	domain.ErrEmptyServiceName,
	domain.ErrServiceNameTooLong,
	domain.ErrNegativeServiceCost,
	domain.ErrEmptyRatingOfficeID,
	domain.ErrInvalidScore,
	domain.ErrCommentTooLong,
	domain.ErrEmptyUserID,
	domain.ErrEmptyFirstName,
	domain.ErrEmptyLastName,
	domain.ErrNameTooLong,
	domain.ErrInvalidDni,
	domain.ErrInvalidPhoneNumber,
	domain.ErrInvalidEmail,
	domain.ErrInvalidRole,
	domain.ErrEmptyHashedPassword,
}

func isDomainValidationError(err error) bool {
	for _, sentinel := range domainValidationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var fieldErrs validation.FieldErrors

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, service.ErrOfficeNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRatingNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors (field-specific duplicates wrap ErrDuplicate)
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Business rule rejections
	case errors.Is(err, service.ErrOfficeTooNew),
		errors.Is(err, service.ErrLocationChangeCooldown),
		errors.Is(err, service.ErrNameChangeCooldown):
		return http.StatusUnprocessableEntity

	// Bad request errors
	case errors.As(err, &fieldErrs),
		errors.Is(err, service.ErrNilCommand),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, store.ErrInvalidEntity),
		isDomainValidationError(err):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password"

	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"

	case errors.Is(err, service.ErrOfficeNotFound):
		return "Office not found"

	case errors.Is(err, service.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, service.ErrRatingNotFound):
		return "Rating not found"

	case errors.Is(err, store.ErrLocationExists):
		return "An office already exists at this location."

	case errors.Is(err, store.ErrDniExists):
		return "A user with this DNI already exists."

	case errors.Is(err, store.ErrEmailExists):
		return "A user with this email already exists."

	case errors.Is(err, store.ErrPhoneNumberExists):
		return "A user with this phone number already exists."

	case errors.Is(err, service.ErrOfficeTooNew),
		errors.Is(err, service.ErrLocationChangeCooldown),
		errors.Is(err, service.ErrNameChangeCooldown),
		errors.Is(err, service.ErrNilCommand),
		errors.Is(err, service.ErrInvalidRole):
		return err.Error()

	case isDomainValidationError(err):
		return err.Error()

	default:
		return "An unexpected error occurred"
	}
}

// HandleServiceError maps a service-layer error to a status code and a
// safe message and writes the response. Field validation errors carry
// their per-field messages; server errors log the underlying cause.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		shared.RespondWithFieldErrors(w, r, http.StatusBadRequest, "Validation failed", fieldErrs)
		return
	}

	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError {
		shared.RespondWithErrorAndLog(w, r, status, message, err)
		return
	}
	shared.RespondWithError(w, r, status, message)
}
