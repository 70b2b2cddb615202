package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/api/shared"
	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/service"
)

// RatingHandler handles rating-related API requests. Ratings hang off
// offices, so every route carries the office ID.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new RatingHandler with the given dependencies.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// Create handles POST /offices/{id}/ratings.
func (h *RatingHandler) Create(w http.ResponseWriter, r *http.Request) {
	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid office ID")
		return
	}

	var cmd domain.CreateRatingCommand
	if err := shared.DecodeJSON(r, &cmd); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	cmd.OfficeID = officeID

	rating, err := h.ratingService.CreateRating(r.Context(), &cmd)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, rating)
}

// ListByOffice handles GET /offices/{id}/ratings.
func (h *RatingHandler) ListByOffice(w http.ResponseWriter, r *http.Request) {
	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid office ID")
		return
	}

	ratings, err := h.ratingService.ListRatingsByOffice(r.Context(), officeID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ratings)
}

// Average handles GET /offices/{id}/ratings/average.
func (h *RatingHandler) Average(w http.ResponseWriter, r *http.Request) {
	officeID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid office ID")
		return
	}

	average, err := h.ratingService.AverageRating(r.Context(), officeID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AverageRatingResponse{
		OfficeID: officeID,
		Average:  average,
	})
}
