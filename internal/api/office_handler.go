package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/workstation/workstation-api/internal/api/middleware"
	"github.com/workstation/workstation-api/internal/api/shared"
	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/service"
)

// OfficeHandler handles office-related API requests.
type OfficeHandler struct {
	officeService service.OfficeService
	officeQueries service.OfficeQueryService
}

// NewOfficeHandler creates a new OfficeHandler with the given dependencies.
func NewOfficeHandler(
	officeService service.OfficeService,
	officeQueries service.OfficeQueryService,
) *OfficeHandler {
	return &OfficeHandler{
		officeService: officeService,
		officeQueries: officeQueries,
	}
}

// Create handles POST /offices.
func (h *OfficeHandler) Create(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var cmd domain.CreateOfficeCommand
	if err := shared.DecodeJSON(r, &cmd); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	office, err := h.officeService.CreateOffice(r.Context(), &cmd, actorID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, office)
}

// Update handles PUT /offices/{id}.
func (h *OfficeHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid office ID")
		return
	}

	var cmd domain.UpdateOfficeCommand
	if err := shared.DecodeJSON(r, &cmd); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	office, err := h.officeService.UpdateOffice(r.Context(), id, &cmd, actorID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, office)
}

// Delete handles DELETE /offices/{id}. A missing office still answers
// 200; the body reports whether anything was deactivated.
func (h *OfficeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid office ID")
		return
	}

	deleted, err := h.officeService.DeleteOffice(r.Context(), id, actorID)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteOfficeResponse{Deleted: deleted})
}

// List handles GET /offices.
func (h *OfficeHandler) List(w http.ResponseWriter, r *http.Request) {
	offices, err := h.officeQueries.ListOffices(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, offices)
}

// GetByID handles GET /offices/{id}.
func (h *OfficeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid office ID")
		return
	}

	office, err := h.officeQueries.GetOfficeByID(r.Context(), id)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, office)
}

// GetByLocation handles GET /offices/location/{location}.
func (h *OfficeHandler) GetByLocation(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	if location == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Location is required")
		return
	}

	office, err := h.officeQueries.GetOfficeByLocation(r.Context(), location)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, office)
}
