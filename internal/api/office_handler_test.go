package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workstation/workstation-api/internal/api/shared"
	"github.com/workstation/workstation-api/internal/domain"
	"github.com/workstation/workstation-api/internal/service"
	"github.com/workstation/workstation-api/internal/store"
	"github.com/workstation/workstation-api/internal/validation"
)

// newOfficeRouter wires an office handler into a chi router with the
// authenticated user preloaded into the request context.
func newOfficeRouter(h *OfficeHandler, actorID uuid.UUID) http.Handler {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx := context.WithValue(req.Context(), shared.UserIDContextKey, actorID)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
	r.Post("/offices", h.Create)
	r.Put("/offices/{id}", h.Update)
	r.Delete("/offices/{id}", h.Delete)
	r.Get("/offices", h.List)
	r.Get("/offices/{id}", h.GetByID)
	r.Get("/offices/location/{location}", h.GetByLocation)
	return r
}

func sampleOffice(t *testing.T) *domain.Office {
	t.Helper()

	office, err := domain.NewOffice(
		"Av. Arequipa 1234, Lima", "Open-plan office",
		"https://img.example.com/office.jpg", 10, 50, true, uuid.New(),
	)
	require.NoError(t, err)
	return office
}

func TestOfficeHandlerCreate(t *testing.T) {
	t.Parallel()

	t.Run("returns 201 with the created office", func(t *testing.T) {
		t.Parallel()

		office := sampleOffice(t)
		actorID := uuid.New()
		svc := &stubOfficeService{
			createFn: func(ctx context.Context, cmd *domain.CreateOfficeCommand, gotActor uuid.UUID) (*domain.Office, error) {
				assert.Equal(t, actorID, gotActor)
				assert.Equal(t, "Av. Arequipa 1234, Lima", cmd.Location)
				return office, nil
			},
		}

		h := NewOfficeHandler(svc, &stubOfficeQueryService{})
		body, _ := json.Marshal(map[string]any{
			"location":     "Av. Arequipa 1234, Lima",
			"description":  "Open-plan office",
			"image_url":    "https://img.example.com/office.jpg",
			"capacity":     10,
			"cost_per_day": 50,
			"available":    true,
			"services":     []map[string]any{{"name": "WiFi", "cost": 25}},
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/offices", bytes.NewReader(body))
		newOfficeRouter(h, actorID).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var got domain.Office
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, office.ID, got.ID)
	})

	t.Run("maps field errors to 400 with details", func(t *testing.T) {
		t.Parallel()

		fieldErrs := validation.FieldErrors{}
		fieldErrs.Add("CostPerDay", "The daily cost must be greater than 0.")
		svc := &stubOfficeService{
			createFn: func(ctx context.Context, cmd *domain.CreateOfficeCommand, actorID uuid.UUID) (*domain.Office, error) {
				return nil, fieldErrs
			},
		}

		h := NewOfficeHandler(svc, &stubOfficeQueryService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/offices", bytes.NewReader([]byte(`{}`)))
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp shared.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Contains(t, resp.Fields, "CostPerDay")
	})

	t.Run("maps duplicate location to 409", func(t *testing.T) {
		t.Parallel()

		svc := &stubOfficeService{
			createFn: func(ctx context.Context, cmd *domain.CreateOfficeCommand, actorID uuid.UUID) (*domain.Office, error) {
				return nil, store.ErrLocationExists
			},
		}

		h := NewOfficeHandler(svc, &stubOfficeQueryService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/offices", bytes.NewReader([]byte(`{}`)))
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), "An office already exists at this location.")
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		t.Parallel()

		h := NewOfficeHandler(&stubOfficeService{}, &stubOfficeQueryService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/offices", bytes.NewReader([]byte(`{`)))
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOfficeHandlerUpdate(t *testing.T) {
	t.Parallel()

	t.Run("maps the edit freeze to 422", func(t *testing.T) {
		t.Parallel()

		svc := &stubOfficeService{
			updateFn: func(ctx context.Context, id uuid.UUID, cmd *domain.UpdateOfficeCommand, actorID uuid.UUID) (*domain.Office, error) {
				return nil, service.ErrOfficeTooNew
			},
		}

		h := NewOfficeHandler(svc, &stubOfficeQueryService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/offices/"+uuid.NewString(), bytes.NewReader([]byte(`{}`)))
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects a non-uuid office ID", func(t *testing.T) {
		t.Parallel()

		h := NewOfficeHandler(&stubOfficeService{}, &stubOfficeQueryService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/offices/not-a-uuid", bytes.NewReader([]byte(`{}`)))
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestOfficeHandlerDelete(t *testing.T) {
	t.Parallel()

	t.Run("missing office still answers 200 with deleted false", func(t *testing.T) {
		t.Parallel()

		svc := &stubOfficeService{
			deleteFn: func(ctx context.Context, id uuid.UUID, actorID uuid.UUID) (bool, error) {
				return false, nil
			},
		}

		h := NewOfficeHandler(svc, &stubOfficeQueryService{})
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/offices/"+uuid.NewString(), nil)
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp DeleteOfficeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Deleted)
	})
}

func TestOfficeHandlerQueries(t *testing.T) {
	t.Parallel()

	t.Run("get by ID maps not found to 404", func(t *testing.T) {
		t.Parallel()

		queries := &stubOfficeQueryService{
			getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Office, error) {
				return nil, service.ErrOfficeNotFound
			},
		}

		h := NewOfficeHandler(&stubOfficeService{}, queries)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/offices/"+uuid.NewString(), nil)
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("list returns offices", func(t *testing.T) {
		t.Parallel()

		office := sampleOffice(t)
		queries := &stubOfficeQueryService{
			listFn: func(ctx context.Context) ([]*domain.Office, error) {
				return []*domain.Office{office}, nil
			},
		}

		h := NewOfficeHandler(&stubOfficeService{}, queries)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/offices", nil)
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got []domain.Office
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, office.Location, got[0].Location)
	})

	t.Run("get by location", func(t *testing.T) {
		t.Parallel()

		office := sampleOffice(t)
		queries := &stubOfficeQueryService{
			getByLocationFn: func(ctx context.Context, location string) (*domain.Office, error) {
				assert.Equal(t, "Av. Arequipa 1234, Lima", location)
				return office, nil
			},
		}

		h := NewOfficeHandler(&stubOfficeService{}, queries)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/offices/location/Av.%20Arequipa%201234,%20Lima", nil)
		newOfficeRouter(h, uuid.New()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOfficeHandlerRequiresActor(t *testing.T) {
	t.Parallel()

	// No user ID in context: the handler itself refuses.
	h := NewOfficeHandler(&stubOfficeService{}, &stubOfficeQueryService{})
	r := chi.NewRouter()
	r.Post("/offices", h.Create)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/offices", bytes.NewReader([]byte(`{}`)))
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRatingHandler(t *testing.T) {
	t.Parallel()

	newRouter := func(h *RatingHandler) http.Handler {
		r := chi.NewRouter()
		r.Post("/offices/{id}/ratings", h.Create)
		r.Get("/offices/{id}/ratings", h.ListByOffice)
		r.Get("/offices/{id}/ratings/average", h.Average)
		return r
	}

	t.Run("create takes the office ID from the URL", func(t *testing.T) {
		t.Parallel()

		officeID := uuid.New()
		svc := &stubRatingService{
			createFn: func(ctx context.Context, cmd *domain.CreateRatingCommand) (*domain.Rating, error) {
				assert.Equal(t, officeID, cmd.OfficeID)
				return &domain.Rating{
					ID:        uuid.New(),
					OfficeID:  officeID,
					Score:     cmd.Score,
					Comment:   cmd.Comment,
					CreatedAt: time.Now().UTC(),
				}, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(
			http.MethodPost,
			"/offices/"+officeID.String()+"/ratings",
			bytes.NewReader([]byte(`{"score": 4, "comment": "Nice"}`)),
		)
		newRouter(NewRatingHandler(svc)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("average", func(t *testing.T) {
		t.Parallel()

		officeID := uuid.New()
		svc := &stubRatingService{
			averageFn: func(ctx context.Context, id uuid.UUID) (float64, error) {
				return 4.33, nil
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/offices/"+officeID.String()+"/ratings/average", nil)
		newRouter(NewRatingHandler(svc)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp AverageRatingResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, officeID, resp.OfficeID)
		assert.InDelta(t, 4.33, resp.Average, 0.0001)
	})

	t.Run("create for unknown office maps to 404", func(t *testing.T) {
		t.Parallel()

		svc := &stubRatingService{
			createFn: func(ctx context.Context, cmd *domain.CreateRatingCommand) (*domain.Rating, error) {
				return nil, service.ErrOfficeNotFound
			},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(
			http.MethodPost,
			"/offices/"+uuid.NewString()+"/ratings",
			bytes.NewReader([]byte(`{"score": 4}`)),
		)
		newRouter(NewRatingHandler(svc)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
