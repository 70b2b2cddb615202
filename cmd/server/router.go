package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/workstation/workstation-api/internal/api"
	apiMiddleware "github.com/workstation/workstation-api/internal/api/middleware"
	"github.com/workstation/workstation-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	officeHandler := api.NewOfficeHandler(app.officeService, app.officeQueries)
	ratingHandler := api.NewRatingHandler(app.ratingService)
	userHandler := api.NewUserHandler(app.userService, app.userQueries, app.jwtService)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/users", userHandler.Register)
		r.Post("/auth/login", userHandler.Login)
		r.Post("/auth/refresh", userHandler.Refresh)

		r.Get("/offices", officeHandler.List)
		r.Get("/offices/{id}", officeHandler.GetByID)
		r.Get("/offices/location/{location}", officeHandler.GetByLocation)
		r.Get("/offices/{id}/ratings", ratingHandler.ListByOffice)
		r.Get("/offices/{id}/ratings/average", ratingHandler.Average)

		// Protected endpoints
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Post("/offices", officeHandler.Create)
			r.Put("/offices/{id}", officeHandler.Update)
			r.Delete("/offices/{id}", officeHandler.Delete)

			r.Post("/offices/{id}/ratings", ratingHandler.Create)

			r.Get("/users", userHandler.List)
			r.Get("/users/{id}", userHandler.GetByID)
			r.Put("/users/{id}", userHandler.Update)
			r.Delete("/users/{id}", userHandler.Delete)
		})
	})

	return r
}
