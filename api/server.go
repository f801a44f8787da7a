/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the chi router, middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the calendar frontend

SECURITY NOTE:
  Single-user tool; no authentication middleware. Do not expose beyond
  localhost without putting auth in front.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a router with all routes configured. allowedOrigins
// feeds the CORS middleware; an empty list allows localhost dev servers.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/periods/{month}", func(r chi.Router) {
			r.Get("/", h.GetPeriod)
			r.Put("/settings", h.SaveSettings)
			r.Get("/compensation", h.GetCompensation)

			r.Get("/shifts", h.ListShifts)
			r.Post("/shifts/toggle", h.ToggleShift)
			r.Post("/import-legacy", h.ImportLegacyShifts)

			r.Route("/worklogs", func(r chi.Router) {
				r.Post("/", h.CreateWorkLog)
				r.Put("/{id}", h.UpdateWorkLog)
				r.Delete("/{id}", h.DeleteWorkLog)
			})
		})

		r.Get("/holidays/{year}", h.ListHolidays)
	})

	return r
}
