package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withStats)
	if h.metrics != nil {
		router.Use(metrics.HTTPMetricsMiddleware(h.metrics))
	}
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login/", h.login)
		r.Post("/convert-timestamp/", h.convertTimestamp)
		r.Get("/monitor/health/", h.healthCheck)
		r.Post("/logs/create/", h.createLogEntry)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/auth/api-key/", h.issueAPIKey)
	})

	if h.metrics != nil {
		router.Method("GET", "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
