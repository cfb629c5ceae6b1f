package http

import (
	"net/http"
	"time"
)

// withStats feeds response times and 5xx failures into the request
// statistics read by the health report.
func (h *Handler) withStats(next http.Handler) http.Handler {
	if h.services == nil || h.services.RequestStats == nil {
		return next
	}
	stats := h.services.RequestStats

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(sw, r)

		stats.Record(time.Since(start), sw.statusCode() >= http.StatusInternalServerError)
	})
}
