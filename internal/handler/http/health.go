package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.HealthService.Check(r.Context()), http.StatusOK)
}
