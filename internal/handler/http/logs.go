package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) createLogEntry(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLogEntryRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	resp, err := h.services.LogEntryService.LogEntry(r.Context(), req.Action, req.Description, req.ConversionRequestID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
