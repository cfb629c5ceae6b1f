package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) convertTimestamp(w http.ResponseWriter, r *http.Request) {
	var req models.TimestampConversionRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	resp, err := h.services.TimestampService.Convert(r.Context(), req.SourceTimestamp, req.SourceTZ, req.TargetTZ)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
