package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

// decodeRequest decodes the JSON body into dst and validates it. On failure
// it writes a 400 response and returns false.
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	log := logger.FromRequest(r)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return false
	}

	if err := h.validator.Validate(r.Context(), dst); err != nil {
		log.Warn().Err(err).Msg("request validation failed")
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return false
	}

	return true
}
