package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	resp, err := h.services.AuthService.Authenticate(ctx, req.Username, req.Password)
	h.observeLogin(err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", req.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) issueAPIKey(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.IssueAPIKeyRequest
	if !h.decodeRequest(w, r, &req) {
		return
	}

	subject, _ := utils.GetSubjectFromContext(ctx)
	log.Debug().Str("subject", subject).Str("user_id", req.UserID).Msg("api key requested")

	// a caller may only request keys for its own account
	caller, err := h.services.AuthService.CurrentUser(ctx, subject)
	if err == nil && caller.UserID != req.UserID {
		log.Warn().Str("caller_id", caller.UserID).Str("user_id", req.UserID).Msg("api key requested for another user")
		err = fmt.Errorf("%w: caller %s cannot issue keys for user %s", service.ErrPermissionDenied, caller.UserID, req.UserID)
	}
	if err != nil {
		h.observeAPIKeyIssuance(err)
		writeError(w, r, err)
		return
	}

	grant, err := h.services.APIKeyService.IssueAPIKey(ctx, req.UserID, req.Permissions)
	h.observeAPIKeyIssuance(err)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, grant, http.StatusOK)
}

func (h *Handler) observeLogin(err error) {
	if h.metrics != nil {
		h.metrics.ObserveLogin(outcome(err))
	}
}

func (h *Handler) observeAPIKeyIssuance(err error) {
	if h.metrics != nil {
		h.metrics.ObserveAPIKeyIssuance(outcome(err))
	}
}

func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	return service.KindOf(err).String()
}
