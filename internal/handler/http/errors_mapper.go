package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

var errorStatusMap = map[service.ErrorKind]int{
	service.KindNotFound:     http.StatusNotFound,
	service.KindUnauthorized: http.StatusUnauthorized,
	service.KindDenied:       http.StatusForbidden,
	service.KindInvalidInput: http.StatusBadRequest,
	service.KindUnavailable:  http.StatusServiceUnavailable,
}

var errorMessageMap = map[service.ErrorKind]string{
	service.KindNotFound:     app.MsgUserNotFound,
	service.KindUnauthorized: app.MsgIncorrectCredentials,
	service.KindDenied:       app.MsgPermissionDenied,
	service.KindInvalidInput: app.MsgInvalidDataProvided,
	service.KindUnavailable:  app.MsgServiceUnavailable,
}

func statusFromError(err error) int {
	if status, ok := errorStatusMap[service.KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// messageFromError returns a client-safe message. Internal details are
// never exposed.
func messageFromError(err error) string {
	if msg, ok := errorMessageMap[service.KindOf(err)]; ok {
		return msg
	}
	return app.MsgInternalServerError
}

// writeError logs err and replies with the mapped status and a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(w, messageFromError(err), status)
}
