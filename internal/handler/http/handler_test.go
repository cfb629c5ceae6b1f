package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// testEnv bundles a router with the service mocks behind it.
type testEnv struct {
	router    http.Handler
	handler   *Handler
	services  *service.Services
	metrics   *metrics.Metrics
	auth      *mock.MockAuthService
	apiKeys   *mock.MockAPIKeyService
	health    *mock.MockHealthService
	timestamp *mock.MockTimestampService
	logs      *mock.MockLogEntryService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)

	env := &testEnv{
		auth:      mock.NewMockAuthService(ctrl),
		apiKeys:   mock.NewMockAPIKeyService(ctrl),
		health:    mock.NewMockHealthService(ctrl),
		timestamp: mock.NewMockTimestampService(ctrl),
		logs:      mock.NewMockLogEntryService(ctrl),
		metrics:   metrics.NewMetrics(prometheus.NewRegistry()),
	}
	env.services = &service.Services{
		AuthService:      env.auth,
		APIKeyService:    env.apiKeys,
		HealthService:    env.health,
		TimestampService: env.timestamp,
		LogEntryService:  env.logs,
		RequestStats:     service.NewRequestStats(),
	}
	env.handler = NewHandler(env.services, env.metrics, logger.Nop())
	env.router = env.handler.Init()

	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
