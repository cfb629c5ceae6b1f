// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter returns an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "host and port", raw: "localhost:8080", want: "http://localhost:8080"},
		{name: "with scheme", raw: "https://auth.example.com/", want: "https://auth.example.com"},
		{name: "spaces", raw: "  127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{name: "empty", raw: "", wantErr: true},
		{name: "no host", raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login/", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Username)
		assert.Equal(t, "s3cret", req.Password)

		writeJSON(t, w, http.StatusOK, models.AuthenticationResponse{AccessToken: "tok", TokenType: models.TokenTypeBearer})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), "alice@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "tok", got.AccessToken)
	assert.Equal(t, "bearer", got.TokenType)
	assert.Equal(t, "tok", a.Token())
}

func TestLogin_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Error: "nope"})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), "alice@example.com", "wrong")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "nope")
			assert.Empty(t, a.Token())
		})
	}
}

func TestLogin_EmptyToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, models.AuthenticationResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "alice@example.com", "s3cret")

	require.Error(t, err)
	assert.Empty(t, a.Token())
}

// ── IssueAPIKey ──────────────────────────────────────────────────────────────

func TestIssueAPIKey_Success(t *testing.T) {
	exp := time.Date(2027, 10, 19, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/api-key/", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req models.IssueAPIKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "u1", req.UserID)
		assert.Equal(t, []string{"read", "write"}, req.Permissions)

		writeJSON(t, w, http.StatusOK, models.APIKeyGrant{
			APIKey:         "0b0e4a4e-9f0c-4a53-8f7d-0c5f7ad7c001",
			Permissions:    req.Permissions,
			ExpirationDate: exp,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")

	got, err := a.IssueAPIKey(context.Background(), "u1", []string{"read", "write"})

	require.NoError(t, err)
	assert.Len(t, got.APIKey, 36)
	assert.Equal(t, []string{"read", "write"}, got.Permissions)
	assert.True(t, exp.Equal(got.ExpirationDate))
}

func TestIssueAPIKey_NotLoggedIn(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1")

	_, err := a.IssueAPIKey(context.Background(), "u1", nil)

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestIssueAPIKey_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: "permission denied"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	_, err := a.IssueAPIKey(context.Background(), "u2", []string{"read"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

// ── Supporting endpoints ─────────────────────────────────────────────────────

func TestConvertTimestamp_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert-timestamp/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.TimestampConversionResponse{ConvertedTimestamp: "2026-01-01T09:00:00+09:00"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ConvertTimestamp(context.Background(), models.TimestampConversionRequest{
		SourceTimestamp: "2026-01-01T00:00:00",
		SourceTZ:        "UTC",
		TargetTZ:        "Asia/Tokyo",
	})

	require.NoError(t, err)
	assert.Equal(t, "2026-01-01T09:00:00+09:00", got.ConvertedTimestamp)
}

func TestHealth_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/monitor/health/", r.URL.Path)
		writeJSON(t, w, http.StatusOK, models.HealthCheckResponse{Status: models.HealthStatusHealthy, Uptime: "00:00:05", Database: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.HealthStatusHealthy, got.Status)
	assert.True(t, got.Database)
}

func TestCreateLogEntry_Success(t *testing.T) {
	id := "1f7c5a3e-0000-4000-8000-000000000001"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/logs/create/", r.URL.Path)

		var req models.CreateLogEntryRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "convert", req.Action)

		writeJSON(t, w, http.StatusOK, models.CreateLogEntryResponse{Success: true, LogID: &id})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateLogEntry(context.Background(), models.CreateLogEntryRequest{Action: "convert"})

	require.NoError(t, err)
	assert.True(t, got.Success)
	require.NotNil(t, got.LogID)
	assert.Equal(t, id, *got.LogID)
}

func TestMapHTTPError_UnknownStatusFallsBackToStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Health(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}
