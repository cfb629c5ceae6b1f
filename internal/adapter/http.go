package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	pathLogin            = "/auth/login/"
	pathAPIKey           = "/auth/api-key/"
	pathConvertTimestamp = "/convert-timestamp/"
	pathHealth           = "/monitor/health/"
	pathCreateLogEntry   = "/logs/create/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL is taken from adapterCfg.HTTPAddress; a missing scheme defaults
// to http. Returns an error if the address is empty or cannot be parsed.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, username, password string) (models.AuthenticationResponse, error) {
	var out models.AuthenticationResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Username: username, Password: password}).
		SetResult(&out).
		Post(pathLogin)
	if err != nil {
		return models.AuthenticationResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthenticationResponse{}, err
	}
	if out.AccessToken == "" {
		return models.AuthenticationResponse{}, fmt.Errorf("login: empty access token in response")
	}

	h.SetToken(out.AccessToken)
	h.logger.Debug().Str("token_type", out.TokenType).Msg("logged in")
	return out, nil
}

// IssueAPIKey implements [ServerAdapter]. Returns [ErrNotLoggedIn] when no
// token is stored.
func (h *httpServerAdapter) IssueAPIKey(ctx context.Context, userID string, permissions []string) (models.APIKeyGrant, error) {
	if h.Token() == "" {
		return models.APIKeyGrant{}, ErrNotLoggedIn
	}

	var out models.APIKeyGrant
	resp, err := h.authedRequest(ctx).
		SetBody(models.IssueAPIKeyRequest{UserID: userID, Permissions: permissions}).
		SetResult(&out).
		Post(pathAPIKey)
	if err != nil {
		return models.APIKeyGrant{}, fmt.Errorf("issue api key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.APIKeyGrant{}, err
	}

	return out, nil
}

// ConvertTimestamp implements [ServerAdapter].
func (h *httpServerAdapter) ConvertTimestamp(ctx context.Context, req models.TimestampConversionRequest) (models.TimestampConversionResponse, error) {
	var out models.TimestampConversionResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(pathConvertTimestamp)
	if err != nil {
		return models.TimestampConversionResponse{}, fmt.Errorf("convert timestamp request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TimestampConversionResponse{}, err
	}

	return out, nil
}

// Health implements [ServerAdapter].
func (h *httpServerAdapter) Health(ctx context.Context) (models.HealthCheckResponse, error) {
	var out models.HealthCheckResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&out).
		Get(pathHealth)
	if err != nil {
		return models.HealthCheckResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthCheckResponse{}, err
	}

	return out, nil
}

// CreateLogEntry implements [ServerAdapter].
func (h *httpServerAdapter) CreateLogEntry(ctx context.Context, req models.CreateLogEntryRequest) (models.CreateLogEntryResponse, error) {
	var out models.CreateLogEntryResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post(pathCreateLogEntry)
	if err != nil {
		return models.CreateLogEntryResponse{}, fmt.Errorf("create log entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CreateLogEntryResponse{}, err
	}

	return out, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
