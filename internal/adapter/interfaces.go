// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side transport used to talk to the
// go-auth-keeper server.
//
// [ServerAdapter] hides the protocol from the command-line client. The package
// ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError onto the sentinel errors in
// errors.go so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for
// 401, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the go-auth-keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login exchanges credentials for a session token. On success the token
	// is stored via SetToken.
	Login(ctx context.Context, username, password string) (models.AuthenticationResponse, error)

	// IssueAPIKey requests a new API key for userID. Requires a stored token
	// belonging to an administrator.
	IssueAPIKey(ctx context.Context, userID string, permissions []string) (models.APIKeyGrant, error)

	// ConvertTimestamp asks the server to convert a timestamp between zones.
	ConvertTimestamp(ctx context.Context, req models.TimestampConversionRequest) (models.TimestampConversionResponse, error)

	// Health fetches the server health report.
	Health(ctx context.Context) (models.HealthCheckResponse, error)

	// CreateLogEntry records an event in the server log table.
	CreateLogEntry(ctx context.Context, req models.CreateLogEntryRequest) (models.CreateLogEntryResponse, error)
}
