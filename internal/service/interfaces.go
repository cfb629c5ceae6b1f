package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService runs the login flow: look the user up, verify the password and
// mint a session token.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (models.AuthenticationResponse, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
	// CurrentUser resolves the subject of a parsed token to its user.
	CurrentUser(ctx context.Context, subject string) (models.User, error)
}

// APIKeyService issues long-lived API keys to administrators.
type APIKeyService interface {
	IssueAPIKey(ctx context.Context, userID string, permissions []string) (models.APIKeyGrant, error)
}

// HealthService reports the runtime health of the process.
type HealthService interface {
	Check(ctx context.Context) models.HealthCheckResponse
}

// TimestampService converts wall-clock timestamps between IANA time zones.
type TimestampService interface {
	Convert(ctx context.Context, sourceTimestamp, sourceTZ, targetTZ string) (models.TimestampConversionResponse, error)
}

// LogEntryService records system events.
type LogEntryService interface {
	LogEntry(ctx context.Context, action string, description, conversionRequestID *string) (models.CreateLogEntryResponse, error)
}

// KeyGenerator produces API key values.
type KeyGenerator interface {
	Generate() string
}

// PermissionPolicy decides which permissions an issued key carries.
type PermissionPolicy interface {
	Grant(ctx context.Context, user models.User, requested []string) ([]string, error)
}

// Pinger is the storage liveness probe used by the health report.
type Pinger interface {
	Ping(ctx context.Context) error
}
