package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the user store consumed by the authentication and API key
// services. Lookups that match no row return [ErrUserNotFound].
type UserRepository interface {
	// FindUserByHandle returns the user whose login handle (email) equals handle.
	FindUserByHandle(ctx context.Context, handle string) (models.User, error)

	// FindUserByID returns the user with the given identifier.
	FindUserByID(ctx context.Context, id string) (models.User, error)

	// UpdateUserAPIKey overwrites the stored API key of the user. The last
	// write wins: concurrent updates for the same user are not serialized.
	UpdateUserAPIKey(ctx context.Context, id, key string) error
}

// LogEntryRepository persists system event records.
type LogEntryRepository interface {
	CreateLogEntry(ctx context.Context, entry models.LogEntry) (models.LogEntry, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying by the caller.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
