package config

import "errors"

// Validation errors returned when the merged configuration cannot be used.
// All of them are configuration-fatal.
var (
	// ErrEmptyTokenSignKey indicates that no token signing secret was
	// configured. Tokens must never be signed with an empty key.
	ErrEmptyTokenSignKey = errors.New("token sign key is not configured")
	// ErrInvalidAppConfigs indicates invalid token or hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that neither HTTP nor gRPC address is set.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
