package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied before any other configuration source.
const (
	DefaultTokenIssuer     = "go-auth-keeper"
	DefaultTokenDuration   = 15 * time.Minute
	DefaultAPIKeyTTL       = 365 * 24 * time.Hour
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultHTTPAddress     = "localhost:8080"
	DefaultLogLevel        = "info"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      DefaultTokenIssuer,
			TokenDuration:    DefaultTokenDuration,
			APIKeyTTL:        DefaultAPIKeyTTL,
			PasswordHashCost: bcrypt.DefaultCost,
			LogLevel:         DefaultLogLevel,
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
	}
}
