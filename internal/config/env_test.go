// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":     "jwt_secret",
		"APP_TOKEN_ISSUER":       "test_issuer",
		"APP_TOKEN_DURATION":     "15m",
		"APP_API_KEY_TTL":        "8760h",
		"APP_PASSWORD_HASH_COST": "12",
		"APP_LOG_LEVEL":          "warn",
		"APP_VERSION":            "1.2.3",

		"SERVER_ADDRESS":          "localhost:8080",
		"SERVER_GRPC_ADDRESS":     "localhost:9090",
		"SERVER_REQUEST_TIMEOUT":  "30s",
		"SERVER_SHUTDOWN_TIMEOUT": "5s",

		"STORAGE_DB_DRIVER":       "sqlite",
		"STORAGE_DB_DATABASE_URI": "file:auth.db",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 15*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, 365*24*time.Hour, cfg.App.APIKeyTTL)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:auth.db", cfg.Storage.DB.DSN)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_TOKEN_DURATION": "not-a-duration"})

	err := parseEnv(&StructuredConfig{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnvFrom_ExplicitEnvironment(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "from-process")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnvFrom(cfg, map[string]string{
		"APP_TOKEN_SIGN_KEY": "from-map",
		"STORAGE_DB_DRIVER":  DriverPostgres,
	}))

	assert.Equal(t, "from-map", cfg.App.TokenSignKey)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
}

func TestParseEnvFrom_InvalidDuration(t *testing.T) {
	cfg := &StructuredConfig{}
	err := parseEnvFrom(cfg, map[string]string{"SERVER_REQUEST_TIMEOUT": "soon"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}
