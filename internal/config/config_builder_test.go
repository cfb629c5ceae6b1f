package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validSourceConfig returns the fields that have no defaults.
func validSourceConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/auth"}},
	}
}

func TestBuild_DefaultsApplied(t *testing.T) {
	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags(validSourceConfig()).
		build()
	require.NoError(t, err)

	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultAPIKeyTTL, cfg.App.APIKeyTTL)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
}

func TestBuild_LaterSourceOverrides(t *testing.T) {
	override := validSourceConfig()
	override.App.TokenDuration = 2 * time.Hour
	override.Server.HTTPAddress = ":9000"

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags(validSourceConfig()).
		withFlags(override).
		build()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_EmptySignKeyIsFatal(t *testing.T) {
	src := validSourceConfig()
	src.App.TokenSignKey = ""

	cfg, err := newConfigBuilder().withDefaults().withFlags(src).build()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrEmptyTokenSignKey)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestWithJSON_FileOverridesEnv(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "from-json",
			"token_duration": "90m",
		},
		"storage": map[string]any{
			"db": map[string]any{"driver": "sqlite", "dsn": "file:json.db"},
		},
	})

	cfg, err := newConfigBuilder().
		withDefaults().
		withFlags(validSourceConfig()).
		withJSON(path).
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-json", cfg.App.TokenSignKey)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:json.db", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFile(t *testing.T) {
	_, err := newConfigBuilder().withJSON("/does/not/exist.json").build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "unknown driver", mutate: func(c *StructuredConfig) { c.Storage.DB.Driver = "mysql" }, wantErr: ErrInvalidStorageConfigs},
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no servers", mutate: func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, wantErr: ErrInvalidServerConfigs},
		{name: "zero token duration", mutate: func(c *StructuredConfig) { c.App.TokenDuration = 0 }, wantErr: ErrInvalidAppConfigs},
		{name: "bcrypt cost too high", mutate: func(c *StructuredConfig) { c.App.PasswordHashCost = 40 }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.App.TokenSignKey = "secret"
			cfg.Storage.DB.DSN = "postgres://localhost/auth"
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"1h30m"`), &d))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, json.Unmarshal([]byte(`1000`), &d))
	assert.Equal(t, time.Microsecond, time.Duration(d))

	assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestGetClientConfig(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "localhost:7000")

	cfg, rest, err := GetClientConfig([]string{"-timeout", "2s", "login", "alice@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "localhost:7000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, []string{"login", "alice@example.com"}, rest)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	_, _, err := GetClientConfig([]string{"-a", ""})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
