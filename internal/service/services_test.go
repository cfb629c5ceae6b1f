package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

func TestNewServices_EmptySignKey(t *testing.T) {
	svcs, err := NewServices(&store.Storages{}, config.StructuredConfig{}, logger.Nop())

	assert.Nil(t, svcs)
	require.Error(t, err)
	assert.Equal(t, KindConfigurationFatal, KindOf(err))
}

func TestNewServices_Success(t *testing.T) {
	cfg := config.StructuredConfig{App: config.App{TokenSignKey: "k", Version: "dev"}}

	svcs, err := NewServices(&store.Storages{}, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, svcs.AuthService)
	assert.NotNil(t, svcs.APIKeyService)
	assert.NotNil(t, svcs.HealthService)
	assert.NotNil(t, svcs.TimestampService)
	assert.NotNil(t, svcs.LogEntryService)
	assert.NotNil(t, svcs.RequestStats)
}
