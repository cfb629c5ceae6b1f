package service

import (
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
)

type Services struct {
	AuthService      AuthService
	APIKeyService    APIKeyService
	HealthService    HealthService
	TimestampService TimestampService
	LogEntryService  LogEntryService

	// RequestStats is fed by the HTTP middleware and read by HealthService.
	RequestStats *RequestStats
}

// NewServices wires the services over storages. An empty token sign key is a
// configuration-fatal error.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	minter, err := utils.NewTokenMinter(cfg.App.TokenSignKey, cfg.App.TokenIssuer)
	if err != nil {
		return nil, fmt.Errorf("cannot create token minter: %w", err)
	}

	uuids := utils.NewUUIDGenerator()
	stats := NewRequestStats()

	var pinger Pinger
	if storages.DB != nil {
		pinger = storages
	}

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, minter, logger),
		APIKeyService:    NewAPIKeyService(storages.UserRepository, uuids, cfg.App, logger),
		HealthService:    NewHealthService(stats, pinger, cfg.App, logger),
		TimestampService: NewTimestampService(logger),
		LogEntryService:  NewLogEntryService(storages.LogEntryRepository, uuids, logger),
		RequestStats:     stats,
	}, nil
}
