package http

import (
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/metrics"
	"github.com/MKhiriev/go-auth-keeper/internal/service"
	"github.com/MKhiriev/go-auth-keeper/internal/validators"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, metrics *metrics.Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		metrics:   metrics,
		validator: validators.NewRequestValidator(),
		logger:    logger,
	}
}
