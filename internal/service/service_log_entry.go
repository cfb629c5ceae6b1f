package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type logEntryService struct {
	repository  store.LogEntryRepository
	idGenerator KeyGenerator
	now         func() time.Time

	logger *logger.Logger
}

// NewLogEntryService constructs a LogEntryService. idGenerator assigns the
// entry identifiers.
func NewLogEntryService(repository store.LogEntryRepository, idGenerator KeyGenerator, logger *logger.Logger) LogEntryService {
	return &logEntryService{
		repository:  repository,
		idGenerator: idGenerator,
		now:         time.Now,
		logger:      logger,
	}
}

// LogEntry stores a system event. action is required.
func (s *logEntryService) LogEntry(ctx context.Context, action string, description, conversionRequestID *string) (models.CreateLogEntryResponse, error) {
	log := logger.FromContext(ctx)

	if action == "" {
		log.Error().Msg("empty action provided")
		return models.CreateLogEntryResponse{}, ErrInvalidDataProvided
	}

	entry, err := s.repository.CreateLogEntry(ctx, models.LogEntry{
		ID:                  s.idGenerator.Generate(),
		Action:              action,
		Description:         description,
		ConversionRequestID: conversionRequestID,
		CreatedAt:           s.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("action", action).Msg("log entry creation failed")
		return models.CreateLogEntryResponse{}, fmt.Errorf("log entry creation failed: %w", err)
	}

	message := app.MsgLogEntryCreated
	return models.CreateLogEntryResponse{
		Success: true,
		LogID:   &entry.ID,
		Message: &message,
	}, nil
}
