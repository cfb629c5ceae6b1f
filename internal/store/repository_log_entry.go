package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

type logEntryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewLogEntryRepository constructs a [LogEntryRepository] writing to the
// "logs" table.
func NewLogEntryRepository(db *DB, logger *logger.Logger) LogEntryRepository {
	logger.Debug().Msg("creating log entry repository")
	return &logEntryRepository{
		db:     db,
		logger: logger,
	}
}

// CreateLogEntry inserts entry as is. The caller assigns ID and CreatedAt.
func (r *logEntryRepository) CreateLogEntry(ctx context.Context, entry models.LogEntry) (models.LogEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(logsTable).
		Columns(logColumns...).
		Values(entry.ID, entry.Action, entry.Description, entry.ConversionRequestID, entry.CreatedAt).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*logEntryRepository.CreateLogEntry").Msg("error building query")
		return models.LogEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*logEntryRepository.CreateLogEntry").Msg("error inserting log entry")
		return models.LogEntry{}, r.db.wrapDriverError(err)
	}

	return entry, nil
}
