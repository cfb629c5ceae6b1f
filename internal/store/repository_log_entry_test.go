package store

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/models"
)

var insertLogEntry = regexp.QuoteMeta(
	"INSERT INTO logs (id,action,description,conversion_request_id,created_at) VALUES ($1,$2,$3,$4,$5)")

func TestCreateLogEntry_Success(t *testing.T) {
	db, mock := newTestDB(t, config.DriverPostgres)
	repo := NewLogEntryRepository(db, logger.Nop())

	desc := "converted"
	entry := models.LogEntry{
		ID:          "0b6a1e9c-2f0e-4c5e-9d55-7d7f3f7a1a10",
		Action:      "timestamp_conversion",
		Description: &desc,
		CreatedAt:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(insertLogEntry).
		WithArgs(entry.ID, entry.Action, entry.Description, entry.ConversionRequestID, entry.CreatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	saved, err := repo.CreateLogEntry(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, entry, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateLogEntry_BusyDatabase(t *testing.T) {
	db, mock := newTestDB(t, config.DriverSQLite)
	repo := NewLogEntryRepository(db, logger.Nop())

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO logs")).
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrBusy})

	_, err := repo.CreateLogEntry(context.Background(), models.LogEntry{ID: "x", Action: "a"})
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}
