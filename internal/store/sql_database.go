package store

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/migrations"
)

// DB is a database handle shared by the repositories. It carries the
// driver-specific query builder and error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an open connection for the given driver.
func NewDB(conn *sql.DB, driver string, log *logger.Logger) (*DB, error) {
	if conn == nil {
		return nil, ErrNilDB
	}

	db := &DB{DB: conn, driver: driver, logger: log}
	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	case config.DriverSQLite:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	return db, nil
}

// Migrate applies the embedded schema migrations for the handle's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// wrapDriverError converts a driver error into ErrStorageUnavailable when the
// classifier deems it retryable, or into ErrExecutingQuery otherwise.
func (db *DB) wrapDriverError(err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
