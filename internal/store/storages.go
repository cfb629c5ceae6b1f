// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

// Storages groups the repositories and the shared connection they use.
type Storages struct {
	DB                 *DB
	UserRepository     UserRepository
	LogEntryRepository LogEntryRepository
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return &Storages{
		DB:                 db,
		UserRepository:     NewUserRepository(db, log),
		LogEntryRepository: NewLogEntryRepository(db, log),
	}, nil
}

// Ping reports whether the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
