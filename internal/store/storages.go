package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/internal/utils"
)

// Storages groups the repositories used by the service layer together with
// the connection backing them.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages builds the user storage selected by cfg.DB.DSN.
//
// An empty DSN selects the in-memory repository. Otherwise a database
// connection is opened and all pending migrations are applied before the
// repository is returned.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	ids := utils.NewUUIDGenerator()

	if cfg.DB.DSN == "" {
		log.Warn().Msg("no database DSN configured: users are kept in memory")
		return &Storages{UserRepository: NewMemoryUserRepository(ids, log)}, nil
	}

	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, ids, log),
		db:             db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
