package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-flight-board/internal/config"
	"github.com/MKhiriev/go-flight-board/internal/logger"
	"github.com/MKhiriev/go-flight-board/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names the database/sql driver (and goose dialect) behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// DB is a database/sql connection bound to one dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectSQLite:
		db.errorClassificator = NewSQLiteErrorClassifier()
	default:
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// NewConnect opens and pings the database selected by cfg.DSN.
//
// Supported DSNs:
//   - "postgres://...", "postgresql://..." or a "host=..." keyword string: PostgreSQL via pgx;
//   - "sqlite://path", "file:..." or a path ending in ".db"/".sqlite": SQLite.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect, dsn, err := dialectFromDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	switch dialect {
	case DialectSQLite:
		return NewConnectSQLite(ctx, dsn, log)
	default:
		return NewConnectPostgres(ctx, dsn, log)
	}
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

func (db *DB) placeholderFormat() sq.PlaceholderFormat {
	if db.dialect == DialectSQLite {
		return sq.Question
	}
	return sq.Dollar
}

func dialectFromDSN(dsn string) (Dialect, string, error) {
	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DialectPostgres, dsn, nil
	case strings.Contains(dsn, "host="):
		return DialectPostgres, dsn, nil
	case strings.HasPrefix(dsn, "sqlite://"):
		return DialectSQLite, strings.TrimPrefix(dsn, "sqlite://"), nil
	case strings.HasPrefix(dsn, "file:"):
		return DialectSQLite, dsn, nil
	case strings.HasSuffix(dsn, ".db"), strings.HasSuffix(dsn, ".sqlite"):
		return DialectSQLite, dsn, nil
	}

	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDSN, dsn)
}
