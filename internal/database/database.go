// Package database provides the candidate and result stores used at the
// batch boundary. The matching engine itself never touches storage.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"           // postgres driver
	_ "github.com/mattn/go-sqlite3" // sqlite driver

	"github.com/jonesrussell/sotd-matcher/internal/config"
)

const (
	// DefaultPingTimeout bounds the startup connectivity check.
	DefaultPingTimeout = 5 * time.Second

	driverSQLite   = "sqlite3"
	driverPostgres = "postgres"
)

// Connect opens the configured database and verifies connectivity.
func Connect(cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var (
		db  *sqlx.DB
		err error
	)

	switch cfg.Driver {
	case driverSQLite, "":
		db, err = sqlx.Open(driverSQLite, cfg.Path)
	case driverPostgres:
		dsn := fmt.Sprintf(
			"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database, cfg.SSLMode,
		)
		db, err = sqlx.Open(driverPostgres, dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultPingTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

// schema is portable across sqlite and postgres.
const schema = `
CREATE TABLE IF NOT EXISTS candidates (
	id         TEXT PRIMARY KEY,
	month      TEXT NOT NULL,
	field      TEXT NOT NULL,
	author     TEXT NOT NULL DEFAULT '',
	text       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_candidates_month ON candidates (month, field);

CREATE TABLE IF NOT EXISTS match_records (
	id           TEXT PRIMARY KEY,
	candidate_id TEXT NOT NULL,
	month        TEXT NOT NULL,
	input        TEXT NOT NULL,
	brand        TEXT NOT NULL DEFAULT '',
	model        TEXT NOT NULL DEFAULT '',
	handle_brand TEXT NOT NULL DEFAULT '',
	handle_model TEXT NOT NULL DEFAULT '',
	knot_brand   TEXT NOT NULL DEFAULT '',
	knot_model   TEXT NOT NULL DEFAULT '',
	fiber        TEXT NOT NULL DEFAULT '',
	knot_mm      TEXT NOT NULL DEFAULT '',
	match_kind   TEXT NOT NULL,
	pattern      TEXT NOT NULL DEFAULT '',
	strategy     TEXT NOT NULL DEFAULT '',
	matched_at   TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_records_month ON match_records (month, match_kind);
`

// EnsureSchema creates the tables when missing.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
