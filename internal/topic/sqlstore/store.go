// Package sqlstore persists topics through database/sql. SQLite
// (mattn/go-sqlite3) and PostgreSQL (lib/pq as "postgres", pgx as "pgx")
// share the same code path; only the placeholder format and migration
// dialect differ.
package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"quiz-topics/internal/config"
)

const topicTable = "topic"

type Store struct {
	db      *sqlx.DB
	driver  string
	builder sq.StatementBuilderType
}

// Open connects to the configured database, applies pool limits and, when
// AutoMigrate is set, brings the schema up to date.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	db, err := sqlx.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		// SQLite allows a single writer.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Driver, err)
	}

	if cfg.Driver == config.DriverSQLite {
		if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	store := newStore(db, cfg.Driver)
	if cfg.AutoMigrate {
		if _, err := store.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return store, nil
}

func newStore(db *sqlx.DB, driver string) *Store {
	var placeholder sq.PlaceholderFormat = sq.Question
	if driver == config.DriverPostgres || driver == config.DriverPgx {
		placeholder = sq.Dollar
	}
	return &Store{
		db:      db,
		driver:  driver,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
