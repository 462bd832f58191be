package sqlstore

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"quiz-topics/internal/config"
	"quiz-topics/migrations"
)

// Migrate applies every pending migration for the store's dialect and
// returns the versions it applied.
func (s *Store) Migrate(ctx context.Context) ([]int64, error) {
	dialect, dir := goose.DialectSQLite3, config.DriverSQLite
	if s.driver == config.DriverPostgres || s.driver == config.DriverPgx {
		dialect, dir = goose.DialectPostgres, "postgres"
	}

	fsys, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return nil, fmt.Errorf("migrations %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, s.db.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose up: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, result := range results {
		applied = append(applied, result.Source.Version)
	}
	return applied, nil
}
