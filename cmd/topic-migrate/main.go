// Command topic-migrate applies the pending schema migrations for the
// configured database and exits.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"quiz-topics/internal/app"
	"quiz-topics/internal/config"
	"quiz-topics/internal/topic/sqlstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	dbCfg := cfg.Database
	dbCfg.AutoMigrate = false
	store, err := sqlstore.Open(ctx, dbCfg)
	if err != nil {
		logger.Error("open storage", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	applied, err := store.Migrate(ctx)
	if err != nil {
		logger.Error("migrate", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("migrations applied", slog.Any("versions", applied), slog.Int("count", len(applied)))
}
