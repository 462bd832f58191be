// Command topic-seed stores multiple-choice questions from OpenTriviaDB as
// topics dated today.
//
// Flags:
//
//	--amount  number of questions to fetch (default 10, max 50)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"quiz-topics/internal/app"
	"quiz-topics/internal/cli"
	"quiz-topics/internal/config"
	"quiz-topics/internal/opentdb"
	"quiz-topics/internal/topic"
	"quiz-topics/internal/topic/sqlstore"
)

func main() {
	amountFlag := flag.Int("amount", 10, "number of questions to fetch")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *amountFlag); err != nil {
		logger.Error("seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, amount int) error {
	store, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	client := opentdb.NewClient(cfg.OpenTDB.BaseURL, &http.Client{Timeout: cfg.OpenTDB.Timeout})
	service := topic.NewService(store, topic.Defaults{Author: cfg.Topic.DefaultAuthor})

	_, err = cli.Seed(ctx, client, service, os.Stdout, amount, time.Now())
	return err
}
