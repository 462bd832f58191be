// Command topic-import loads topics from the first sheet of an xlsx workbook.
//
// Flags:
//
//	--file  path to the workbook (required)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"quiz-topics/internal/app"
	"quiz-topics/internal/cli"
	"quiz-topics/internal/config"
	"quiz-topics/internal/topic"
	"quiz-topics/internal/topic/sqlstore"
)

func main() {
	fileFlag := flag.String("file", "", "path to the xlsx workbook")
	flag.Parse()

	if *fileFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *fileFlag); err != nil {
		logger.Error("import failed", slog.String("file", *fileFlag), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	store, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	service := topic.NewService(store, topic.Defaults{Author: cfg.Topic.DefaultAuthor})
	_, err = cli.Import(ctx, file, os.Stdout, service)
	return err
}
