package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/sessions"

	"quiz-topics/internal/config"
	"quiz-topics/internal/httpapi"
	"quiz-topics/internal/topic"
	"quiz-topics/internal/topic/sqlstore"
)

// Run loads configuration, opens storage and serves the topic form until ctx
// is canceled, then drains in-flight requests within the shutdown timeout.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting topic-service",
		buildAttr(),
		slog.String("log_level", cfg.Log.Level),
		slog.String("db_driver", cfg.Database.Driver),
	)

	store, err := sqlstore.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Warn("close storage", slog.Any("error", err))
		}
	}()

	handler, err := NewHandler(cfg, store, logger)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// NewHandler assembles the HTTP handler on top of an opened repository.
func NewHandler(cfg *config.Config, repo topic.Repository, logger *slog.Logger) (http.Handler, error) {
	renderer, err := httpapi.NewTemplateRenderer()
	if err != nil {
		return nil, err
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	service := topic.NewService(repo, topic.Defaults{Author: cfg.Topic.DefaultAuthor})
	api := httpapi.NewAPI(service, renderer, sessionStore, cfg.Session.Name, logger)
	health := httpapi.NewHealthHandler(service, Version, logger)

	return httpapi.NewRouter(api, health, logger), nil
}
