package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quiz-topics/internal/config"
	"quiz-topics/internal/topic"
	"quiz-topics/internal/topic/sqlstore"
)

func TestNewHandlerEndToEnd(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:      config.DriverSQLite,
			DSN:         t.TempDir() + "/topics.db",
			AutoMigrate: true,
		},
		Topic:   config.TopicConfig{DefaultAuthor: "tester"},
		Session: config.SessionConfig{Secret: strings.Repeat("s", 32), Name: "topic_session"},
	}

	store, err := sqlstore.Open(ctx, cfg.Database)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	handler, err := NewHandler(cfg, store, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	form := url.Values{
		topic.FieldTopicName:  {"Capital of France"},
		topic.FieldTopicType:  {"geography"},
		topic.FieldOptionA:    {"Paris"},
		topic.FieldOptionB:    {"Lyon"},
		topic.FieldOptionC:    {"Nice"},
		topic.FieldOptionD:    {"Lille"},
		topic.FieldAnswer:     {"A"},
		topic.FieldTopicYear:  {"2024"},
		topic.FieldTopicMonth: {"1"},
	}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/?success=true", rec.Header().Get("Location"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	ready := httptest.NewRecorder()
	handler.ServeHTTP(ready, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, ready.Code)
}
