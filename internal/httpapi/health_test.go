package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth_Live(t *testing.T) {
	env := newTestEnv(t)
	env.repo.pingErr = errors.New("down")

	rec := env.get("/health/live")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestHealth_Ready(t *testing.T) {
	env := newTestEnv(t)

	rec := env.get("/health/ready")

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "up", payload["database"])
	assert.Equal(t, "test", payload["version"])
}

func TestHealth_ReadyDatabaseDown(t *testing.T) {
	env := newTestEnv(t)
	env.repo.pingErr = errors.New("connection refused")

	rec := env.get("/health/ready")

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "down", payload["database"])
	assert.Contains(t, env.logs.String(), "readiness check failed")
}

func TestHealth_ReadyWithoutDatabase(t *testing.T) {
	h := NewHealthHandler(nil, "test", nil)
	rec := httptest.NewRecorder()

	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
