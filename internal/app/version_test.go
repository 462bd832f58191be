package app

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildAttr(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	logger.Info("starting topic-service", buildAttr())

	out := buf.String()
	assert.Contains(t, out, "build.version="+Version)
	assert.Contains(t, out, "build.commit="+Commit)
	assert.Contains(t, out, "build.time="+BuildTime)
}
