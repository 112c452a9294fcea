// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for the structured logger

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmitsJSONWithFixedAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:       slog.LevelInfo,
		Service:     "code-sentinel",
		Environment: "dev",
		Output:      &buf,
	})

	logger.Info("request started", "method", "POST", "path", "/api/review")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "request started", record["msg"])
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "code-sentinel", record["service"])
	assert.Equal(t, "dev", record["environment"])
	assert.Equal(t, "POST", record["method"])
	assert.Equal(t, "/api/review", record["path"])
}

func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf})

	logger.Debug("verbose detail")
	logger.Info("normal operation")
	assert.Zero(t, buf.Len())

	logger.Warn("request rejected")
	assert.NotZero(t, buf.Len())
}

func TestNew_OmitsEmptyFixedAttrs(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	logger.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.NotContains(t, record, "service")
	assert.NotContains(t, record, "environment")
}
