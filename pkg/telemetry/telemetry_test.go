// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// Tests for telemetry initialization

package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_NilContext(t *testing.T) {
	var nilCtx context.Context
	_, err := Init(nilCtx, DefaultConfig("dev"))

	assert.ErrorIs(t, err, ErrNilContext)
}

func TestInit_NoneExporterIsNoOp(t *testing.T) {
	cfg := DefaultConfig("dev")
	cfg.TraceExporter = "none"

	shutdown, err := Init(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInit_UnknownExporter(t *testing.T) {
	cfg := DefaultConfig("dev")
	cfg.TraceExporter = "carrier-pigeon"

	_, err := Init(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrUnknownExporter)
}

func TestDefaultConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OTEL_TRACES_EXPORTER", "stdout")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4317")

	cfg := DefaultConfig("stage")

	assert.Equal(t, "stdout", cfg.TraceExporter)
	assert.Equal(t, "collector:4317", cfg.OTLPEndpoint)
	assert.Equal(t, "stage", cfg.Environment)
	assert.Equal(t, "code-sentinel", cfg.ServiceName)
}
