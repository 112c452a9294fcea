// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package logging provides structured logging for Code-Sentinel components.
//
// The logging system is built on Go's standard library slog package with a
// JSON handler, so every record is one machine-parseable line. Each logger
// carries fixed service and environment attributes, letting log aggregation
// distinguish deployments without per-call boilerplate.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//	    Level:       slog.LevelInfo,
//	    Service:     "code-sentinel",
//	    Environment: "dev",
//	})
//	slog.SetDefault(logger)
//	slog.Info("code review requested", "language", lang, "code_length", n)
//
// # Log Levels
//
// Four levels are supported, matching slog conventions:
//
//   - Debug: development troubleshooting, verbose output
//   - Info: normal operations (request start/end)
//   - Warn: recoverable issues (rejected requests)
//   - Error: operation failures (but the process continues)
//
// # Thread Safety
//
// The returned logger is safe for concurrent use; slog handlers serialize
// writes internally.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Config controls logger construction.
type Config struct {
	// Level is the minimum level that will be emitted.
	Level slog.Level

	// Service names the emitting component; added as a fixed attr when set.
	Service string

	// Environment names the deployment environment; added as a fixed attr
	// when set.
	Environment string

	// Output is the destination writer. Defaults to os.Stdout.
	Output io.Writer
}

// New creates a structured JSON logger from the configuration.
func New(cfg Config) *slog.Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: cfg.Level}))

	var attrs []any
	if cfg.Service != "" {
		attrs = append(attrs, "service", cfg.Service)
	}
	if cfg.Environment != "" {
		attrs = append(attrs, "environment", cfg.Environment)
	}
	if len(attrs) > 0 {
		logger = logger.With(attrs...)
	}
	return logger
}

// Default returns an Info-level logger writing to stdout with no fixed
// attributes.
func Default() *slog.Logger {
	return New(Config{Level: slog.LevelInfo})
}
