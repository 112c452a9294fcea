// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package config loads review service configuration from environment
// variables.
//
// The resulting Config is built once at startup and injected into the host
// layer. Request handling code never reads the environment; the core
// validator and generator never see the Config at all.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Environment identifies the deployment environment.
type Environment string

const (
	EnvDev   Environment = "dev"
	EnvStage Environment = "stage"
	EnvPrd   Environment = "prd"
)

// Config holds the review service configuration.
type Config struct {
	Environment Environment
	APITitle    string
	APIVersion  string
	Host        string
	Port        int

	// CORSOrigins is the origin allowlist for this environment.
	// A single "*" entry allows any origin.
	CORSOrigins     []string
	CORSCredentials bool

	LogLevel slog.Level

	// RequestTimeout bounds each request at the server, not in the core.
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables and returns a
// validated Config.
//
// Recognized variables: ENVIRONMENT (dev|stage|prd, default dev),
// API_HOST (default 0.0.0.0), API_PORT (default 8000, must be an integer).
// CORS origins and log level are derived from the environment rather than
// configured directly.
func Load() (*Config, error) {
	env := Environment(getEnvOr("ENVIRONMENT", string(EnvDev)))
	switch env {
	case EnvDev, EnvStage, EnvPrd:
	default:
		return nil, fmt.Errorf("ENVIRONMENT has invalid value %q (want dev, stage, or prd)", string(env))
	}

	port := 8000
	if v, ok := os.LookupEnv("API_PORT"); ok && v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("API_PORT has invalid value %q: %w", v, err)
		}
		port = parsed
	}

	return &Config{
		Environment:     env,
		APITitle:        "Code-Sentinel API",
		APIVersion:      "1.0.0",
		Host:            getEnvOr("API_HOST", "0.0.0.0"),
		Port:            port,
		CORSOrigins:     corsOrigins(env),
		CORSCredentials: true,
		LogLevel:        logLevel(env),
		RequestTimeout:  30 * time.Second,
	}, nil
}

// corsOrigins returns the origin allowlist for the environment. Dev allows
// everything; stage and prd are restricted to known front-end hosts.
func corsOrigins(env Environment) []string {
	switch env {
	case EnvStage:
		return []string{
			"https://stage.code-sentinel.com",
			"http://localhost:3000",
			"http://localhost:3001",
		}
	case EnvPrd:
		return []string{
			"https://code-sentinel.com",
			"https://www.code-sentinel.com",
		}
	default:
		return []string{"*"}
	}
}

// logLevel returns the slog level for the environment: verbose in dev,
// quiet in production.
func logLevel(env Environment) slog.Level {
	switch env {
	case EnvStage:
		return slog.LevelInfo
	case EnvPrd:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}

// Addr returns the host:port listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsDev reports whether this is the development environment.
func (c *Config) IsDev() bool { return c.Environment == EnvDev }

// IsStage reports whether this is the staging environment.
func (c *Config) IsStage() bool { return c.Environment == EnvStage }

// IsPrd reports whether this is the production environment.
func (c *Config) IsPrd() bool { return c.Environment == EnvPrd }

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
