// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/AleutianAI/code-sentinel/pkg/logging"
	"github.com/AleutianAI/code-sentinel/pkg/telemetry"
	"github.com/AleutianAI/code-sentinel/services/review/config"
	"github.com/AleutianAI/code-sentinel/services/review/engine"
	"github.com/AleutianAI/code-sentinel/services/review/middleware"
	"github.com/AleutianAI/code-sentinel/services/review/observability"
	"github.com/AleutianAI/code-sentinel/services/review/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: invalid configuration: %v", err)
	}

	logger := logging.New(logging.Config{
		Level:       cfg.LogLevel,
		Service:     "code-sentinel",
		Environment: string(cfg.Environment),
	})
	slog.SetDefault(logger)

	shutdown, err := telemetry.Init(context.Background(), telemetry.DefaultConfig(string(cfg.Environment)))
	if err != nil {
		log.Fatalf("failed to setup tracing: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			slog.Error("failed to shutdown tracing", "error", err)
		}
	}()

	metrics := observability.InitMetrics()

	if cfg.IsPrd() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("code-sentinel"))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Metrics(metrics))
	router.Use(middleware.CORS(cfg.CORSOrigins, cfg.CORSCredentials))

	routes.SetupRoutes(router, engine.NewGenerator(), metrics)

	slog.Info("starting Code-Sentinel API",
		"environment", string(cfg.Environment),
		"host", cfg.Host,
		"port", cfg.Port,
	)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.RequestTimeout,
		WriteTimeout: cfg.RequestTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
