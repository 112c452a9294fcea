// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/code-sentinel/services/review/engine"
	"github.com/AleutianAI/code-sentinel/services/review/handlers"
	"github.com/AleutianAI/code-sentinel/services/review/observability"
)

// SetupRoutes registers all review service routes with the router.
func SetupRoutes(router *gin.Engine, gen *engine.Generator, metrics *observability.ReviewMetrics) {
	router.GET("/", handlers.Root)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.POST("/review", handlers.ReviewCode(gen, metrics))
	}
}
