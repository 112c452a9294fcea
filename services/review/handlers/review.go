// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers provides the HTTP handlers for the review service.
package handlers

import (
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/code-sentinel/pkg/validation"
	"github.com/AleutianAI/code-sentinel/services/review/datatypes"
	"github.com/AleutianAI/code-sentinel/services/review/engine"
	"github.com/AleutianAI/code-sentinel/services/review/observability"
)

// ReviewCode handles POST /api/review.
//
// The body is decoded into a raw object and run through the request schema.
// Any validation failure yields 422 with the full detail list, one entry
// per offending field, so clients can highlight each one. A body that is
// not JSON at all is reported the same way under the "body" location.
// Validated requests are handed to the generator, which cannot fail.
func ReviewCode(gen *engine.Generator, metrics *observability.ReviewMetrics) gin.HandlerFunc {
	schema := datatypes.RequestSchema()

	return func(c *gin.Context) {
		var raw map[string]any
		if err := c.ShouldBindJSON(&raw); err != nil {
			slog.Warn("review request body not decodable", "error", err)
			c.JSON(http.StatusUnprocessableEntity, datatypes.RejectionResponse{
				Detail: []validation.FieldError{validation.BodyError("body")},
			})
			return
		}

		clean, fieldErrs := schema.Apply(raw)
		if len(fieldErrs) > 0 {
			if metrics != nil {
				for _, fe := range fieldErrs {
					field := fe.Loc[len(fe.Loc)-1]
					metrics.ValidationFailuresTotal.WithLabelValues(field, fe.Kind).Inc()
				}
			}
			slog.Warn("review request rejected", "failing_fields", len(fieldErrs))
			c.JSON(http.StatusUnprocessableEntity, datatypes.RejectionResponse{Detail: fieldErrs})
			return
		}

		req := datatypes.RequestFromClean(clean)
		slog.Info("code review requested",
			"language", req.Language,
			"code_length", utf8.RuneCountInString(req.Code),
		)

		resp := gen.Review(req)

		if metrics != nil {
			metrics.ReviewsTotal.WithLabelValues(req.Language).Inc()
		}
		slog.Info("code review completed",
			"language", req.Language,
			"smells_count", len(resp.Findings),
		)

		c.JSON(http.StatusOK, resp)
	}
}
