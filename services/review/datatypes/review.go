// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes provides the wire types for the review service.
//
// This file contains the request and response types for the review endpoint
// along with their validation constraints. The request side is validated by
// the declarative schema returned from RequestSchema; the response side
// carries go-playground/validator tags so generated payloads can be checked
// against the same contract clients rely on.
package datatypes

import (
	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/code-sentinel/pkg/validation"
)

const (
	// MaxCodeLength bounds the submitted snippet, measured in runes.
	MaxCodeLength = 100000

	// DefaultLanguage is substituted when a request omits the language field.
	DefaultLanguage = "python"
)

// Severity values a Finding may carry. No other value is valid on the wire.
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// reviewValidate is the shared validator instance for review datatypes.
var reviewValidate = validator.New()

// ReviewRequest is a validated code review submission.
//
// Instances are only constructed from a schema-cleaned payload, so Code is
// always non-empty and within bounds and Language is always set.
type ReviewRequest struct {
	Code     string `json:"code" validate:"required,min=1,max=100000"`
	Language string `json:"language" validate:"required"`
}

// RequestSchema describes the review request payload for the schema engine.
//
// This is the single source of truth for the inbound contract: code is a
// required string of 1..100000 runes, language is an optional string
// defaulting to "python", anything else is ignored.
func RequestSchema() validation.Schema {
	return validation.Schema{
		Location: "body",
		Fields: []validation.Field{
			{
				Name:     "code",
				Type:     validation.TypeString,
				Required: true,
				MinLen:   1,
				MaxLen:   MaxCodeLength,
			},
			{
				Name:    "language",
				Type:    validation.TypeString,
				Default: DefaultLanguage,
			},
		},
	}
}

// RequestFromClean builds a ReviewRequest from a schema-cleaned payload.
func RequestFromClean(clean map[string]any) ReviewRequest {
	var req ReviewRequest
	if v, ok := clean["code"].(string); ok {
		req.Code = v
	}
	if v, ok := clean["language"].(string); ok {
		req.Language = v
	}
	return req
}

// Validate checks the request against the wire contract.
func (r *ReviewRequest) Validate() error {
	return reviewValidate.Struct(r)
}

// Finding is one simulated code quality issue.
//
// All five fields are always present; the service never emits a partial
// finding.
type Finding struct {
	Type       string `json:"type" validate:"required,min=3"`
	Severity   string `json:"severity" validate:"required,oneof=low medium high"`
	Line       int    `json:"line" validate:"required,gt=0"`
	Message    string `json:"message" validate:"required,min=5"`
	Suggestion string `json:"suggestion" validate:"required,min=10"`
}

// Validate checks the finding against the wire contract.
func (f *Finding) Validate() error {
	return reviewValidate.Struct(f)
}

// ReviewResponse is the result of a review submission.
type ReviewResponse struct {
	Status   string    `json:"status" validate:"required,eq=success"`
	Findings []Finding `json:"findings" validate:"required,min=1,dive"`
	Summary  string    `json:"summary" validate:"required,min=10"`
}

// Validate checks the response against the wire contract.
func (r *ReviewResponse) Validate() error {
	return reviewValidate.Struct(r)
}

// RejectionResponse is the 422 envelope listing every failing field.
type RejectionResponse struct {
	Detail []validation.FieldError `json:"detail"`
}
