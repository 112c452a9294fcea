// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package engine implements the deterministic mock review generator.
//
// The generator stands in for a future AI analyzer: it emits the same three
// findings for every submission and derives the summary from the
// submission's length and language alone. It is a pure function over a
// validated request: no I/O, no randomness, no clock, and constant time
// beyond counting the runes of the submitted code.
package engine

import (
	"fmt"
	"unicode/utf8"

	"github.com/AleutianAI/code-sentinel/services/review/datatypes"
)

// summaryTemplate carries the three data points a client can extract
// verbatim: rune count of the code, validated language, finding count.
const summaryTemplate = "analyzed %d characters of %s code, found %d potential issues"

// Generator produces mock review results.
//
// The zero value is ready to use. Generator holds no state, so a single
// instance is safe for arbitrarily many concurrent requests.
type Generator struct{}

// NewGenerator creates a new review generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// mockFindings returns the fixed finding list, always identical in content
// and order: Long Method, Magic Number, Duplicate Code.
func mockFindings() []datatypes.Finding {
	return []datatypes.Finding{
		{
			Type:       "Long Method",
			Severity:   datatypes.SeverityMedium,
			Line:       10,
			Message:    "method too long, consider splitting",
			Suggestion: "split this method into smaller methods, each with a single responsibility",
		},
		{
			Type:       "Magic Number",
			Severity:   datatypes.SeverityLow,
			Line:       15,
			Message:    "magic number found",
			Suggestion: "extract the hardcoded number into a named constant",
		},
		{
			Type:       "Duplicate Code",
			Severity:   datatypes.SeverityHigh,
			Line:       25,
			Message:    "duplicate code found",
			Suggestion: "extract the duplicated code into a shared helper method",
		},
	}
}

// Review generates the mock response for a validated request.
//
// Review is total over its domain: any request that passed validation
// produces a response, never an error.
func (g *Generator) Review(req datatypes.ReviewRequest) datatypes.ReviewResponse {
	findings := mockFindings()
	return datatypes.ReviewResponse{
		Status:   "success",
		Findings: findings,
		Summary: fmt.Sprintf(summaryTemplate,
			utf8.RuneCountInString(req.Code), req.Language, len(findings)),
	}
}
