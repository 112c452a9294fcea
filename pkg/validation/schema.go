// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package validation provides declarative schema validation for API payloads.
//
// A Schema describes the expected fields of a decoded JSON object: name,
// type, requiredness, rune-length bounds, and an optional default. Applying
// a schema to a raw object yields either the cleaned object (defaults
// substituted) or the complete list of field-level failures. Failures are
// collected rather than short-circuited so a client can highlight every
// offending field at once.
//
// Unknown fields are ignored. The schema is deliberately tolerant of
// forward-compatible clients that send fields this version does not know.
package validation

import (
	"fmt"
	"unicode/utf8"
)

// FieldType identifies the expected JSON type of a field.
type FieldType string

const (
	// TypeString expects a JSON string value.
	TypeString FieldType = "string"
)

// Error kinds reported in FieldError.Kind. One uniform taxonomy covers every
// rule so clients can branch on the kind without parsing messages.
const (
	// KindMissing marks a required field that was absent.
	KindMissing = "missing"

	// KindTypeError marks a field whose value has the wrong JSON type.
	KindTypeError = "type_error"

	// KindTooShort marks a string below its minimum rune length.
	KindTooShort = "too_short"

	// KindTooLong marks a string above its maximum rune length.
	KindTooLong = "too_long"

	// KindJSONInvalid marks a request body that could not be decoded at all.
	KindJSONInvalid = "json_invalid"
)

// FieldError is a single field-level validation failure.
//
// The JSON shape is the rejection entry returned to clients: a location
// path, a human-readable message, and a machine-readable kind.
type FieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Kind string   `json:"type"`
}

// Field describes the constraints for a single payload field.
//
// Length bounds are rune counts, not bytes, so multi-byte input is measured
// the same way regardless of encoding.
type Field struct {
	Name     string
	Type     FieldType
	Required bool

	// MinLen is the minimum rune length; 0 means no minimum.
	MinLen int

	// MaxLen is the maximum rune length; 0 means no maximum.
	MaxLen int

	// Default is substituted when an optional field is absent. Nil means
	// the field is simply omitted from the cleaned object.
	Default any
}

// Schema is an ordered set of field constraints for one payload.
type Schema struct {
	// Location is the first segment of every error location path,
	// typically "body".
	Location string

	Fields []Field
}

// Apply validates raw against the schema.
//
// On success the returned map contains only schema fields, with defaults
// substituted for absent optional ones. On failure the map is nil and the
// slice carries one entry per failing field. Apply is a pure function of
// its input; it never modifies raw.
func (s Schema) Apply(raw map[string]any) (map[string]any, []FieldError) {
	clean := make(map[string]any, len(s.Fields))
	var errs []FieldError

	for _, f := range s.Fields {
		value, present := raw[f.Name]
		if !present {
			if f.Required {
				errs = append(errs, s.fail(f, KindMissing, "field required"))
				continue
			}
			if f.Default != nil {
				clean[f.Name] = f.Default
			}
			continue
		}

		checked, err := s.check(f, value)
		if err != nil {
			errs = append(errs, *err)
			continue
		}
		clean[f.Name] = checked
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return clean, nil
}

// check validates one present value against its field spec.
func (s Schema) check(f Field, value any) (any, *FieldError) {
	switch f.Type {
	case TypeString:
		str, ok := value.(string)
		if !ok {
			err := s.fail(f, KindTypeError, "value is not a valid string")
			return nil, &err
		}
		n := utf8.RuneCountInString(str)
		if f.MinLen > 0 && n < f.MinLen {
			err := s.fail(f, KindTooShort,
				fmt.Sprintf("value must have at least %d characters", f.MinLen))
			return nil, &err
		}
		if f.MaxLen > 0 && n > f.MaxLen {
			err := s.fail(f, KindTooLong,
				fmt.Sprintf("value must have at most %d characters", f.MaxLen))
			return nil, &err
		}
		return str, nil
	default:
		err := s.fail(f, KindTypeError, fmt.Sprintf("unsupported field type %q", f.Type))
		return nil, &err
	}
}

func (s Schema) fail(f Field, kind, msg string) FieldError {
	return FieldError{Loc: []string{s.Location, f.Name}, Msg: msg, Kind: kind}
}

// BodyError builds the rejection entry for a request body that could not
// be decoded as JSON.
func BodyError(location string) FieldError {
	return FieldError{
		Loc:  []string{location},
		Msg:  "request body is not valid JSON",
		Kind: KindJSONInvalid,
	}
}
