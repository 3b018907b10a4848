// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/policy"
)

// dateLayout is accepted for time fields in addition to RFC 3339.
const dateLayout = "2006-01-02"

// Sanitizer reduces raw client updates to writable, type-correct fields.
type Sanitizer struct {
	registry *policy.Registry
}

// NewSanitizer returns a sanitizer over registry.
func NewSanitizer(registry *policy.Registry) *Sanitizer {
	return &Sanitizer{registry: registry}
}

// Sanitize filters raw down to known, writable fields and then type-checks
// what is left. Filtering always comes first, so unknown or read-only keys
// never take part in validation. Time fields are normalized to time.Time.
//
// Returns [ErrBadRequest] when a remaining value has the wrong shape.
func (s *Sanitizer) Sanitize(raw map[string]any) (map[string]any, error) {
	clean := s.Filter(raw)

	if !s.TypeCheck(clean) {
		return nil, ErrBadRequest
	}

	if err := s.normalizeTimes(clean); err != nil {
		return nil, err
	}

	return clean, nil
}

// Filter drops every key that is not a registry field or whose policy is
// read-only.
func (s *Sanitizer) Filter(raw map[string]any) map[string]any {
	clean := make(map[string]any, len(raw))

	for name, value := range raw {
		p, ok := s.registry.PolicyOf(name)
		if !ok || p.ReadOnly {
			continue
		}
		clean[name] = value
	}

	return clean
}

// TypeCheck reports whether every value in update matches the declared kind
// of its field. Null is accepted for every field; kinds other than string
// and list are not checked here.
func (s *Sanitizer) TypeCheck(update map[string]any) bool {
	for name, value := range update {
		if value == nil {
			continue
		}

		f, ok := s.registry.Field(name)
		if !ok {
			return false
		}

		switch f.Kind {
		case policy.KindString:
			if _, ok := value.(string); !ok {
				return false
			}
		case policy.KindList:
			if _, ok := value.([]any); !ok {
				if _, ok := value.([]string); !ok {
					return false
				}
			}
		}
	}

	return true
}

func (s *Sanitizer) normalizeTimes(update map[string]any) error {
	for name, value := range update {
		if value == nil {
			continue
		}
		f, _ := s.registry.Field(name)
		if f.Kind != policy.KindTime {
			continue
		}

		t, err := toTime(value)
		if err != nil {
			return fmt.Errorf("%w: field %s: %w", ErrBadRequest, name, err)
		}
		update[name] = t
	}

	return nil
}

// toTime accepts a millisecond unix timestamp, an RFC 3339 string or a
// YYYY-MM-DD date.
func toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), nil
	case float64:
		return time.UnixMilli(int64(v)).UTC(), nil
	case int64:
		return time.UnixMilli(v).UTC(), nil
	case int:
		return time.UnixMilli(int64(v)).UTC(), nil
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.UTC(), nil
		}
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return time.Time{}, fmt.Errorf("unsupported date %q", v)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time value of type %T", value)
	}
}
