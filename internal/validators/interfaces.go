// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for account operations and
// the sanitizer that reduces client profile updates to writable,
// type-correct fields.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FieldError / FieldErrors: user-correctable failures bound to a field,
//     surfaced verbatim to the client.
//   - Sanitizer: filter-then-typecheck of raw update payloads against the
//     field policy registry.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
