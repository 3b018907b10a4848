// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates missing token or confirmation keys.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCredentialsConfigs indicates an out-of-range bcrypt cost,
	// reset window, password length or locale.
	ErrInvalidCredentialsConfigs = errors.New("invalid credentials configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or image storage
	// without a destination.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidWorkersConfigs indicates a ticket retention shorter than
	// the reset window.
	ErrInvalidWorkersConfigs = errors.New("invalid workers configuration")
)
