// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrHashFailed is returned when a password could not be hashed.
	ErrHashFailed = errors.New("password hashing failed")

	// ErrRandomFailed is returned when the system random source fails.
	ErrRandomFailed = errors.New("random source failure")
)
