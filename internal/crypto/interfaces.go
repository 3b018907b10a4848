// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential primitives of the accounts service:
// adaptive password hashing and generation of confirmation and reset codes.
//
// Nothing in this package touches storage or the network. Hashing work is
// executed on a bounded [workers.Pool] so that bursts of logins cannot
// starve request goroutines.
package crypto

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	// HashPassword returns a salted adaptive hash of plain. Two calls with
	// the same input return different hashes.
	HashPassword(ctx context.Context, plain string) (string, error)

	// VerifyPassword reports whether plain matches hash. It fails closed:
	// an empty or malformed hash, or any internal failure, yields false.
	VerifyPassword(ctx context.Context, plain, hash string) bool
}

// CodeGenerator produces the opaque codes mailed to users.
type CodeGenerator interface {
	// ConfirmationCode returns the email confirmation code of email issued
	// at timestamp. The same inputs always give the same code.
	ConfirmationCode(email string, timestamp time.Time) string

	// ResetCode returns a fresh, unguessable password reset code.
	ResetCode() (string, error)
}
