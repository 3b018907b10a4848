// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/workers"
	"golang.org/x/crypto/bcrypt"
)

// DefaultBcryptCost is the work factor used when none is configured.
const DefaultBcryptCost = 10

type bcryptHasher struct {
	cost int
	pool *workers.Pool
}

// NewPasswordHasher returns a bcrypt [PasswordHasher] running on pool.
// A cost outside bcrypt's accepted range falls back to [DefaultBcryptCost].
func NewPasswordHasher(cost int, pool *workers.Pool) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	if pool == nil {
		pool = workers.NewPool(0)
	}
	return &bcryptHasher{cost: cost, pool: pool}
}

// HashPassword implements [PasswordHasher].
func (h *bcryptHasher) HashPassword(ctx context.Context, plain string) (string, error) {
	var hash []byte

	err := h.pool.Do(ctx, func() error {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(plain), h.cost)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashFailed, err)
	}

	return string(hash), nil
}

// VerifyPassword implements [PasswordHasher].
func (h *bcryptHasher) VerifyPassword(ctx context.Context, plain, hash string) bool {
	if hash == "" {
		return false
	}

	err := h.pool.Do(ctx, func() error {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	})
	if err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			logger.FromContext(ctx).Debug().Err(err).Str("func", "bcryptHasher.VerifyPassword").Msg("password verification failed")
		}
		return false
	}

	return true
}
