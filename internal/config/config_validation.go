// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] can be used to
// start the service.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.ConfirmationKey == "" {
		return fmt.Errorf("%w: token sign key and confirmation key are required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token issuer and a positive token duration are required", ErrInvalidAppConfigs)
	}

	c := cfg.Credentials
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: bcrypt cost %d out of range", ErrInvalidCredentialsConfigs, c.BcryptCost)
	}
	if c.ResetTicketTTL <= 0 || c.PasswordMinLength <= 0 || c.HashWorkers < 0 {
		return fmt.Errorf("%w: reset ticket ttl, password length and hash workers must be positive", ErrInvalidCredentialsConfigs)
	}
	if _, err := language.Parse(c.DefaultLocale); err != nil {
		return fmt.Errorf("%w: default locale: %w", ErrInvalidCredentialsConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Images.Dir == "" && cfg.Storage.Images.S3.Bucket == "" {
		return fmt.Errorf("%w: image directory or S3 bucket is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	w := cfg.Workers
	if w.TicketPurgeInterval < 0 || w.TicketRetention < c.ResetTicketTTL {
		return fmt.Errorf("%w: ticket retention %s is shorter than the reset window %s",
			ErrInvalidWorkersConfigs, w.TicketRetention, c.ResetTicketTTL)
	}

	return nil
}

// InMemoryStorage reports whether the in-memory store was selected.
func (cfg *StructuredConfig) InMemoryStorage() bool {
	return cfg.Storage.DB.DSN == MemoryDSN
}
