// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-blog-accounts/internal/adapter"
	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/crypto"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/internal/workers"
)

type Services struct {
	AuthService     AuthService
	ProfileService  ProfileService
	PasswordService PasswordService
	AppInfoService  AppInfoService
}

// NewServices wires every service to the storages. Password hashing runs on
// pool.
func NewServices(storages *store.Storages, mailer adapter.Mailer, pool *workers.Pool, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	credentials := NewCredentialManager(
		crypto.NewPasswordHasher(cfg.Credentials.BcryptCost, pool),
		crypto.NewCodeGenerator(cfg.App.ConfirmationKey),
		storages.UserRepository,
		storages.ResetTicketRepository,
		cfg.Credentials.PasswordMinLength,
		cfg.Credentials.ResetTicketTTL,
	)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, credentials, mailer, cfg, logger),
		ProfileService:  NewProfileService(storages.UserRepository, storages.ImageStorage, cfg.Credentials.DefaultLocale, cfg.Storage.Images.MaxSize, logger),
		PasswordService: NewPasswordService(storages.UserRepository, credentials, mailer, logger),
		AppInfoService:  appInfoService,
	}, nil
}
