// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/crypto"
	"github.com/MKhiriev/go-blog-accounts/internal/identity"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/mock"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/internal/workers"
	"github.com/MKhiriev/go-blog-accounts/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:    "test-sign-key",
			TokenIssuer:     "blog-accounts",
			TokenDuration:   time.Hour,
			ConfirmationKey: "test-confirmation-key",
			Version:         "1.0.0",
		},
		Credentials: config.Credentials{
			BcryptCost:        bcrypt.MinCost,
			ResetTicketTTL:    48 * time.Hour,
			PasswordMinLength: 6,
			HashWorkers:       2,
			DefaultLocale:     "en",
		},
	}
}

// mailbox records the codes handed to the mailer.
type mailbox struct {
	mu           sync.Mutex
	confirmation map[string]string
	reset        map[string]string
}

func (m *mailbox) lastResetCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.reset[email]
}

func (m *mailbox) confirmationCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.confirmation[email]
}

// testEnv is the service layer over the in-memory store with a real bcrypt
// hasher at minimum cost.
type testEnv struct {
	store       *store.MemoryStore
	images      *mock.MockImageStorage
	mailer      *mock.MockMailer
	mailbox     *mailbox
	credentials *CredentialManager
	auth        AuthService
	profiles    ProfileService
	passwords   PasswordService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := testConfig()

	mem := store.NewMemoryStore()
	images := mock.NewMockImageStorage(ctrl)
	mailer := mock.NewMockMailer(ctrl)
	box := &mailbox{confirmation: map[string]string{}, reset: map[string]string{}}

	mailer.EXPECT().SendEmailConfirmationMail(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, recipient, _, code string) error {
			box.mu.Lock()
			defer box.mu.Unlock()
			box.confirmation[recipient] = code
			return nil
		}).AnyTimes()
	mailer.EXPECT().SendPasswordResetMail(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, recipient, code string) error {
			box.mu.Lock()
			defer box.mu.Unlock()
			box.reset[recipient] = code
			return nil
		}).AnyTimes()

	credentials := NewCredentialManager(
		crypto.NewPasswordHasher(cfg.Credentials.BcryptCost, workers.NewPool(cfg.Credentials.HashWorkers)),
		crypto.NewCodeGenerator(cfg.App.ConfirmationKey),
		mem, mem,
		cfg.Credentials.PasswordMinLength,
		cfg.Credentials.ResetTicketTTL,
	)

	return &testEnv{
		store:       mem,
		images:      images,
		mailer:      mailer,
		mailbox:     box,
		credentials: credentials,
		auth:        NewAuthService(mem, credentials, mailer, cfg, logger.Nop()),
		profiles:    NewProfileService(mem, images, "en", 1024, logger.Nop()),
		passwords:   NewPasswordService(mem, credentials, mailer, logger.Nop()),
	}
}

func (e *testEnv) register(t *testing.T, userName, email, password string) models.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), models.RegisterRequest{
		UserName: userName, Email: email, Password: password,
	})
	require.NoError(t, err)
	return user
}

// as returns a context authenticated as user.
func as(user models.User) context.Context {
	return identity.WithProfile(context.Background(), &user)
}

func ptr[T any](v T) *T { return &v }
