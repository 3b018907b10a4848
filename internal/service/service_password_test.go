// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/identity"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/mock"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRemindThenResetPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice", "a@x.com", "secret1")

	require.NoError(t, env.passwords.RemindPassword(ctx, models.RemindPasswordRequest{Email: "a@x.com"}))
	code := env.mailbox.lastResetCode("a@x.com")
	require.NotEmpty(t, code)

	grant, err := env.passwords.CheckResetCode(ctx, code)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", grant.Email)

	require.NoError(t, env.passwords.ResetPassword(ctx, models.ResetPasswordRequest{Token: code, Password: "newpass1"}))

	stored, err := env.store.FindUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.True(t, env.credentials.VerifyPassword(ctx, "newpass1", stored.PasswordHash))
	assert.False(t, env.credentials.VerifyPassword(ctx, "secret1", stored.PasswordHash))
	assert.NotEqual(t, alice.ConfirmationCode, stored.ConfirmationCode, "confirmation code changes with the password")

	err = env.passwords.ResetPassword(ctx, models.ResetPasswordRequest{Token: code, Password: "newpass2"})
	assert.ErrorIs(t, err, ErrResetCodeNotFound)
}

func TestRemindPassword_Errors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.passwords.RemindPassword(ctx, models.RemindPasswordRequest{Email: "not-an-email"})
	assert.ErrorIs(t, err, ErrValidation)

	err = env.passwords.RemindPassword(ctx, models.RemindPasswordRequest{Email: "nobody@x.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemindPassword_MailFailureIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	tickets := mock.NewMockResetTicketRepository(ctrl)
	codes := mock.NewMockCodeGenerator(ctrl)
	mailer := mock.NewMockMailer(ctrl)
	credentials := NewCredentialManager(mock.NewMockPasswordHasher(ctrl), codes, users, tickets, 6, time.Hour)
	svc := NewPasswordService(users, credentials, mailer, logger.Nop())
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(models.User{ID: "u1", Email: "a@x.com"}, nil),
		codes.EXPECT().ResetCode().Return("code", nil),
		tickets.EXPECT().UpsertResetTicket(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, ticket models.ResetTicket) error {
				assert.Equal(t, "code", ticket.Code)
				assert.Equal(t, "u1", ticket.UserID)
				assert.WithinDuration(t, time.Now(), ticket.IssuedAt, time.Minute)
				return nil
			}),
		mailer.EXPECT().SendPasswordResetMail(ctx, "a@x.com", "code").Return(errors.New("relay down")),
	)

	assert.NoError(t, svc.RemindPassword(ctx, models.RemindPasswordRequest{Email: " A@x.com"}))
}

func TestResetPassword_Order(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice", "a@x.com", "secret1")

	code, err := env.credentials.IssueResetTicket(ctx, alice.ID)
	require.NoError(t, err)

	err = env.passwords.ResetPassword(ctx, models.ResetPasswordRequest{Token: code, Password: "123"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.store.FindResetTicket(ctx, code)
	assert.NoError(t, err, "a rejected password does not burn the ticket")

	err = env.passwords.ResetPassword(ctx, models.ResetPasswordRequest{Token: "unknown", Password: "newpass1"})
	assert.ErrorIs(t, err, ErrResetCodeNotFound)
}

func TestResetPassword_Expired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice", "a@x.com", "secret1")

	issued := time.Now().Add(-49 * time.Hour)
	require.NoError(t, env.store.UpsertResetTicket(ctx, models.ResetTicket{Code: "old", UserID: alice.ID, IssuedAt: issued}))

	err := env.passwords.ResetPassword(ctx, models.ResetPasswordRequest{Token: "old", Password: "newpass1"})
	assert.ErrorIs(t, err, ErrResetCodeExpired)

	stored, err := env.store.FindUserByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.PasswordHash, stored.PasswordHash)
}

func TestResetPassword_ConcurrentRedemption(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice", "a@x.com", "secret1")

	code, err := env.credentials.IssueResetTicket(ctx, alice.ID)
	require.NoError(t, err)

	var wins, notFound atomic.Int32
	var wg sync.WaitGroup
	for range 8 {
		wg.Go(func() {
			err := env.passwords.ResetPassword(ctx, models.ResetPasswordRequest{Token: code, Password: "newpass1"})
			switch {
			case err == nil:
				wins.Add(1)
			case errors.Is(err, ErrResetCodeNotFound):
				notFound.Add(1)
			}
		})
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
	assert.EqualValues(t, 7, notFound.Load())
}

func TestUpdatePassword(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice", "a@x.com", "secret1")
	ctx := as(alice)

	err := env.passwords.UpdatePassword(ctx, "alice", models.PasswordUpdateRequest{OldPassword: "wrong-one", Password: "newpass1"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Old password is incorrect.", verr.Fields["oldPassword"])

	err = env.passwords.UpdatePassword(ctx, "alice", models.PasswordUpdateRequest{Password: "1"})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "oldPassword")
	assert.Contains(t, verr.Fields, "password")

	require.NoError(t, env.passwords.UpdatePassword(ctx, "alice", models.PasswordUpdateRequest{OldPassword: "secret1", Password: "newpass1"}))

	_, err = env.auth.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "newpass1"})
	assert.NoError(t, err)

	stored, err := env.store.FindUserByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.NotEqual(t, alice.ConfirmationCode, stored.ConfirmationCode)
}

func TestUpdatePassword_OwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	alice := env.register(t, "alice", "a@x.com", "secret1")
	env.register(t, "bob", "b@x.com", "secret1")

	req := models.PasswordUpdateRequest{OldPassword: "secret1", Password: "newpass1"}

	assert.ErrorIs(t, env.passwords.UpdatePassword(as(alice), "bob", req), identity.ErrForbidden)
	assert.ErrorIs(t, env.passwords.UpdatePassword(context.Background(), "bob", req), identity.ErrUnauthorized)
}

func TestUpdatePassword_StorageFailureIsBusy(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	codes := mock.NewMockCodeGenerator(ctrl)
	credentials := NewCredentialManager(hasher, codes, users, store.NewMemoryStore(), 6, time.Hour)
	svc := NewPasswordService(users, credentials, mock.NewMockMailer(ctrl), logger.Nop())

	alice := models.User{ID: "u1", UserName: "alice", Email: "a@x.com", PasswordHash: "hash"}
	ctx := as(alice)

	users.EXPECT().FindUserByID(ctx, "u1").Return(alice, nil)
	hasher.EXPECT().VerifyPassword(ctx, "secret1", "hash").Return(true)
	hasher.EXPECT().HashPassword(ctx, "newpass1").Return("new-hash", nil)
	codes.EXPECT().ConfirmationCode("a@x.com", gomock.Any()).Return("new-code")
	users.EXPECT().UpdateCredentials(ctx, "u1", "new-hash", "new-code").Return(store.ErrTransient)

	err := svc.UpdatePassword(ctx, "alice", models.PasswordUpdateRequest{OldPassword: "secret1", Password: "newpass1"})

	assert.ErrorIs(t, err, ErrServerBusy)
}
