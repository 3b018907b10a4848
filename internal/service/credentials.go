// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/crypto"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/internal/validators"
	"github.com/MKhiriev/go-blog-accounts/models"
)

// DefaultResetTicketTTL is how long a reset code stays redeemable.
const DefaultResetTicketTTL = 48 * time.Hour

// CredentialManager owns the credential lifecycle: password hashes,
// confirmation codes and password reset tickets.
type CredentialManager struct {
	hasher    crypto.PasswordHasher
	codes     crypto.CodeGenerator
	users     store.UserRepository
	tickets   store.ResetTicketRepository
	validator *validators.UserValidator
	resetTTL  time.Duration
	now       func() time.Time
}

// NewCredentialManager wires the credential primitives to storage.
// A non-positive resetTTL falls back to [DefaultResetTicketTTL].
func NewCredentialManager(
	hasher crypto.PasswordHasher,
	codes crypto.CodeGenerator,
	users store.UserRepository,
	tickets store.ResetTicketRepository,
	passwordMinLength int,
	resetTTL time.Duration,
) *CredentialManager {
	if resetTTL <= 0 {
		resetTTL = DefaultResetTicketTTL
	}
	return &CredentialManager{
		hasher:    hasher,
		codes:     codes,
		users:     users,
		tickets:   tickets,
		validator: validators.NewUserValidator(passwordMinLength),
		resetTTL:  resetTTL,
		now:       time.Now,
	}
}

// HashPassword returns a fresh hash of plain. Failures are [ErrServerBusy].
func (m *CredentialManager) HashPassword(ctx context.Context, plain string) (string, error) {
	hash, err := m.hasher.HashPassword(ctx, plain)
	if err != nil {
		return "", busy(ctx, "*CredentialManager.HashPassword", err)
	}
	return hash, nil
}

// VerifyPassword reports whether plain matches hash. It fails closed.
func (m *CredentialManager) VerifyPassword(ctx context.Context, plain, hash string) bool {
	return m.hasher.VerifyPassword(ctx, plain, hash)
}

// GenerateConfirmationCode returns the confirmation code of email issued
// at timestamp.
func (m *CredentialManager) GenerateConfirmationCode(email string, timestamp time.Time) string {
	return m.codes.ConfirmationCode(email, timestamp)
}

// ValidatePasswordStrength checks a new password. The failure is a
// [ValidationError] on field.
func (m *CredentialManager) ValidatePasswordStrength(field, plain string) error {
	if err := m.validator.ValidatePasswordStrength(plain); err != nil {
		return NewValidationError(field, humanize(err.Error()))
	}
	return nil
}

// ValidateEmailFormat checks an email address. The failure is a
// [ValidationError] on the email field.
func (m *CredentialManager) ValidateEmailFormat(email string) error {
	if err := validators.ValidateEmailFormat(email); err != nil {
		return NewValidationError(models.FieldEmail, humanize(err.Error()))
	}
	return nil
}

// IssueResetTicket stores a new reset ticket for the user and returns its
// code. A previously issued ticket of the same user stops working.
func (m *CredentialManager) IssueResetTicket(ctx context.Context, userID string) (string, error) {
	code, err := m.codes.ResetCode()
	if err != nil {
		return "", busy(ctx, "*CredentialManager.IssueResetTicket", err)
	}

	ticket := models.ResetTicket{Code: code, UserID: userID, IssuedAt: m.now().UTC()}
	if err = m.tickets.UpsertResetTicket(ctx, ticket); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return "", ErrUserNotFound
		}
		return "", busy(ctx, "*CredentialManager.IssueResetTicket", err)
	}

	return code, nil
}

// ValidateResetTicket checks code without consuming it. It returns
// [ErrResetCodeNotFound] for unknown codes and [ErrResetCodeExpired] once
// more than the reset window has passed since issuance. Expired tickets are
// left in place.
func (m *CredentialManager) ValidateResetTicket(ctx context.Context, code string) (models.ResetGrant, error) {
	if code == "" {
		return models.ResetGrant{}, ErrResetCodeNotFound
	}

	ticket, err := m.tickets.FindResetTicket(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrResetTicketNotFound) {
			return models.ResetGrant{}, ErrResetCodeNotFound
		}
		return models.ResetGrant{}, busy(ctx, "*CredentialManager.ValidateResetTicket", err)
	}

	if ticket.Expired(m.now(), m.resetTTL) {
		logger.FromContext(ctx).Debug().Str("func", "*CredentialManager.ValidateResetTicket").
			Str("user_id", ticket.UserID).Time("issued_at", ticket.IssuedAt).Msg("reset code expired")
		return models.ResetGrant{}, ErrResetCodeExpired
	}

	user, err := m.users.FindUserByID(ctx, ticket.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.ResetGrant{}, ErrResetCodeNotFound
		}
		return models.ResetGrant{}, busy(ctx, "*CredentialManager.ValidateResetTicket", err)
	}

	return models.ResetGrant{UserID: user.ID, Email: user.Email}, nil
}

// ConsumeResetTicket deletes the ticket with code. Deleting a missing
// ticket is not an error.
func (m *CredentialManager) ConsumeResetTicket(ctx context.Context, code string) error {
	_, err := m.tickets.ConsumeResetTicket(ctx, code)
	if err != nil && !errors.Is(err, store.ErrResetTicketNotFound) {
		return busy(ctx, "*CredentialManager.ConsumeResetTicket", err)
	}
	return nil
}

// redeemResetTicket consumes the ticket and reports which user it was for.
// Of concurrent redemptions of one code exactly one succeeds; the others get
// [ErrResetCodeNotFound].
func (m *CredentialManager) redeemResetTicket(ctx context.Context, code string) (models.ResetTicket, error) {
	ticket, err := m.tickets.ConsumeResetTicket(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrResetTicketNotFound) {
			return models.ResetTicket{}, ErrResetCodeNotFound
		}
		return models.ResetTicket{}, busy(ctx, "*CredentialManager.redeemResetTicket", err)
	}
	return ticket, nil
}

// setPassword hashes plain and stores it with a new confirmation code.
func (m *CredentialManager) setPassword(ctx context.Context, user models.User, plain string) error {
	hash, err := m.HashPassword(ctx, plain)
	if err != nil {
		return err
	}
	code := m.GenerateConfirmationCode(user.Email, m.now())

	if err = m.users.UpdateCredentials(ctx, user.ID, hash, code); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return busy(ctx, "*CredentialManager.setPassword", err)
	}

	return nil
}

// busy logs an infrastructure failure and hides it behind [ErrServerBusy].
func busy(ctx context.Context, fn string, err error) error {
	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("infrastructure failure")
	return ErrServerBusy
}
