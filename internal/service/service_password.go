// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-blog-accounts/internal/adapter"
	"github.com/MKhiriev/go-blog-accounts/internal/identity"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/internal/validators"
	"github.com/MKhiriev/go-blog-accounts/models"
)

type passwordService struct {
	userRepository store.UserRepository
	credentials    *CredentialManager
	mailer         adapter.Mailer

	logger *logger.Logger
}

// NewPasswordService constructs a [PasswordService].
func NewPasswordService(
	userRepository store.UserRepository,
	credentials *CredentialManager,
	mailer adapter.Mailer,
	logger *logger.Logger,
) PasswordService {
	return &passwordService{
		userRepository: userRepository,
		credentials:    credentials,
		mailer:         mailer,
		logger:         logger,
	}
}

// UpdatePassword changes the password of the caller, who must own the
// account userName, after checking the old password.
func (s *passwordService) UpdatePassword(ctx context.Context, userName string, req models.PasswordUpdateRequest) error {
	caller, err := identity.RequireOwnerByUserName(ctx, userName)
	if err != nil {
		return err
	}

	var verr ValidationError
	if req.OldPassword == "" {
		verr.Add(fieldOldPassword, humanize(validators.ErrPasswordBlank.Error()))
	}
	if err = s.credentials.ValidatePasswordStrength(fieldPassword, req.Password); err != nil {
		var fieldErr *ValidationError
		if errors.As(err, &fieldErr) {
			verr.Add(fieldPassword, fieldErr.Fields[fieldPassword])
		}
	}
	if err = verr.OrNil(); err != nil {
		return err
	}

	user, err := s.userRepository.FindUserByID(ctx, caller.ID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return busy(ctx, "*passwordService.UpdatePassword", err)
	}

	if !s.credentials.VerifyPassword(ctx, req.OldPassword, user.PasswordHash) {
		return NewValidationError(fieldOldPassword, msgOldPasswordWrong)
	}

	if err = s.credentials.setPassword(ctx, user, req.Password); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*passwordService.UpdatePassword").Str("user_id", user.ID).Msg("password changed")
	return nil
}

// RemindPassword issues a reset ticket for the account of req.Email and
// mails its code. Returns [ErrUserNotFound] for unknown addresses; the
// transport decides whether to reveal that.
func (s *passwordService) RemindPassword(ctx context.Context, req models.RemindPasswordRequest) error {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if err := s.credentials.ValidateEmailFormat(email); err != nil {
		return err
	}

	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return busy(ctx, "*passwordService.RemindPassword", err)
	}

	code, err := s.credentials.IssueResetTicket(ctx, user.ID)
	if err != nil {
		return err
	}

	if err = s.mailer.SendPasswordResetMail(ctx, user.Email, code); err != nil {
		log.Err(err).Str("func", "*passwordService.RemindPassword").Str("user_id", user.ID).Msg("password reset mail was not sent")
	}

	return nil
}

// CheckResetCode implements [PasswordService].
func (s *passwordService) CheckResetCode(ctx context.Context, code string) (models.ResetGrant, error) {
	return s.credentials.ValidateResetTicket(ctx, strings.TrimSpace(code))
}

// ResetPassword sets a new password using a reset code.
//
// The new password is validated first, then the code; the ticket is consumed
// atomically right before the new hash is stored, so a code works once even
// under concurrent use. Returns [ValidationError], [ErrResetCodeNotFound],
// [ErrResetCodeExpired] or [ErrServerBusy].
func (s *passwordService) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	log := logger.FromContext(ctx)
	code := strings.TrimSpace(req.Token)

	if err := s.credentials.ValidatePasswordStrength(fieldPassword, req.Password); err != nil {
		return err
	}

	grant, err := s.credentials.ValidateResetTicket(ctx, code)
	if err != nil {
		return err
	}

	hash, err := s.credentials.HashPassword(ctx, req.Password)
	if err != nil {
		return err
	}
	confirmationCode := s.credentials.GenerateConfirmationCode(grant.Email, s.credentials.now())

	ticket, err := s.credentials.redeemResetTicket(ctx, code)
	if err != nil {
		return err
	}

	if err = s.userRepository.UpdateCredentials(ctx, ticket.UserID, hash, confirmationCode); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrResetCodeNotFound
		}
		return busy(ctx, "*passwordService.ResetPassword", err)
	}

	log.Info().Str("func", "*passwordService.ResetPassword").Str("user_id", ticket.UserID).Msg("password reset")
	return nil
}
