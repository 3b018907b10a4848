// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the account operations of the blogging
// platform: registration, email confirmation, login, profile reads and
// edits, password change and the password reset flow.
//
// Every operation takes the caller's identity from the context (see the
// identity package). Errors are either user-correctable ([ValidationError],
// [ErrBadRequest]), authorization failures, lookups that found nothing, or
// [ErrServerBusy], which is all infrastructure failures are reported as.
package service

import (
	"context"

	"github.com/MKhiriev/go-blog-accounts/models"
)

// AuthService registers users, confirms their emails and issues sessions.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	ConfirmEmail(ctx context.Context, code string) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves a session token to the user it was issued for.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// ProfileService reads and edits user profiles.
type ProfileService interface {
	GetPublicProfile(ctx context.Context, userName string) (models.Profile, error)
	GetOwnerProfile(ctx context.Context) (models.Profile, error)

	// GetProfile returns the owner view when the caller owns the profile and
	// the public view otherwise.
	GetProfile(ctx context.Context, userName string) (models.Profile, error)

	UpdateProfile(ctx context.Context, userName string, rawUpdate map[string]any) (models.Profile, error)
	UploadProfileImage(ctx context.Context, userName string, data []byte) (models.ImageUploadResponse, error)
	SexOptions(ctx context.Context, userName string) ([]models.SexOption, error)
}

// PasswordService changes and resets passwords.
type PasswordService interface {
	UpdatePassword(ctx context.Context, userName string, req models.PasswordUpdateRequest) error
	RemindPassword(ctx context.Context, req models.RemindPasswordRequest) error

	// CheckResetCode validates a reset code without redeeming it.
	CheckResetCode(ctx context.Context, code string) (models.ResetGrant, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
