// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package identity answers "who is asking" for a single operation.
//
// The authenticated profile is carried explicitly in the request context:
// transport middleware resolves a session into a [models.User] and attaches
// it with [WithProfile]; operations read it back with [CurrentProfile] or
// enforce access with [RequireAuthenticated] and [RequireOwner].
package identity

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-blog-accounts/models"
)

var (
	// ErrUnauthorized means the operation needs an authenticated caller.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden means the caller is authenticated but does not own the
	// target record.
	ErrForbidden = errors.New("forbidden")
)

type profileCtxKey struct{}

// WithProfile returns a copy of ctx carrying the authenticated profile.
// A nil profile leaves ctx anonymous.
func WithProfile(ctx context.Context, profile *models.User) context.Context {
	if profile == nil {
		return ctx
	}
	return context.WithValue(ctx, profileCtxKey{}, profile)
}

// CurrentProfile returns the authenticated profile of ctx.
func CurrentProfile(ctx context.Context) (*models.User, bool) {
	profile, ok := ctx.Value(profileCtxKey{}).(*models.User)
	return profile, ok && profile != nil
}

// IsAuthenticated reports whether ctx carries a profile.
func IsAuthenticated(ctx context.Context) bool {
	_, ok := CurrentProfile(ctx)
	return ok
}

// IsOwner reports whether the caller is the user named userName.
// It is false for anonymous callers.
func IsOwner(ctx context.Context, userName string) bool {
	profile, ok := CurrentProfile(ctx)
	return ok && userName != "" && profile.UserName == userName
}

// IsOwnerOf reports whether the caller owns record, matched by id.
func IsOwnerOf(ctx context.Context, record *models.User) bool {
	if record == nil || record.ID == "" {
		return false
	}
	profile, ok := CurrentProfile(ctx)
	return ok && profile.ID == record.ID
}

// RequireAuthenticated returns the caller or [ErrUnauthorized].
func RequireAuthenticated(ctx context.Context) (*models.User, error) {
	profile, ok := CurrentProfile(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}
	return profile, nil
}

// RequireOwner returns the caller when it is the user identified by userID.
// Anonymous callers get [ErrUnauthorized], other users [ErrForbidden].
func RequireOwner(ctx context.Context, userID string) (*models.User, error) {
	profile, err := RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if profile.ID != userID {
		return nil, ErrForbidden
	}
	return profile, nil
}

// RequireOwnerByUserName is [RequireOwner] keyed by the public handle.
func RequireOwnerByUserName(ctx context.Context, userName string) (*models.User, error) {
	profile, err := RequireAuthenticated(ctx)
	if err != nil {
		return nil, err
	}
	if !IsOwner(ctx, userName) {
		return nil, ErrForbidden
	}
	return profile, nil
}

// EditingDisabled reports whether profile editing controls should be
// withheld: always for anonymous callers, and for users that have not yet
// confirmed their email.
func EditingDisabled(ctx context.Context) bool {
	profile, ok := CurrentProfile(ctx)
	return !ok || !profile.EmailConfirmed
}
