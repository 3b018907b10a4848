// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-accounts/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user records. Uniqueness of user name and email
// is enforced by the storage itself.
type UserRepository interface {
	// CreateUser inserts user and returns the stored record. Duplicate names
	// or emails yield [ErrUserNameAlreadyExists] / [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByID(ctx context.Context, id string) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByUserName(ctx context.Context, userName string) (models.User, error)
	FindUserByConfirmationCode(ctx context.Context, code string) (models.User, error)

	// UpdateUserFields applies fields, keyed by registry field name, to the
	// user and returns the updated record.
	UpdateUserFields(ctx context.Context, id string, fields map[string]any) (models.User, error)

	// UpdateCredentials replaces the password hash and confirmation code.
	UpdateCredentials(ctx context.Context, id, passwordHash, confirmationCode string) error

	// ConfirmEmail marks the email of the user confirmed. It reports false
	// when the email was already confirmed.
	ConfirmEmail(ctx context.Context, id string) (bool, error)
}

// ResetTicketRepository persists password reset tickets. At most one ticket
// exists per user.
type ResetTicketRepository interface {
	// UpsertResetTicket stores ticket, replacing the user's previous one.
	UpsertResetTicket(ctx context.Context, ticket models.ResetTicket) error

	// FindResetTicket returns the ticket with code without consuming it.
	FindResetTicket(ctx context.Context, code string) (models.ResetTicket, error)

	// ConsumeResetTicket atomically deletes and returns the ticket with
	// code. Of concurrent callers at most one succeeds.
	ConsumeResetTicket(ctx context.Context, code string) (models.ResetTicket, error)

	// DeleteResetTicketsIssuedBefore removes tickets issued before t.
	DeleteResetTicketsIssuedBefore(ctx context.Context, t time.Time) (int64, error)
}

// ImageStorage stores profile images.
type ImageStorage interface {
	// SaveImage stores data under name and returns the public location of
	// the image.
	SaveImage(ctx context.Context, name, contentType string, data []byte) (string, error)

	// DeleteImage removes the image at the public location returned by
	// SaveImage. Missing images are not an error.
	DeleteImage(ctx context.Context, location string) error
}

// ErrorClassificator decides whether a failed storage call may succeed on
// a later attempt.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
