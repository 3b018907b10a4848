// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds clients of external services the accounts core
// depends on.
//
// The only adapter is [Mailer], delivering account mails through an HTTP
// mail relay ([NewMailAdapter]). Relay failures are mapped from HTTP status
// codes by mapHTTPError so that callers can use [errors.Is] (e.g.
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer dispatches account mails. Delivery is fire-and-forget for callers:
// a returned error is meant to be logged, not retried.
type Mailer interface {
	// SendEmailConfirmationMail sends the link confirming the address of a
	// newly registered user.
	SendEmailConfirmationMail(ctx context.Context, recipient, userName, confirmationCode string) error

	// SendPasswordResetMail sends the link redeeming a password reset code.
	SendPasswordResetMail(ctx context.Context, recipient, resetCode string) error
}
