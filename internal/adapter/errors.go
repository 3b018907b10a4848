// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("mail relay rejected the message")
	ErrUnauthorized        = errors.New("mail relay unauthorized")
	ErrTooManyRequests     = errors.New("mail relay rate limit exceeded")
	ErrInternalServerError = errors.New("mail relay internal error")
	ErrBadGateway          = errors.New("mail relay unavailable")
	ErrNoRecipient         = errors.New("no mail recipient")
)
