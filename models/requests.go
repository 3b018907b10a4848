// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the payload of a new account registration.
type RegisterRequest struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Locale   string `json:"locale,omitempty"`
}

// LoginRequest carries the credentials of a login attempt.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordUpdateRequest changes the password of the authenticated user.
type PasswordUpdateRequest struct {
	OldPassword string `json:"oldPassword"`
	Password    string `json:"password"`
}

// RemindPasswordRequest asks for a password reset ticket to be mailed.
type RemindPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest redeems a reset ticket. Token is the reset code.
type ResetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}
