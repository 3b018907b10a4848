// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"maps"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog-accounts/internal/validators"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrBadRequest            = errors.New("bad request")
	ErrUserNotFound          = errors.New("user not found")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrEmailAlreadyConfirmed = errors.New("email is already confirmed")
	ErrResetCodeNotFound     = errors.New("reset code not found")
	ErrResetCodeExpired      = errors.New("reset code expired")

	// ErrServerBusy is the only error infrastructure failures surface as.
	ErrServerBusy = errors.New("server is busy, try again later")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Field-level messages that do not come from the validators package.
const (
	msgUserNameTaken     = "User with same username already exists."
	msgEmailTaken        = "User with same email already exists."
	msgOldPasswordWrong  = "Old password is incorrect."
	msgLocaleInvalid     = "Locale is not supported."
	msgSexInvalid        = "Sex is invalid."
	msgImageTooLarge     = "Image is too large."
	msgImageUnsupported  = "Only PNG, JPEG, GIF and WebP images are allowed."
	msgImageMissing      = "Image can't be blank."
	fieldPassword        = "password"
	fieldOldPassword     = "oldPassword"
)

// ValidationError is a user-correctable failure with a message per field.
// It matches [ErrValidation] with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes every ValidationError match [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Add records message for field unless the field already failed.
func (e *ValidationError) Add(field, message string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = message
	}
}

// OrNil returns nil when no field failed.
func (e *ValidationError) OrNil() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

// fromFieldErrors converts validator output into a ValidationError. Any
// other error is returned unchanged.
func fromFieldErrors(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs validators.FieldErrors
	if errors.As(err, &fieldErrs) {
		out := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
		for field, msg := range fieldErrs.Messages() {
			out.Add(field, humanize(msg))
		}
		return out
	}

	var fieldErr *validators.FieldError
	if errors.As(err, &fieldErr) {
		return NewValidationError(fieldErr.Field, humanize(fieldErr.Err.Error()))
	}

	return err
}

// humanize turns a validator message into a sentence:
// "email is invalid" becomes "Email is invalid.".
func humanize(msg string) string {
	if msg == "" {
		return msg
	}
	r, size := utf8.DecodeRuneInString(msg)
	msg = string(unicode.ToUpper(r)) + msg[size:]
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return msg
}

