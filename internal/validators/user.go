// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog-accounts/models"
)

// DefaultPasswordMinLength is the minimum number of characters of a password.
const DefaultPasswordMinLength = 6

var (
	userNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,32}$`)
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// UserValidator validates account payloads.
type UserValidator struct {
	passwordMinLength int
}

// NewUserValidator returns a validator enforcing passwordMinLength.
// A non-positive length falls back to DefaultPasswordMinLength.
func NewUserValidator(passwordMinLength int) *UserValidator {
	if passwordMinLength <= 0 {
		passwordMinLength = DefaultPasswordMinLength
	}
	return &UserValidator{passwordMinLength: passwordMinLength}
}

// Validate implements [Validator]. When fields are given only those fields
// of the payload are checked. Failures are returned as [FieldErrors].
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ValidatePasswordStrength checks the password against the configured
// minimum length. A blank password is a distinct error from a short one.
func (v *UserValidator) ValidatePasswordStrength(password string) error {
	return ValidatePasswordStrength(password, v.passwordMinLength)
}

func (v *UserValidator) validateRegister(req models.RegisterRequest, fields ...string) error {
	var errs FieldErrors

	if shouldValidate(models.FieldUserName, fields) {
		if err := ValidateUserName(req.UserName); err != nil {
			errs = append(errs, &FieldError{Field: models.FieldUserName, Err: err})
		}
	}
	if shouldValidate(models.FieldEmail, fields) {
		if err := ValidateEmailFormat(req.Email); err != nil {
			errs = append(errs, &FieldError{Field: models.FieldEmail, Err: err})
		}
	}
	if shouldValidate("password", fields) {
		if err := v.ValidatePasswordStrength(req.Password); err != nil {
			errs = append(errs, &FieldError{Field: "password", Err: err})
		}
	}

	return errs.OrNil()
}

func (v *UserValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	var errs FieldErrors

	if shouldValidate(models.FieldEmail, fields) {
		if err := ValidateEmailFormat(req.Email); err != nil {
			errs = append(errs, &FieldError{Field: models.FieldEmail, Err: err})
		}
	}
	if shouldValidate("password", fields) {
		if err := v.ValidatePasswordStrength(req.Password); err != nil {
			errs = append(errs, &FieldError{Field: "password", Err: err})
		}
	}

	return errs.OrNil()
}

// ValidateUserName checks that name is present and matches the allowed alphabet.
func ValidateUserName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrUserNameBlank
	}
	if !userNamePattern.MatchString(name) {
		return ErrUserNameInvalid
	}
	return nil
}

// ValidateEmailFormat checks that value is present and looks like an address.
func ValidateEmailFormat(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrEmailBlank
	}
	if !emailPattern.MatchString(value) {
		return ErrEmailInvalid
	}
	return nil
}

// ValidatePasswordStrength checks that password is present and has at least
// minLength characters.
func ValidatePasswordStrength(password string, minLength int) error {
	if password == "" {
		return ErrPasswordBlank
	}
	if utf8.RuneCountInString(password) < minLength {
		return ErrPasswordShort
	}
	return nil
}

func shouldValidate(field string, fields []string) bool {
	if len(fields) == 0 {
		return true
	}
	for _, f := range fields {
		if f == field {
			return true
		}
	}
	return false
}
