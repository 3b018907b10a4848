// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUserNameBlank   = errors.New("username can't be blank")
	ErrUserNameInvalid = errors.New(`use the Latin alphabet, numbers, ".", "_", "-"`)
	ErrEmailBlank      = errors.New("email can't be blank")
	ErrEmailInvalid    = errors.New("email is invalid")
	ErrPasswordBlank   = errors.New("password can't be blank")
	ErrPasswordShort   = errors.New("password is too short")

	// ErrBadRequest is returned by the sanitizer when an update payload does
	// not match the declared field shapes.
	ErrBadRequest = errors.New("bad request")
)

// FieldError is a user-correctable validation failure bound to a field.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// FieldErrors collects every failed field of a single validation pass.
type FieldErrors []*FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the individual field errors to errors.Is / errors.As.
func (e FieldErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, fe := range e {
		errs[i] = fe
	}
	return errs
}

// Messages returns a field -> message map suitable for a client response.
func (e FieldErrors) Messages() map[string]string {
	out := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := out[fe.Field]; !ok {
			out[fe.Field] = fe.Err.Error()
		}
	}
	return out
}

// OrNil returns nil when no field failed, so callers can return it directly.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}
