// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Field names of the user record as they appear in client payloads,
// projections and the field policy registry.
const (
	FieldID               = "id"
	FieldUserName         = "userName"
	FieldEmail            = "email"
	FieldPasswordHash     = "passwordHash"
	FieldConfirmationCode = "confirmationCode"
	FieldEmailConfirmed   = "emailConfirmed"
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldSex              = "sex"
	FieldAboutAuthor      = "aboutAuthor"
	FieldBirthday         = "birthday"
	FieldProfileImg       = "profileImg"
	FieldLocale           = "locale"
	FieldAdmin            = "admin"
)

// User is the account aggregate of the blogging platform.
//
// Optional profile information is stored as pointers: nil means the user
// never filled the field in, which is what profile completeness is computed
// from. Credential fields are never serialized directly; clients only ever
// receive projections built by the projection package.
type User struct {
	// ID is the opaque identifier assigned at creation. Immutable.
	ID string `json:"id"`

	// UserName is the unique public handle of the user. Immutable.
	UserName string `json:"userName"`

	// Email is unique and used for login and password reset.
	Email string `json:"-"`

	// PasswordHash is the bcrypt hash of the password. Never exposed.
	PasswordHash string `json:"-"`

	// ConfirmationCode proves control of Email. It is regenerated every time
	// the email or the password hash changes.
	ConfirmationCode string `json:"-"`

	// EmailConfirmed transitions false -> true exactly once.
	EmailConfirmed bool `json:"emailConfirmed"`

	FirstName   *string    `json:"firstName"`
	LastName    *string    `json:"lastName"`
	Sex         *string    `json:"sex"`
	AboutAuthor *string    `json:"aboutAuthor"`
	Birthday    *time.Time `json:"birthday"`
	ProfileImg  *string    `json:"profileImg"`

	// Locale is the preferred interface language tag (e.g. "en").
	Locale string `json:"locale"`

	// Admin can only be granted through administrative paths.
	Admin bool `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// FieldValues returns every policy-governed field of the user keyed by its
// field name. Unset optional fields map to an untyped nil.
func (u User) FieldValues() map[string]any {
	return map[string]any{
		FieldID:               u.ID,
		FieldUserName:         u.UserName,
		FieldEmail:            u.Email,
		FieldPasswordHash:     u.PasswordHash,
		FieldConfirmationCode: u.ConfirmationCode,
		FieldEmailConfirmed:   u.EmailConfirmed,
		FieldFirstName:        stringOrNil(u.FirstName),
		FieldLastName:         stringOrNil(u.LastName),
		FieldSex:              stringOrNil(u.Sex),
		FieldAboutAuthor:      stringOrNil(u.AboutAuthor),
		FieldBirthday:         timeOrNil(u.Birthday),
		FieldProfileImg:       stringOrNil(u.ProfileImg),
		FieldLocale:           u.Locale,
		FieldAdmin:            u.Admin,
	}
}

// FullName joins the last and the first name, skipping unset parts.
func (u User) FullName() string {
	parts := make([]string, 0, 2)
	if u.LastName != nil {
		parts = append(parts, *u.LastName)
	}
	if u.FirstName != nil {
		parts = append(parts, *u.FirstName)
	}

	return strings.Join(parts, " ")
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
