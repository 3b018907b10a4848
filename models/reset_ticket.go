// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResetTicket is an ephemeral authorization to set a new password without
// knowing the old one. At most one live ticket exists per user: issuing a new
// one overwrites the previous ticket, which makes the old code unusable.
type ResetTicket struct {
	// Code is the random value delivered to the user out of band.
	Code string `json:"-"`

	// UserID references the user the ticket was issued for.
	UserID string `json:"-"`

	// IssuedAt is the moment of issuance; expiry is measured from it.
	IssuedAt time.Time `json:"-"`
}

// Expired reports whether more than window has elapsed between issuance and now.
// A ticket exactly window old is still valid.
func (t ResetTicket) Expired(now time.Time, window time.Duration) bool {
	return now.Sub(t.IssuedAt) > window
}

// TableName returns the name of the database table
// associated with the ResetTicket model.
func (t ResetTicket) TableName() string {
	return "password_resets"
}

// ResetGrant is the result of a successful reset ticket validation.
type ResetGrant struct {
	UserID string `json:"-"`
	Email  string `json:"email"`
}
