// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package projection derives client-facing views of a user record from the
// field policy registry.
package projection

import (
	"github.com/MKhiriev/go-blog-accounts/internal/policy"
	"github.com/MKhiriev/go-blog-accounts/models"
)

// Sex selector values.
const (
	SexMale   = "male"
	SexFemale = "female"
)

// Engine builds projections of users according to a field registry.
type Engine struct {
	registry *policy.Registry
}

// NewEngine returns an Engine backed by registry.
func NewEngine(registry *policy.Registry) *Engine {
	return &Engine{registry: registry}
}

// Default is the engine over [policy.Users].
var Default = NewEngine(policy.Users)

// PublicView returns the fields of user whose policy is public, plus its id.
func (e *Engine) PublicView(user models.User) map[string]any {
	values := user.FieldValues()
	view := make(map[string]any, len(values))

	for _, f := range e.registry.Fields() {
		if f.Policy.Public {
			view[f.Name] = values[f.Name]
		}
	}
	view[models.FieldID] = user.ID

	return view
}

// OwnerView is the public view extended with fields only the owner may see.
func (e *Engine) OwnerView(user models.User) map[string]any {
	view := e.PublicView(user)
	view[models.FieldEmailConfirmed] = user.EmailConfirmed

	return view
}

// IsProfileInfoEmpty reports whether none of the profile-information fields
// of user holds a value. Callers negate it to get completeness.
func (e *Engine) IsProfileInfoEmpty(user models.User) bool {
	values := user.FieldValues()

	for _, f := range e.registry.Fields() {
		if !f.Policy.ProfileInformation {
			continue
		}
		if isSet(values[f.Name]) {
			return false
		}
	}

	return true
}

// SexOptions returns the sex selector entries in fixed order.
//
// Without a record (e.g. a fresh registration form) the first entry is
// preselected. With a record, only the entry matching its value is selected,
// so an unset value selects nothing.
func SexOptions(user *models.User) []models.SexOption {
	options := []models.SexOption{
		{Title: "Male", Value: SexMale, Selected: true},
		{Title: "Female", Value: SexFemale},
	}

	if user == nil {
		return options
	}

	for i := range options {
		options[i].Selected = user.Sex != nil && *user.Sex == options[i].Value
	}

	return options
}

func isSet(v any) bool {
	switch value := v.(type) {
	case nil:
		return false
	case string:
		return value != ""
	case bool:
		return value
	default:
		return true
	}
}
