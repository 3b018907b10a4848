// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import "github.com/MKhiriev/go-blog-accounts/models"

// Kind is the declared value shape of a field. It drives update type checks.
type Kind int

const (
	// KindString fields accept only string values or null.
	KindString Kind = iota
	// KindList fields accept only list values or null.
	KindList
	// KindBool fields are booleans.
	KindBool
	// KindTime fields hold a point in time.
	KindTime
)

// Policy is the access policy of a single field.
type Policy struct {
	Public             bool
	ReadOnly           bool
	ProfileInformation bool
}

// Field describes one field of an entity.
type Field struct {
	// Name is the field name used by clients and projections.
	Name string
	// Column is the storage column backing the field.
	Column string
	Kind   Kind
	Policy Policy
}

// Registry is an ordered, immutable set of field descriptors.
type Registry struct {
	fields []Field
	index  map[string]int
}

// NewRegistry builds a registry from fields, preserving their order.
// A later duplicate of a name replaces the earlier descriptor in place.
func NewRegistry(fields ...Field) *Registry {
	r := &Registry{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if i, ok := r.index[f.Name]; ok {
			r.fields[i] = f
			continue
		}
		r.index[f.Name] = len(r.fields)
		r.fields = append(r.fields, f)
	}

	return r
}

// PolicyOf returns the policy of the named field and whether the field exists.
func (r *Registry) PolicyOf(name string) (Policy, bool) {
	f, ok := r.Field(name)
	return f.Policy, ok
}

// Field returns the full descriptor of the named field.
func (r *Registry) Field(name string) (Field, bool) {
	i, ok := r.index[name]
	if !ok {
		return Field{}, false
	}
	return r.fields[i], true
}

// AllFields returns the field names in declaration order.
func (r *Registry) AllFields() []string {
	names := make([]string, len(r.fields))
	for i, f := range r.fields {
		names[i] = f.Name
	}
	return names
}

// Fields returns a copy of all descriptors in declaration order.
func (r *Registry) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Users is the field registry of [models.User].
var Users = NewRegistry(
	Field{Name: models.FieldID, Column: "id", Kind: KindString,
		Policy: Policy{ReadOnly: true}},
	Field{Name: models.FieldProfileImg, Column: "profile_img", Kind: KindString,
		Policy: Policy{Public: true, ProfileInformation: true}},
	Field{Name: models.FieldConfirmationCode, Column: "confirmation_code", Kind: KindString,
		Policy: Policy{ReadOnly: true}},
	Field{Name: models.FieldFirstName, Column: "first_name", Kind: KindString,
		Policy: Policy{Public: true, ProfileInformation: true}},
	Field{Name: models.FieldLastName, Column: "last_name", Kind: KindString,
		Policy: Policy{Public: true, ProfileInformation: true}},
	Field{Name: models.FieldUserName, Column: "user_name", Kind: KindString,
		Policy: Policy{Public: true, ReadOnly: true}},
	Field{Name: models.FieldEmail, Column: "email", Kind: KindString,
		Policy: Policy{ReadOnly: true}},
	Field{Name: models.FieldSex, Column: "sex", Kind: KindString,
		Policy: Policy{Public: true, ProfileInformation: true}},
	Field{Name: models.FieldAboutAuthor, Column: "about_author", Kind: KindString,
		Policy: Policy{Public: true, ProfileInformation: true}},
	Field{Name: models.FieldBirthday, Column: "birthday", Kind: KindTime,
		Policy: Policy{Public: true, ProfileInformation: true}},
	Field{Name: models.FieldPasswordHash, Column: "password_hash", Kind: KindString,
		Policy: Policy{ReadOnly: true}},
	Field{Name: models.FieldEmailConfirmed, Column: "email_confirmed", Kind: KindBool,
		Policy: Policy{ReadOnly: true}},
	Field{Name: models.FieldAdmin, Column: "admin", Kind: KindBool,
		Policy: Policy{ReadOnly: true}},
	Field{Name: models.FieldLocale, Column: "locale", Kind: KindString,
		Policy: Policy{Public: true}},
)
