// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"testing"

	"github.com/MKhiriev/go-blog-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsers_PolicyOf(t *testing.T) {
	tests := []struct {
		field string
		want  Policy
	}{
		{models.FieldUserName, Policy{Public: true, ReadOnly: true}},
		{models.FieldEmail, Policy{ReadOnly: true}},
		{models.FieldPasswordHash, Policy{ReadOnly: true}},
		{models.FieldConfirmationCode, Policy{ReadOnly: true}},
		{models.FieldEmailConfirmed, Policy{ReadOnly: true}},
		{models.FieldAdmin, Policy{ReadOnly: true}},
		{models.FieldFirstName, Policy{Public: true, ProfileInformation: true}},
		{models.FieldBirthday, Policy{Public: true, ProfileInformation: true}},
		{models.FieldLocale, Policy{Public: true}},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			got, ok := Users.PolicyOf(tt.field)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUsers_PolicyOf_Unknown(t *testing.T) {
	_, ok := Users.PolicyOf("__proto__")
	assert.False(t, ok)
}

func TestUsers_AllFieldsCoverUserRecord(t *testing.T) {
	values := models.User{}.FieldValues()

	names := Users.AllFields()
	assert.Len(t, names, len(values))
	for _, name := range names {
		_, ok := values[name]
		assert.True(t, ok, "registry field %q is missing from the user record", name)
	}
}

func TestNewRegistry_PreservesOrderAndReplacesDuplicates(t *testing.T) {
	r := NewRegistry(
		Field{Name: "b", Kind: KindString},
		Field{Name: "a", Kind: KindString},
		Field{Name: "b", Kind: KindList, Policy: Policy{ReadOnly: true}},
	)

	assert.Equal(t, []string{"b", "a"}, r.AllFields())

	f, ok := r.Field("b")
	require.True(t, ok)
	assert.Equal(t, KindList, f.Kind)
	assert.True(t, f.Policy.ReadOnly)
}

func TestRegistry_FieldsReturnsCopy(t *testing.T) {
	fields := Users.Fields()
	fields[0].Policy.Public = true

	p, _ := Users.PolicyOf(fields[0].Name)
	assert.False(t, p.Public)
}
