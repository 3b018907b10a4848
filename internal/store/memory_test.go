// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-accounts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_CreateUser_Uniqueness(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.User{ID: "1", UserName: "alice", Email: "a@x.io"})
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.User{ID: "2", UserName: "alice", Email: "b@x.io"})
	assert.ErrorIs(t, err, ErrUserNameAlreadyExists)

	_, err = s.CreateUser(ctx, models.User{ID: "3", UserName: "bob", Email: "a@x.io"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	first := "Ann"

	created, err := s.CreateUser(ctx, models.User{ID: "1", UserName: "alice", Email: "a@x.io", FirstName: &first})
	require.NoError(t, err)

	*created.FirstName = "mutated"
	first = "mutated too"

	found, err := s.FindUserByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Ann", *found.FirstName)
}

func TestMemoryStore_Find(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, models.User{ID: "1", UserName: "alice", Email: "a@x.io", ConfirmationCode: "code"})
	require.NoError(t, err)

	u, err := s.FindUserByEmail(ctx, "a@x.io")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	u, err = s.FindUserByUserName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	u, err = s.FindUserByConfirmationCode(ctx, "code")
	require.NoError(t, err)
	assert.Equal(t, "1", u.ID)

	_, err = s.FindUserByConfirmationCode(ctx, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = s.FindUserByID(ctx, "404")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_UpdateUserFields(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	sex := "male"
	_, err := s.CreateUser(ctx, models.User{ID: "1", UserName: "alice", Email: "a@x.io", Sex: &sex, Locale: "en"})
	require.NoError(t, err)

	birthday := time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC)
	updated, err := s.UpdateUserFields(ctx, "1", map[string]any{
		models.FieldFirstName: "Ann",
		models.FieldSex:       nil,
		models.FieldBirthday:  birthday,
		models.FieldLocale:    "de",
	})

	require.NoError(t, err)
	require.NotNil(t, updated.FirstName)
	assert.Equal(t, "Ann", *updated.FirstName)
	assert.Nil(t, updated.Sex, "nil clears an optional field")
	require.NotNil(t, updated.Birthday)
	assert.True(t, birthday.Equal(*updated.Birthday))
	assert.Equal(t, "de", updated.Locale)

	_, err = s.UpdateUserFields(ctx, "1", map[string]any{"nope": "x"})
	assert.ErrorIs(t, err, ErrUnknownField)

	_, err = s.UpdateUserFields(ctx, "404", map[string]any{models.FieldFirstName: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryStore_CredentialsAndConfirmation(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, models.User{ID: "1", UserName: "alice", Email: "a@x.io", PasswordHash: "old"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateCredentials(ctx, "1", "new", "code2"))
	u, err := s.FindUserByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "new", u.PasswordHash)
	assert.Equal(t, "code2", u.ConfirmationCode)
	assert.ErrorIs(t, s.UpdateCredentials(ctx, "404", "h", "c"), ErrUserNotFound)

	changed, err := s.ConfirmEmail(ctx, "1")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = s.ConfirmEmail(ctx, "1")
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestMemoryStore_ResetTickets(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, models.User{ID: "1", UserName: "alice", Email: "a@x.io"})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, s.UpsertResetTicket(ctx, models.ResetTicket{Code: "c1", UserID: "1", IssuedAt: now}))
	require.NoError(t, s.UpsertResetTicket(ctx, models.ResetTicket{Code: "c2", UserID: "1", IssuedAt: now}))

	_, err = s.FindResetTicket(ctx, "c1")
	assert.ErrorIs(t, err, ErrResetTicketNotFound, "reissuing replaces the previous ticket")

	ticket, err := s.FindResetTicket(ctx, "c2")
	require.NoError(t, err)
	assert.Equal(t, "1", ticket.UserID)

	assert.ErrorIs(t, s.UpsertResetTicket(ctx, models.ResetTicket{Code: "c3", UserID: "ghost"}), ErrUserNotFound)

	_, err = s.ConsumeResetTicket(ctx, "c2")
	require.NoError(t, err)
	_, err = s.ConsumeResetTicket(ctx, "c2")
	assert.ErrorIs(t, err, ErrResetTicketNotFound)
}

func TestMemoryStore_ConsumeResetTicket_Concurrent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	_, err := s.CreateUser(ctx, models.User{ID: "1", UserName: "alice", Email: "a@x.io"})
	require.NoError(t, err)
	require.NoError(t, s.UpsertResetTicket(ctx, models.ResetTicket{Code: "c", UserID: "1", IssuedAt: time.Now()}))

	var wins atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Go(func() {
			if _, err := s.ConsumeResetTicket(ctx, "c"); err == nil {
				wins.Add(1)
			}
		})
	}
	wg.Wait()

	assert.EqualValues(t, 1, wins.Load())
}

func TestMemoryStore_DeleteResetTicketsIssuedBefore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	for _, id := range []string{"1", "2"} {
		_, err := s.CreateUser(ctx, models.User{ID: id, UserName: "u" + id, Email: id + "@x.io"})
		require.NoError(t, err)
	}

	now := time.Now()
	require.NoError(t, s.UpsertResetTicket(ctx, models.ResetTicket{Code: "old", UserID: "1", IssuedAt: now.Add(-time.Hour)}))
	require.NoError(t, s.UpsertResetTicket(ctx, models.ResetTicket{Code: "new", UserID: "2", IssuedAt: now}))

	n, err := s.DeleteResetTicketsIssuedBefore(ctx, now.Add(-time.Minute))
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = s.FindResetTicket(ctx, "new")
	assert.NoError(t, err)
}
