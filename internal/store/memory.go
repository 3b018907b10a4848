// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/policy"
	"github.com/MKhiriev/go-blog-accounts/models"
)

// MemoryStore keeps users and reset tickets in process memory. It enforces
// the same uniqueness and one-ticket-per-user rules as the database schema.
// It implements both [UserRepository] and [ResetTicketRepository].
type MemoryStore struct {
	mu      sync.RWMutex
	users   map[string]models.User
	tickets map[string]models.ResetTicket // keyed by user id
	now     func() time.Time
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:   make(map[string]models.User),
		tickets: make(map[string]models.ResetTicket),
		now:     time.Now,
	}
}

// CreateUser implements [UserRepository].
func (s *MemoryStore) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.UserName == user.UserName {
			return models.User{}, ErrUserNameAlreadyExists
		}
		if u.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
	}

	now := s.now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now
	s.users[user.ID] = cloneUser(user)

	return cloneUser(user), nil
}

// FindUserByID implements [UserRepository].
func (s *MemoryStore) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return s.findUser(func(u models.User) bool { return u.ID == id })
}

// FindUserByEmail implements [UserRepository].
func (s *MemoryStore) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.findUser(func(u models.User) bool { return u.Email == email })
}

// FindUserByUserName implements [UserRepository].
func (s *MemoryStore) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	return s.findUser(func(u models.User) bool { return u.UserName == userName })
}

// FindUserByConfirmationCode implements [UserRepository].
func (s *MemoryStore) FindUserByConfirmationCode(ctx context.Context, code string) (models.User, error) {
	return s.findUser(func(u models.User) bool { return code != "" && u.ConfirmationCode == code })
}

func (s *MemoryStore) findUser(match func(models.User) bool) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if match(u) {
			return cloneUser(u), nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpdateUserFields implements [UserRepository].
func (s *MemoryStore) UpdateUserFields(ctx context.Context, id string, fields map[string]any) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	for name, value := range fields {
		if err := setUserField(&user, name, value); err != nil {
			return models.User{}, err
		}
	}
	user.UpdatedAt = s.now().UTC()
	s.users[id] = user

	return cloneUser(user), nil
}

// UpdateCredentials implements [UserRepository].
func (s *MemoryStore) UpdateCredentials(ctx context.Context, id, passwordHash, confirmationCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.ConfirmationCode = confirmationCode
	user.UpdatedAt = s.now().UTC()
	s.users[id] = user

	return nil
}

// ConfirmEmail implements [UserRepository].
func (s *MemoryStore) ConfirmEmail(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return false, ErrUserNotFound
	}
	if user.EmailConfirmed {
		return false, nil
	}
	user.EmailConfirmed = true
	user.UpdatedAt = s.now().UTC()
	s.users[id] = user

	return true, nil
}

// UpsertResetTicket implements [ResetTicketRepository].
func (s *MemoryStore) UpsertResetTicket(ctx context.Context, ticket models.ResetTicket) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[ticket.UserID]; !ok {
		return ErrUserNotFound
	}
	s.tickets[ticket.UserID] = ticket

	return nil
}

// FindResetTicket implements [ResetTicketRepository].
func (s *MemoryStore) FindResetTicket(ctx context.Context, code string) (models.ResetTicket, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tickets {
		if t.Code == code {
			return t, nil
		}
	}
	return models.ResetTicket{}, ErrResetTicketNotFound
}

// ConsumeResetTicket implements [ResetTicketRepository].
func (s *MemoryStore) ConsumeResetTicket(ctx context.Context, code string) (models.ResetTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for userID, t := range s.tickets {
		if t.Code == code {
			delete(s.tickets, userID)
			return t, nil
		}
	}
	return models.ResetTicket{}, ErrResetTicketNotFound
}

// DeleteResetTicketsIssuedBefore implements [ResetTicketRepository].
func (s *MemoryStore) DeleteResetTicketsIssuedBefore(ctx context.Context, t time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for userID, ticket := range s.tickets {
		if ticket.IssuedAt.Before(t) {
			delete(s.tickets, userID)
			n++
		}
	}
	return n, nil
}

// setUserField assigns a sanitized update value to the matching field of u.
func setUserField(u *models.User, name string, value any) error {
	f, ok := policy.Users.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}

	switch f.Kind {
	case policy.KindString:
		var s *string
		if value != nil {
			str, ok := value.(string)
			if !ok {
				return fmt.Errorf("field %s: expected string, got %T", name, value)
			}
			s = &str
		}
		return setStringField(u, name, s)

	case policy.KindTime:
		var t *time.Time
		if value != nil {
			tv, ok := value.(time.Time)
			if !ok {
				return fmt.Errorf("field %s: expected time, got %T", name, value)
			}
			t = &tv
		}
		if name == models.FieldBirthday {
			u.Birthday = t
		}
		return nil

	case policy.KindBool:
		b, _ := value.(bool)
		switch name {
		case models.FieldEmailConfirmed:
			u.EmailConfirmed = b
		case models.FieldAdmin:
			u.Admin = b
		}
		return nil
	}

	return fmt.Errorf("%w: %s", ErrUnknownField, name)
}

func setStringField(u *models.User, name string, s *string) error {
	value := func() string {
		if s == nil {
			return ""
		}
		return *s
	}

	switch name {
	case models.FieldFirstName:
		u.FirstName = s
	case models.FieldLastName:
		u.LastName = s
	case models.FieldSex:
		u.Sex = s
	case models.FieldAboutAuthor:
		u.AboutAuthor = s
	case models.FieldProfileImg:
		u.ProfileImg = s
	case models.FieldLocale:
		u.Locale = value()
	case models.FieldUserName:
		u.UserName = value()
	case models.FieldEmail:
		u.Email = value()
	case models.FieldPasswordHash:
		u.PasswordHash = value()
	case models.FieldConfirmationCode:
		u.ConfirmationCode = value()
	case models.FieldID:
		u.ID = value()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	return nil
}

// cloneUser copies the pointer fields so callers cannot mutate stored state.
func cloneUser(u models.User) models.User {
	u.FirstName = clonePtr(u.FirstName)
	u.LastName = clonePtr(u.LastName)
	u.Sex = clonePtr(u.Sex)
	u.AboutAuthor = clonePtr(u.AboutAuthor)
	u.Birthday = clonePtr(u.Birthday)
	u.ProfileImg = clonePtr(u.ProfileImg)
	return u
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
