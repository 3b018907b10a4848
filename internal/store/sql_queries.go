// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/policy"
	"github.com/MKhiriev/go-blog-accounts/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable        = "users"
	passwordResetsTbl = "password_resets"
)

// psql builds PostgreSQL statements with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the column order every user query selects and scans.
var userColumns = []string{
	"id",
	"user_name",
	"email",
	"password_hash",
	"confirmation_code",
	"email_confirmed",
	"first_name",
	"last_name",
	"sex",
	"about_author",
	"birthday",
	"profile_img",
	"locale",
	"admin",
	"created_at",
	"updated_at",
}

var resetTicketColumns = []string{"code", "user_id", "issued_at"}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertUserQuery(ctx context.Context, user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns(
			"id", "user_name", "email", "password_hash", "confirmation_code",
			"email_confirmed", "first_name", "last_name", "sex", "about_author",
			"birthday", "profile_img", "locale", "admin",
		).
		Values(
			user.ID, user.UserName, user.Email, user.PasswordHash, user.ConfirmationCode,
			user.EmailConfirmed, user.FirstName, user.LastName, user.Sex, user.AboutAuthor,
			user.Birthday, user.ProfileImg, user.Locale, user.Admin,
		).
		Suffix(returning(userColumns)).
		ToSql()
}

// buildSelectUserQuery selects a single user by an exact column match.
func buildSelectUserQuery(ctx context.Context, column string, value any) (string, []any, error) {
	return psql.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{column: value}).
		Limit(1).
		ToSql()
}

// buildUpdateUserFieldsQuery sets the given fields, addressed by their
// registry names, on the user with id. Columns are emitted in registry
// order so the statement text is stable.
func buildUpdateUserFieldsQuery(ctx context.Context, id string, fields map[string]any) (string, []any, error) {
	query := psql.Update(usersTable)

	for _, f := range policy.Users.Fields() {
		value, ok := fields[f.Name]
		if !ok {
			continue
		}
		query = query.Set(f.Column, value)
	}
	for name := range fields {
		if _, ok := policy.Users.Field(name); !ok {
			return "", nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	return query.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildUpdateCredentialsQuery(ctx context.Context, id, passwordHash, confirmationCode string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("confirmation_code", confirmationCode).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// buildConfirmEmailQuery flips email_confirmed only while it is still false,
// so exactly one caller observes an affected row.
func buildConfirmEmailQuery(ctx context.Context, id string) (string, []any, error) {
	return psql.Update(usersTable).
		Set("email_confirmed", true).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "email_confirmed": false}).
		ToSql()
}

// buildUpsertResetTicketQuery stores the ticket, replacing any previous
// ticket of the same user.
func buildUpsertResetTicketQuery(ctx context.Context, ticket models.ResetTicket) (string, []any, error) {
	return psql.Insert(passwordResetsTbl).
		Columns(resetTicketColumns...).
		Values(ticket.Code, ticket.UserID, ticket.IssuedAt).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET code = EXCLUDED.code, issued_at = EXCLUDED.issued_at").
		ToSql()
}

func buildSelectResetTicketQuery(ctx context.Context, code string) (string, []any, error) {
	return psql.Select(resetTicketColumns...).
		From(passwordResetsTbl).
		Where(sq.Eq{"code": code}).
		ToSql()
}

// buildConsumeResetTicketQuery deletes the ticket and returns it in one
// statement; a concurrent second consumer gets no row.
func buildConsumeResetTicketQuery(ctx context.Context, code string) (string, []any, error) {
	return psql.Delete(passwordResetsTbl).
		Where(sq.Eq{"code": code}).
		Suffix(returning(resetTicketColumns)).
		ToSql()
}

func buildDeleteResetTicketsBeforeQuery(ctx context.Context, before time.Time) (string, []any, error) {
	return psql.Delete(passwordResetsTbl).
		Where(sq.Lt{"issued_at": before}).
		ToSql()
}
