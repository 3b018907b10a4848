// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"canceled", context.Canceled, NonRetryable},
		{"deadline wrapped", fmt.Errorf("query: %w", context.DeadlineExceeded), NonRetryable},
		{"bad conn", driver.ErrBadConn, Retryable},
		{"serialization", &pgconn.PgError{Code: pgerrcode.SerializationFailure}, Retryable},
		{"deadlock wrapped", fmt.Errorf("x: %w", &pgconn.PgError{Code: pgerrcode.DeadlockDetected}), Retryable},
		{"too many connections", &pgconn.PgError{Code: pgerrcode.TooManyConnections}, Retryable},
		{"admin shutdown", &pgconn.PgError{Code: pgerrcode.AdminShutdown}, Retryable},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, NonRetryable},
		{"syntax error", &pgconn.PgError{Code: pgerrcode.SyntaxError}, NonRetryable},
		{"plain", errors.New("boom"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestDB_wrapError(t *testing.T) {
	db := newDB(nil, nil)

	err := db.wrapError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})
	assert.ErrorIs(t, err, ErrTransient)

	err = db.wrapError(&pgconn.PgError{Code: pgerrcode.CheckViolation})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrTransient)
}

func Test_uniqueViolation(t *testing.T) {
	assert.ErrorIs(t, uniqueViolation(&pgconn.PgError{ConstraintName: "users_user_name_unique"}), ErrUserNameAlreadyExists)
	assert.ErrorIs(t, uniqueViolation(&pgconn.PgError{ConstraintName: "users_email_unique"}), ErrEmailAlreadyExists)

	err := uniqueViolation(&pgconn.PgError{ConstraintName: "other"})
	assert.NotErrorIs(t, err, ErrUserNameAlreadyExists)
	assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
}
