// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserNameAlreadyExists is returned when the user name is taken.
	ErrUserNameAlreadyExists = errors.New("user name already exists")

	// ErrEmailAlreadyExists is returned when the email is taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrResetTicketNotFound is returned when no reset ticket has the code.
	ErrResetTicketNotFound = errors.New("reset ticket was not found")

	// ErrUnknownField is returned when an update names a field that has no
	// storage column.
	ErrUnknownField = errors.New("unknown user field")

	// ErrTransient wraps failures the classifier considers retryable, such as
	// lost connections or serialization conflicts.
	ErrTransient = errors.New("transient storage failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrNilDB is returned when a repository is used without a database.
	ErrNilDB = errors.New("db is nil")
)

// Image storage errors.
var (
	// ErrInvalidImageLocation is returned when a location does not belong to
	// the storage it is passed to.
	ErrInvalidImageLocation = errors.New("invalid image location")
)
