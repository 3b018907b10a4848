// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.ConfirmationCode,
		&u.EmailConfirmed, &u.FirstName, &u.LastName, &u.Sex, &u.AboutAuthor,
		&u.Birthday, &u.ProfileImg, &u.Locale, &u.Admin, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// CreateUser implements [UserRepository].
//
// Error handling:
//   - unique_violation (23505) on user_name → [ErrUserNameAlreadyExists].
//   - unique_violation (23505) on email → [ErrEmailAlreadyExists].
//   - retryable driver errors → wrapped [ErrTransient].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if pgErr := postgresError(err); pgErr != nil && pgErr.Code == pgerrcode.UniqueViolation {
			log.Debug().Str("func", "*userRepository.CreateUser").Str("constraint", pgErr.ConstraintName).Msg("duplicate user")
			return models.User{}, uniqueViolation(pgErr)
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.db.wrapError(err)
	}

	return created, nil
}

// FindUserByID implements [UserRepository].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "id", id)
}

// FindUserByEmail implements [UserRepository].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByUserName implements [UserRepository].
func (r *userRepository) FindUserByUserName(ctx context.Context, userName string) (models.User, error) {
	return r.findUser(ctx, "user_name", userName)
}

// FindUserByConfirmationCode implements [UserRepository].
func (r *userRepository) FindUserByConfirmationCode(ctx context.Context, code string) (models.User, error) {
	return r.findUser(ctx, "confirmation_code", code)
}

func (r *userRepository) findUser(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(ctx, column, value)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Msg("error building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error selecting user")
		return models.User{}, r.db.wrapError(err)
	}

	return user, nil
}

// UpdateUserFields implements [UserRepository].
func (r *userRepository) UpdateUserFields(ctx context.Context, id string, fields map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserFieldsQuery(ctx, id, fields)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserFields").Msg("error building query")
		if errors.Is(err, ErrUnknownField) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUserFields").Str("user_id", id).Msg("error updating user")
		return models.User{}, r.db.wrapError(err)
	}

	return user, nil
}

// UpdateCredentials implements [UserRepository].
func (r *userRepository) UpdateCredentials(ctx context.Context, id, passwordHash, confirmationCode string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCredentialsQuery(ctx, id, passwordHash, confirmationCode)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateCredentials").Str("user_id", id).Msg("error updating credentials")
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ConfirmEmail implements [UserRepository].
func (r *userRepository) ConfirmEmail(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConfirmEmailQuery(ctx, id)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConfirmEmail").Msg("error building query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ConfirmEmail").Str("user_id", id).Msg("error confirming email")
		return false, err
	}

	return affected == 1, nil
}

func (r *userRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.db.wrapError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, r.db.wrapError(err)
	}

	return affected, nil
}
