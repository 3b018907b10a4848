// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/models"
)

// resetTicketRepository is the PostgreSQL-backed [ResetTicketRepository].
// The one-ticket-per-user rule is the primary key on user_id.
type resetTicketRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewResetTicketRepository constructs a [ResetTicketRepository] backed by db.
func NewResetTicketRepository(db *DB, logger *logger.Logger) ResetTicketRepository {
	logger.Debug().Msg("creating reset ticket repository")
	return &resetTicketRepository{
		db:     db,
		logger: logger,
	}
}

func scanResetTicket(row rowScanner) (models.ResetTicket, error) {
	var t models.ResetTicket
	err := row.Scan(&t.Code, &t.UserID, &t.IssuedAt)
	return t, err
}

// UpsertResetTicket implements [ResetTicketRepository].
func (r *resetTicketRepository) UpsertResetTicket(ctx context.Context, ticket models.ResetTicket) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertResetTicketQuery(ctx, ticket)
	if err != nil {
		log.Err(err).Str("func", "*resetTicketRepository.UpsertResetTicket").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resetTicketRepository.UpsertResetTicket").Str("user_id", ticket.UserID).Msg("error saving reset ticket")
		return r.db.wrapError(err)
	}

	return nil
}

// FindResetTicket implements [ResetTicketRepository].
func (r *resetTicketRepository) FindResetTicket(ctx context.Context, code string) (models.ResetTicket, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResetTicketQuery(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*resetTicketRepository.FindResetTicket").Msg("error building query")
		return models.ResetTicket{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTicket(ctx, "*resetTicketRepository.FindResetTicket", query, args...)
}

// ConsumeResetTicket implements [ResetTicketRepository].
func (r *resetTicketRepository) ConsumeResetTicket(ctx context.Context, code string) (models.ResetTicket, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildConsumeResetTicketQuery(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "*resetTicketRepository.ConsumeResetTicket").Msg("error building query")
		return models.ResetTicket{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryTicket(ctx, "*resetTicketRepository.ConsumeResetTicket", query, args...)
}

func (r *resetTicketRepository) queryTicket(ctx context.Context, fn, query string, args ...any) (models.ResetTicket, error) {
	ticket, err := scanResetTicket(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResetTicket{}, ErrResetTicketNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("error querying reset ticket")
		return models.ResetTicket{}, r.db.wrapError(err)
	}

	return ticket, nil
}

// DeleteResetTicketsIssuedBefore implements [ResetTicketRepository].
func (r *resetTicketRepository) DeleteResetTicketsIssuedBefore(ctx context.Context, t time.Time) (int64, error) {
	query, args, err := buildDeleteResetTicketsBeforeQuery(ctx, t)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "*resetTicketRepository.DeleteResetTicketsIssuedBefore").Msg("error deleting reset tickets")
		return 0, r.db.wrapError(err)
	}

	return res.RowsAffected()
}
