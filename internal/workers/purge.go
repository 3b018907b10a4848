// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/logger"
)

// TicketPurger periodically removes reset tickets that expired long enough
// ago that nobody can be waiting on a "code outdated" answer anymore.
type TicketPurger struct {
	store     ResetTicketPurger
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

// NewTicketPurger removes tickets older than retention every interval.
func NewTicketPurger(store ResetTicketPurger, interval, retention time.Duration, log *logger.Logger) *TicketPurger {
	return &TicketPurger{
		store:     store,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		logger:    log,
	}
}

// Run implements [Worker].
func (p *TicketPurger) Run(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.purge(ctx)
		}
	}
}

func (p *TicketPurger) purge(ctx context.Context) {
	before := p.now().Add(-p.retention)

	n, err := p.store.DeleteResetTicketsIssuedBefore(ctx, before)
	if err != nil {
		p.logger.Err(err).Str("func", "TicketPurger.purge").Msg("error purging stale reset tickets")
		return
	}
	if n > 0 {
		p.logger.Info().Str("func", "TicketPurger.purge").Int64("deleted", n).Msg("stale reset tickets purged")
	}
}
