// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides the background machinery of the service: a
// bounded pool that offloads CPU-heavy work (password hashing) from request
// goroutines, and long-running workers such as the reset ticket purger.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker has nothing left to do.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// ResetTicketPurger deletes stale reset tickets.
type ResetTicketPurger interface {
	// DeleteResetTicketsIssuedBefore removes every ticket issued before t and
	// reports how many were removed.
	DeleteResetTicketsIssuedBefore(ctx context.Context, t time.Time) (int64, error)
}
