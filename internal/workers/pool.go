// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/sync/semaphore"
)

// ErrPoolBusy is returned when a task could not get a slot before its
// context was done.
var ErrPoolBusy = errors.New("worker pool is busy")

// Pool bounds the number of tasks running at the same time.
//
// Tasks run on the caller's goroutine once a slot is acquired, so a task
// that has started always runs to completion even if its context is
// cancelled afterwards.
type Pool struct {
	sem  *semaphore.Weighted
	size int
}

// NewPool returns a pool with size slots. A non-positive size uses
// runtime.NumCPU.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{
		sem:  semaphore.NewWeighted(int64(size)),
		size: size,
	}
}

// Size returns the number of slots of the pool.
func (p *Pool) Size() int {
	return p.size
}

// Do waits for a free slot and runs task. Waiting respects ctx; on
// cancellation the task is not run and an error wrapping [ErrPoolBusy] and
// the context error is returned.
func (p *Pool) Do(ctx context.Context, task func() error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%w: %w", ErrPoolBusy, err)
	}
	defer p.sem.Release(1)

	return task()
}
