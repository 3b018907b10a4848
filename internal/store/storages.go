// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
)

// Storages bundles every storage dependency of the service layer.
type Storages struct {
	UserRepository        UserRepository
	ResetTicketRepository ResetTicketRepository
	ImageStorage          ImageStorage

	db *DB
}

// NewStorages connects the configured backends. The DSN "memory://"
// selects [MemoryStore]; otherwise PostgreSQL is used and migrated.
// Images go to S3 when a bucket is configured, else to the local directory.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	images, err := newImageStorage(ctx, cfg.Images, log)
	if err != nil {
		return nil, err
	}

	if cfg.DB.DSN == config.MemoryDSN {
		log.Info().Str("func", "NewStorages").Msg("using in-memory storage")
		mem := NewMemoryStore()
		return &Storages{
			UserRepository:        mem,
			ResetTicketRepository: mem,
			ImageStorage:          images,
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		ResetTicketRepository: NewResetTicketRepository(db, log),
		ImageStorage:          images,
		db:                    db,
	}, nil
}

func newImageStorage(ctx context.Context, cfg config.Images, log *logger.Logger) (ImageStorage, error) {
	if cfg.S3.Bucket != "" {
		return NewS3ImageStorage(ctx, cfg, log)
	}
	return NewLocalImageStorage(cfg.Dir, cfg.PublicPath, log)
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
