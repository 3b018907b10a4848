// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-blog-accounts/internal/logger"
)

// localImageStorage keeps profile images in a directory served under
// publicPath.
type localImageStorage struct {
	dir        string
	publicPath string
	logger     *logger.Logger
}

// NewLocalImageStorage returns an [ImageStorage] writing into dir. Stored
// images are addressed as publicPath/<name>.
func NewLocalImageStorage(dir, publicPath string, log *logger.Logger) (ImageStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating image directory: %w", err)
	}

	return &localImageStorage{
		dir:        dir,
		publicPath: strings.TrimSuffix(publicPath, "/"),
		logger:     log,
	}, nil
}

// SaveImage implements [ImageStorage].
func (s *localImageStorage) SaveImage(ctx context.Context, name, contentType string, data []byte) (string, error) {
	if !validImageName(name) {
		return "", ErrInvalidImageLocation
	}

	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*localImageStorage.SaveImage").Msg("error writing image")
		return "", fmt.Errorf("error writing image: %w", err)
	}

	return s.publicPath + "/" + name, nil
}

// DeleteImage implements [ImageStorage].
func (s *localImageStorage) DeleteImage(ctx context.Context, location string) error {
	name, ok := strings.CutPrefix(location, s.publicPath+"/")
	if !ok || !validImageName(name) {
		return ErrInvalidImageLocation
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error deleting image: %w", err)
	}

	return nil
}

// validImageName rejects names that would escape the storage root.
func validImageName(name string) bool {
	return name != "" && name != "." && name != ".." && path.Base(name) == name && !strings.ContainsAny(name, `/\`)
}
