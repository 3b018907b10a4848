// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/service"
)

const (
	// maxJSONBodyBytes limits decoded JSON request bodies.
	maxJSONBodyBytes = 1 << 20

	// maxImageBodyBytes limits multipart image uploads. The service applies
	// its own, smaller limit to the image itself.
	maxImageBodyBytes = 16 << 20

	// imageFormField is the multipart field carrying the profile image.
	imageFormField = "image"
)

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
