// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-accounts/internal/identity"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/service"
	"github.com/MKhiriev/go-blog-accounts/internal/utils"
	"github.com/MKhiriev/go-blog-accounts/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrBadRequest:              http.StatusBadRequest,
	service.ErrVersionIsNotSpecified:   http.StatusBadRequest,
	ErrInvalidJSON:                     http.StatusBadRequest,
	ErrInvalidMultipartForm:            http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader:      http.StatusUnauthorized,
	identity.ErrUnauthorized:           http.StatusUnauthorized,
	identity.ErrForbidden:              http.StatusForbidden,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrResetCodeNotFound:       http.StatusNotFound,
	service.ErrEmailAlreadyConfirmed:   http.StatusConflict,
	service.ErrResetCodeExpired:        http.StatusGone,
	service.ErrServerBusy:              http.StatusServiceUnavailable,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
}

// classifyError returns the mapped sentinel err matches and its status.
// Unmapped errors yield a nil sentinel and 500.
func classifyError(err error) (error, int) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return target, status
		}
	}
	return nil, http.StatusInternalServerError
}

func statusFromError(err error) int {
	_, status := classifyError(err)
	return status
}

// writeError logs err and writes it as an [models.ErrorResponse]. Validation
// errors carry their field messages; other errors expose only the message of
// their sentinel, unmapped ones only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	target, status := classifyError(err)

	var body models.ErrorResponse
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		body.Error = verr.Fields
	case target != nil:
		body.Error = target.Error()
	default:
		body.Error = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSON(w, body, status)
}
