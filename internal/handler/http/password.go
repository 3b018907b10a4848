// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/service"
	"github.com/MKhiriev/go-blog-accounts/internal/utils"
	"github.com/MKhiriev/go-blog-accounts/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordUpdateRequest
	if err := utils.DecodeJSON(w, r, &req, maxJSONBodyBytes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.PasswordService.UpdatePassword(r.Context(), chi.URLParam(r, "username"), req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// remindPassword answers 204 for unknown addresses too, so the endpoint
// cannot be used to probe which emails are registered.
func (h *Handler) remindPassword(w http.ResponseWriter, r *http.Request) {
	var req models.RemindPasswordRequest
	if err := utils.DecodeJSON(w, r, &req, maxJSONBodyBytes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	err := h.services.PasswordService.RemindPassword(r.Context(), req)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		logger.FromRequest(r).Debug().Msg("password reminder for unknown email")
	case err != nil:
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) checkResetCode(w http.ResponseWriter, r *http.Request) {
	grant, err := h.services.PasswordService.CheckResetCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, grant, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.ResetPasswordRequest
	if err := utils.DecodeJSON(w, r, &req, maxJSONBodyBytes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.PasswordService.ResetPassword(r.Context(), req); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
