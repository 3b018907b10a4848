// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-blog-accounts/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getOwnerProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetOwnerProfile(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.services.ProfileService.GetProfile(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// updateProfile takes a JSON object of field -> value. Unknown and
// non-editable fields are dropped by the service.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var update map[string]any
	if err := utils.DecodeJSON(w, r, &update, maxJSONBodyBytes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(r.Context(), chi.URLParam(r, "username"), update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

// uploadProfileImage reads the image from the "image" field of a multipart
// form. A form without the field reaches the service with no data.
func (h *Handler) uploadProfileImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBodyBytes)

	reader, err := r.MultipartReader()
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
		return
	}

	var data []byte
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
			return
		}
		if part.FormName() != imageFormField {
			part.Close()
			continue
		}

		data, err = io.ReadAll(part)
		part.Close()
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err))
			return
		}
		break
	}

	resp, err := h.services.ProfileService.UploadProfileImage(r.Context(), chi.URLParam(r, "username"), data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) sexOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.services.ProfileService.SexOptions(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, options, http.StatusOK)
}
