// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the REST API.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/api/version", h.getServerVersion)

	router.Route("/api/users", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/confirm", h.confirmEmail)

		r.Post("/remind-password", h.remindPassword)
		r.Get("/reset-password", h.checkResetCode)
		r.Post("/reset-password", h.resetPassword)

		r.Get("/me", h.getOwnerProfile)

		r.Get("/{username}", h.getProfile)
		r.Patch("/{username}", h.updateProfile)
		r.Patch("/{username}/password", h.updatePassword)
		r.Post("/{username}/image", h.uploadProfileImage)
		r.Get("/{username}/sex-options", h.sexOptions)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
