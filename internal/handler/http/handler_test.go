// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, config.Server{RequestTimeout: 3 * time.Second}, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.Equal(t, 3*time.Second, h.requestTimeout)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	services, _, _, _ := newTestServices()
	router := newTestHandler(services).Init()

	var got []string
	err := chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got = append(got, method+" "+route)
		return nil
	})
	require.NoError(t, err)

	want := []string{
		"GET /api/version",
		"POST /api/users/register",
		"POST /api/users/login",
		"GET /api/users/confirm",
		"POST /api/users/remind-password",
		"GET /api/users/reset-password",
		"POST /api/users/reset-password",
		"GET /api/users/me",
		"GET /api/users/{username}",
		"PATCH /api/users/{username}",
		"PATCH /api/users/{username}/password",
		"POST /api/users/{username}/image",
		"GET /api/users/{username}/sex-options",
	}
	sort.Strings(want)
	sort.Strings(got)
	assert.Equal(t, want, got)
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	services, _, _, _ := newTestServices()

	rec := serve(t, newTestHandler(services), http.MethodGet, "/api/nonexistent", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	services, _, _, _ := newTestServices()
	router := newTestHandler(services).Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodPost, "/api/version"},
		{http.MethodDelete, "/api/users/alice"},
		{http.MethodPut, "/api/users/register"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_EchoesTraceID(t *testing.T) {
	services, _, _, _ := newTestServices()
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-1")
	rec := httptest.NewRecorder()

	newTestHandler(services).Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-1", rec.Header().Get(traceIDHeader))
}
