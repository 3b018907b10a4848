// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		uri        string
		status     int
		body       string
		wantStatus float64
		wantSize   float64
	}{
		{name: "implicit 200", method: http.MethodGet, uri: "/api/users/alice", body: "hello", wantStatus: 200, wantSize: 5},
		{name: "explicit 201", method: http.MethodPost, uri: "/api/users/register", status: http.StatusCreated, body: "{}", wantStatus: 201, wantSize: 2},
		{name: "204 without body", method: http.MethodPatch, uri: "/api/users/alice/password", status: http.StatusNoContent, wantStatus: 204},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			h := newTestHandler(nil)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.status != 0 {
					w.WriteHeader(tt.status)
				}
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			req := httptest.NewRequest(tt.method, tt.uri, nil)
			req = req.WithContext(zerolog.New(buf).WithContext(req.Context()))
			rec := httptest.NewRecorder()

			h.withLogging(next).ServeHTTP(rec, req)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.uri, entry["uri"])
			assert.Equal(t, tt.wantStatus, entry["status"])
			assert.Equal(t, tt.wantSize, entry["size"])
			assert.Contains(t, entry, "duration")
			assert.Equal(t, tt.body, rec.Body.String())
		})
	}
}
