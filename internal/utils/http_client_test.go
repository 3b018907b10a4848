// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Configured(t *testing.T) {
	client := NewHTTPClient("http://relay.local", 3*time.Second, 2)

	require.NotNil(t, client.Client)
	assert.Equal(t, "http://relay.local", client.BaseURL)
	assert.Equal(t, 2, client.RetryCount)
}

func TestNewHTTPClient_Independence(t *testing.T) {
	assert.NotSame(t, NewHTTPClient("", 0, 0).Client, NewHTTPClient("", 0, 0).Client)
}

func TestNewHTTPClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	resp, err := NewHTTPClient(srv.URL, time.Second, 2).R().Get("/status")

	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, resp.StatusCode())
	assert.EqualValues(t, 3, calls.Load())
}
