// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the accounts service.
//
// Handlers decode requests, call the service layer and map its errors to
// status codes. Middleware attaches a trace-scoped logger, logs every request
// and resolves an optional bearer token into the caller identity.
package http
