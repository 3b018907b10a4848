// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle of the process.
type Server interface {
	// RunServer serves requests and blocks until a stop signal arrives and
	// shutdown has finished.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight ones.
	Shutdown()
}
