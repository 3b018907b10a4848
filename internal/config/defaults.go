// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// MemoryDSN selects the in-memory store.
const MemoryDSN = "memory://"

// Defaults returns the built-in configuration values.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "blog-accounts",
			TokenDuration: 24 * time.Hour,
			LogLevel:      "info",
		},
		Credentials: Credentials{
			BcryptCost:        10,
			ResetTicketTTL:    48 * time.Hour,
			PasswordMinLength: 6,
			DefaultLocale:     "en",
		},
		Storage: Storage{
			Images: Images{
				Dir:        "./data/images",
				PublicPath: "/images",
				MaxSize:    5 << 20,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Mail: Mail{
			Timeout: 5 * time.Second,
		},
		Workers: Workers{
			TicketPurgeInterval: time.Hour,
			TicketRetention:     7 * 24 * time.Hour,
		},
	}
}
