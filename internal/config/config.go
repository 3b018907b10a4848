// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// accounts service.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, signing keys and the application version.
	App App `envPrefix:"APP_"`

	// Credentials holds password hashing and reset ticket settings.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`

	// Storage holds the database and profile image storage settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds the mail relay settings.
	Mail Mail `envPrefix:"MAIL_"`

	// Workers holds settings of background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey signs and verifies session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued session tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of a session token (e.g. "24h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// ConfirmationKey keys the HMAC of email confirmation codes.
	// Env: APP_CONFIRMATION_KEY
	ConfirmationKey string `env:"CONFIRMATION_KEY"`

	// Version is exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is the minimum level of emitted log entries.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Credentials holds credential lifecycle settings.
type Credentials struct {
	// BcryptCost is the bcrypt work factor.
	// Env: CREDENTIALS_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// ResetTicketTTL is how long a password reset code stays redeemable.
	// Env: CREDENTIALS_RESET_TICKET_TTL
	ResetTicketTTL time.Duration `env:"RESET_TICKET_TTL"`

	// PasswordMinLength is the minimum number of password characters.
	// Env: CREDENTIALS_PASSWORD_MIN_LENGTH
	PasswordMinLength int `env:"PASSWORD_MIN_LENGTH"`

	// HashWorkers bounds the number of concurrent hash computations.
	// Env: CREDENTIALS_HASH_WORKERS
	HashWorkers int `env:"HASH_WORKERS"`

	// DefaultLocale is assigned to users registering without a locale.
	// Env: CREDENTIALS_DEFAULT_LOCALE
	DefaultLocale string `env:"DEFAULT_LOCALE"`
}

// Storage groups the configuration of all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Images holds profile image storage settings.
	Images Images `envPrefix:"IMAGES_"`
}

// DB holds connection settings of the relational database.
type DB struct {
	// DSN is the PostgreSQL connection string. The value "memory://"
	// selects the in-memory store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Images holds profile image storage settings. When S3.Bucket is set images
// go to object storage, otherwise to Dir on the local file system.
type Images struct {
	// Dir is the local directory images are written to.
	// Env: STORAGE_IMAGES_DIR
	Dir string `env:"DIR"`

	// PublicPath is the URL prefix under which stored images are served.
	// Env: STORAGE_IMAGES_PUBLIC_PATH
	PublicPath string `env:"PUBLIC_PATH"`

	// MaxSize is the maximum accepted upload size in bytes.
	// Env: STORAGE_IMAGES_MAX_SIZE
	MaxSize int64 `env:"MAX_SIZE"`

	// S3 holds the object storage settings.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds S3-compatible object storage settings.
type S3 struct {
	Bucket          string `env:"BUCKET"`
	Region          string `env:"REGION"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE"`
}

// Server holds network and timeout settings of the HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the processing time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Mail holds the settings of the HTTP mail relay.
type Mail struct {
	// RelayURL is the base URL of the relay. Empty disables mail delivery.
	// Env: MAIL_RELAY_URL
	RelayURL string `env:"RELAY_URL"`

	// APIKey authenticates against the relay.
	// Env: MAIL_API_KEY
	APIKey string `env:"API_KEY"`

	// Sender is the From address of outgoing mail.
	// Env: MAIL_SENDER
	Sender string `env:"SENDER"`

	// PublicBaseURL is the site address used to build links in mails.
	// Env: MAIL_PUBLIC_BASE_URL
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	// Timeout bounds a single relay call.
	// Env: MAIL_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`

	// Retries is the number of retries on relay failures. Zero by default.
	// Env: MAIL_RETRIES
	Retries int `env:"RETRIES"`
}

// Workers holds background worker settings.
type Workers struct {
	// TicketPurgeInterval is how often stale reset tickets are removed.
	// Env: WORKERS_TICKET_PURGE_INTERVAL
	TicketPurgeInterval time.Duration `env:"TICKET_PURGE_INTERVAL"`

	// TicketRetention is how long after issuance a ticket is kept.
	// Env: WORKERS_TICKET_RETENTION
	TicketRetention time.Duration `env:"TICKET_RETENTION"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
