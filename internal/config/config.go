// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Veilpost Labs

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// veilpost applications. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the password policy
	// and the application version.
	App App `envPrefix:"APP_"`

	// Auth holds token and verification settings used by the
	// development server.
	Auth Auth `envPrefix:"AUTH_"`

	// Storage holds configuration for all persistence backends: the
	// local account database and the OS keyring.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the
	// development server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the account server endpoint used by the client
	// transport layer.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// MinPasswordScore is the minimum acceptable password strength
	// score for registration, on the zxcvbn 0..4 scale.
	// Env: APP_MIN_PASSWORD_SCORE
	MinPasswordScore int `env:"MIN_PASSWORD_SCORE"`

	// CaptchaRequired makes registration and login demand a captcha
	// token before any request leaves the client.
	// Env: APP_CAPTCHA_REQUIRED
	CaptchaRequired bool `env:"CAPTCHA_REQUIRED"`
}

// Auth holds token and verification settings for the development server.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify JWT
	// tokens. Must be kept confidential.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT
	// token. It is validated on every authenticated request.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a default session token remains
	// valid after issuance (e.g. "720h"). Logins that ask for a one-day
	// session get a fixed 24h token instead.
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// OTPIssuer is the issuer label stamped into TOTP provisioning
	// URIs so authenticator apps show a recognizable account name.
	// Env: AUTH_OTP_ISSUER
	OTPIssuer string `env:"OTP_ISSUER"`

	// HashKey is the HMAC key for address verification tokens.
	// Distinct from TokenSignKey.
	// Env: AUTH_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the local account database settings.
	DB DB `envPrefix:"DB_"`

	// Keyring holds the OS keyring settings for the session secret
	// store.
	Keyring Keyring `envPrefix:"KEYRING_"`
}

// DB holds connection settings for the local account database.
type DB struct {
	// DSN is the SQLite path or connection string for the local
	// known-accounts database (e.g. "veilpost-client.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Keyring holds OS keyring settings.
type Keyring struct {
	// ServiceName is the keyring service label under which session
	// secrets are stored.
	// Env: STORAGE_KEYRING_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// Server holds network and timeout settings for the development server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the account server endpoint used by the client.
type Adapter struct {
	// HTTPAddress is the base URL or "host:port" of the account server
	// the client talks to.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout for outbound client requests
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// DeriveQueueSize is the buffer size of the key-derivation worker's
	// job queue.
	// Env: WORKERS_DERIVE_QUEUE_SIZE
	DeriveQueueSize int `env:"DERIVE_QUEUE_SIZE"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (earlier sources
// win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
