// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-cert-keeper server. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application identity and token signing settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Security holds the TTLs and thresholds of the authentication subsystem.
	Security Security `envPrefix:"SECURITY_"`

	// Adapter holds settings of outbound integrations and of the CLI client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// Name is shown to anonymous clients and used as the TOTP issuer
	// when Security.TotpIssuer is empty.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is exposed via the global info endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenSignKey is the HMAC key used to sign session tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the absolute session lifetime (e.g. "12h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// SecretKey is the server master secret the TOTP sealing key is
	// derived from. Changing it makes a bound authenticator unreadable.
	// Env: APP_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// Driver is "pgx" for PostgreSQL or "sqlite3" for a single file database.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the driver specific connection string.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the processing time of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Security holds the knobs of the challenge, lockout, replay, session and
// TOTP components.
type Security struct {
	// LoginChallengeTTL is how long a login challenge stays poppable.
	// Env: SECURITY_LOGIN_CHALLENGE_TTL
	LoginChallengeTTL time.Duration `env:"LOGIN_CHALLENGE_TTL"`

	// ChallengeTTL applies to every other challenge purpose.
	// Env: SECURITY_CHALLENGE_TTL
	ChallengeTTL time.Duration `env:"CHALLENGE_TTL"`

	// TotpEnrollTTL is how long a staged TOTP secret waits for confirmation.
	// Env: SECURITY_TOTP_ENROLL_TTL
	TotpEnrollTTL time.Duration `env:"TOTP_ENROLL_TTL"`

	// TotpIssuer is the issuer label written into provisioning URIs.
	// Env: SECURITY_TOTP_ISSUER
	TotpIssuer string `env:"TOTP_ISSUER"`

	// ReplayWindow is the accepted clock skew of signed requests.
	// Env: SECURITY_REPLAY_WINDOW
	ReplayWindow time.Duration `env:"REPLAY_WINDOW"`

	// LockoutThreshold is the number of same-day failures that lock login.
	// Env: SECURITY_LOCKOUT_THRESHOLD
	LockoutThreshold int `env:"LOCKOUT_THRESHOLD"`

	// SessionIdleTimeout ends sessions without activity.
	// Env: SECURITY_SESSION_IDLE_TIMEOUT
	SessionIdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT"`

	// GeoLookupURL is the base URL of the IP geolocation service.
	// Env: SECURITY_GEO_LOOKUP_URL
	GeoLookupURL string `env:"GEO_LOOKUP_URL"`

	// GeoLookupTimeout bounds a single geolocation request.
	// Env: SECURITY_GEO_LOOKUP_TIMEOUT
	GeoLookupTimeout time.Duration `env:"GEO_LOOKUP_TIMEOUT"`

	// TrustedProxies lists the addresses or CIDR ranges of reverse proxies
	// whose X-Forwarded-For and X-Real-IP headers are believed. Empty means
	// the connection's remote address is always the client.
	// Env: SECURITY_TRUSTED_PROXIES (comma separated)
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

// Adapter holds settings used by the CLI client to reach the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SweepInterval is how often expired challenges, sessions and nonces
	// are evicted from memory.
	// Env: WORKERS_SWEEP_INTERVAL
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Defaults are filled in for every field still empty after merging.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
