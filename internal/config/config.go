// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-flight-board server. It aggregates all sub-configurations and is
// populated by merging values from environment variables (optionally
// preloaded from a .env file), command-line flags, an optional JSON file
// and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the token signing key
	// and token parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the user-record persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration of the upstream flight-data provider.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, logging and versioning.
type App struct {
	// TokenSignKey is the process-wide secret used to sign and verify JWT
	// tokens. Rotating it invalidates every previously issued token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance. Defaults to one hour.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LogLevel is the minimal zerolog level emitted by the server.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version overrides the build version reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the user-record store.
type DB struct {
	// DSN selects and configures the backend:
	//   - "postgres://..." or "postgresql://...": PostgreSQL via pgx;
	//   - "sqlite://path", "file:path" or a path ending in ".db": SQLite;
	//   - empty: in-process memory store (data is lost on restart).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health server
	// listens. Empty disables the gRPC server.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it. Zero disables the limit.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins lists CORS origins allowed to call the API.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Adapter holds configuration of the upstream flight-data provider.
type Adapter struct {
	// FlightsBaseURL is the base URL of the provider API; the flights
	// resource is requested at {FlightsBaseURL}/flights.
	// Env: ADAPTER_FLIGHTS_BASE_URL
	FlightsBaseURL string `env:"FLIGHTS_BASE_URL"`

	// FlightsAPIKey is the provider access key. When empty, flight queries
	// fail with a configuration error instead of failing at startup.
	// Env: ADAPTER_FLIGHTS_API_KEY
	FlightsAPIKey string `env:"FLIGHTS_API_KEY"`

	// RequestTimeout bounds a single upstream call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Default values applied to every field left empty by all other sources.
const (
	DefaultTokenIssuer    = "go-flight-board"
	DefaultTokenDuration  = time.Hour
	DefaultLogLevel       = "info"
	DefaultHTTPAddress    = "localhost:3000"
	DefaultFlightsBaseURL = "http://api.aviationstack.com/v1"
	DefaultAdapterTimeout = 10 * time.Second
	defaultDotEnvFileName = ".env"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			LogLevel:      DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress: DefaultHTTPAddress,
		},
		Adapter: Adapter{
			FlightsBaseURL: DefaultFlightsBaseURL,
			RequestTimeout: DefaultAdapterTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (the first
// source that sets a field wins):
//  1. Environment variables (a .env file in the working directory is loaded
//     into the environment first, without overriding existing variables)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvFileName).
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
