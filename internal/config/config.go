package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// travel-agent backend. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: token signing parameters and
	// the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backends: the
	// relational user store and the saved-itinerary store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout, and CORS settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// OpenAI holds the upstream model provider settings.
	OpenAI OpenAI `envPrefix:"OPENAI_"`

	// Countries holds settings for the country-facts lookup adapter used
	// to enrich filter-based prompts.
	Countries Countries `envPrefix:"COUNTRIES_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenAlgorithm is the JWT signing algorithm (HS256, HS384 or HS512).
	// Defaults to HS256.
	// Env: APP_TOKEN_ALGORITHM
	TokenAlgorithm string `env:"TOKEN_ALGORITHM"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m"). Defaults to one hour.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Itineraries holds the saved-itinerary store settings.
	Itineraries Itineraries `envPrefix:"ITINERARIES_"`
}

// DB holds connection settings for the relational user store.
type DB struct {
	// DSN is the database connection string. A "postgres://" scheme selects
	// the PostgreSQL backend; any other value is treated as a SQLite file
	// path (local development).
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Itineraries holds settings for the saved-itinerary store.
type Itineraries struct {
	// Backend selects the store implementation: "memory" (default) keeps
	// saved packages in process memory; "redis" persists them in Redis.
	// Env: STORAGE_ITINERARIES_BACKEND
	Backend string `env:"BACKEND"`

	// RedisAddr is the host:port of the Redis server. Required when
	// Backend is "redis".
	// Env: STORAGE_ITINERARIES_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`

	// RedisPassword is the optional Redis AUTH password.
	// Env: STORAGE_ITINERARIES_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
}

// Server holds network and timeout settings for the inbound HTTP transport.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the fixed CORS allow-list.
	// Env: SERVER_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS"`
}

// OpenAI holds the upstream completion-model settings.
type OpenAI struct {
	// APIKey authenticates against the provider.
	// Env: OPENAI_API_KEY
	APIKey string `env:"API_KEY"`

	// BaseURL overrides the provider endpoint; useful for compatible
	// gateways and for tests. Empty means the provider default.
	// Env: OPENAI_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Model is the completion model identifier. Defaults to "gpt-4".
	// Env: OPENAI_MODEL
	Model string `env:"MODEL"`

	// Temperature is the sampling temperature. Defaults to 0.7.
	// Env: OPENAI_TEMPERATURE
	Temperature float64 `env:"TEMPERATURE"`

	// RequestTimeout bounds a single completion call.
	// Env: OPENAI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Countries holds settings for the REST Countries lookup adapter.
type Countries struct {
	// BaseURL is the REST Countries API root. Empty disables prompt
	// enrichment entirely.
	// Env: COUNTRIES_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single lookup call.
	// Env: COUNTRIES_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
