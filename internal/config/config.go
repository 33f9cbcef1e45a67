// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// cipher server, the solver and the token tool. It is populated by merging
// defaults, environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: version, log level and the admin
	// token parameters.
	App App `envPrefix:"APP_"`

	// Cipher holds the puzzle key and the alphabet cache size.
	Cipher Cipher `envPrefix:"CIPHER_"`

	// Challenge holds the flag derivation parameters.
	Challenge Challenge `envPrefix:"CHALLENGE_"`

	// Storage holds the artifact database and archive directory settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the solver uses to reach a remote server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background artifact pre-generation settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Solver holds the reference solver's input and output options.
	Solver Solver `envPrefix:"SOLVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// TokenSignKey is the HMAC secret used to sign and verify admin JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued admin tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued admin tokens.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// Cipher holds the obfuscation pipeline settings.
type Cipher struct {
	// Key is the puzzle key used for every stage.
	// Env: CIPHER_KEY
	Key string `env:"KEY"`

	// AlphabetCacheSize bounds the number of memoized substitution alphabets.
	// Env: CIPHER_ALPHABET_CACHE_SIZE
	AlphabetCacheSize int `env:"ALPHABET_CACHE_SIZE"`
}

// Challenge holds the per-team flag derivation settings.
type Challenge struct {
	// FlagSecret keys the per-team flag hash. Must be kept confidential.
	// Env: CHALLENGE_FLAG_SECRET
	FlagSecret string `env:"FLAG_SECRET"`

	// FlagPrefix is prepended to the hash inside ENIGMA{...}.
	// Env: CHALLENGE_FLAG_PREFIX
	FlagPrefix string `env:"FLAG_PREFIX"`

	// AllowedTeams restricts generation to these team IDs when non-empty.
	// Env: CHALLENGE_ALLOWED_TEAMS (comma separated)
	AllowedTeams []string `env:"ALLOWED_TEAMS"`
}

// Storage groups the persistence settings.
type Storage struct {
	// DB holds the artifact database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the archive directory settings.
	Files Files `envPrefix:"FILES_"`
}

// DB holds connection settings for the artifact database.
type DB struct {
	// DSN selects the driver by form: "postgres://..." or "postgresql://..."
	// opens PostgreSQL via pgx, anything else is treated as a SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for generated artifacts.
type Files struct {
	// ArtifactDir is where per-team folders and zip archives are written.
	// Env: STORAGE_FILES_ARTIFACT_DIR
	ArtifactDir string `env:"ARTIFACT_DIR"`
}

// Server holds network and timeout settings for the HTTP listener.
type Server struct {
	// HTTPAddress is the listen address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the outbound HTTP settings used by the solver's remote mode.
type Adapter struct {
	// HTTPAddress is the base URL of the cipher server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// PregenerateTeams lists team IDs whose artifacts are built at startup.
	// Env: WORKERS_PREGENERATE_TEAMS (comma separated)
	PregenerateTeams []string `env:"PREGENERATE_TEAMS"`

	// PregenerateConcurrency bounds parallel generation.
	// Env: WORKERS_PREGENERATE_CONCURRENCY
	PregenerateConcurrency int `env:"PREGENERATE_CONCURRENCY"`
}

// Solver holds the reference solver options.
type Solver struct {
	// InputFile is the ciphertext file to decrypt.
	// Env: SOLVER_INPUT_FILE
	InputFile string `env:"INPUT_FILE"`

	// CopyToClipboard copies the extracted flag to the system clipboard.
	// Env: SOLVER_COPY
	CopyToClipboard bool `env:"COPY"`

	// Remote decrypts through the cipher server instead of locally.
	// Env: SOLVER_REMOTE
	Remote bool `env:"REMOTE"`

	// Prompt asks for the input file interactively when none was given.
	// Env: SOLVER_PROMPT
	Prompt bool `env:"PROMPT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources, reading flags from os.Args. Sources are applied in the
// following order (later sources override non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return LoadStructuredConfig(os.Args[1:])
}

// LoadStructuredConfig is [GetStructuredConfig] with explicit flag arguments.
func LoadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
