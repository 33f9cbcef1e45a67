package config

import "errors"

// Validation errors returned when a required configuration group is
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token signing key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCipherConfigs indicates an empty cipher key or a
	// non-positive alphabet cache size.
	ErrInvalidCipherConfigs = errors.New("invalid cipher configuration")
	// ErrInvalidChallengeConfigs indicates a missing flag secret.
	ErrInvalidChallengeConfigs = errors.New("invalid challenge configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or artifact directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid remote solver settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkerConfigs indicates a negative pre-generation
	// concurrency.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
