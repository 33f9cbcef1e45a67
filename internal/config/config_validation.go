// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks invariants that hold for every binary. Requirements
// specific to one binary are checked by its view (see [GetServerConfig],
// [GetSolverConfig] and [GetTokenConfig]).
func (cfg *StructuredConfig) validate() error {
	if cfg.Cipher.AlphabetCacheSize < 0 {
		return fmt.Errorf("%w: negative alphabet cache size", ErrInvalidCipherConfigs)
	}
	if cfg.Workers.PregenerateConcurrency < 0 {
		return fmt.Errorf("%w: negative pre-generation concurrency", ErrInvalidWorkerConfigs)
	}
	return nil
}

func (cfg *ServerConfig) validate() error {
	if err := validateCipher(cfg.Cipher); err != nil {
		return err
	}
	if cfg.Cipher.AlphabetCacheSize == 0 {
		return fmt.Errorf("%w: alphabet cache size must be positive", ErrInvalidCipherConfigs)
	}
	if cfg.Challenge.FlagSecret == "" {
		return fmt.Errorf("%w: flag secret is required", ErrInvalidChallengeConfigs)
	}
	if cfg.Storage.DB.DSN == "" || cfg.Storage.Files.ArtifactDir == "" {
		return ErrInvalidStorageConfigs
	}
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return fmt.Errorf("%w: token sign key and issuer are required", ErrInvalidAppConfigs)
	}
	return nil
}

func (cfg *SolverConfig) validate() error {
	if err := validateCipher(cfg.Cipher); err != nil {
		return err
	}
	if cfg.Solver.Remote && (cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0) {
		return ErrInvalidAdapterConfigs
	}
	return nil
}

func (cfg *TokenConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}
	return nil
}

func validateCipher(c Cipher) error {
	if c.Key == "" {
		return fmt.Errorf("%w: key must not be empty", ErrInvalidCipherConfigs)
	}
	return nil
}
