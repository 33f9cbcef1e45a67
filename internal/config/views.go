package config

import "fmt"

// ServerConfig is the part of [StructuredConfig] used by the cipher server.
type ServerConfig struct {
	App       App
	Cipher    Cipher
	Challenge Challenge
	Storage   Storage
	Server    Server
	Workers   Workers
}

// SolverConfig is the part of [StructuredConfig] used by the solver.
type SolverConfig struct {
	App     App
	Cipher  Cipher
	Adapter Adapter
	Solver  Solver
}

// TokenConfig is the part of [StructuredConfig] used by the token tool.
type TokenConfig struct {
	App App
}

// GetServerConfig loads the structured config and validates the server
// requirements.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return NewServerConfig(cfg)
}

// NewServerConfig derives and validates a [ServerConfig] view.
func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:       cfg.App,
		Cipher:    cfg.Cipher,
		Challenge: cfg.Challenge,
		Storage:   cfg.Storage,
		Server:    cfg.Server,
		Workers:   cfg.Workers,
	}
	return serverCfg, serverCfg.validate()
}

// GetSolverConfig loads the structured config and validates the solver
// requirements.
func GetSolverConfig() (*SolverConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	return NewSolverConfig(cfg)
}

// NewSolverConfig derives and validates a [SolverConfig] view.
func NewSolverConfig(cfg *StructuredConfig) (*SolverConfig, error) {
	solverCfg := &SolverConfig{
		App:     cfg.App,
		Cipher:  cfg.Cipher,
		Adapter: cfg.Adapter,
		Solver:  cfg.Solver,
	}
	return solverCfg, solverCfg.validate()
}

// GetTokenConfig loads the structured config and validates the token tool
// requirements.
func GetTokenConfig() (*TokenConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}
	tokenCfg := &TokenConfig{App: cfg.App}
	return tokenCfg, tokenCfg.validate()
}
