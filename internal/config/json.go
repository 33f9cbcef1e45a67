package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of [StructuredConfig].
type StructuredJSONConfig struct {
	App struct {
		Version       string   `json:"version"`
		LogLevel      string   `json:"log_level"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
	} `json:"app,omitempty"`

	Cipher struct {
		Key               string `json:"key"`
		AlphabetCacheSize int    `json:"alphabet_cache_size"`
	} `json:"cipher,omitempty"`

	Challenge struct {
		FlagSecret   string   `json:"flag_secret"`
		FlagPrefix   string   `json:"flag_prefix"`
		AllowedTeams []string `json:"allowed_teams"`
	} `json:"challenge,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Files struct {
			ArtifactDir string `json:"artifact_dir"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		PregenerateTeams       []string `json:"pregenerate_teams"`
		PregenerateConcurrency int      `json:"pregenerate_concurrency"`
	} `json:"workers,omitempty"`

	Solver struct {
		InputFile       string `json:"input_file"`
		CopyToClipboard bool   `json:"copy_to_clipboard"`
		Remote          bool   `json:"remote"`
		Prompt          bool   `json:"prompt"`
	} `json:"solver,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version:       jsonCfg.App.Version,
			LogLevel:      jsonCfg.App.LogLevel,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
		},
		Cipher: Cipher{
			Key:               jsonCfg.Cipher.Key,
			AlphabetCacheSize: jsonCfg.Cipher.AlphabetCacheSize,
		},
		Challenge: Challenge{
			FlagSecret:   jsonCfg.Challenge.FlagSecret,
			FlagPrefix:   jsonCfg.Challenge.FlagPrefix,
			AllowedTeams: jsonCfg.Challenge.AllowedTeams,
		},
		Storage: Storage{
			DB:    DB{DSN: jsonCfg.Storage.DB.DSN},
			Files: Files{ArtifactDir: jsonCfg.Storage.Files.ArtifactDir},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			PregenerateTeams:       jsonCfg.Workers.PregenerateTeams,
			PregenerateConcurrency: jsonCfg.Workers.PregenerateConcurrency,
		},
		Solver: Solver{
			InputFile:       jsonCfg.Solver.InputFile,
			CopyToClipboard: jsonCfg.Solver.CopyToClipboard,
			Remote:          jsonCfg.Solver.Remote,
			Prompt:          jsonCfg.Solver.Prompt,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
