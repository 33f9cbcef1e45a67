package config

import "time"

// Built-in defaults. They reproduce the original challenge setup: key
// "enigma", flag prefix "D3crypt!_C0mp13t3_" and an "encrypted.txt" input.
const (
	DefaultCipherKey          = "enigma"
	DefaultFlagPrefix         = "D3crypt!_C0mp13t3_"
	DefaultInputFile          = "encrypted.txt"
	DefaultArtifactDir        = "files"
	DefaultDSN                = "cipher_chase.db"
	DefaultHTTPAddress        = "localhost:8080"
	DefaultAdapterAddress     = "http://localhost:8080"
	DefaultTokenIssuer        = "cipher-chase"
	defaultAlphabetCacheSize  = 128
	defaultPregenerateWorkers = 4
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:      "info",
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: time.Hour,
		},
		Cipher: Cipher{
			Key:               DefaultCipherKey,
			AlphabetCacheSize: defaultAlphabetCacheSize,
		},
		Challenge: Challenge{
			FlagPrefix: DefaultFlagPrefix,
		},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{ArtifactDir: DefaultArtifactDir},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			PregenerateConcurrency: defaultPregenerateWorkers,
		},
		Solver: Solver{
			InputFile: DefaultInputFile,
		},
	}
}
