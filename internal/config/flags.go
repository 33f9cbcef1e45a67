package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args. The first positional
// argument, if any, is taken as the solver input file.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f artifact directory
//	-c/-config json file path with configs
//	-k/-key cipher key
//	-flag-secret flag derivation secret
//	-flag-prefix flag prefix inside ENIGMA{...}
//	-token-sign-key admin token signing key
//	-token-issuer admin token issuer
//	-token-duration admin token lifetime (e.g. "1h")
//	-request-timeout server request timeout (e.g. "30s")
//	-log-level zerolog level name
//	-server cipher server base URL for remote solving
//	-remote decrypt through the cipher server
//	-copy copy the extracted flag to the clipboard
//	-prompt ask for the input file interactively
//	-i ciphertext input file
//	-pregenerate comma-separated team IDs to pre-generate
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN, artifactDir, jsonConfigPath string
	var cipherKey, flagSecret, flagPrefix string
	var tokenSignKey, tokenIssuer, logLevel string
	var tokenDuration, requestTimeout time.Duration
	var adapterAddress, inputFile, pregenerate string
	var remote, copyFlag, prompt bool

	fs := flag.NewFlagSet("cipher-chase", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&artifactDir, "f", "", "Artifact directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cipherKey, "k", "", "Cipher key")
	fs.StringVar(&cipherKey, "key", "", "Cipher key (alias)")
	fs.StringVar(&flagSecret, "flag-secret", "", "Flag derivation secret")
	fs.StringVar(&flagPrefix, "flag-prefix", "", "Flag prefix")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&adapterAddress, "server", "", "Cipher server base URL")
	fs.BoolVar(&remote, "remote", false, "Decrypt through the cipher server")
	fs.BoolVar(&copyFlag, "copy", false, "Copy the extracted flag to the clipboard")
	fs.BoolVar(&prompt, "prompt", false, "Ask for the input file interactively")
	fs.StringVar(&inputFile, "i", "", "Ciphertext input file")
	fs.StringVar(&pregenerate, "pregenerate", "", "Comma-separated team IDs to pre-generate")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if inputFile == "" && fs.NArg() > 0 {
		inputFile = fs.Arg(0)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:      logLevel,
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Cipher: Cipher{
			Key: cipherKey,
		},
		Challenge: Challenge{
			FlagSecret: flagSecret,
			FlagPrefix: flagPrefix,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{ArtifactDir: artifactDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: adapterAddress,
		},
		Workers: Workers{
			PregenerateTeams: splitList(pregenerate),
		},
		Solver: Solver{
			InputFile:       inputFile,
			CopyToClipboard: copyFlag,
			Remote:          remote,
			Prompt:          prompt,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
