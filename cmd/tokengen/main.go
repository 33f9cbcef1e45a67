// Command tokengen issues an admin token for the artifact endpoints.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/service"
)

type tokenRequest struct {
	Subject string `env:"TOKEN_SUBJECT" envDefault:"platform"`
}

func main() {
	log := logger.NewConsoleLogger("cipher-chase-tokengen", os.Stderr)

	cfg, err := config.GetTokenConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var req tokenRequest
	if err = env.Parse(&req); err != nil {
		log.Fatal().Err(err).Msg("error parsing token request")
	}

	token, err := service.NewAuthService(cfg.App, log).CreateToken(context.Background(), req.Subject)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token")
	}

	fmt.Println(token.SignedString)
}
