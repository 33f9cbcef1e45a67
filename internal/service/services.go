package service

import (
	"fmt"

	"github.com/Enigma-IIITS/dev-null/internal/cipher"
	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/store"
	"github.com/Enigma-IIITS/dev-null/internal/utils"
	"github.com/Enigma-IIITS/dev-null/internal/validators"
	"github.com/Enigma-IIITS/dev-null/models"
)

type Services struct {
	CipherService   CipherService
	ArtifactService ArtifactService
	AuthService     AuthService
	AppInfoService  AppInfoService
}

// NewServices wires the server's services. The cipher is shared by the
// encrypt/decrypt endpoints and artifact generation.
func NewServices(storages *store.Storages, c cipher.Cipher, cfg *config.ServerConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	flags, err := NewFlagDeriver(cfg.Challenge.FlagSecret, cfg.Challenge.FlagPrefix)
	if err != nil {
		return nil, fmt.Errorf("error creating flag deriver: %w", err)
	}

	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	validator := validators.NewRequestValidator(cfg.Challenge.AllowedTeams)

	cipherService := NewCipherValidationService(validator).
		Wrap(NewCipherService(c, logger))

	artifactService := NewArtifactValidationService(validator).
		Wrap(NewArtifactService(
			storages.ArtifactRepository,
			storages.ArtifactFileStorage,
			c,
			flags,
			utils.NewUUIDGenerator(),
			cfg.Cipher.Key,
			logger,
		))

	return &Services{
		CipherService:   cipherService,
		ArtifactService: artifactService,
		AuthService:     NewAuthService(cfg.App, logger),
		AppInfoService:  appInfo,
	}, nil
}
