//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/Enigma-IIITS/dev-null/internal/service CipherService,ArtifactService,AuthService,AppInfoService,IDGenerator
package service

import (
	"context"
	"io"

	"github.com/Enigma-IIITS/dev-null/models"
)

// CipherService exposes the cipher to the HTTP layer.
type CipherService interface {
	Encrypt(ctx context.Context, req models.CipherRequest) (string, error)
	Decrypt(ctx context.Context, req models.CipherRequest) (string, error)
}

// ArtifactService builds and serves per-team puzzle archives.
type ArtifactService interface {
	// Generate returns the team's artifact, building it on first use.
	Generate(ctx context.Context, teamID string) (models.Artifact, error)
	// Archive opens the team's zip archive. The caller closes it.
	Archive(ctx context.Context, teamID string) (models.Artifact, io.ReadSeekCloser, error)
	// List returns every generated artifact.
	List(ctx context.Context) ([]models.Artifact, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, subject string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// IDGenerator issues artifact identifiers.
type IDGenerator interface {
	Generate() string
}

// CipherServiceWrapper decorates a CipherService with additional behavior
// such as validation.
type CipherServiceWrapper interface {
	Wrap(CipherService) CipherService
}

// ArtifactServiceWrapper decorates an ArtifactService.
type ArtifactServiceWrapper interface {
	Wrap(ArtifactService) ArtifactService
}
