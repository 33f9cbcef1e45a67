package service

import (
	"context"
	"fmt"
	"io"

	"github.com/Enigma-IIITS/dev-null/internal/validators"
	"github.com/Enigma-IIITS/dev-null/models"
)

type ArtifactValidationService struct {
	inner     ArtifactService
	validator validators.Validator
}

func NewArtifactValidationService(validator validators.Validator) ArtifactServiceWrapper {
	return &ArtifactValidationService{validator: validator}
}

func (v *ArtifactValidationService) Generate(ctx context.Context, teamID string) (models.Artifact, error) {
	if err := v.validator.Validate(ctx, models.ArtifactRequest{TeamID: teamID}); err != nil {
		return models.Artifact{}, fmt.Errorf("error during team validation: %w", err)
	}
	return v.inner.Generate(ctx, teamID)
}

func (v *ArtifactValidationService) Archive(ctx context.Context, teamID string) (models.Artifact, io.ReadSeekCloser, error) {
	if err := v.validator.Validate(ctx, models.ArtifactRequest{TeamID: teamID}); err != nil {
		return models.Artifact{}, nil, fmt.Errorf("error during team validation: %w", err)
	}
	return v.inner.Archive(ctx, teamID)
}

func (v *ArtifactValidationService) List(ctx context.Context) ([]models.Artifact, error) {
	return v.inner.List(ctx)
}

func (v *ArtifactValidationService) Wrap(inner ArtifactService) ArtifactService {
	v.inner = inner
	return v
}
