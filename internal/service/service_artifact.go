// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/Enigma-IIITS/dev-null/internal/cipher"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/store"
	"github.com/Enigma-IIITS/dev-null/models"
)

const (
	// CiphertextFileName is the puzzle file handed to teams.
	CiphertextFileName = "encrypted.txt"
	// HintFileName carries [Hint].
	HintFileName = "README.txt"
)

// artifactService builds the per-team CipherChase_<team>.zip archives.
//
// Concurrent Generate calls for the same team share one build. Generation
// is idempotent: a stored record whose archive is still on disk is returned
// as is.
type artifactService struct {
	repository store.ArtifactRepository
	files      store.ArtifactFileStorage
	cipher     cipher.Cipher
	flags      *FlagDeriver
	ids        IDGenerator
	key        string
	now        func() time.Time

	inflight singleflight.Group

	logger *logger.Logger
}

// NewArtifactService wires artifact generation. key is the puzzle key every
// archive is encrypted with.
func NewArtifactService(
	repository store.ArtifactRepository,
	files store.ArtifactFileStorage,
	c cipher.Cipher,
	flags *FlagDeriver,
	ids IDGenerator,
	key string,
	logger *logger.Logger,
) ArtifactService {
	return &artifactService{
		repository: repository,
		files:      files,
		cipher:     c,
		flags:      flags,
		ids:        ids,
		key:        key,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *artifactService) Generate(ctx context.Context, teamID string) (models.Artifact, error) {
	// The build is shared by every caller for teamID, so one caller's
	// cancellation must not fail the others.
	shared := context.WithoutCancel(ctx)
	v, err, joined := s.inflight.Do(teamID, func() (any, error) {
		return s.generate(shared, teamID)
	})
	if err != nil {
		return models.Artifact{}, err
	}
	if joined {
		logger.FromContext(ctx).Debug().Str("team_id", teamID).Msg("joined in-flight artifact generation")
	}
	return v.(models.Artifact), nil
}

func (s *artifactService) generate(ctx context.Context, teamID string) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	existing, err := s.repository.FindArtifactByTeam(ctx, teamID)
	switch {
	case err == nil && s.files.ArchiveExists(existing.Location):
		return existing, nil
	case err == nil:
		log.Warn().Str("team_id", teamID).Str("location", existing.Location).Msg("archive missing on disk, regenerating")
	case !errors.Is(err, store.ErrArtifactNotFound):
		return models.Artifact{}, fmt.Errorf("error looking up artifact: %w", err)
	}

	flag := s.flags.Derive(teamID)
	ciphertext, err := s.cipher.Encrypt(RenderPlaintext(flag), s.key)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("error encrypting plaintext: %w", err)
	}

	location, err := s.files.WriteArtifact(ctx, teamID, []store.ArtifactFile{
		{Name: CiphertextFileName, Content: []byte(ciphertext)},
		{Name: HintFileName, Content: []byte(Hint + "\n")},
	})
	if err != nil {
		return models.Artifact{}, fmt.Errorf("error writing artifact files: %w", err)
	}

	artifact := models.Artifact{
		ArtifactID: existing.ArtifactID,
		TeamID:     teamID,
		Location:   location,
		Flag:       flag,
		CreatedAt:  existing.CreatedAt,
	}
	if artifact.ArtifactID == "" {
		artifact.ArtifactID = s.ids.Generate()
		artifact.CreatedAt = s.now().UTC()
	}

	if err := s.repository.SaveArtifact(ctx, artifact); err != nil {
		return models.Artifact{}, fmt.Errorf("error saving artifact: %w", err)
	}

	log.Info().Str("team_id", teamID).Str("artifact_id", artifact.ArtifactID).Str("location", location).Msg("artifact generated")
	return artifact, nil
}

func (s *artifactService) Archive(ctx context.Context, teamID string) (models.Artifact, io.ReadSeekCloser, error) {
	artifact, err := s.repository.FindArtifactByTeam(ctx, teamID)
	if errors.Is(err, store.ErrArtifactNotFound) {
		return models.Artifact{}, nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, teamID)
	}
	if err != nil {
		return models.Artifact{}, nil, fmt.Errorf("error looking up artifact: %w", err)
	}

	archive, err := s.files.OpenArchive(artifact.Location)
	if errors.Is(err, store.ErrArchiveNotFound) {
		return models.Artifact{}, nil, fmt.Errorf("%w: archive of %s is missing", ErrArtifactNotFound, teamID)
	}
	if err != nil {
		return models.Artifact{}, nil, err
	}

	return artifact, archive, nil
}

func (s *artifactService) List(ctx context.Context) ([]models.Artifact, error) {
	artifacts, err := s.repository.ListArtifacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing artifacts: %w", err)
	}
	return artifacts, nil
}
