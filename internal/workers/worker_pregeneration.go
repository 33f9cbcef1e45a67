// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/internal/service"
)

const defaultPregenerateConcurrency = 4

// ArtifactPregenerationWorker builds the archives of a fixed team list at
// startup so the first download does not pay for generation.
type ArtifactPregenerationWorker struct {
	artifacts   service.ArtifactService
	teams       []string
	concurrency int

	logger *logger.Logger
}

// NewArtifactPregenerationWorker returns a worker generating at most
// concurrency artifacts at once. A non-positive concurrency falls back to 4.
func NewArtifactPregenerationWorker(artifacts service.ArtifactService, teams []string, concurrency int, logger *logger.Logger) *ArtifactPregenerationWorker {
	if concurrency <= 0 {
		concurrency = defaultPregenerateConcurrency
	}
	return &ArtifactPregenerationWorker{
		artifacts:   artifacts,
		teams:       teams,
		concurrency: concurrency,
		logger:      logger,
	}
}

func (w *ArtifactPregenerationWorker) Name() string {
	return "artifact-pregeneration"
}

// Run generates every team's artifact. It stops at the first failure and
// returns it.
func (w *ArtifactPregenerationWorker) Run(ctx context.Context) error {
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)

	for _, team := range w.teams {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			artifact, err := w.artifacts.Generate(gctx, team)
			if err != nil {
				return fmt.Errorf("team %s: %w", team, err)
			}
			w.logger.Debug().Str("team_id", team).Str("artifact_id", artifact.ArtifactID).Msg("artifact ready")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w.logger.Info().Int("teams", len(w.teams)).Dur("duration", time.Since(start)).Msg("artifacts pregenerated")
	return nil
}
