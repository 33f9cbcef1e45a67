// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/Enigma-IIITS/dev-null/internal/logger"
	"github.com/Enigma-IIITS/dev-null/models"
)

const (
	artifactsTable = "artifacts"

	maxStatementAttempts = 3
	retryBackoff         = 50 * time.Millisecond
)

var artifactColumns = []string{"artifact_id", "team_id", "location", "flag", "created_at"}

// artifactRepository is the SQL-backed implementation of [ArtifactRepository]
// over the "artifacts" table. Queries are built with squirrel so the same
// code serves both PostgreSQL ($n) and SQLite (?) placeholders.
type artifactRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewArtifactRepository constructs an [ArtifactRepository] backed by db.
func NewArtifactRepository(db *DB, logger *logger.Logger) ArtifactRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating artifact repository")
	return &artifactRepository{
		db:     db,
		logger: logger,
	}
}

// SaveArtifact upserts the record keyed by team_id. On conflict the stored
// artifact_id and created_at are kept.
//
// Transient driver errors (see [ErrorClassificator]) are retried up to
// three times.
func (r *artifactRepository) SaveArtifact(ctx context.Context, artifact models.Artifact) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.statements().
		Insert(artifactsTable).
		Columns(artifactColumns...).
		Values(artifact.ArtifactID, artifact.TeamID, artifact.Location, artifact.Flag, artifact.CreatedAt.UTC()).
		Suffix("ON CONFLICT (team_id) DO UPDATE SET location = EXCLUDED.location, flag = EXCLUDED.flag").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.SaveArtifact").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.execWithRetry(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*artifactRepository.SaveArtifact").
			Str("team_id", artifact.TeamID).
			Msg("failed to upsert artifact")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindArtifactByTeam returns the record stored for teamID.
func (r *artifactRepository) FindArtifactByTeam(ctx context.Context, teamID string) (models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.statements().
		Select(artifactColumns...).
		From(artifactsTable).
		Where(squirrel.Eq{"team_id": teamID}).
		Limit(1).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.FindArtifactByTeam").Msg("error building query")
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var artifact models.Artifact
	row := r.db.QueryRowContext(ctx, query, args...)
	err = row.Scan(&artifact.ArtifactID, &artifact.TeamID, &artifact.Location, &artifact.Flag, &artifact.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Artifact{}, ErrArtifactNotFound
	case err != nil:
		log.Err(err).
			Str("func", "*artifactRepository.FindArtifactByTeam").
			Str("team_id", teamID).
			Msg("error scanning artifact")
		return models.Artifact{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return artifact, nil
}

// ListArtifacts returns every stored record, oldest first.
func (r *artifactRepository) ListArtifacts(ctx context.Context) ([]models.Artifact, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.statements().
		Select(artifactColumns...).
		From(artifactsTable).
		OrderBy("created_at", "team_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*artifactRepository.ListArtifacts").Msg("error querying artifacts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	artifacts := make([]models.Artifact, 0)
	for rows.Next() {
		var a models.Artifact
		if err := rows.Scan(&a.ArtifactID, &a.TeamID, &a.Location, &a.Flag, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		artifacts = append(artifacts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return artifacts, nil
}

func (r *artifactRepository) execWithRetry(ctx context.Context, query string, args ...any) error {
	var err error
	for attempt := 1; attempt <= maxStatementAttempts; attempt++ {
		if _, err = r.db.ExecContext(ctx, query, args...); err == nil {
			return nil
		}
		if r.db.classify(err) != Retryable || attempt == maxStatementAttempts {
			return err
		}

		r.logger.Warn().Err(err).Int("attempt", attempt).Msg("retrying statement")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
