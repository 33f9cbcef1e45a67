package store

import (
	"context"
	"fmt"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
)

// Storages groups the server's persistence components.
type Storages struct {
	ArtifactRepository  ArtifactRepository
	ArtifactFileStorage ArtifactFileStorage

	db *DB
}

// NewStorages connects to the database named by cfg.DB.DSN, applies
// migrations and wires the artifact repository and file storage.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		ArtifactRepository:  NewArtifactRepository(db, logger),
		ArtifactFileStorage: NewArtifactFileStorage(cfg.Files, logger),
		db:                  db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
