//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
package store

import (
	"context"
	"io"

	"github.com/Enigma-IIITS/dev-null/models"
)

// ArtifactRepository persists per-team artifact records.
type ArtifactRepository interface {
	// SaveArtifact inserts the record or, if the team already has one,
	// replaces its location and flag.
	SaveArtifact(ctx context.Context, artifact models.Artifact) error
	// FindArtifactByTeam returns [ErrArtifactNotFound] if the team has no record.
	FindArtifactByTeam(ctx context.Context, teamID string) (models.Artifact, error)
	// ListArtifacts returns all records ordered by creation time.
	ListArtifacts(ctx context.Context) ([]models.Artifact, error)
}

// ArtifactFileStorage writes puzzle folders and their zip archives.
type ArtifactFileStorage interface {
	// WriteArtifact writes files into the team folder, zips it and returns
	// the archive location.
	WriteArtifact(ctx context.Context, teamID string, files []ArtifactFile) (string, error)
	// ArchiveExists reports whether the archive at location is present.
	ArchiveExists(location string) bool
	// OpenArchive opens the archive for reading. The caller closes it.
	OpenArchive(location string) (io.ReadSeekCloser, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
