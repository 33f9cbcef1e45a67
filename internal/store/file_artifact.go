package store

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
)

// ArtifactFile is a single file placed in a team's puzzle folder.
type ArtifactFile struct {
	Name    string
	Content []byte
}

// ArtifactFolderName returns the folder (and archive base) name for teamID.
func ArtifactFolderName(teamID string) string {
	return "CipherChase_" + teamID
}

// artifactFileStorage lays artifacts out under root as
//
//	<root>/CipherChase_<team>/<files...>
//	<root>/CipherChase_<team>.zip
//
// The archive holds the folder itself, so it unpacks to CipherChase_<team>/.
type artifactFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewArtifactFileStorage constructs an [ArtifactFileStorage] rooted at
// cfg.ArtifactDir.
func NewArtifactFileStorage(cfg config.Files, logger *logger.Logger) ArtifactFileStorage {
	logger.Debug().Str("dir", cfg.ArtifactDir).Msg("creating artifact file storage")
	return &artifactFileStorage{
		root:   cfg.ArtifactDir,
		logger: logger,
	}
}

func (s *artifactFileStorage) WriteArtifact(ctx context.Context, teamID string, files []ArtifactFile) (string, error) {
	log := logger.FromContext(ctx)

	folder := ArtifactFolderName(teamID)
	folderPath := filepath.Join(s.root, folder)
	if err := os.MkdirAll(folderPath, 0o755); err != nil {
		return "", fmt.Errorf("error creating artifact folder: %w", err)
	}

	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := os.WriteFile(filepath.Join(folderPath, f.Name), f.Content, 0o644); err != nil {
			log.Err(err).Str("func", "*artifactFileStorage.WriteArtifact").Str("file", f.Name).Msg("error writing artifact file")
			return "", fmt.Errorf("error writing %s: %w", f.Name, err)
		}
	}

	location := folderPath + ".zip"
	if err := writeZip(location, folder, files); err != nil {
		log.Err(err).Str("func", "*artifactFileStorage.WriteArtifact").Str("location", location).Msg("error zipping artifact")
		return "", err
	}

	log.Debug().Str("team_id", teamID).Str("location", location).Msg("artifact written")
	return location, nil
}

// writeZip writes the archive to a temporary file next to location and
// renames it into place, so readers never observe a partial archive.
func writeZip(location, folder string, files []ArtifactFile) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(location), ".archive-*.zip")
	if err != nil {
		return fmt.Errorf("error creating archive: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	zw := zip.NewWriter(tmp)
	for _, f := range files {
		w, err := zw.Create(path.Join(folder, f.Name))
		if err != nil {
			return fmt.Errorf("error adding %s to archive: %w", f.Name, err)
		}
		if _, err := w.Write(f.Content); err != nil {
			return fmt.Errorf("error writing %s to archive: %w", f.Name, err)
		}
	}
	if err = zw.Close(); err != nil {
		return fmt.Errorf("error finalizing archive: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("error closing archive: %w", err)
	}

	if err = os.Rename(tmp.Name(), location); err != nil {
		return fmt.Errorf("error moving archive into place: %w", err)
	}
	return nil
}

func (s *artifactFileStorage) ArchiveExists(location string) bool {
	info, err := os.Stat(location)
	return err == nil && info.Mode().IsRegular()
}

func (s *artifactFileStorage) OpenArchive(location string) (io.ReadSeekCloser, error) {
	f, err := os.Open(location)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrArchiveNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening archive: %w", err)
	}
	return f, nil
}
