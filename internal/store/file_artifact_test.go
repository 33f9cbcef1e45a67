package store

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Enigma-IIITS/dev-null/internal/config"
	"github.com/Enigma-IIITS/dev-null/internal/logger"
)

func TestArtifactFileStorage_WriteArtifact(t *testing.T) {
	root := t.TempDir()
	s := NewArtifactFileStorage(config.Files{ArtifactDir: root}, logger.Nop())

	files := []ArtifactFile{
		{Name: "encrypted.txt", Content: []byte("kbhuu3!1f")},
		{Name: "README.txt", Content: []byte("hint")},
	}

	location, err := s.WriteArtifact(context.Background(), "team-1", files)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "CipherChase_team-1.zip"), location)
	assert.True(t, s.ArchiveExists(location))

	onDisk, err := os.ReadFile(filepath.Join(root, "CipherChase_team-1", "encrypted.txt"))
	require.NoError(t, err)
	assert.Equal(t, "kbhuu3!1f", string(onDisk))

	zr, err := zip.OpenReader(location)
	require.NoError(t, err)
	defer zr.Close()

	got := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		rc.Close()
		got[f.Name] = string(b)
	}
	assert.Equal(t, map[string]string{
		"CipherChase_team-1/encrypted.txt": "kbhuu3!1f",
		"CipherChase_team-1/README.txt":    "hint",
	}, got)

	// no temp files left behind
	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestArtifactFileStorage_Rewrite(t *testing.T) {
	root := t.TempDir()
	s := NewArtifactFileStorage(config.Files{ArtifactDir: root}, logger.Nop())

	_, err := s.WriteArtifact(context.Background(), "t", []ArtifactFile{{Name: "encrypted.txt", Content: []byte("old")}})
	require.NoError(t, err)
	location, err := s.WriteArtifact(context.Background(), "t", []ArtifactFile{{Name: "encrypted.txt", Content: []byte("new")}})
	require.NoError(t, err)

	rc, err := s.OpenArchive(location)
	require.NoError(t, err)
	defer rc.Close()

	info, err := os.Stat(location)
	require.NoError(t, err)
	zr, err := zip.NewReader(rc.(io.ReaderAt), info.Size())
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	f, err := zr.File[0].Open()
	require.NoError(t, err)
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
}

func TestArtifactFileStorage_CanceledContext(t *testing.T) {
	s := NewArtifactFileStorage(config.Files{ArtifactDir: t.TempDir()}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.WriteArtifact(ctx, "t", []ArtifactFile{{Name: "encrypted.txt", Content: []byte("x")}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestArtifactFileStorage_MissingArchive(t *testing.T) {
	s := NewArtifactFileStorage(config.Files{ArtifactDir: t.TempDir()}, logger.Nop())

	missing := filepath.Join(t.TempDir(), "nope.zip")
	assert.False(t, s.ArchiveExists(missing))

	_, err := s.OpenArchive(missing)
	assert.ErrorIs(t, err, ErrArchiveNotFound)
}

func TestArtifactFolderName(t *testing.T) {
	assert.Equal(t, "CipherChase_abc", ArtifactFolderName("abc"))
}
