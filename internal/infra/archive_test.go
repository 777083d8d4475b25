package infra

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func archiveNames(t *testing.T, archivePath string) []string {
	t.Helper()
	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close()

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestSnapshotArchivesTreesAndFiles(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "docs", "Quote"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "docs", "Quote", "q1.pdf"), []byte("q"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "config.json"), []byte("{}"), 0o644))

	a := NewArchiver(filepath.Join(t.TempDir(), "backups"))
	archivePath, err := a.Snapshot([]string{
		filepath.Join(src, "docs"),
		filepath.Join(src, "config.json"),
	})
	require.NoError(t, err)

	names := archiveNames(t, archivePath)
	assert.Contains(t, names, "docs/Quote/q1.pdf")
	assert.Contains(t, names, "config.json")
}

func TestSnapshotSkipsMissingPaths(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "keep.txt"), []byte("k"), 0o644))

	a := NewArchiver(filepath.Join(t.TempDir(), "backups"))
	archivePath, err := a.Snapshot([]string{
		filepath.Join(src, "keep.txt"),
		filepath.Join(src, "does-not-exist"),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, archiveNames(t, archivePath))
}

func TestSnapshotIgnoresPriorBackups(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "backups")
	require.NoError(t, os.MkdirAll(dest, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dest, "backup_old.zip"), []byte("zip"), 0o644))

	a := NewArchiver(dest)
	archivePath, err := a.Snapshot([]string{dest})
	require.NoError(t, err)

	for _, name := range archiveNames(t, archivePath) {
		assert.NotContains(t, name, "backup_old.zip")
	}
}
