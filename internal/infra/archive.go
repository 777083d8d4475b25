package infra

// archive.go — synchronous zip snapshots of the data dir and document trees.
// A snapshot blocks its caller until complete and has no rollback: a failure
// mid-archive leaves a partial file the caller should discard.

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Archiver writes timestamped zip snapshots into destDir.
type Archiver struct {
	destDir string
}

func NewArchiver(destDir string) *Archiver { return &Archiver{destDir: destDir} }

// Snapshot walks each path (file or directory tree) into one zip archive and
// returns the archive path. Paths that do not exist are skipped rather than
// failing the whole backup.
func (a *Archiver) Snapshot(paths []string) (string, error) {
	if err := os.MkdirAll(a.destDir, 0o755); err != nil {
		return "", fmt.Errorf("archive: create backup dir: %w", err)
	}

	archivePath := filepath.Join(a.destDir, fmt.Sprintf("backup_%s.zip", time.Now().Format("20060102_150405")))
	out, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("archive: create %s: %w", archivePath, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	defer zw.Close()

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			continue
		}
		if !info.IsDir() {
			if err := addFile(zw, root, filepath.Base(root)); err != nil {
				return "", err
			}
			continue
		}

		base := filepath.Base(root)
		err = filepath.Walk(root, func(path string, fi os.FileInfo, err error) error {
			if err != nil || fi.IsDir() {
				return err
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			return addFile(zw, path, filepath.ToSlash(filepath.Join(base, rel)))
		})
		if err != nil {
			return "", fmt.Errorf("archive: walk %s: %w", root, err)
		}
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("archive: finalize %s: %w", archivePath, err)
	}
	return archivePath, nil
}

func addFile(zw *zip.Writer, path, name string) error {
	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("archive: open %s: %w", path, err)
	}
	defer in.Close()

	// Guard against zipping our own partially written archives
	if strings.HasPrefix(filepath.Base(path), "backup_") && strings.HasSuffix(path, ".zip") {
		return nil
	}

	w, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(w, in)
	return err
}
