package infra

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
)

// DocStore writes document artifacts into a project's folder tree.
type DocStore struct{}

func NewDocStore() *DocStore { return &DocStore{} }

// EnsureProjectFolders creates the project root with one subfolder per
// document type. Idempotent.
func (d *DocStore) EnsureProjectFolders(rootFolder string) error {
	for _, sub := range model.DocTypes() {
		if err := os.MkdirAll(filepath.Join(rootFolder, sub), 0o755); err != nil {
			return fmt.Errorf("docstore: create %s folder: %w", sub, err)
		}
	}
	return nil
}

// Store writes data into destDir under the hinted filename. If that name is
// taken it appends _1, _2, … before the extension until a free name is found,
// so an existing artifact is never overwritten. Returns the resolved filename
// and the full path written.
func (d *DocStore) Store(data []byte, destDir, filename string) (string, string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", "", fmt.Errorf("docstore: create dest dir: %w", err)
	}

	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." {
		name = "document"
	}
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	resolved := name
	dest := filepath.Join(destDir, resolved)
	for i := 1; ; i++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		resolved = fmt.Sprintf("%s_%d%s", base, i, ext)
		dest = filepath.Join(destDir, resolved)
	}

	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return "", "", fmt.Errorf("docstore: write %s: %w", dest, err)
	}
	return resolved, dest, nil
}
