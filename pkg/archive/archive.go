// Package archive isolates the output of each invocation in its own
// timestamp-named folder, so concurrent runs never overwrite each other's
// files.
package archive

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/petrolog/wellsketch/pkg/errors"
)

// FolderFormat is the time layout of archive folder names.
const FolderFormat = "2006-01-02_15-04-05"

// Manager creates per-invocation folders under a root directory.
type Manager struct {
	Root string

	// now is overridable for tests.
	now func() time.Time
}

// NewManager returns a Manager rooted at dir, creating it if needed.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExport, err, "create archive root %s", dir)
	}
	return &Manager{Root: dir, now: time.Now}, nil
}

// NewFolder creates a fresh invocation folder named after the current
// timestamp and returns its path. When two invocations collide on the same
// second, later ones get a short unique suffix instead of sharing the
// folder.
func (m *Manager) NewFolder() (string, error) {
	name := m.now().Format(FolderFormat)
	path := filepath.Join(m.Root, name)

	err := os.Mkdir(path, 0o755)
	if os.IsExist(err) {
		path = filepath.Join(m.Root, name+"_"+uuid.NewString()[:8])
		err = os.Mkdir(path, 0o755)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeExport, err, "create archive folder")
	}
	return path, nil
}

// Move relocates files (given as paths) into the folder, keeping base names.
// It keeps going after individual failures so that partial output is still
// archived for diagnosis, and reports the first error encountered.
func (m *Manager) Move(folder string, files ...string) error {
	var first error
	for _, f := range files {
		dst := filepath.Join(folder, filepath.Base(f))
		if err := moveFile(f, dst); err != nil && first == nil {
			first = errors.Wrap(errors.ErrCodeExport, err, "archive %s", filepath.Base(f))
		}
	}
	return first
}

// moveFile renames when possible and falls back to copy+remove across
// filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
