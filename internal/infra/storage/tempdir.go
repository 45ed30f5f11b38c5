package storage

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"adcopy/config"
	"adcopy/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TempDir implements service.TempStore on a single local directory.
type TempDir struct {
	dir string

	once    sync.Once
	initErr error
}

// NewTempDir returns the managed temp directory from the storage config.
func NewTempDir(cfg *config.Config) service.TempStore {
	return newTempDir(cfg.Storage.TempDir)
}

func newTempDir(dir string) *TempDir {
	return &TempDir{dir: dir}
}

// Write stores data under a new unique name.
func (t *TempDir) Write(data []byte, ext string) (string, error) {
	path, err := t.NewPath(ext)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.Wrap(err, "failed to write temp file")
	}

	return path, nil
}

// NewPath returns a unique path inside the directory, creating the
// directory on first call.
func (t *TempDir) NewPath(ext string) (string, error) {
	if err := t.ensure(); err != nil {
		return "", err
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	return filepath.Join(t.dir, uuid.NewString()+strings.ToLower(ext)), nil
}

// List returns the regular files in the directory. A missing directory is empty.
func (t *TempDir) List() ([]service.TempFileInfo, error) {
	entries, err := os.ReadDir(t.dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read temp dir")
	}

	files := make([]service.TempFileInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// Removed between ReadDir and Info.
			continue
		}
		files = append(files, service.TempFileInfo{
			Path:    filepath.Join(t.dir, entry.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	return files, nil
}

// Remove deletes path. Paths outside the managed directory are refused.
func (t *TempDir) Remove(path string) error {
	rel, err := filepath.Rel(t.dir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return errors.Errorf("refusing to remove %s outside %s", path, t.dir)
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove %s", path)
	}

	return nil
}

func (t *TempDir) ensure() error {
	t.once.Do(func() {
		if err := os.MkdirAll(t.dir, 0o700); err != nil {
			t.initErr = errors.Wrapf(err, "failed to create temp dir %s", t.dir)
		}
	})

	return t.initErr
}
