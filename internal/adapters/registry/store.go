// Package registry persists the package registry as a single JSON file under
// the per-user nixbrew directory.
package registry

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/nixbrew/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RegistryStore on a JSON file.
//
// Save performs a compare-and-swap against the file content seen at Load:
// if another process rewrote the registry in between, the save fails with
// domain.ErrRegistryConflict instead of silently dropping that update. The
// original tool was last-writer-wins; the check is a deliberate improvement.
type Store struct {
	path string

	// Content hash of the file at Load time. Zero when the file was absent.
	loadedSum uint64
}

// NewStore creates a RegistryStore rooted in the user's home directory.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHomeDirNotFound.Error())
	}
	return newStoreWithPath(domain.RegistryPath(home)), nil
}

// newStoreWithPath creates a Store with a custom registry path (used for testing).
func newStoreWithPath(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

// Load reads the registry file. A missing file yields an empty registry; a
// file that exists but does not parse is fatal and is never overwritten.
func (s *Store) Load() (*domain.Registry, error) {
	//nolint:gosec // path is derived from the user's home directory
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.loadedSum = 0
			return domain.NewRegistry(), nil
		}
		return nil, zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
	}

	var reg domain.Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		corruptErr := zerr.With(domain.ErrRegistryCorrupt, "path", s.path)
		return nil, zerr.With(corruptErr, "cause", err.Error())
	}
	if reg.History == nil {
		reg.History = make(map[string][]domain.PackageInfo)
	}
	if reg.ResolvedCache == nil {
		reg.ResolvedCache = make(map[string]map[string]string)
	}

	s.loadedSum = xxhash.Sum64(data)
	return &reg, nil
}

// Save serializes the full registry back to disk, creating parent directories
// as needed. The write goes to a temp file which is renamed into place, so a
// crash mid-write cannot corrupt previously valid state.
func (s *Store) Save(reg *domain.Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRegistryMarshalFailed.Error())
	}

	if err := s.checkConflict(); err != nil {
		return err
	}

	if err := s.atomicWriteFile(s.path, data); err != nil {
		return zerr.Wrap(err, domain.ErrRegistryWriteFailed.Error())
	}

	s.loadedSum = xxhash.Sum64(data)
	return nil
}

// checkConflict re-reads the registry file and refuses the save when its
// content no longer matches what Load saw.
func (s *Store) checkConflict() error {
	//nolint:gosec // path is derived from the user's home directory
	current, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if s.loadedSum != 0 {
				return zerr.With(domain.ErrRegistryConflict, "path", s.path)
			}
			return nil
		}
		return zerr.Wrap(err, domain.ErrRegistryReadFailed.Error())
	}

	if s.loadedSum == 0 || xxhash.Sum64(current) != s.loadedSum {
		return zerr.With(domain.ErrRegistryConflict, "path", s.path)
	}
	return nil
}

func (s *Store) atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, "registry-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
