package ports

import "go.trai.ch/nixbrew/internal/core/domain"

// RegistryStore persists the package registry.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RegistryStore interface {
	// Load reads the registry from its per-user location. A missing file is
	// not an error and yields an empty registry; a malformed file is fatal.
	Load() (*domain.Registry, error)

	// Save writes the full registry back, creating parent directories as
	// needed. The write is atomic (temp file then rename) and refuses to
	// overwrite a file that changed since Load.
	Save(reg *domain.Registry) error
}
