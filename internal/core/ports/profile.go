package ports

import (
	"context"

	"go.trai.ch/nixbrew/internal/core/domain"
)

// ProfileManager manages the installed profile and the other pass-through
// capabilities of the package oracle.
//
//go:generate go run go.uber.org/mock/mockgen -source=profile.go -destination=mocks/mock_profile.go -package=mocks
type ProfileManager interface {
	// List returns the installed profile entries.
	List(ctx context.Context) ([]domain.ProfileEntry, error)

	// Add installs the package identified by the reference.
	Add(ctx context.Context, reference string) error

	// Remove uninstalls the profile entry at the given index.
	Remove(ctx context.Context, index string) error

	// Reinstall re-adds the reference, replacing the installed build.
	Reinstall(ctx context.Context, reference string) error

	// Search runs a package search against the default channel, streaming
	// the oracle's own output.
	Search(ctx context.Context, query string) error

	// Update refreshes the given flake target (e.g. "nixpkgs").
	Update(ctx context.Context, target string) error
}
