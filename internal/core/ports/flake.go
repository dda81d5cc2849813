package ports

import "context"

// FlakeWriter generates a standalone flake definition for a package and
// produces its lock file.
//
//go:generate go run go.uber.org/mock/mockgen -source=flake.go -destination=mocks/mock_flake.go -package=mocks
type FlakeWriter interface {
	// Create writes flake.nix for the package under the per-user flakes
	// directory, generates flake.lock, and returns the flake.nix path.
	Create(ctx context.Context, pkg string) (string, error)
}
